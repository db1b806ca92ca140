package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/validator"
)

func newTestService(t *testing.T) (*memoryRepository, TestService) {
	t.Helper()
	repo := newMemoryRepository()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return repo, NewTestService(repo, logger, validator.New())
}

func seedTest(t *testing.T, repo *memoryRepository, questions []models.TestQuestion) *models.MockTest {
	t.Helper()
	test := &models.MockTest{
		ID:        uuid.New().String(),
		Title:     "Quantitative Aptitude Test",
		Category:  models.CategoryAptitude,
		Duration:  60,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.MockTest().Create(context.Background(), test); err != nil {
		t.Fatalf("Failed to seed test: %v", err)
	}
	return test
}

func TestTestService_Submit_PositionalScoring(t *testing.T) {
	repo, service := newTestService(t)
	ctx := context.Background()

	test := seedTest(t, repo, []models.TestQuestion{
		{Text: "q1", Options: []string{"X", "Y"}, CorrectAnswer: "X"},
		{Text: "q2", Options: []string{"Y", "Z"}, CorrectAnswer: "Y"},
	})

	t.Run("all correct", func(t *testing.T) {
		result, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
			TestID:  test.ID,
			Answers: []validator.SubmittedAnswer{{Answer: "X"}, {Answer: "Y"}},
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if result.Score != 2 || result.Total != 2 {
			t.Errorf("Expected 2/2, got %d/%d", result.Score, result.Total)
		}
		if result.Percentage != 100.0 {
			t.Errorf("Expected 100.0, got %v", result.Percentage)
		}
	})

	t.Run("partially correct", func(t *testing.T) {
		result, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
			TestID:  test.ID,
			Answers: []validator.SubmittedAnswer{{Answer: "X"}, {Answer: "Z"}},
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if result.Score != 1 || result.Total != 2 {
			t.Errorf("Expected 1/2, got %d/%d", result.Score, result.Total)
		}
		if result.Percentage != 50.0 {
			t.Errorf("Expected 50.0, got %v", result.Percentage)
		}
	})

	t.Run("order matters", func(t *testing.T) {
		// Both answer strings exist in the test, but swapped positions
		// score zero.
		result, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
			TestID:  test.ID,
			Answers: []validator.SubmittedAnswer{{Answer: "Y"}, {Answer: "X"}},
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if result.Score != 0 {
			t.Errorf("Expected score 0 for swapped answers, got %d", result.Score)
		}
	})

	t.Run("short submission", func(t *testing.T) {
		result, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
			TestID:  test.ID,
			Answers: []validator.SubmittedAnswer{{Answer: "X"}},
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if result.Score != 1 || result.Total != 2 {
			t.Errorf("Expected 1/2 for short submission, got %d/%d", result.Score, result.Total)
		}
	})

	t.Run("extra answers ignored", func(t *testing.T) {
		result, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
			TestID:  test.ID,
			Answers: []validator.SubmittedAnswer{{Answer: "X"}, {Answer: "Y"}, {Answer: "X"}, {Answer: "Y"}},
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if result.Score != 2 || result.Total != 2 {
			t.Errorf("Expected 2/2 with extra answers, got %d/%d", result.Score, result.Total)
		}
	})
}

func TestTestService_Submit_PercentageRounding(t *testing.T) {
	repo, service := newTestService(t)
	ctx := context.Background()

	test := seedTest(t, repo, []models.TestQuestion{
		{Text: "q1", CorrectAnswer: "a"},
		{Text: "q2", CorrectAnswer: "b"},
		{Text: "q3", CorrectAnswer: "c"},
	})

	result, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
		TestID:  test.ID,
		Answers: []validator.SubmittedAnswer{{Answer: "a"}, {Answer: "wrong"}, {Answer: "wrong"}},
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.Percentage != 33.33 {
		t.Errorf("Expected 33.33, got %v", result.Percentage)
	}
}

func TestTestService_Submit_PersistsAttempt(t *testing.T) {
	repo, service := newTestService(t)
	ctx := context.Background()

	test := seedTest(t, repo, []models.TestQuestion{
		{Text: "q1", CorrectAnswer: "a"},
	})

	submitted := []validator.SubmittedAnswer{{Answer: "a"}}
	if _, err := service.Submit(ctx, "user-1", &SubmitTestRequest{TestID: test.ID, Answers: submitted}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	attempts, err := repo.Attempt().ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("Expected 1 attempt, got %d", len(attempts))
	}

	attempt := attempts[0]
	if attempt.TestID != test.ID || attempt.Score != 1 || attempt.Total != 1 {
		t.Errorf("Attempt not recorded correctly: %+v", attempt)
	}
	if attempt.AttemptedAt.IsZero() {
		t.Error("AttemptedAt should be set")
	}

	var stored []validator.SubmittedAnswer
	if err := json.Unmarshal(attempt.Answers, &stored); err != nil {
		t.Fatalf("Failed to decode stored answers: %v", err)
	}
	if len(stored) != 1 || stored[0].Answer != "a" {
		t.Errorf("Raw answers not kept verbatim: %+v", stored)
	}
}

func TestTestService_Submit_Errors(t *testing.T) {
	_, service := newTestService(t)
	ctx := context.Background()

	t.Run("unknown test", func(t *testing.T) {
		_, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
			TestID:  uuid.New().String(),
			Answers: []validator.SubmittedAnswer{{Answer: "a"}},
		})
		if err != ErrTestNotFound {
			t.Errorf("Expected ErrTestNotFound, got %v", err)
		}
	})

	t.Run("invalid test id", func(t *testing.T) {
		_, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
			TestID:  "not-a-uuid",
			Answers: []validator.SubmittedAnswer{{Answer: "a"}},
		})
		if err == nil {
			t.Fatal("Expected validation error for malformed test id")
		}
	})
}

func TestTestService_GetForTaking_StripsAnswers(t *testing.T) {
	repo, service := newTestService(t)
	ctx := context.Background()

	seeded := seedTest(t, repo, []models.TestQuestion{
		{Text: "q1", Options: []string{"X", "Y"}, CorrectAnswer: "X"},
		{Text: "q2", Options: []string{"Y", "Z"}, CorrectAnswer: "Y"},
	})

	test, err := service.GetForTaking(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetForTaking failed: %v", err)
	}
	if len(test.Questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(test.Questions))
	}
	for i, q := range test.Questions {
		if q.CorrectAnswer != "" {
			t.Errorf("Question %d leaked correct answer %q", i, q.CorrectAnswer)
		}
		if q.Text == "" || len(q.Options) == 0 {
			t.Errorf("Question %d lost its content", i)
		}
	}

	// Scoring against the stored record must still work afterwards.
	result, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
		TestID:  seeded.ID,
		Answers: []validator.SubmittedAnswer{{Answer: "X"}, {Answer: "Y"}},
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.Score != 2 {
		t.Errorf("Sanitizing a read corrupted the stored answers, score %d", result.Score)
	}
}

func TestTestService_ListMyAttempts_OmitsQuestions(t *testing.T) {
	repo, service := newTestService(t)
	ctx := context.Background()

	test := seedTest(t, repo, []models.TestQuestion{{Text: "q1", CorrectAnswer: "a"}})
	if _, err := service.Submit(ctx, "user-1", &SubmitTestRequest{
		TestID:  test.ID,
		Answers: []validator.SubmittedAnswer{{Answer: "a"}},
	}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	attempts, err := service.ListMyAttempts(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListMyAttempts failed: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("Expected 1 attempt, got %d", len(attempts))
	}
	if attempts[0].Test == nil {
		t.Fatal("Attempt should be enriched with test metadata")
	}
	if attempts[0].Test.Title != test.Title {
		t.Errorf("Expected title %q, got %q", test.Title, attempts[0].Test.Title)
	}
	if attempts[0].Test.Questions != nil {
		t.Error("Attempt listing must not include questions")
	}
}
