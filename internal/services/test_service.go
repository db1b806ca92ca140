package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
	"github.com/MehulChauhan-07/placement-pro/internal/validator"
)

type testService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTestService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) TestService {
	return &testService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *testService) List(ctx context.Context) ([]*models.MockTest, error) {
	tests, err := s.repo.MockTest().ListMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	return tests, nil
}

func (s *testService) GetForTaking(ctx context.Context, id string) (*models.MockTest, error) {
	test, err := s.repo.MockTest().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to load test: %w", err)
	}

	sanitized := make([]models.TestQuestion, len(test.Questions))
	for i, q := range test.Questions {
		sanitized[i] = q.Sanitized()
	}
	test.Questions = sanitized

	return test, nil
}

// Submit scores the submission against the authoritative test. Answers are
// compared positionally: answer i against question i. A reordered or short
// submission scores accordingly; total is always the question count.
func (s *testService) Submit(ctx context.Context, userID string, req *SubmitTestRequest) (*TestResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	test, err := s.repo.MockTest().GetByID(ctx, req.TestID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to load test: %w", err)
	}

	score := 0
	total := len(test.Questions)
	for i, answer := range req.Answers {
		if i >= total {
			break
		}
		if answer.Answer == test.Questions[i].CorrectAnswer {
			score++
		}
	}

	rawAnswers, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	attempt := &models.TestAttempt{
		ID:          uuid.New().String(),
		TestID:      test.ID,
		UserID:      userID,
		Score:       score,
		Total:       total,
		Answers:     rawAnswers,
		AttemptedAt: time.Now().UTC(),
	}
	if err := s.repo.Attempt().Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to store attempt: %w", err)
	}

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(score)/float64(total)*100*100) / 100
	}

	s.logger.Info("test submitted", "test_id", test.ID, "user_id", userID, "score", score, "total", total)

	return &TestResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
	}, nil
}

func (s *testService) ListMyAttempts(ctx context.Context, userID string) ([]*AttemptWithTest, error) {
	attempts, err := s.repo.Attempt().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	out := make([]*AttemptWithTest, 0, len(attempts))
	for _, attempt := range attempts {
		enriched := &AttemptWithTest{TestAttempt: attempt}
		test, err := s.repo.MockTest().GetByID(ctx, attempt.TestID)
		if err == nil {
			test.Questions = nil
			enriched.Test = test
		} else if !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load test for attempt: %w", err)
		}
		out = append(out, enriched)
	}
	return out, nil
}
