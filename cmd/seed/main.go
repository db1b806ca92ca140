// Command seed wipes and repopulates the catalog tables (drives, mock
// tests, resources, announcements) with sample data for local development.
// Users, sessions, profiles, applications, and attempts are left untouched.
package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MehulChauhan-07/placement-pro/internal/config"
	"github.com/MehulChauhan-07/placement-pro/internal/models"
	"github.com/MehulChauhan-07/placement-pro/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	logger.Info("clearing existing catalog data")
	for _, model := range []interface{}{
		&models.PlacementDrive{},
		&models.MockTest{},
		&models.Resource{},
		&models.Announcement{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	now := time.Now().UTC()

	drives := sampleDrives(now)
	if err := db.Create(&drives).Error; err != nil {
		log.Fatalf("Failed to seed placement drives: %v", err)
	}
	logger.Info("seeded placement drives", "count", len(drives))

	tests := sampleTests(now)
	if err := db.Create(&tests).Error; err != nil {
		log.Fatalf("Failed to seed mock tests: %v", err)
	}
	logger.Info("seeded mock tests", "count", len(tests))

	resources := sampleResources(now)
	if err := db.Create(&resources).Error; err != nil {
		log.Fatalf("Failed to seed resources: %v", err)
	}
	logger.Info("seeded resources", "count", len(resources))

	announcements := sampleAnnouncements(now)
	if err := db.Create(&announcements).Error; err != nil {
		log.Fatalf("Failed to seed announcements: %v", err)
	}
	logger.Info("seeded announcements", "count", len(announcements))

	logger.Info("database seeding completed")
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func sampleDrives(now time.Time) []models.PlacementDrive {
	return []models.PlacementDrive{
		{
			ID:                  uuid.NewString(),
			CompanyName:         "Google",
			CompanyLogo:         strPtr("https://www.google.com/images/branding/googlelogo/2x/googlelogo_color_272x92dp.png"),
			Role:                "Software Engineer",
			Description:         "Join Google as a Software Engineer and work on cutting-edge technologies that impact billions of users worldwide.",
			Eligibility:         "B.Tech/M.Tech in CS/IT with CGPA >= 7.5",
			CTC:                 "₹25-30 LPA",
			Location:            "Bangalore, India",
			ApplicationDeadline: now.AddDate(0, 0, 15),
			InterviewDate:       timePtr(now.AddDate(0, 0, 25)),
			SkillsRequired:      []string{"Java", "Python", "Data Structures", "Algorithms", "System Design"},
			ProcessSteps:        []string{"Online Test", "Technical Interview 1", "Technical Interview 2", "HR Interview"},
			Status:              models.DriveActive,
			CreatedAt:           now,
		},
		{
			ID:                  uuid.NewString(),
			CompanyName:         "Microsoft",
			Role:                "Software Development Engineer",
			Description:         "Microsoft is looking for talented developers to join our Azure team and build cloud solutions.",
			Eligibility:         "B.Tech/M.Tech in CS/IT/ECE with CGPA >= 7.0",
			CTC:                 "₹22-28 LPA",
			Location:            "Hyderabad, India",
			ApplicationDeadline: now.AddDate(0, 0, 20),
			InterviewDate:       timePtr(now.AddDate(0, 0, 30)),
			SkillsRequired:      []string{"C++", "C#", ".NET", "Azure", "Problem Solving"},
			ProcessSteps:        []string{"Aptitude Test", "Coding Round", "Technical Interview", "Manager Round"},
			Status:              models.DriveActive,
			CreatedAt:           now,
		},
		{
			ID:                  uuid.NewString(),
			CompanyName:         "Amazon",
			Role:                "SDE-1",
			Description:         "Amazon Web Services is hiring fresh graduates for SDE-1 positions in our cloud computing division.",
			Eligibility:         "B.Tech in CS/IT with CGPA >= 7.0, Strong coding skills",
			CTC:                 "₹28-35 LPA",
			Location:            "Bangalore/Hyderabad",
			ApplicationDeadline: now.AddDate(0, 0, 12),
			InterviewDate:       timePtr(now.AddDate(0, 0, 22)),
			SkillsRequired:      []string{"Java", "Python", "AWS", "Data Structures", "OOP"},
			ProcessSteps:        []string{"Online Assessment", "Technical Round 1", "Technical Round 2", "Bar Raiser"},
			Status:              models.DriveActive,
			CreatedAt:           now,
		},
		{
			ID:                  uuid.NewString(),
			CompanyName:         "Goldman Sachs",
			Role:                "Technology Analyst",
			Description:         "Join Goldman Sachs as a Technology Analyst and work on high-performance trading systems.",
			Eligibility:         "B.Tech/M.Tech in CS/IT/Mathematics with CGPA >= 8.0",
			CTC:                 "₹20-25 LPA",
			Location:            "Bangalore",
			ApplicationDeadline: now.AddDate(0, 0, 18),
			InterviewDate:       timePtr(now.AddDate(0, 0, 28)),
			SkillsRequired:      []string{"Java", "C++", "Database", "Algorithms", "Problem Solving"},
			ProcessSteps:        []string{"HackerRank Test", "Technical Interview 1", "Technical Interview 2", "HR Round"},
			Status:              models.DriveActive,
			CreatedAt:           now,
		},
		{
			ID:                  uuid.NewString(),
			CompanyName:         "Flipkart",
			Role:                "Software Development Engineer",
			Description:         "Flipkart is hiring SDEs to work on e-commerce platforms serving millions of customers.",
			Eligibility:         "B.Tech in CS/IT with CGPA >= 7.5",
			CTC:                 "₹18-24 LPA",
			Location:            "Bangalore",
			ApplicationDeadline: now.AddDate(0, 0, 10),
			InterviewDate:       timePtr(now.AddDate(0, 0, 20)),
			SkillsRequired:      []string{"Java", "Spring Boot", "Microservices", "SQL", "NoSQL"},
			ProcessSteps:        []string{"Coding Test", "Technical Round 1", "Technical Round 2", "Hiring Manager"},
			Status:              models.DriveActive,
			CreatedAt:           now,
		},
	}
}

func sampleTests(now time.Time) []models.MockTest {
	return []models.MockTest{
		{
			ID:       uuid.NewString(),
			Title:    "Quantitative Aptitude Test",
			Category: models.CategoryAptitude,
			Duration: 60,
			Questions: []models.TestQuestion{
				{
					Text:          "If a train travels 180 km in 3 hours, what is its speed in km/h?",
					Options:       []string{"50", "60", "70", "80"},
					CorrectAnswer: "60",
				},
				{
					Text:          "What is 15% of 200?",
					Options:       []string{"20", "25", "30", "35"},
					CorrectAnswer: "30",
				},
				{
					Text:          "If the ratio of boys to girls is 3:2 and there are 50 students, how many are boys?",
					Options:       []string{"20", "25", "30", "35"},
					CorrectAnswer: "30",
				},
				{
					Text:          "What is the next number in the series: 2, 6, 12, 20, ?",
					Options:       []string{"28", "30", "32", "34"},
					CorrectAnswer: "30",
				},
				{
					Text:          "A sum of money doubles in 5 years at simple interest. In how many years will it triple?",
					Options:       []string{"10", "12", "15", "20"},
					CorrectAnswer: "10",
				},
			},
			CreatedAt: now,
		},
		{
			ID:       uuid.NewString(),
			Title:    "Logical Reasoning Test",
			Category: models.CategoryAptitude,
			Duration: 45,
			Questions: []models.TestQuestion{
				{
					Text:          "All roses are flowers. Some flowers fade quickly. Therefore:",
					Options:       []string{"All roses fade quickly", "Some roses fade quickly", "No roses fade quickly", "Cannot be determined"},
					CorrectAnswer: "Cannot be determined",
				},
				{
					Text:          "If BOOK is coded as CPPL, how is PENCIL coded?",
					Options:       []string{"QFODJM", "QFODKM", "QFODJL", "PFNDJM"},
					CorrectAnswer: "QFODJM",
				},
				{
					Text:          "Find the odd one out: 3, 5, 7, 12, 13, 17, 19",
					Options:       []string{"3", "12", "13", "19"},
					CorrectAnswer: "12",
				},
			},
			CreatedAt: now,
		},
		{
			ID:       uuid.NewString(),
			Title:    "Data Structures Basics",
			Category: models.CategoryTechnical,
			Duration: 90,
			Questions: []models.TestQuestion{
				{
					Text:          "What is the time complexity of searching in a balanced BST?",
					Options:       []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
					CorrectAnswer: "O(log n)",
				},
				{
					Text:          "Which data structure uses LIFO principle?",
					Options:       []string{"Queue", "Stack", "Tree", "Graph"},
					CorrectAnswer: "Stack",
				},
				{
					Text:          "What is the best case time complexity of Quick Sort?",
					Options:       []string{"O(n)", "O(n log n)", "O(n²)", "O(log n)"},
					CorrectAnswer: "O(n log n)",
				},
				{
					Text:          "Which data structure is used for BFS traversal?",
					Options:       []string{"Stack", "Queue", "Heap", "Array"},
					CorrectAnswer: "Queue",
				},
			},
			CreatedAt: now,
		},
		{
			ID:       uuid.NewString(),
			Title:    "Python Programming Test",
			Category: models.CategoryCoding,
			Duration: 120,
			Questions: []models.TestQuestion{
				{
					Text:          "What does the 'lambda' keyword do in Python?",
					Options:       []string{"Creates a loop", "Creates an anonymous function", "Imports a module", "Defines a class"},
					CorrectAnswer: "Creates an anonymous function",
				},
				{
					Text:          "What is the output of: print(type([]) == list)",
					Options:       []string{"True", "False", "list", "Error"},
					CorrectAnswer: "True",
				},
				{
					Text:          "Which method is used to add an element at the end of a list?",
					Options:       []string{"add()", "append()", "insert()", "push()"},
					CorrectAnswer: "append()",
				},
			},
			CreatedAt: now,
		},
	}
}

func sampleResources(now time.Time) []models.Resource {
	return []models.Resource{
		{
			ID:          uuid.NewString(),
			Title:       "Data Structures and Algorithms Complete Guide",
			Description: "Comprehensive guide covering all important DSA topics with practice problems",
			Category:    "Technical",
			Type:        models.ResourcePDF,
			URL:         "https://example.com/dsa-guide.pdf",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "System Design Interview Preparation",
			Description: "Learn how to approach system design interviews with real-world examples",
			Category:    "Technical",
			Type:        models.ResourceVideo,
			URL:         "https://www.youtube.com/watch?v=example",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Resume Building Tips for Tech Jobs",
			Description: "Expert tips on crafting a resume that stands out to recruiters",
			Category:    "Career",
			Type:        models.ResourceLink,
			URL:         "https://example.com/resume-tips",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Behavioral Interview Questions",
			Description: "Common behavioral questions and how to answer them effectively",
			Category:    "Interview",
			Type:        models.ResourcePDF,
			URL:         "https://example.com/behavioral-questions.pdf",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Aptitude Test Practice Papers",
			Description: "100+ aptitude questions with solutions for placement preparation",
			Category:    "Aptitude",
			Type:        models.ResourcePDF,
			URL:         "https://example.com/aptitude-papers.pdf",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "LeetCode Top 100 Problems",
			Description: "Most frequently asked coding problems in technical interviews",
			Category:    "Technical",
			Type:        models.ResourceLink,
			URL:         "https://leetcode.com/problemset/top-100-liked/",
			CreatedAt:   now,
		},
	}
}

func sampleAnnouncements(now time.Time) []models.Announcement {
	return []models.Announcement{
		{
			ID:        uuid.NewString(),
			Title:     "Google On-Campus Drive Scheduled for Next Month",
			Content:   "Google will be conducting on-campus recruitment. Eligible students, please apply before the deadline.",
			Priority:  models.PriorityHigh,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "New Mock Test Series Added - Practice Now!",
			Content:   "We've added new aptitude and technical mock tests. Start practicing to improve your scores.",
			Priority:  models.PriorityNormal,
			CreatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Resume Submission Deadline Extended",
			Content:   "The deadline for resume submission has been extended by 3 days. Update your profiles.",
			Priority:  models.PriorityHigh,
			CreatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Career Counseling Session This Friday",
			Content:   "Join us for a career counseling session with industry experts. Register in the resources section.",
			Priority:  models.PriorityNormal,
			CreatedAt: now.AddDate(0, 0, -3),
		},
	}
}
