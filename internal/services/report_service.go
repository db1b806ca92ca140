package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MehulChauhan-07/placement-pro/internal/repositories"
)

type reportService struct {
	repo         repositories.Repository
	applications ApplicationService
	logger       *slog.Logger
}

func NewReportService(repo repositories.Repository, applications ApplicationService, logger *slog.Logger) ReportService {
	return &reportService{
		repo:         repo,
		applications: applications,
		logger:       logger,
	}
}

var exportHeader = []string{
	"Name", "Email", "Phone", "College", "Degree", "Graduation Year",
	"CGPA", "Skills", "Status", "Applied At",
}

func (s *reportService) ExportDriveApplications(ctx context.Context, driveID string) ([]byte, string, error) {
	drive, err := s.repo.Drive().GetByID(ctx, driveID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, "", ErrDriveNotFound
		}
		return nil, "", fmt.Errorf("failed to load drive: %w", err)
	}

	applications, err := s.applications.ListForDrive(ctx, driveID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Applications"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, app := range applications {
		row := exportRow(app)
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("%s-applications-%s.xlsx",
		slugify(drive.CompanyName), time.Now().UTC().Format("2006-01-02"))

	s.logger.Info("applications exported", "drive_id", driveID, "rows", len(applications))
	return buf.Bytes(), filename, nil
}

func exportRow(app *ApplicationWithApplicant) []interface{} {
	row := make([]interface{}, len(exportHeader))
	for i := range row {
		row[i] = ""
	}

	if app.User != nil {
		row[0] = app.User.Name
		row[1] = app.User.Email
	}
	if app.Profile != nil {
		row[2] = stringOrEmpty(app.Profile.Phone)
		row[3] = stringOrEmpty(app.Profile.College)
		row[4] = stringOrEmpty(app.Profile.Degree)
		if app.Profile.GraduationYear != nil {
			row[5] = *app.Profile.GraduationYear
		}
		if app.Profile.CGPA != nil {
			row[6] = *app.Profile.CGPA
		}
		row[7] = strings.Join(app.Profile.Skills, ", ")
	}
	row[8] = string(app.Status)
	row[9] = app.AppliedAt.UTC().Format(time.RFC3339)

	return row
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	return strings.Trim(strings.Join(strings.FieldsFunc(s, func(r rune) bool { return r == '-' }), "-"), "-")
}
