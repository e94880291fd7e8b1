package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	"github.com/sehat-jiwa/assessment-service/internal/models"
	"github.com/sehat-jiwa/assessment-service/internal/repositories"
)

// ExportService renders a user's assessment results as downloadable files.
type ExportService interface {
	ExportResultsExcel(ctx context.Context, userID string) ([]byte, error)
	ExportResultsCSV(ctx context.Context, userID string) ([]byte, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

var exportHeaders = []string{
	"Instrument", "Completed At", "Scores", "Categories", "Interpretation",
}

func (s *exportService) ExportResultsExcel(ctx context.Context, userID string) ([]byte, error) {
	results, err := s.repo.Result().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Results"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, result := range results {
		row, err := s.resultToRow(result)
		if err != nil {
			return nil, err
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported results to Excel", "user_id", userID, "rows", len(results))
	return buf.Bytes(), nil
}

func (s *exportService) ExportResultsCSV(ctx context.Context, userID string) ([]byte, error) {
	results, err := s.repo.Result().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		row, err := s.resultToRow(result)
		if err != nil {
			return nil, err
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.logger.Info("Exported results to CSV", "user_id", userID, "rows", len(results))
	return buf.Bytes(), nil
}

func (s *exportService) resultToRow(result *models.AssessmentResult) ([]string, error) {
	title := result.InstrumentID
	if instrument, err := catalog.Get(result.InstrumentID); err == nil {
		title = instrument.Title
	}

	scores, err := result.DecodedScores()
	if err != nil {
		return nil, err
	}
	categories, err := result.DecodedCategories()
	if err != nil {
		return nil, err
	}

	return []string{
		title,
		result.CreatedAt.Format(time.RFC3339),
		formatFloatMap(scores),
		formatStringMap(categories),
		result.Interpretation,
	}, nil
}

func formatFloatMap(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.2f", key, m[key]))
	}
	return strings.Join(parts, "; ")
}

func formatStringMap(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, m[key]))
	}
	return strings.Join(parts, "; ")
}
