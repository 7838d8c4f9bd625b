package services

import (
	"context"
	"fmt"
	"io"
	"ocai-hub/export"
	"ocai-hub/models"
)

// Export types accepted by ExportService.Write
const (
	ExportResponses  = "responses"
	ExportAggregates = "aggregates"
)

// ExportService renders de-identified CSV exports of a survey
type ExportService struct {
	repo    ReportRepository
	reports *ReportService
	builder *export.Builder
}

// NewExportService creates a new export service
func NewExportService(repo ReportRepository, reports *ReportService, builder *export.Builder) *ExportService {
	return &ExportService{
		repo:    repo,
		reports: reports,
		builder: builder,
	}
}

// Write renders the export and returns its download filename. An empty exportType
// means responses.
func (s *ExportService) Write(ctx context.Context, w io.Writer, surveyID, exportType string) (string, error) {
	if exportType == "" {
		exportType = ExportResponses
	}

	switch exportType {
	case ExportResponses:
		survey, err := s.repo.GetSurvey(surveyID)
		if err != nil {
			return "", err
		}
		if survey == nil {
			return "", ErrSurveyNotFound
		}
		responses, err := s.repo.ListResponsesBySurvey(survey.ID)
		if err != nil {
			return "", err
		}
		if err := s.builder.WriteResponses(w, responses); err != nil {
			return "", err
		}

	case ExportAggregates:
		aggs, err := s.reports.Aggregates(ctx, surveyID)
		if err != nil {
			return "", err
		}
		if err := s.builder.WriteAggregates(w, aggs); err != nil {
			return "", err
		}

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExport, exportType)
	}

	return export.Filename(exportType, surveyID), nil
}

// WriteChart renders the data behind one chart for a slice, the whole organization
// when sliceKey is empty
func (s *ExportService) WriteChart(ctx context.Context, w io.Writer, surveyID, kind, sliceKey string) (string, error) {
	if sliceKey == "" {
		sliceKey = models.WholeOrgSliceKey
	}

	agg, err := s.reports.Slice(ctx, surveyID, sliceKey)
	if err != nil {
		return "", err
	}
	if err := s.builder.WriteChart(w, kind, *agg); err != nil {
		return "", err
	}
	return fmt.Sprintf("culture-chart-%s-%s.csv", kind, surveyID), nil
}
