package services

import "errors"

// Common service-level errors
var (
	// Organization errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Access key errors
	ErrAccessKeyNotFound = errors.New("access key not found")
	ErrAccessKeyExists   = errors.New("access key already exists")

	// Survey errors
	ErrSurveyNotFound  = errors.New("survey not found")
	ErrSurveyNotOpen   = errors.New("survey is not currently open")
	ErrInvalidSchedule = errors.New("closeAt must be after openAt")

	// Response errors
	ErrResponseNotFound = errors.New("response not found")
	ErrMissingScores    = errors.New("nowScores and preferredScores or dimension answers are required")

	// Report and export errors
	ErrSliceNotFound     = errors.New("slice not found or below the reporting threshold")
	ErrUnsupportedExport = errors.New("unsupported export type")
)
