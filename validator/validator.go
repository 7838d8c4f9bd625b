package validator

import (
	"fmt"
	"ocai-hub/models"
	"ocai-hub/ocai"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var accessKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var assessmentTypes = map[string]bool{
	"OCAI":     true,
	"BALDRIGE": true,
}

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("assessmenttypes", validateAssessmentTypes)
	v.RegisterValidation("surveystatus", validateSurveyStatus)
	v.RegisterValidation("accesskey", validateAccessKey)
	v.RegisterValidation("dimension", validateDimension)

	// Score sets are checked at struct level so errors carry the JSON field name
	v.RegisterStructValidation(validateSubmitResponse, models.SubmitResponseRequest{})
	v.RegisterStructValidation(validateDimensionAnswer, ocai.DimensionAnswer{})

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, ValidationError{
			Field:   fe.Field(),
			Message: msgForTag(fe),
			Tag:     fe.Tag(),
			Value:   valueString(fe),
		})
	}

	return validationErrs
}

func valueString(fe validator.FieldError) string {
	if fe.Tag() == "quadrantsum" {
		return ""
	}
	return fmt.Sprintf("%v", fe.Value())
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color such as #3B82F6", field)
	case "assessmenttypes":
		return fmt.Sprintf("%s must be a comma-separated list of: OCAI, BALDRIGE", field)
	case "surveystatus":
		return fmt.Sprintf("%s must be one of: DRAFT, OPEN, CLOSED", field)
	case "accesskey":
		return fmt.Sprintf("%s may only contain letters, numbers, - and _", field)
	case "dimension":
		return fmt.Sprintf("%s is not a known OCAI dimension", field)
	case "quadrantsum":
		return fe.Param()
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

// validateAssessmentTypes accepts a comma-separated list such as "OCAI,BALDRIGE"
func validateAssessmentTypes(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if strings.TrimSpace(value) == "" {
		return false
	}
	for _, t := range strings.Split(value, ",") {
		if !assessmentTypes[strings.ToUpper(strings.TrimSpace(t))] {
			return false
		}
	}
	return true
}

func validateSurveyStatus(fl validator.FieldLevel) bool {
	switch models.SurveyStatus(fl.Field().String()) {
	case models.SurveyStatusDraft, models.SurveyStatusOpen, models.SurveyStatusClosed:
		return true
	}
	return false
}

func validateAccessKey(fl validator.FieldLevel) bool {
	return accessKeyPattern.MatchString(fl.Field().String())
}

func validateDimension(fl validator.FieldLevel) bool {
	_, ok := ocai.DimensionByID(fl.Field().String())
	return ok
}

// validateSubmitResponse checks supplied score sets. A zero set means the caller sent
// dimension answers instead and is left to the service.
func validateSubmitResponse(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.SubmitResponseRequest)
	if len(req.Answers) > 0 {
		return
	}
	reportScoreSet(sl, req.NowScores, "nowScores", "NowScores", true)
	reportScoreSet(sl, req.PreferredScores, "preferredScores", "PreferredScores", true)
}

func validateDimensionAnswer(sl validator.StructLevel) {
	answer := sl.Current().Interface().(ocai.DimensionAnswer)
	reportScoreSet(sl, answer.Now.ScoreSet(), "now", "Now", false)
	reportScoreSet(sl, answer.Preferred.ScoreSet(), "preferred", "Preferred", false)
}

func reportScoreSet(sl validator.StructLevel, s ocai.ScoreSet, field, structField string, allowEmpty bool) {
	if allowEmpty && s == (ocai.ScoreSet{}) {
		return
	}
	if problems := ocai.Validate(field, s); len(problems) > 0 {
		sl.ReportError(s, field, structField, "quadrantsum", strings.Join(problems, "; "))
	}
}
