package database

import (
	"database/sql"
	"ocai-hub/models"
	"time"
)

// ==================== SURVEY OPERATIONS ====================

const surveyColumns = `s.id, s.organization_id, s.title, s.assessment_type, s.status, s.open_at, s.close_at,
	s.allow_anonymous, s.eligible_count,
	(SELECT COUNT(*) FROM responses rs WHERE rs.survey_id = s.id),
	s.created_at, s.updated_at`

func scanSurvey(sc scanner) (*models.Survey, error) {
	var survey models.Survey
	var status string
	var openAt, closeAt sql.NullTime
	var anonymous int

	if err := sc.Scan(
		&survey.ID, &survey.OrganizationID, &survey.Title, &survey.AssessmentType, &status, &openAt, &closeAt,
		&anonymous, &survey.EligibleCount, &survey.ResponseCount, &survey.CreatedAt, &survey.UpdatedAt,
	); err != nil {
		return nil, err
	}

	survey.Status = models.SurveyStatus(status)
	survey.OpenAt = nullTime(openAt)
	survey.CloseAt = nullTime(closeAt)
	survey.AllowAnonymous = anonymous == 1
	return &survey, nil
}

// ListSurveys returns surveys newest first. An empty organizationID lists every survey.
func (r *Repository) ListSurveys(organizationID string) ([]models.Survey, error) {
	rows, err := r.db.Query(`
		SELECT `+surveyColumns+`
		FROM surveys s
		WHERE ? = '' OR s.organization_id = ?
		ORDER BY s.created_at DESC, s.id ASC
	`, organizationID, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	surveys := make([]models.Survey, 0)
	for rows.Next() {
		survey, err := scanSurvey(rows)
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, *survey)
	}

	return surveys, rows.Err()
}

// GetSurvey returns nil when the survey does not exist
func (r *Repository) GetSurvey(id string) (*models.Survey, error) {
	survey, err := scanSurvey(r.db.QueryRow(`
		SELECT `+surveyColumns+`
		FROM surveys s
		WHERE s.id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return survey, nil
}

func (r *Repository) CreateSurvey(survey *models.Survey) error {
	_, err := r.db.Exec(`
		INSERT INTO surveys (id, organization_id, title, assessment_type, status, open_at, close_at,
			allow_anonymous, eligible_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		survey.ID, survey.OrganizationID, survey.Title, survey.AssessmentType, string(survey.Status),
		timeArg(survey.OpenAt), timeArg(survey.CloseAt), boolInt(survey.AllowAnonymous), survey.EligibleCount,
		survey.CreatedAt, survey.UpdatedAt,
	)
	return err
}

func (r *Repository) UpdateSurvey(survey *models.Survey) error {
	survey.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE surveys SET
			title = ?,
			status = ?,
			open_at = ?,
			close_at = ?,
			allow_anonymous = ?,
			eligible_count = ?,
			updated_at = ?
		WHERE id = ?
	`,
		survey.Title, string(survey.Status), timeArg(survey.OpenAt), timeArg(survey.CloseAt),
		boolInt(survey.AllowAnonymous), survey.EligibleCount, survey.UpdatedAt, survey.ID,
	)
	return err
}

// DeleteSurvey removes the survey and, by cascade, its responses
func (r *Repository) DeleteSurvey(id string) error {
	_, err := r.db.Exec("DELETE FROM surveys WHERE id = ?", id)
	return err
}

// OpenDueSurveys moves DRAFT surveys whose open time has passed (and whose close time
// has not) to OPEN. Returns the ids that changed.
func (r *Repository) OpenDueSurveys(now time.Time) ([]string, error) {
	return r.transition(`
		UPDATE surveys SET status = ?, updated_at = ?
		WHERE status = ?
			AND open_at IS NOT NULL AND open_at <= ?
			AND (close_at IS NULL OR close_at > ?)
		RETURNING id
	`, string(models.SurveyStatusOpen), now.UTC(), string(models.SurveyStatusDraft), now.UTC(), now.UTC())
}

// CloseDueSurveys moves OPEN surveys whose close time has passed to CLOSED
func (r *Repository) CloseDueSurveys(now time.Time) ([]string, error) {
	return r.transition(`
		UPDATE surveys SET status = ?, updated_at = ?
		WHERE status = ?
			AND close_at IS NOT NULL AND close_at <= ?
		RETURNING id
	`, string(models.SurveyStatusClosed), now.UTC(), string(models.SurveyStatusOpen), now.UTC())
}

func (r *Repository) transition(query string, args ...any) ([]string, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
