package database

import (
	"database/sql"
	"fmt"
	"ocai-hub/models"
)

// ==================== RESPONSE OPERATIONS ====================

const responseColumns = `rs.id, rs.survey_id, COALESCE(rs.user_id, ''), rs.demographics, rs.now_scores, rs.preferred_scores,
	COALESCE(rs.ip_hash, ''), rs.consent_given, rs.consent_timestamp, rs.consent_version, rs.submitted_at`

func scanResponse(s scanner) (*models.Response, error) {
	var resp models.Response
	var demographics, nowScores, preferredScores string
	var consent int
	var consentAt sql.NullTime

	if err := s.Scan(
		&resp.ID, &resp.SurveyID, &resp.UserID, &demographics, &nowScores, &preferredScores,
		&resp.IPHash, &consent, &consentAt, &resp.ConsentVersion, &resp.SubmittedAt,
	); err != nil {
		return nil, err
	}

	resp.Demographics = map[string]string{}
	if err := unmarshalJSON(demographics, &resp.Demographics); err != nil {
		return nil, fmt.Errorf("response %s demographics: %w", resp.ID, err)
	}
	if err := unmarshalJSON(nowScores, &resp.NowScores); err != nil {
		return nil, fmt.Errorf("response %s now scores: %w", resp.ID, err)
	}
	if err := unmarshalJSON(preferredScores, &resp.PreferredScores); err != nil {
		return nil, fmt.Errorf("response %s preferred scores: %w", resp.ID, err)
	}
	resp.ConsentGiven = consent == 1
	resp.ConsentTimestamp = nullTime(consentAt)
	return &resp, nil
}

func (r *Repository) CreateResponse(resp *models.Response) error {
	if resp.Demographics == nil {
		resp.Demographics = map[string]string{}
	}
	demographics, err := marshalJSON(resp.Demographics)
	if err != nil {
		return err
	}
	nowScores, err := marshalJSON(resp.NowScores)
	if err != nil {
		return err
	}
	preferredScores, err := marshalJSON(resp.PreferredScores)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO responses (id, survey_id, user_id, demographics, now_scores, preferred_scores,
			ip_hash, consent_given, consent_timestamp, consent_version, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		resp.ID, resp.SurveyID, resp.UserID, demographics, nowScores, preferredScores,
		resp.IPHash, boolInt(resp.ConsentGiven), timeArg(resp.ConsentTimestamp), resp.ConsentVersion,
		resp.SubmittedAt.UTC(),
	)
	return err
}

// ListResponsesBySurvey returns a survey's responses in submission order. Ties keep
// insertion order so exports number rows the same way every time.
func (r *Repository) ListResponsesBySurvey(surveyID string) ([]models.Response, error) {
	return r.listResponses(`
		SELECT `+responseColumns+`
		FROM responses rs
		WHERE rs.survey_id = ?
		ORDER BY rs.submitted_at ASC, rs.rowid ASC
	`, surveyID)
}

// ListResponsesByOrganization returns every response across an organization's surveys
func (r *Repository) ListResponsesByOrganization(organizationID string) ([]models.Response, error) {
	return r.listResponses(`
		SELECT `+responseColumns+`
		FROM responses rs
		JOIN surveys s ON s.id = rs.survey_id
		WHERE s.organization_id = ?
		ORDER BY rs.submitted_at ASC, rs.rowid ASC
	`, organizationID)
}

func (r *Repository) listResponses(query string, args ...any) ([]models.Response, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]models.Response, 0)
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return responses, rows.Err()
}

func (r *Repository) CountResponses(surveyID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM responses WHERE survey_id = ?", surveyID).Scan(&count)
	return count, err
}

// GetResponse returns nil when the response does not exist
func (r *Repository) GetResponse(id string) (*models.Response, error) {
	resp, err := scanResponse(r.db.QueryRow(`
		SELECT `+responseColumns+`
		FROM responses rs
		WHERE rs.id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *Repository) DeleteResponse(id string) error {
	_, err := r.db.Exec("DELETE FROM responses WHERE id = ?", id)
	return err
}
