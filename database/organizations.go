package database

import (
	"database/sql"
	"ocai-hub/models"
	"time"
)

// ==================== ORGANIZATION OPERATIONS ====================

const organizationColumns = `o.id, o.name, COALESCE(o.industry, ''), COALESCE(o.size, ''), COALESCE(o.country, ''),
	o.subscribed_assessments, o.primary_color, o.consent_version, o.is_active, o.created_at, o.updated_at`

func scanOrganization(s scanner, extra ...any) (*models.Organization, error) {
	var org models.Organization
	var active int
	dest := []any{
		&org.ID, &org.Name, &org.Industry, &org.Size, &org.Country,
		&org.SubscribedAssessments, &org.PrimaryColor, &org.ConsentVersion, &active,
		&org.CreatedAt, &org.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	org.IsActive = active == 1
	return &org, nil
}

// ListOrganizations returns every organization with survey, access key and response
// counts, newest first
func (r *Repository) ListOrganizations() ([]models.OrganizationSummary, error) {
	rows, err := r.db.Query(`
		SELECT ` + organizationColumns + `,
			(SELECT COUNT(*) FROM surveys s WHERE s.organization_id = o.id),
			(SELECT COUNT(*) FROM access_keys k WHERE k.organization_id = o.id),
			(SELECT COUNT(*) FROM responses rs JOIN surveys s ON s.id = rs.survey_id WHERE s.organization_id = o.id)
		FROM organizations o
		ORDER BY o.created_at DESC, o.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := make([]models.OrganizationSummary, 0)
	for rows.Next() {
		var summary models.OrganizationSummary
		org, err := scanOrganization(rows, &summary.SurveyCount, &summary.AccessKeyCount, &summary.ResponseCount)
		if err != nil {
			return nil, err
		}
		summary.Organization = *org
		orgs = append(orgs, summary)
	}

	return orgs, rows.Err()
}

// GetOrganization returns nil when the organization does not exist
func (r *Repository) GetOrganization(id string) (*models.Organization, error) {
	org, err := scanOrganization(r.db.QueryRow(`
		SELECT `+organizationColumns+`
		FROM organizations o
		WHERE o.id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (r *Repository) CreateOrganization(org *models.Organization) error {
	_, err := r.db.Exec(`
		INSERT INTO organizations (id, name, industry, size, country, subscribed_assessments,
			primary_color, consent_version, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		org.ID, org.Name, org.Industry, org.Size, org.Country, org.SubscribedAssessments,
		org.PrimaryColor, org.ConsentVersion, boolInt(org.IsActive), org.CreatedAt, org.UpdatedAt,
	)
	return err
}

func (r *Repository) UpdateOrganization(org *models.Organization) error {
	org.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE organizations SET
			name = ?,
			industry = ?,
			size = ?,
			country = ?,
			subscribed_assessments = ?,
			primary_color = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`,
		org.Name, org.Industry, org.Size, org.Country, org.SubscribedAssessments,
		org.PrimaryColor, boolInt(org.IsActive), org.UpdatedAt, org.ID,
	)
	return err
}

// DeleteOrganization removes the organization; surveys, responses and access keys
// cascade
func (r *Repository) DeleteOrganization(id string) error {
	_, err := r.db.Exec("DELETE FROM organizations WHERE id = ?", id)
	return err
}
