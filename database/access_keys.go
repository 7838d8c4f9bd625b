package database

import (
	"database/sql"
	"ocai-hub/models"
	"time"
)

// ==================== ACCESS KEY OPERATIONS ====================

const accessKeyColumns = `id, key, organization_id, assessment_types, max_uses, usage_count, expires_at,
	COALESCE(description, ''), COALESCE(created_by, ''), is_active, created_at, updated_at`

func scanAccessKey(s scanner) (*models.AccessKey, error) {
	var key models.AccessKey
	var maxUses sql.NullInt64
	var expiresAt sql.NullTime
	var active int

	if err := s.Scan(
		&key.ID, &key.Key, &key.OrganizationID, &key.AssessmentTypes, &maxUses, &key.UsageCount, &expiresAt,
		&key.Description, &key.CreatedBy, &active, &key.CreatedAt, &key.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if maxUses.Valid {
		v := int(maxUses.Int64)
		key.MaxUses = &v
	}
	key.ExpiresAt = nullTime(expiresAt)
	key.IsActive = active == 1
	return &key, nil
}

// ListAccessKeys returns keys newest first. An empty organizationID lists every key.
func (r *Repository) ListAccessKeys(organizationID string) ([]models.AccessKey, error) {
	rows, err := r.db.Query(`
		SELECT `+accessKeyColumns+`
		FROM access_keys
		WHERE ? = '' OR organization_id = ?
		ORDER BY created_at DESC, id ASC
	`, organizationID, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]models.AccessKey, 0)
	for rows.Next() {
		key, err := scanAccessKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, *key)
	}

	return keys, rows.Err()
}

func (r *Repository) GetAccessKey(id string) (*models.AccessKey, error) {
	return r.getAccessKey("id", id)
}

func (r *Repository) GetAccessKeyByKey(key string) (*models.AccessKey, error) {
	return r.getAccessKey("key", key)
}

func (r *Repository) getAccessKey(column, value string) (*models.AccessKey, error) {
	key, err := scanAccessKey(r.db.QueryRow(`
		SELECT `+accessKeyColumns+`
		FROM access_keys
		WHERE `+column+` = ?
	`, value))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (r *Repository) CreateAccessKey(key *models.AccessKey) error {
	_, err := r.db.Exec(`
		INSERT INTO access_keys (id, key, organization_id, assessment_types, max_uses, usage_count,
			expires_at, description, created_by, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		key.ID, key.Key, key.OrganizationID, key.AssessmentTypes, key.MaxUses, key.UsageCount,
		timeArg(key.ExpiresAt), key.Description, key.CreatedBy, boolInt(key.IsActive), key.CreatedAt, key.UpdatedAt,
	)
	return err
}

func (r *Repository) UpdateAccessKey(key *models.AccessKey) error {
	key.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE access_keys SET
			assessment_types = ?,
			max_uses = ?,
			expires_at = ?,
			description = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`,
		key.AssessmentTypes, key.MaxUses, timeArg(key.ExpiresAt), key.Description,
		boolInt(key.IsActive), key.UpdatedAt, key.ID,
	)
	return err
}

func (r *Repository) DeleteAccessKey(id string) error {
	_, err := r.db.Exec("DELETE FROM access_keys WHERE id = ?", id)
	return err
}
