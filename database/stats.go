package database

import "ocai-hub/models"

// ==================== STATS OPERATIONS ====================

func (r *Repository) CountOrganizations(activeOnly bool) (int, error) {
	if activeOnly {
		return r.count("SELECT COUNT(*) FROM organizations WHERE is_active = 1")
	}
	return r.count("SELECT COUNT(*) FROM organizations")
}

func (r *Repository) CountAccessKeys(activeOnly bool) (int, error) {
	if activeOnly {
		return r.count("SELECT COUNT(*) FROM access_keys WHERE is_active = 1")
	}
	return r.count("SELECT COUNT(*) FROM access_keys")
}

// CountSurveys counts surveys in status, or every survey when status is empty
func (r *Repository) CountSurveys(status models.SurveyStatus) (int, error) {
	return r.count("SELECT COUNT(*) FROM surveys WHERE ? = '' OR status = ?", status, status)
}

func (r *Repository) CountAllResponses() (int, error) {
	return r.count("SELECT COUNT(*) FROM responses")
}

func (r *Repository) count(query string, args ...any) (int, error) {
	var n int
	err := r.db.QueryRow(query, args...).Scan(&n)
	return n, err
}
