package services

import (
	"context"
	"fmt"
	"ocai-hub/models"

	"golang.org/x/sync/errgroup"
)

// StatsService gathers admin dashboard counts
type StatsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Get runs every count concurrently and fails if any one of them fails
func (s *StatsService) Get(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	g, ctx := errgroup.WithContext(ctx)

	counts := []struct {
		name  string
		dest  *int
		count func() (int, error)
	}{
		{"organizations", &stats.TotalOrganizations, func() (int, error) { return s.repo.CountOrganizations(false) }},
		{"active organizations", &stats.ActiveOrganizations, func() (int, error) { return s.repo.CountOrganizations(true) }},
		{"access keys", &stats.TotalAccessKeys, func() (int, error) { return s.repo.CountAccessKeys(false) }},
		{"active access keys", &stats.ActiveAccessKeys, func() (int, error) { return s.repo.CountAccessKeys(true) }},
		{"surveys", &stats.TotalSurveys, func() (int, error) { return s.repo.CountSurveys("") }},
		{"open surveys", &stats.OpenSurveys, func() (int, error) { return s.repo.CountSurveys(models.SurveyStatusOpen) }},
		{"responses", &stats.TotalResponses, s.repo.CountAllResponses},
	}

	for _, c := range counts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := c.count()
			if err != nil {
				return fmt.Errorf("failed to count %s: %w", c.name, err)
			}
			*c.dest = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
