// Package lifecycle opens and closes surveys on their schedule.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"ocai-hub/cache"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the lifecycle pass every five minutes
const DefaultSchedule = "*/5 * * * *"

// Repository is the store the worker transitions surveys in
type Repository interface {
	OpenDueSurveys(now time.Time) ([]string, error)
	CloseDueSurveys(now time.Time) ([]string, error)
}

// Result lists the surveys moved by one pass
type Result struct {
	Opened []string
	Closed []string
}

// Worker moves DRAFT surveys to OPEN once openAt has passed and OPEN surveys to
// CLOSED once closeAt has passed
type Worker struct {
	repo     Repository
	cache    cache.Cacher
	logger   *slog.Logger
	schedule cron.Schedule
	spec     string
	now      func() time.Time

	running  bool
	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
}

// NewWorker parses a standard 5-field cron expression. An empty spec uses
// DefaultSchedule.
func NewWorker(repo Repository, c cache.Cacher, logger *slog.Logger, spec string) (*Worker, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		spec = DefaultSchedule
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid lifecycle schedule %q: %w", spec, err)
	}

	return &Worker{
		repo:     repo,
		cache:    c,
		logger:   logger,
		schedule: schedule,
		spec:     spec,
		now:      time.Now,
	}, nil
}

// Next returns the time of the first run after t
func (w *Worker) Next(t time.Time) time.Time {
	return w.schedule.Next(t)
}

// Start begins the scheduled loop
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	w.logger.Info("lifecycle worker started", "schedule", w.spec)
	go w.run(w.stopChan, w.done)
}

// Stop ends the loop and waits for an in-flight pass to finish
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	close(w.stopChan)
	done := w.done
	w.running = false
	w.mu.Unlock()

	<-done
	w.logger.Info("lifecycle worker stopped")
}

func (w *Worker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	// catch up on anything that came due while the server was down
	w.runLogged()

	for {
		now := w.now()
		wait := w.schedule.Next(now).Sub(now)
		timer := time.NewTimer(wait)

		select {
		case <-timer.C:
			w.runLogged()
		case <-stop:
			timer.Stop()
			return
		}
	}
}

func (w *Worker) runLogged() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := w.RunOnce(ctx); err != nil {
		w.logger.Error("lifecycle pass failed", "error", err)
	}
}

// RunOnce performs a single lifecycle pass. Surveys that change state lose their
// cached aggregates.
func (w *Worker) RunOnce(ctx context.Context) (Result, error) {
	now := w.now().UTC()
	var result Result

	opened, err := w.repo.OpenDueSurveys(now)
	if err != nil {
		return result, fmt.Errorf("failed to open due surveys: %w", err)
	}
	result.Opened = opened

	closed, err := w.repo.CloseDueSurveys(now)
	if err != nil {
		return result, fmt.Errorf("failed to close due surveys: %w", err)
	}
	result.Closed = closed

	changed := append(append([]string{}, opened...), closed...)
	if len(changed) == 0 {
		return result, nil
	}

	keys := make([]string, 0, len(changed))
	for _, id := range changed {
		keys = append(keys, cache.AggregatesKey(id))
	}
	if err := w.cache.Delete(ctx, keys...); err != nil {
		w.logger.Warn("failed to invalidate aggregates after lifecycle pass", "error", err)
	}

	w.logger.Info("lifecycle pass complete", "opened", len(opened), "closed", len(closed))
	return result, nil
}
