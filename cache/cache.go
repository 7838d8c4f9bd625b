// Package cache holds short-lived derived data such as survey aggregates.
package cache

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is how long derived aggregates stay cached
const DefaultTTL = 5 * time.Minute

// ErrMiss is returned by Get when the key is absent or expired
var ErrMiss = errors.New("cache miss")

// Cacher stores JSON-encodable values by key
type Cacher interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

func AggregatesKey(surveyID string) string {
	return "aggregates:" + surveyID
}

func OrganizationResultsKey(organizationID string) string {
	return "organization:" + organizationID + ":results"
}
