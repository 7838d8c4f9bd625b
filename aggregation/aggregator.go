// Package aggregation turns slices of OCAI responses into AggregateData.
package aggregation

import (
	"math"
	"ocai-hub/models"
	"ocai-hub/ocai"
)

// Confidence labels are display heuristics only, not statistical measures
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Aggregate computes means, deltas and congruence over one slice of responses.
// eligible is the population the slice was drawn from; participation is 0 when it is
// not positive. Scores are not checked for summing to 100.
func Aggregate(responses []models.Response, eligible int) models.AggregateData {
	n := len(responses)
	agg := models.AggregateData{
		N:                 n,
		ParticipationRate: ParticipationRate(n, eligible),
		Confidence:        Confidence(n),
	}
	if n == 0 {
		return agg
	}

	var nowSum, prefSum, congruenceSum ocai.ScoreSet
	for _, r := range responses {
		for _, q := range ocai.Quadrants {
			now, pref := r.NowScores.Get(q), r.PreferredScores.Get(q)
			nowSum.Set(q, nowSum.Get(q)+now)
			prefSum.Set(q, prefSum.Get(q)+pref)
			congruenceSum.Set(q, congruenceSum.Get(q)+congruence(now, pref))
		}
	}

	count := float64(n)
	for _, q := range ocai.Quadrants {
		agg.Current.Set(q, nowSum.Get(q)/count)
		agg.Preferred.Set(q, prefSum.Get(q)/count)
		agg.Congruence.Set(q, congruenceSum.Get(q)/count)
	}
	agg.Delta = agg.Preferred.Sub(agg.Current)

	return agg
}

// ParticipationRate is responded/eligible, or 0 without an eligible population
func ParticipationRate(responded, eligible int) float64 {
	if eligible <= 0 {
		return 0
	}
	return float64(responded) / float64(eligible)
}

// Confidence maps a sample size to a display label
func Confidence(n int) string {
	switch {
	case n >= 20:
		return ConfidenceHigh
	case n >= 10:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// congruence is 1 for identical now/preferred shares, falling linearly to 0 at a
// 100 point gap
func congruence(now, preferred float64) float64 {
	return math.Max(0, 1-math.Abs(now-preferred)/100)
}
