package aggregation

import (
	"ocai-hub/bucketing"
	"ocai-hub/models"
	"sort"
	"strings"
)

// DefaultKAnonymityThreshold is the minimum slice size reported in aggregates
const DefaultKAnonymityThreshold = 7

var fieldLabels = map[string]string{
	bucketing.FieldDepartment:    "Department",
	bucketing.FieldTeam:          "Team",
	bucketing.FieldTenure:        "Tenure",
	bucketing.FieldLocation:      "Location",
	bucketing.FieldGender:        "Gender",
	bucketing.FieldLaborUnit:     "Labor Unit",
	bucketing.FieldRaceEthnicity: "Race/Ethnicity",
}

// Slice is a named subset of a survey's responses
type Slice struct {
	Key       string
	Label     string
	Responses []models.Response
}

// Slices partitions responses into the whole organization plus one slice per
// demographic bucket with at least threshold members. Not Specified buckets are never
// reported. Slices come back whole_org first, then by key.
func Slices(responses []models.Response, bucketer *bucketing.Bucketer, threshold int) []Slice {
	slices := []Slice{{
		Key:       models.WholeOrgSliceKey,
		Label:     "Whole Organization",
		Responses: responses,
	}}

	var demographic []Slice
	for _, field := range bucketing.Fields {
		groups := make(map[string][]models.Response)
		for _, r := range responses {
			bucket := bucketer.Bucket(field, bucketing.Lookup(r.Demographics, field))
			if bucket == bucketing.NotSpecified {
				continue
			}
			groups[bucket] = append(groups[bucket], r)
		}

		for bucket, members := range groups {
			if len(members) < threshold {
				continue
			}
			demographic = append(demographic, Slice{
				Key:       field + ":" + bucket,
				Label:     FieldLabel(field) + ": " + bucket,
				Responses: members,
			})
		}
	}

	sort.Slice(demographic, func(i, j int) bool {
		return demographic[i].Key < demographic[j].Key
	})
	return append(slices, demographic...)
}

// Build aggregates every reportable slice of a survey. The whole organization uses
// eligible as its population; demographic slices use the survey's response count.
func Build(surveyID string, responses []models.Response, eligible int, bucketer *bucketing.Bucketer, threshold int) []models.AggregateData {
	slices := Slices(responses, bucketer, threshold)
	out := make([]models.AggregateData, 0, len(slices))

	for _, s := range slices {
		population := len(responses)
		if s.Key == models.WholeOrgSliceKey && eligible > 0 {
			population = eligible
		}

		agg := Aggregate(s.Responses, population)
		agg.SurveyID = surveyID
		agg.SliceKey = s.Key
		agg.SliceLabel = s.Label
		out = append(out, agg)
	}
	return out
}

// LeadershipComparison picks the leadership labor-unit slice and the whole organization
func LeadershipComparison(aggregates []models.AggregateData) models.LeadershipComparison {
	var cmp models.LeadershipComparison
	for i := range aggregates {
		agg := &aggregates[i]
		switch {
		case agg.SliceKey == models.WholeOrgSliceKey:
			if cmp.Overall == nil {
				cmp.Overall = agg
			}
		case strings.HasPrefix(agg.SliceKey, bucketing.FieldLaborUnit+":") &&
			strings.Contains(strings.ToLower(agg.SliceLabel), "leadership"):
			if cmp.Leadership == nil {
				cmp.Leadership = agg
			}
		}
	}
	return cmp
}

// FieldLabel returns the display label of a demographic field
func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
