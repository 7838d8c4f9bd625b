// Package bucketing generalizes free-text demographic answers into coarse labels.
//
// Bucketing is descriptive only. It does not count group sizes and never suppresses or
// merges small buckets, so a bucket can still identify a single respondent.
package bucketing

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NotSpecified is returned for empty and opt-out answers in every field
const NotSpecified = "Not Specified"

// Demographic field names as stored on responses
const (
	FieldDepartment    = "department"
	FieldTeam          = "team"
	FieldTenure        = "tenure"
	FieldLocation      = "location"
	FieldGender        = "gender"
	FieldLaborUnit     = "laborUnit"
	FieldRaceEthnicity = "raceEthnicity"
)

// Fields lists the demographic fields in export and slicing order
var Fields = []string{
	FieldDepartment, FieldTeam, FieldTenure, FieldLocation,
	FieldGender, FieldLaborUnit, FieldRaceEthnicity,
}

var optOutValues = map[string]bool{
	"":                  true,
	"prefer-not-to-say": true,
	"prefer not to say": true,
	"prefer_not_to_say": true,
	"decline to answer": true,
	"n/a":               true,
}

//go:embed rules.yaml
var defaultRules []byte

// Bucket is one target label and the keywords that select it
type Bucket struct {
	Label    string   `yaml:"label"`
	Contains []string `yaml:"contains"`
	Equals   []string `yaml:"equals"`
}

// Rules holds ordered buckets per normalized field name
type Rules struct {
	Fields map[string][]Bucket `yaml:"fields"`
}

// Bucketer maps demographic answers to bucket labels. Safe for concurrent use once built.
type Bucketer struct {
	fields map[string][]Bucket
}

// New returns a Bucketer using the embedded default rules
func New() *Bucketer {
	b, err := Parse(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("bucketing: embedded rules are invalid: %v", err))
	}
	return b
}

// Load reads a YAML rules file. An empty path yields the default rules.
func Load(path string) (*Bucketer, error) {
	if path == "" {
		return New(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bucket rules: %w", err)
	}
	return Parse(data)
}

// Parse builds a Bucketer from YAML rules
func Parse(data []byte) (*Bucketer, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse bucket rules: %w", err)
	}

	fields := make(map[string][]Bucket, len(rules.Fields))
	for field, buckets := range rules.Fields {
		normalized := make([]Bucket, 0, len(buckets))
		for i, bucket := range buckets {
			if strings.TrimSpace(bucket.Label) == "" {
				return nil, fmt.Errorf("parse bucket rules: field %q bucket %d has no label", field, i)
			}
			normalized = append(normalized, Bucket{
				Label:    bucket.Label,
				Contains: lowerAll(bucket.Contains),
				Equals:   lowerAll(bucket.Equals),
			})
		}
		fields[normalizeField(field)] = normalized
	}

	return &Bucketer{fields: fields}, nil
}

// Bucket returns the label for value in field. Unmatched values come back unchanged.
func (b *Bucketer) Bucket(field, value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if optOutValues[trimmed] {
		return NotSpecified
	}

	for _, bucket := range b.fields[normalizeField(field)] {
		if bucket.matches(trimmed) {
			return bucket.Label
		}
	}
	return value
}

// BucketAll buckets every known field of a demographics map. Missing fields are
// reported as NotSpecified; fields without rules pass through.
func (b *Bucketer) BucketAll(demographics map[string]string) map[string]string {
	out := make(map[string]string, len(Fields))
	for _, field := range Fields {
		out[field] = b.Bucket(field, Lookup(demographics, field))
	}
	return out
}

// Lookup finds a demographic answer tolerating key spelling ("labor_unit", "LaborUnit")
func Lookup(demographics map[string]string, field string) string {
	if v, ok := demographics[field]; ok {
		return v
	}
	want := normalizeField(field)
	for key, v := range demographics {
		if normalizeField(key) == want {
			return v
		}
	}
	return ""
}

func (bucket Bucket) matches(value string) bool {
	for _, eq := range bucket.Equals {
		if value == eq {
			return true
		}
	}
	for _, kw := range bucket.Contains {
		if kw != "" && strings.Contains(value, kw) {
			return true
		}
	}
	return false
}

func normalizeField(field string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(field))
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}
