package ocai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSet_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ScoreSet
	}{
		{
			name:     "Canonical keys",
			input:    `{"Clan":40,"Adhocracy":20,"Market":30,"Hierarchy":10}`,
			expected: ScoreSet{Clan: 40, Adhocracy: 20, Market: 30, Hierarchy: 10},
		},
		{
			name:     "Lower case keys",
			input:    `{"clan":25,"adhocracy":25,"market":25,"hierarchy":25}`,
			expected: ScoreSet{Clan: 25, Adhocracy: 25, Market: 25, Hierarchy: 25},
		},
		{
			name:     "Missing quadrants default to zero",
			input:    `{"Clan":100}`,
			expected: ScoreSet{Clan: 100},
		},
		{
			name:     "Exact case wins over other spellings",
			input:    `{"clan":10,"Clan":40,"CLAN":5,"hierarchy":60}`,
			expected: ScoreSet{Clan: 40, Hierarchy: 60},
		},
		{
			name:     "Unknown keys ignored",
			input:    `{"Clan":50,"Other":50}`,
			expected: ScoreSet{Clan: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ScoreSet
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestScoreSet_UnmarshalJSONIsStable(t *testing.T) {
	input := []byte(`{"Clan":40,"clan":10,"Adhocracy":20,"market":20,"MARKET":30,"Hierarchy":20}`)
	for i := 0; i < 100; i++ {
		var s ScoreSet
		require.NoError(t, json.Unmarshal(input, &s))
		assert.Equal(t, ScoreSet{Clan: 40, Adhocracy: 20, Market: 20, Hierarchy: 20}, s)
	}
}

func TestScoreSet_MarshalUsesCanonicalKeys(t *testing.T) {
	data, err := json.Marshal(ScoreSet{Clan: 1, Adhocracy: 2, Market: 3, Hierarchy: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Clan":1,"Adhocracy":2,"Market":3,"Hierarchy":4}`, string(data))
}

func TestScoreSet_Arithmetic(t *testing.T) {
	now := ScoreSet{Clan: 30, Adhocracy: 20, Market: 25, Hierarchy: 25}
	preferred := ScoreSet{Clan: 40, Adhocracy: 25, Market: 15, Hierarchy: 20}

	assert.Equal(t, 100.0, now.Total())
	assert.Equal(t, ScoreSet{Clan: 10, Adhocracy: 5, Market: -10, Hierarchy: -5}, preferred.Sub(now))

	var s ScoreSet
	s.Set(Market, 12)
	s.Set(Quadrant("Unknown"), 99)
	assert.Equal(t, 12.0, s.Get(Market))
	assert.Equal(t, 0.0, s.Get(Quadrant("Unknown")))
}

func TestScoreDimensions(t *testing.T) {
	answers := []DimensionAnswer{
		{
			DimensionID: "leadership",
			Now:         Allocation{A: 40, B: 20, C: 20, D: 20},
			Preferred:   Allocation{A: 50, B: 30, C: 10, D: 10},
		},
		{
			DimensionID: "organization_glue",
			Now:         Allocation{A: 20, B: 20, C: 40, D: 20},
			Preferred:   Allocation{A: 30, B: 30, C: 20, D: 20},
		},
	}

	now, preferred := ScoreDimensions(answers)

	assert.Equal(t, ScoreSet{Clan: 30, Adhocracy: 20, Market: 30, Hierarchy: 20}, now)
	assert.Equal(t, ScoreSet{Clan: 40, Adhocracy: 30, Market: 15, Hierarchy: 15}, preferred)
}

func TestScoreDimensions_Empty(t *testing.T) {
	now, preferred := ScoreDimensions(nil)
	assert.Equal(t, ScoreSet{}, now)
	assert.Equal(t, ScoreSet{}, preferred)
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate("Now", ScoreSet{Clan: 25, Adhocracy: 25, Market: 25, Hierarchy: 25}))
	assert.Empty(t, Validate("Now", ScoreSet{Clan: 33.333, Adhocracy: 33.333, Market: 33.334}))

	problems := Validate("Preferred", ScoreSet{Clan: 50, Adhocracy: 60, Market: -10})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "cannot be negative")

	problems = Validate("Now", ScoreSet{Clan: 10})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "must total 100")
}

func TestParseQuadrant(t *testing.T) {
	q, ok := ParseQuadrant(" hierarchy ")
	assert.True(t, ok)
	assert.Equal(t, Hierarchy, q)

	_, ok = ParseQuadrant("tribe")
	assert.False(t, ok)
}

func TestDimensions_HaveAllOptions(t *testing.T) {
	require.Len(t, Dimensions, 6)
	for _, d := range Dimensions {
		for _, letter := range []string{"A", "B", "C", "D"} {
			assert.NotEmpty(t, d.Options[letter], "%s missing option %s", d.ID, letter)
		}
	}
}
