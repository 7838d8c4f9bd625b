// Package export writes de-identified CSV exports of survey data.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"ocai-hub/bucketing"
	"ocai-hub/models"
	"ocai-hub/ocai"
	"strconv"
)

// TimeFormat is the UTC millisecond timestamp used for submittedAt
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Chart kinds accepted by WriteChart
const (
	ChartRadar = "radar"
	ChartBar   = "bar"
	ChartDelta = "delta"
)

var ErrUnsupportedChart = errors.New("unsupported chart type")

var responseHeader = []string{
	"responseId", "department", "team", "tenure", "location", "gender", "laborUnit", "raceEthnicity",
	"nowClan", "nowAdhocracy", "nowMarket", "nowHierarchy",
	"preferredClan", "preferredAdhocracy", "preferredMarket", "preferredHierarchy",
	"deltaClan", "deltaAdhocracy", "deltaMarket", "deltaHierarchy",
	"submittedAt",
}

var aggregateHeader = []string{
	"sliceKey", "sliceLabel",
	"currentClan", "currentAdhocracy", "currentMarket", "currentHierarchy",
	"preferredClan", "preferredAdhocracy", "preferredMarket", "preferredHierarchy",
	"deltaClan", "deltaAdhocracy", "deltaMarket", "deltaHierarchy",
	"sampleSize", "participationRate",
	"congruenceClan", "congruenceAdhocracy", "congruenceMarket", "congruenceHierarchy",
}

// Builder renders exports. Demographics pass through the bucketer before they are
// written; nothing else about a response is transformed.
type Builder struct {
	Bucketer *bucketing.Bucketer
}

func NewBuilder(bucketer *bucketing.Bucketer) *Builder {
	if bucketer == nil {
		bucketer = bucketing.New()
	}
	return &Builder{Bucketer: bucketer}
}

// WriteResponses writes one row per response with pseudonymous ids RESP_0001,
// RESP_0002, ... in input order. Stored response ids never appear in the output.
// Scores are written unrounded.
func (b *Builder) WriteResponses(w io.Writer, responses []models.Response) error {
	cw := newWriter(w)
	if err := cw.Write(responseHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range responses {
		row := make([]string, 0, len(responseHeader))
		row = append(row, PseudonymousID(i+1))
		for _, field := range bucketing.Fields {
			row = append(row, b.Bucketer.Bucket(field, bucketing.Lookup(r.Demographics, field)))
		}
		row = appendRawScores(row, r.NowScores)
		row = appendRawScores(row, r.PreferredScores)
		row = appendRawScores(row, r.PreferredScores.Sub(r.NowScores))
		row = append(row, r.SubmittedAt.UTC().Format(TimeFormat))

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write response %d: %w", i+1, err)
		}
	}
	return flush(cw)
}

// WriteAggregates writes one row per slice, values passed through as computed
func (b *Builder) WriteAggregates(w io.Writer, aggregates []models.AggregateData) error {
	cw := newWriter(w)
	if err := cw.Write(aggregateHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, agg := range aggregates {
		row := make([]string, 0, len(aggregateHeader))
		row = append(row, agg.SliceKey, agg.SliceLabel)
		row = appendScores(row, agg.Current)
		row = appendScores(row, agg.Preferred)
		row = appendScores(row, agg.Delta)
		row = append(row, strconv.Itoa(agg.N), FormatNumber(agg.ParticipationRate))
		row = appendScores(row, agg.Congruence)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write slice %s: %w", agg.SliceKey, err)
		}
	}
	return flush(cw)
}

// WriteChart writes the data behind one report chart for a single slice
func (b *Builder) WriteChart(w io.Writer, kind string, agg models.AggregateData) error {
	var header []string
	switch kind {
	case ChartRadar:
		header = []string{"dimension", "current", "preferred"}
	case ChartBar:
		header = []string{"cultureType", "current", "preferred"}
	case ChartDelta:
		header = []string{"cultureType", "delta"}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedChart, kind)
	}

	cw := newWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, q := range ocai.Quadrants {
		row := []string{string(q)}
		if kind == ChartDelta {
			row = append(row, FormatNumber(agg.Delta.Get(q)))
		} else {
			row = append(row, FormatNumber(agg.Current.Get(q)), FormatNumber(agg.Preferred.Get(q)))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", q, err)
		}
	}
	return flush(cw)
}

// PseudonymousID returns the export id for the n-th response, counting from 1
func PseudonymousID(n int) string {
	return fmt.Sprintf("RESP_%04d", n)
}

// FormatNumber rounds to two decimals and prints the shortest form ("25", "33.33")
func FormatNumber(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// Filename is the download name of a survey export
func Filename(exportType, surveyID string) string {
	return fmt.Sprintf("culture-assessment-%s-%s.csv", exportType, surveyID)
}

// FormatRaw prints v in the shortest form that round-trips
func FormatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func appendRawScores(row []string, s ocai.ScoreSet) []string {
	for _, q := range ocai.Quadrants {
		row = append(row, FormatRaw(s.Get(q)))
	}
	return row
}

func appendScores(row []string, s ocai.ScoreSet) []string {
	for _, q := range ocai.Quadrants {
		row = append(row, FormatNumber(s.Get(q)))
	}
	return row
}

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw
}

func flush(cw *csv.Writer) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
