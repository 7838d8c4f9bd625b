// Package views renders the server-side HTML pages.
package views

import (
	"fmt"
	"ocai-hub/export"
	"ocai-hub/models"

	"github.com/a-h/templ"
)

var chartKinds = []string{export.ChartRadar, export.ChartBar, export.ChartDelta}

func surveysFor(surveys []models.Survey, organizationID string) []models.Survey {
	var out []models.Survey
	for _, s := range surveys {
		if s.OrganizationID == organizationID {
			out = append(out, s)
		}
	}
	return out
}

// hasResponses reports whether the whole-organization slice has any respondents
func hasResponses(aggs []models.AggregateData) bool {
	return len(aggs) > 0 && aggs[0].N > 0
}

func reportURL(surveyID string) templ.SafeURL {
	return templ.URL("/reports/" + surveyID)
}

func chartURL(surveyID, kind string) templ.SafeURL {
	return templ.URL(fmt.Sprintf("/api/surveys/%s/charts/%s.csv", surveyID, kind))
}
