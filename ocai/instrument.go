package ocai

import (
	"fmt"
	"math"
)

// Dimension is one of the six OCAI questions. Options A-D map to Clan, Adhocracy,
// Market and Hierarchy.
type Dimension struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Options map[string]string `json:"options"`
}

// Dimensions is the English OCAI instrument
var Dimensions = []Dimension{
	{
		ID:    "dominant_characteristics",
		Title: "Dominant Characteristics",
		Options: map[string]string{
			"A": "The organization is a very personal place. It is like an extended family. People seem to share a lot of themselves.",
			"B": "The organization is a very dynamic and entrepreneurial place. People are willing to stick their necks out and take risks.",
			"C": "The organization is very results oriented. A major concern is with getting the job done. People are very competitive and achievement oriented.",
			"D": "The organization is a very controlled and structured place. Formal procedures generally govern what people do.",
		},
	},
	{
		ID:    "leadership",
		Title: "Leadership",
		Options: map[string]string{
			"A": "The leadership in the organization is generally considered to exemplify mentoring, facilitating, or nurturing.",
			"B": "The leadership in the organization is generally considered to exemplify entrepreneurship, innovating, or risk taking.",
			"C": "The leadership in the organization is generally considered to exemplify a no-nonsense, aggressive, results-oriented focus.",
			"D": "The leadership in the organization is generally considered to exemplify coordinating, organizing, or smooth-running efficiency.",
		},
	},
	{
		ID:    "management_employees",
		Title: "Management of Employees",
		Options: map[string]string{
			"A": "The management style in the organization is characterized by teamwork, consensus, and participation.",
			"B": "The management style in the organization is characterized by individual risk-taking, innovation, freedom, and uniqueness.",
			"C": "The management style in the organization is characterized by hard-driving competitiveness, high demands, and achievement.",
			"D": "The management style in the organization is characterized by security of employment, conformity, predictability, and stability in relationships.",
		},
	},
	{
		ID:    "organization_glue",
		Title: "Organization Glue",
		Options: map[string]string{
			"A": "The glue that holds the organization together is loyalty and mutual trust. Commitment to this organization runs high.",
			"B": "The glue that holds the organization together is commitment to innovation and development. There is an emphasis on being on the cutting edge.",
			"C": "The glue that holds the organization together is the emphasis on achievement and goal accomplishment. Aggressive and winning is the common thread.",
			"D": "The glue that holds the organization together is formal rules and policies. Maintaining a smooth-running organization is important.",
		},
	},
	{
		ID:    "strategic_emphases",
		Title: "Strategic Emphases",
		Options: map[string]string{
			"A": "The organization emphasizes human development. High trust, openness, and participation persist.",
			"B": "The organization emphasizes acquiring new resources and creating new challenges. Trying new things and prospecting for opportunities are valued.",
			"C": "The organization emphasizes competitive actions and achievement. Hitting stretch targets and winning in the marketplace are dominant.",
			"D": "The organization emphasizes permanence and stability. Efficiency, control, and smooth operations are valued.",
		},
	},
	{
		ID:    "criteria_success",
		Title: "Criteria of Success",
		Options: map[string]string{
			"A": "The organization defines success on the basis of the development of human resources, teamwork, employee commitment, and concern for people.",
			"B": "The organization defines success on the basis of having the most unique or newest products. It is a product leader and innovator.",
			"C": "The organization defines success on the basis of winning in the marketplace and outpacing the competition. Competitive market leadership is key.",
			"D": "The organization defines success on the basis of efficiency. Dependable delivery, smooth scheduling, and low-cost production are critical.",
		},
	},
}

// DimensionByID looks up one of the six dimensions
func DimensionByID(id string) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	return Dimension{}, false
}

// Allocation is the 100 points a respondent splits over options A-D
type Allocation struct {
	A float64 `json:"A"`
	B float64 `json:"B"`
	C float64 `json:"C"`
	D float64 `json:"D"`
}

// ScoreSet maps the option letters onto their quadrants
func (a Allocation) ScoreSet() ScoreSet {
	return ScoreSet{Clan: a.A, Adhocracy: a.B, Market: a.C, Hierarchy: a.D}
}

// DimensionAnswer is one answered dimension with both passes
type DimensionAnswer struct {
	DimensionID string     `json:"dimensionId" validate:"required,dimension"`
	Now         Allocation `json:"now"`
	Preferred   Allocation `json:"preferred"`
}

// ScoreDimensions averages answered dimensions into one now and one preferred score set
func ScoreDimensions(answers []DimensionAnswer) (now, preferred ScoreSet) {
	if len(answers) == 0 {
		return ScoreSet{}, ScoreSet{}
	}

	for _, a := range answers {
		n, p := a.Now.ScoreSet(), a.Preferred.ScoreSet()
		for _, q := range Quadrants {
			now.Set(q, now.Get(q)+n.Get(q))
			preferred.Set(q, preferred.Get(q)+p.Get(q))
		}
	}

	count := float64(len(answers))
	for _, q := range Quadrants {
		now.Set(q, now.Get(q)/count)
		preferred.Set(q, preferred.Get(q)/count)
	}
	return now, preferred
}

const sumTolerance = 0.01

// Validate reports problems with a single score set: it must total 100 and hold no
// negative values. The aggregator never calls this.
func Validate(label string, s ScoreSet) []string {
	var problems []string
	if total := s.Total(); math.Abs(total-100) > sumTolerance {
		problems = append(problems, fmt.Sprintf("%q scores must total 100 (currently %g)", label, total))
	}
	for _, q := range Quadrants {
		if s.Get(q) < 0 {
			problems = append(problems, fmt.Sprintf("%q %s score cannot be negative", label, q))
		}
	}
	return problems
}
