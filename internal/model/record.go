package model

import (
	"time"

	"github.com/kodnest/prepkit/internal/taxonomy"
)

// ExtractedSkills maps every skill category to the keywords matched in the JD.
// All seven categories are always present as keys, empty slices when nothing
// matched.
type ExtractedSkills map[taxonomy.Category][]string

// Has reports whether the category has at least one matched keyword.
func (s ExtractedSkills) Has(c taxonomy.Category) bool {
	return len(s[c]) > 0
}

// Flatten returns all matched keywords across categories in the canonical
// category order.
func (s ExtractedSkills) Flatten() []string {
	var out []string
	for _, c := range taxonomy.Categories {
		out = append(out, s[c]...)
	}
	return out
}

// Confidence is a self-reported level for a single matched skill.
type Confidence string

const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// Round describes one interview round in the round mapping.
type Round struct {
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}

// ChecklistRound groups preparation items for one interview round.
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanDay is one day of the 7-day study plan.
type PlanDay struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// Question is a single interview question tagged with its category label.
type Question struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

// CompanyIntel is the inferred size/industry/hiring-focus profile of a company.
type CompanyIntel struct {
	Company     string `json:"company"`
	Size        string `json:"size"`
	Industry    string `json:"industry"`
	HiringFocus string `json:"hiringFocus"`
}

// Company size classifications.
const (
	SizeEnterprise = "Enterprise"
	SizeMidSize    = "Mid-size"
	SizeStartup    = "Startup"
)

// AnalysisRecord is the unit of persistence: one complete analysis of a
// (company, role, JD text) triple. Fields other than SkillConfidence and
// UpdatedAt are not modified after creation.
type AnalysisRecord struct {
	ID              string                `json:"id"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
	Company         string                `json:"company"`
	Role            string                `json:"role"`
	JDText          string                `json:"jdText"`
	ExtractedSkills ExtractedSkills       `json:"extractedSkills"`
	RoundMapping    []Round               `json:"roundMapping"`
	Checklist       []ChecklistRound      `json:"checklist"`
	Plan7Days       []PlanDay             `json:"plan7Days"`
	Questions       []Question            `json:"questions"`
	BaseScore       int                   `json:"baseScore"`
	SkillConfidence map[string]Confidence `json:"skillConfidenceMap"`
	FinalScore      int                   `json:"finalScore"`
	CompanyIntel    *CompanyIntel         `json:"companyIntel"`
}
