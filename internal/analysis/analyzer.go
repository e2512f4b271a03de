// Package analysis composes the extractor, score calculator, and generators
// into complete analysis records.
package analysis

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/kodnest/prepkit/internal/extract"
	"github.com/kodnest/prepkit/internal/intel"
	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/prep"
	"github.com/kodnest/prepkit/internal/score"
)

// Analyzer builds analysis records. The clock and random source are injected
// so tests can pin timestamps, record ids, and question selection.
type Analyzer struct {
	now func() time.Time
	rng *rand.Rand
}

// New returns an Analyzer. A nil now defaults to time.Now; a nil rng defaults
// to a time-seeded source.
func New(now func() time.Time, rng *rand.Rand) *Analyzer {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Analyzer{now: now, rng: rng}
}

// Run derives a complete analysis record from the three free-text inputs.
// Every generator consumes the same extracted-skills snapshot, and the
// confidence map is initialized to "practice" for exactly that snapshot's
// flattened skill set. The returned record is self-contained; nothing is
// persisted here.
func (a *Analyzer) Run(company, role, jdText string) model.AnalysisRecord {
	skills := extract.Skills(jdText)
	base := score.Base(company, role, jdText, skills)
	checklist := prep.Checklist(skills)
	plan := prep.Plan(skills)
	questions := prep.Questions(skills, a.rng)
	companyIntel := intel.Infer(company)
	roundMap := prep.RoundMap(companyIntel, skills)

	confidence := make(map[string]model.Confidence)
	for _, skill := range skills.Flatten() {
		confidence[skill] = model.ConfidencePractice
	}
	final := score.Final(base, confidence)

	now := a.now()
	return model.AnalysisRecord{
		ID:              a.newID(now),
		CreatedAt:       now,
		UpdatedAt:       now,
		Company:         strings.TrimSpace(company),
		Role:            strings.TrimSpace(role),
		JDText:          jdText,
		ExtractedSkills: skills,
		RoundMapping:    roundMap,
		Checklist:       checklist,
		Plan7Days:       plan,
		Questions:       questions,
		BaseScore:       base,
		SkillConfidence: confidence,
		FinalScore:      final,
		CompanyIntel:    companyIntel,
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID builds a time+random composite id: the millisecond timestamp in
// base36 plus a 4-character random suffix. Collision-resistant in practice,
// not cryptographically unique.
func (a *Analyzer) newID(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = idAlphabet[a.rng.Intn(len(idAlphabet))]
	}
	return strconv.FormatInt(now.UnixMilli(), 36) + string(suffix)
}
