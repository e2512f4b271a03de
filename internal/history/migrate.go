package history

import (
	"encoding/json"

	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/score"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

// schemaVersion tags the known persisted record layouts.
type schemaVersion int

const (
	// schemaV1 is the layout of the first release: skills keyed by display label,
	// readinessScore, roundMap/round/desc/why, plan/title, no updatedAt,
	// no confidence map.
	schemaV1 schemaVersion = iota + 1
	// schemaCurrent is the layout of model.AnalysisRecord.
	schemaCurrent
)

// detectVersion classifies a raw persisted object by field presence.
func detectVersion(raw map[string]any) schemaVersion {
	for _, legacy := range []string{"roundMap", "readinessScore", "plan"} {
		if _, ok := raw[legacy]; ok {
			return schemaV1
		}
	}
	return schemaCurrent
}

// upgraders translate one schema version to the next. Composed in order by
// Migrate, so adding a version means appending one pure translation.
var upgraders = map[schemaVersion]func(map[string]any) map[string]any{
	schemaV1: upgradeV1,
}

// Migrate upgrades one raw persisted object to the current record shape.
// It is pure and idempotent: a record already in the current schema passes
// through with only defaults reapplied. Missing or malformed nested fields
// degrade to empty or default values; Migrate never fails.
func Migrate(raw map[string]any) model.AnalysisRecord {
	for v := detectVersion(raw); v < schemaCurrent; v++ {
		raw = upgraders[v](raw)
	}
	return decodeCurrent(raw)
}

// upgradeV1 renames and relocates the first release's fields into the
// current layout. Values of unexpected types are left for decodeCurrent to
// discard.
func upgradeV1(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "extractedSkills":
			out[k] = remapSkillLabels(v)
		case "readinessScore":
			out["baseScore"] = v
		case "plan":
			out["plan7Days"] = renameEntries(v, map[string]string{"title": "focus"}, nil)
		case "checklist":
			out[k] = renameEntries(v, map[string]string{"round": "roundTitle"}, nil)
		case "roundMap":
			out["roundMapping"] = renameEntries(v, map[string]string{
				"round": "roundTitle",
				"why":   "whyItMatters",
			}, map[string]string{"desc": "focusAreas"})
		default:
			out[k] = v
		}
	}
	return out
}

// remapSkillLabels converts a label-keyed skills object ("Core CS", "General")
// to canonical category keys, dropping unknown labels.
func remapSkillLabels(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for label, val := range m {
		if cat, ok := taxonomy.FromLabel(label); ok {
			out[string(cat)] = val
		}
	}
	return out
}

// renameEntries renames keys inside each element of a list of objects.
// wrap lists keys whose string value becomes a single-element list under the
// new name (legacy desc -> focusAreas).
func renameEntries(v any, rename map[string]string, wrap map[string]string) any {
	list, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		entry := make(map[string]any, len(m))
		for k, val := range m {
			if newKey, ok := rename[k]; ok {
				entry[newKey] = val
				continue
			}
			if newKey, ok := wrap[k]; ok {
				if s, ok := val.(string); ok {
					entry[newKey] = []any{s}
				} else {
					entry[newKey] = []any{}
				}
				continue
			}
			entry[k] = val
		}
		out = append(out, entry)
	}
	return out
}

// decodeCurrent maps a current-shaped raw object onto the record struct and
// backfills anything absent. Type mismatches in nested fields are dropped by
// the JSON decoder rather than surfaced.
func decodeCurrent(raw map[string]any) model.AnalysisRecord {
	var rec model.AnalysisRecord
	if b, err := json.Marshal(raw); err == nil {
		// Decode errors leave the offending field at its zero value, which
		// the backfills below turn into defaults.
		_ = json.Unmarshal(b, &rec)
	}

	if rec.ExtractedSkills == nil {
		rec.ExtractedSkills = make(model.ExtractedSkills, len(taxonomy.Categories))
	}
	for _, cat := range taxonomy.Categories {
		if _, ok := rec.ExtractedSkills[cat]; !ok {
			rec.ExtractedSkills[cat] = nil
		}
	}

	if rec.BaseScore == 0 {
		rec.BaseScore = 35
	}
	if len(rec.SkillConfidence) == 0 {
		rec.SkillConfidence = make(map[string]model.Confidence)
		for _, skill := range rec.ExtractedSkills.Flatten() {
			rec.SkillConfidence[skill] = model.ConfidencePractice
		}
	}
	if rec.FinalScore == 0 {
		rec.FinalScore = score.Final(rec.BaseScore, rec.SkillConfidence)
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	return rec
}
