// Package export renders an analysis record into a plain-text report.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/score"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

const timestampLayout = "02 Jan 2006 15:04"

// Format renders the record as a plain-text report. When overrides is
// non-nil it replaces the record's stored confidence map for the live score
// and adds a confidence breakdown section. Purely a string builder; no I/O.
func Format(rec model.AnalysisRecord, overrides map[string]model.Confidence) string {
	confidence := rec.SkillConfidence
	if overrides != nil {
		confidence = overrides
	}
	liveScore := score.Final(rec.BaseScore, confidence)

	var b strings.Builder
	b.WriteString("=== PLACEMENT READINESS ANALYSIS ===\n")
	fmt.Fprintf(&b, "Company: %s\n", orNA(rec.Company))
	fmt.Fprintf(&b, "Role: %s\n", orNA(rec.Role))
	fmt.Fprintf(&b, "Readiness Score: %d/100\n", liveScore)
	fmt.Fprintf(&b, "Analyzed: %s\n\n", rec.CreatedAt.Format(timestampLayout))

	b.WriteString("--- KEY SKILLS ---\n")
	for _, cat := range taxonomy.Categories {
		skills := rec.ExtractedSkills[cat]
		if len(skills) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", cat.Label(), strings.Join(skills, ", "))
	}

	if overrides != nil {
		fmt.Fprintf(&b, "\nConfident: %s\n", strings.Join(skillsWith(overrides, model.ConfidenceKnow), ", "))
		fmt.Fprintf(&b, "Need Practice: %s\n", strings.Join(skillsWith(overrides, model.ConfidencePractice), ", "))
	}

	b.WriteString("\n--- 7-DAY PLAN ---\n")
	writePlan(&b, rec.Plan7Days)

	b.WriteString("\n--- ROUND-WISE CHECKLIST ---\n")
	writeChecklist(&b, rec.Checklist)

	b.WriteString("\n--- INTERVIEW QUESTIONS ---\n")
	writeQuestions(&b, rec.Questions)

	b.WriteString("\n=== Generated by PrepKit ===\n")
	return b.String()
}

func writePlan(b *strings.Builder, plan []model.PlanDay) {
	for i, day := range plan {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s: %s\n", day.Day, day.Focus)
		for _, task := range day.Tasks {
			fmt.Fprintf(b, "  • %s\n", task)
		}
	}
}

func writeChecklist(b *strings.Builder, checklist []model.ChecklistRound) {
	for i, round := range checklist {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s\n", round.RoundTitle)
		for _, item := range round.Items {
			fmt.Fprintf(b, "  ☐ %s\n", item)
		}
	}
}

func writeQuestions(b *strings.Builder, questions []model.Question) {
	for i, q := range questions {
		fmt.Fprintf(b, "%d. [%s] %s\n", i+1, q.Category, q.Question)
	}
}

// skillsWith returns the sorted skills holding the given confidence level.
// Sorted so the report is stable across runs despite map iteration order.
func skillsWith(confidence map[string]model.Confidence, level model.Confidence) []string {
	var out []string
	for skill, v := range confidence {
		if v == level {
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
