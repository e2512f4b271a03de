// Package prep assembles the preparation artifacts of an analysis: the
// round-wise checklist, the 7-day study plan, the interview question set,
// and the round mapping. Everything here is deterministic except question
// selection, which shuffles through an injected rand source.
package prep

import (
	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

var round1Items = []string{
	"Review quantitative aptitude basics",
	"Practice logical reasoning puzzles",
	"Brush up verbal ability & grammar",
	"Solve 10 pattern-based questions",
	"Review company-specific aptitude format",
}

var round2Items = []string{
	"Revise arrays, strings, linked lists",
	"Practice 5 medium-level DSA problems",
	"Review time & space complexity analysis",
	"Revise sorting and searching algorithms",
	"Study stack, queue, tree, graph basics",
}

var round2CoreCSItems = []string{
	"Revise OS: process, threads, scheduling",
	"Revise DBMS: normalization, joins, indexing",
	"Review networking: TCP/IP, HTTP, DNS",
}

var round3Items = []string{
	"Prepare 2-minute project walkthrough",
	"Practice explaining architecture decisions",
	"Review system design basics (if applicable)",
}

// round3Extras are appended to Round 3 for each populated category, in this
// fixed order.
var round3Extras = []struct {
	cat   taxonomy.Category
	items []string
}{
	{taxonomy.Web, []string{"Review React/Node.js lifecycle & hooks", "Prepare REST API design explanation"}},
	{taxonomy.Data, []string{"Practice SQL joins & subqueries live", "Explain database indexing strategy"}},
	{taxonomy.Cloud, []string{"Review Docker basics & container lifecycle", "Explain CI/CD pipeline you have used"}},
	{taxonomy.Languages, []string{"Review OOP concepts in your primary language", "Prepare code walkthrough of best project"}},
	{taxonomy.Testing, []string{"Explain your testing strategy & tools", "Review unit vs integration vs e2e testing"}},
}

var round3GenericItems = []string{
	"Revise fundamentals of your strongest language",
	"Prepare to explain how you learn new technologies",
}

var round4Items = []string{
	`Prepare "Tell me about yourself" (2 min)`,
	"Practice STAR method for behavioral Qs",
	"Prepare salary/notice period expectations",
	"Research company values and mission",
	"Prepare 3 thoughtful questions for interviewer",
	`Practice "Why this company?" answer`,
	"Review strengths & weaknesses framing",
}

// Checklist produces the four fixed-order round groups. Rounds 1 and 4 are
// always the same; Round 2 is extended when Core CS skills are present;
// Round 3 accumulates per-category item pairs, with a generic pair when the
// fallback category is the only one populated.
func Checklist(skills model.ExtractedSkills) []model.ChecklistRound {
	r2 := append([]string(nil), round2Items...)
	if skills.Has(taxonomy.CoreCS) {
		r2 = append(r2, round2CoreCSItems...)
	}

	r3 := append([]string(nil), round3Items...)
	for _, extra := range round3Extras {
		if skills.Has(extra.cat) {
			r3 = append(r3, extra.items...)
		}
	}
	if onlyOther(skills) {
		r3 = append(r3, round3GenericItems...)
	}

	return []model.ChecklistRound{
		{RoundTitle: "Round 1: Aptitude & Basics", Items: append([]string(nil), round1Items...)},
		{RoundTitle: "Round 2: DSA & Core CS", Items: r2},
		{RoundTitle: "Round 3: Technical Interview", Items: r3},
		{RoundTitle: "Round 4: HR & Managerial", Items: append([]string(nil), round4Items...)},
	}
}

// onlyOther reports whether the fallback category is populated and nothing
// else is.
func onlyOther(skills model.ExtractedSkills) bool {
	if !skills.Has(taxonomy.Other) {
		return false
	}
	for _, cat := range taxonomy.Categories {
		if cat != taxonomy.Other && skills.Has(cat) {
			return false
		}
	}
	return true
}
