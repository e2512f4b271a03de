package prep

import (
	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

// basePlan is the fixed 7-day skeleton. Plan copies it before applying the
// skill-conditional inserts.
var basePlan = []model.PlanDay{
	{Day: "Day 1", Focus: "Foundations", Tasks: []string{
		"Review core CS fundamentals (OS, DBMS, Networks)",
		"Revise OOP concepts with examples",
		"Practice 5 easy aptitude questions",
		"Read about the company and role",
	}},
	{Day: "Day 2", Focus: "Core CS Deep Dive", Tasks: []string{
		"Study DBMS normalization & SQL queries",
		"Review OS scheduling & memory management",
		"Practice networking concepts (TCP, HTTP)",
		"Solve 3 previous year aptitude sets",
	}},
	{Day: "Day 3", Focus: "DSA - Part 1", Tasks: []string{
		"Arrays & strings: solve 5 medium problems",
		"Linked lists: reversal, cycle detection",
		"Stack & queue: implement and solve 3 problems",
		"Review time complexity of common operations",
	}},
	{Day: "Day 4", Focus: "DSA - Part 2", Tasks: []string{
		"Trees: traversals, BST operations",
		"Graphs: BFS, DFS, shortest path",
		"Dynamic programming: 3 classic problems",
		"Practice coding under 30-min time pressure",
	}},
	{Day: "Day 5", Focus: "Project & Resume", Tasks: []string{
		"Prepare 2-minute walkthrough of best project",
		"Align resume keywords with job description",
		"Review system design basics if applicable",
		`Prepare "Why this role?" answer`,
	}},
	{Day: "Day 6", Focus: "Mock Interview", Tasks: []string{
		"Practice 10 likely interview questions aloud",
		"Do a timed coding round (2 problems, 40 min)",
		"Practice behavioral answers using STAR method",
		"Review weak areas from practice sessions",
	}},
	{Day: "Day 7", Focus: "Revision & Confidence", Tasks: []string{
		"Revisit weak topics from Day 1-6",
		"Quick review of all key formulas & patterns",
		"Light practice: 2 easy problems for confidence",
		"Prepare questions to ask the interviewer",
		"Rest well — no heavy studying",
	}},
}

// Plan produces the 7-day study plan: the fixed skeleton with extra tasks
// spliced into specific days when web, data, cloud, or testing skills are
// present. When only the fallback category is populated, Days 1 and 3 each
// get a generic-skill task prepended. Insert positions depend on the
// application order below.
func Plan(skills model.ExtractedSkills) []model.PlanDay {
	plan := make([]model.PlanDay, len(basePlan))
	for i, d := range basePlan {
		plan[i] = model.PlanDay{Day: d.Day, Focus: d.Focus, Tasks: append([]string(nil), d.Tasks...)}
	}

	if skills.Has(taxonomy.Web) {
		plan[4].Tasks = insertAt(plan[4].Tasks, 2, "Review React/frontend concepts for discussion")
		plan[5].Tasks = insertAt(plan[5].Tasks, 1, "Practice explaining REST API design")
	}
	if skills.Has(taxonomy.Data) {
		plan[1].Tasks = insertAt(plan[1].Tasks, 1, "Practice complex SQL joins & window functions")
	}
	if skills.Has(taxonomy.Cloud) {
		plan[4].Tasks = insertAt(plan[4].Tasks, 2, "Review Docker/CI-CD pipeline for discussion")
	}
	if skills.Has(taxonomy.Testing) {
		plan[5].Tasks = insertAt(plan[5].Tasks, 2, "Review testing strategies and tools used")
	}

	if onlyOther(skills) {
		plan[0].Tasks = insertAt(plan[0].Tasks, 0, "List transferable skills that fit this role")
		plan[2].Tasks = insertAt(plan[2].Tasks, 0, "Start with easy problems to build momentum")
	}

	return plan
}

func insertAt(tasks []string, idx int, task string) []string {
	if idx > len(tasks) {
		idx = len(tasks)
	}
	out := make([]string, 0, len(tasks)+1)
	out = append(out, tasks[:idx]...)
	out = append(out, task)
	out = append(out, tasks[idx:]...)
	return out
}
