package prep

import (
	"testing"

	"github.com/kodnest/prepkit/internal/taxonomy"
)

func TestPlan_SevenFixedDays(t *testing.T) {
	got := Plan(skillsWith())
	if len(got) != 7 {
		t.Fatalf("Plan() returned %d days, want 7", len(got))
	}
	wantFocus := []string{
		"Foundations", "Core CS Deep Dive", "DSA - Part 1", "DSA - Part 2",
		"Project & Resume", "Mock Interview", "Revision & Confidence",
	}
	for i, day := range got {
		if day.Focus != wantFocus[i] {
			t.Errorf("day %d focus = %q, want %q", i+1, day.Focus, wantFocus[i])
		}
	}
}

func TestPlan_ConditionalInserts(t *testing.T) {
	tests := []struct {
		name string
		cat  taxonomy.Category
		day  int // zero-based
		pos  int
		task string
	}{
		{name: "web into day 5", cat: taxonomy.Web, day: 4, pos: 2, task: "Review React/frontend concepts for discussion"},
		{name: "web into day 6", cat: taxonomy.Web, day: 5, pos: 1, task: "Practice explaining REST API design"},
		{name: "data into day 2", cat: taxonomy.Data, day: 1, pos: 1, task: "Practice complex SQL joins & window functions"},
		{name: "cloud into day 5", cat: taxonomy.Cloud, day: 4, pos: 2, task: "Review Docker/CI-CD pipeline for discussion"},
		{name: "testing into day 6", cat: taxonomy.Testing, day: 5, pos: 2, task: "Review testing strategies and tools used"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(skillsWith(tt.cat))
			tasks := got[tt.day].Tasks
			if tt.pos >= len(tasks) || tasks[tt.pos] != tt.task {
				t.Errorf("day %d tasks = %v, want %q at position %d", tt.day+1, tasks, tt.task, tt.pos)
			}
		})
	}
}

func TestPlan_BaseUnchangedWithoutSkills(t *testing.T) {
	got := Plan(skillsWith())
	for i, day := range got {
		if len(day.Tasks) != len(basePlan[i].Tasks) {
			t.Errorf("day %d has %d tasks, want %d", i+1, len(day.Tasks), len(basePlan[i].Tasks))
		}
	}
}

func TestPlan_GenericPrependWhenOnlyOther(t *testing.T) {
	got := Plan(skillsWith(taxonomy.Other))
	if got[0].Tasks[0] != "List transferable skills that fit this role" {
		t.Errorf("day 1 first task = %q, want generic prepend", got[0].Tasks[0])
	}
	if got[2].Tasks[0] != "Start with easy problems to build momentum" {
		t.Errorf("day 3 first task = %q, want generic prepend", got[2].Tasks[0])
	}
	// Mixed skills must not trigger the generic prepend.
	mixed := Plan(skillsWith(taxonomy.Other, taxonomy.Data))
	if mixed[0].Tasks[0] == "List transferable skills that fit this role" {
		t.Error("generic prepend applied despite a real category being populated")
	}
}

func TestPlan_DoesNotMutateBase(t *testing.T) {
	before := len(basePlan[4].Tasks)
	_ = Plan(skillsWith(taxonomy.Web, taxonomy.Cloud))
	if len(basePlan[4].Tasks) != before {
		t.Error("Plan mutated the base plan skeleton")
	}
}
