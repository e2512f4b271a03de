package score

import (
	"strings"
	"testing"

	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

// skillsWith builds an ExtractedSkills with the given categories populated.
func skillsWith(cats ...taxonomy.Category) model.ExtractedSkills {
	s := make(model.ExtractedSkills)
	for _, c := range taxonomy.Categories {
		s[c] = nil
	}
	for _, c := range cats {
		s[c] = []string{"x"}
	}
	return s
}

func TestBase(t *testing.T) {
	longJD := strings.Repeat("a", 801)
	tests := []struct {
		name    string
		company string
		role    string
		jdText  string
		skills  model.ExtractedSkills
		want    int
	}{
		{
			name:   "floor with nothing",
			skills: skillsWith(),
			want:   35,
		},
		{
			name:   "other category does not count",
			skills: skillsWith(taxonomy.Other),
			want:   35,
		},
		{
			name:   "one category",
			skills: skillsWith(taxonomy.Languages),
			want:   40,
		},
		{
			name:   "category bonus capped at 30",
			skills: skillsWith(taxonomy.CoreCS, taxonomy.Languages, taxonomy.Web, taxonomy.Data, taxonomy.Cloud, taxonomy.Testing),
			want:   65,
		},
		{
			name:    "company and role bonuses",
			company: "Acme",
			role:    "SDE",
			skills:  skillsWith(),
			want:    55,
		},
		{
			name:    "whitespace-only company does not count",
			company: "   ",
			skills:  skillsWith(),
			want:    35,
		},
		{
			name:   "long JD bonus",
			jdText: longJD,
			skills: skillsWith(),
			want:   45,
		},
		{
			name:   "exactly 800 chars gets no bonus",
			jdText: strings.Repeat("a", 800),
			skills: skillsWith(),
			want:   35,
		},
		{
			name:    "everything clamps to 100",
			company: "Acme",
			role:    "SDE",
			jdText:  longJD,
			skills:  skillsWith(taxonomy.CoreCS, taxonomy.Languages, taxonomy.Web, taxonomy.Data, taxonomy.Cloud, taxonomy.Testing),
			want:    95,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Base(tt.company, tt.role, tt.jdText, tt.skills)
			if got != tt.want {
				t.Errorf("Base() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBase_MaxReachable(t *testing.T) {
	// 35 floor + 30 capped category bonus + 10 + 10 + 10 = 95 is the maximum
	// this function can produce.
	skills := skillsWith(taxonomy.CoreCS, taxonomy.Languages, taxonomy.Web, taxonomy.Data, taxonomy.Cloud, taxonomy.Testing)
	got := Base("Google", "SDE", strings.Repeat("x", 900), skills)
	if got != 95 {
		t.Errorf("Base() = %d, want 95", got)
	}
}

func TestFinal(t *testing.T) {
	know := model.ConfidenceKnow
	practice := model.ConfidencePractice
	tests := []struct {
		name       string
		base       int
		confidence map[string]model.Confidence
		want       int
	}{
		{name: "nil map returns base", base: 50, confidence: nil, want: 50},
		{name: "empty map returns base", base: 50, confidence: map[string]model.Confidence{}, want: 50},
		{
			name: "know and practice cancel",
			base: 50,
			confidence: map[string]model.Confidence{
				"a": know,
				"b": practice,
			},
			want: 50,
		},
		{
			name:       "clamped at 100",
			base:       99,
			confidence: map[string]model.Confidence{"a": know},
			want:       100,
		},
		{
			name:       "know from zero base",
			base:       0,
			confidence: map[string]model.Confidence{"a": know},
			want:       2,
		},
		{
			name:       "clamped at 0",
			base:       1,
			confidence: map[string]model.Confidence{"a": practice},
			want:       0,
		},
		{
			name:       "malformed value counts as not known",
			base:       50,
			confidence: map[string]model.Confidence{"a": "maybe"},
			want:       48,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Final(tt.base, tt.confidence)
			if got != tt.want {
				t.Errorf("Final() = %d, want %d", got, tt.want)
			}
		})
	}
}
