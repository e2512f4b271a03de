// Package score computes readiness scores from extracted skills and
// self-reported confidence. Both functions are pure and total.
package score

import (
	"strings"

	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

// Base computes the objective readiness score in [35,100]: a floor of 35,
// plus 5 per populated non-Other category (capped at +30), plus 10 each for
// a non-blank company, a non-blank role, and a JD longer than 800 characters.
func Base(company, role, jdText string, skills model.ExtractedSkills) int {
	s := 35

	populated := 0
	for _, cat := range taxonomy.Categories {
		if cat == taxonomy.Other {
			continue
		}
		if skills.Has(cat) {
			populated++
		}
	}
	bonus := populated * 5
	if bonus > 30 {
		bonus = 30
	}
	s += bonus

	if strings.TrimSpace(company) != "" {
		s += 10
	}
	if strings.TrimSpace(role) != "" {
		s += 10
	}
	if len(jdText) > 800 {
		s += 10
	}

	if s > 100 {
		s = 100
	}
	return s
}

// Final adjusts the base score by self-reported confidence: +2 per skill
// marked "know", -2 per anything else, clamped to [0,100]. An empty or nil
// map returns the base score unchanged. Malformed confidence values count as
// not known rather than being rejected.
func Final(baseScore int, confidence map[string]model.Confidence) int {
	if len(confidence) == 0 {
		return baseScore
	}
	delta := 0
	for _, v := range confidence {
		if v == model.ConfidenceKnow {
			delta += 2
		} else {
			delta -= 2
		}
	}
	s := baseScore + delta
	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return s
}
