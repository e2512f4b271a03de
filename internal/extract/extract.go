// Package extract scans job-description text for known skill keywords.
package extract

import (
	"regexp"
	"strings"

	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

// patterns holds one compiled regexp per keyword, keyed by category, built
// once at init. Each pattern is anchored on word boundaries so "java" does
// not match inside "javascript", and literal whitespace in multi-word
// phrases is widened to \s+ so "spring boot" matches across line wraps.
var patterns = compilePatterns()

type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

func compilePatterns() map[taxonomy.Category][]keywordPattern {
	out := make(map[taxonomy.Category][]keywordPattern, len(taxonomy.Keywords))
	for cat, keywords := range taxonomy.Keywords {
		ps := make([]keywordPattern, 0, len(keywords))
		for _, kw := range keywords {
			escaped := regexp.QuoteMeta(kw)
			escaped = strings.ReplaceAll(escaped, " ", `\s+`)
			ps = append(ps, keywordPattern{
				keyword: kw,
				re:      regexp.MustCompile(`(?i)\b` + escaped + `\b`),
			})
		}
		out[cat] = ps
	}
	return out
}

// Skills returns the matched keywords per category for the given JD text.
// Every category is present in the result, with an empty slice when nothing
// matched. When no category matches at all, Other is set to the generic
// fallback list so the result is never entirely empty. Pure function.
func Skills(jdText string) model.ExtractedSkills {
	lower := strings.ToLower(jdText)

	result := make(model.ExtractedSkills, len(taxonomy.Categories))
	anyFound := false
	for _, cat := range taxonomy.Categories {
		var matched []string
		seen := make(map[string]bool)
		for _, p := range patterns[cat] {
			if seen[p.keyword] {
				continue
			}
			if p.re.MatchString(lower) {
				matched = append(matched, p.keyword)
				seen[p.keyword] = true
			}
		}
		result[cat] = matched
		if len(matched) > 0 {
			anyFound = true
		}
	}

	if !anyFound {
		result[taxonomy.Other] = append([]string(nil), taxonomy.FallbackSkills...)
	}
	return result
}
