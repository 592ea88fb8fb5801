package categorizer

import (
	"regexp"
	"strings"
)

// KeywordMatches reports whether desc matches a single keyword. Keywords
// flagged strict-boundary only match on whole-word boundaries so short tokens
// like "ACE" cannot fire inside "PALACE"; all other keywords use plain
// substring containment. The hierarchy matcher shares this behavior.
func KeywordMatches(desc, keyword string, strictBoundary []string) bool {
	if keyword == "" {
		return false
	}
	for _, strict := range strictBoundary {
		if keyword == strict {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
			return re.MatchString(desc)
		}
	}
	return strings.Contains(desc, keyword)
}

// matchesAny reports whether desc matches any keyword in the list.
func matchesAny(desc string, keywords, strictBoundary []string) bool {
	for _, kw := range keywords {
		if KeywordMatches(desc, kw, strictBoundary) {
			return true
		}
	}
	return false
}
