// Package hierarchy walks the subcategory maps to assign the deepest matching
// label under a transaction's top-level category.
package hierarchy

import (
	"jlowell/ledgersum/internal/categorizer"
	"jlowell/ledgersum/internal/config"
	"jlowell/ledgersum/internal/models"
)

// Assignment holds the labels chosen for each hierarchy level. Empty means
// the level does not exist for the category.
type Assignment struct {
	Subcategory       string
	SubSubcategory    string
	SubSubSubcategory string
}

// Assign walks subcategory, sub-subcategory, and sub-sub-subcategory keyword
// lists for the category. Each level scans labels in order and the first
// keyword match wins; when a level exists but nothing matches, the sentinel
// bucket is assigned and the walk stops. A deeper level is only consulted
// after a real (non-sentinel) match one level up.
//
// manualSub and manualSubSub come from manual entries or custom keyword
// rules; when set they are used verbatim and the scan for that level is
// skipped.
func Assign(category, desc string, cfg config.EffectiveConfig, manualSub, manualSubSub string) Assignment {
	var out Assignment

	labels, ok := cfg.SubcategoryMaps[category]
	if !ok && manualSub == "" {
		// Flat category: no hierarchy at all.
		return out
	}

	if manualSub != "" {
		out.Subcategory = manualSub
	} else {
		out.Subcategory = scanLevel(desc, labels, cfg.StrictBoundaryKeywords)
	}
	if out.Subcategory == models.SentinelOther {
		return out
	}

	if manualSubSub != "" {
		out.SubSubcategory = manualSubSub
	} else {
		subLabels, ok := cfg.SubSubcategoryMaps[category][out.Subcategory]
		if !ok {
			return out
		}
		out.SubSubcategory = scanLevel(desc, subLabels, cfg.StrictBoundaryKeywords)
	}
	if out.SubSubcategory == models.SentinelOther {
		return out
	}

	deepLabels, ok := cfg.SubSubSubcategoryMaps[category][out.Subcategory][out.SubSubcategory]
	if !ok {
		return out
	}
	out.SubSubSubcategory = scanLevel(desc, deepLabels, cfg.StrictBoundaryKeywords)

	return out
}

// scanLevel returns the first label whose keywords match, or the sentinel
// when the level has labels but none match.
func scanLevel(desc string, labels []config.LabelKeywords, strictBoundary []string) string {
	if len(labels) == 0 {
		return ""
	}
	for _, entry := range labels {
		for _, kw := range entry.Keywords {
			if categorizer.KeywordMatches(desc, kw, strictBoundary) {
				return entry.Label
			}
		}
	}
	return models.SentinelOther
}
