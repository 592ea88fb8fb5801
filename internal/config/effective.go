// Package config resolves the engine's effective configuration from three
// layers (code defaults, seed file, live overrides) and loads application
// settings from the environment.
package config

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryKeywords is one entry of the ordered category scan list. Scan order
// is part of the classification contract (first match wins), so this is an
// explicit slice rather than a map.
type CategoryKeywords struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// LabelKeywords is one entry of an ordered hierarchy-level scan list.
type LabelKeywords struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// CustomRule pins a category (and optionally a subcategory) for transactions
// matching an exact "DESC - $AMOUNT" key. Highest classification precedence.
type CustomRule struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}

// AmountOmitRule drops transactions whose description contains a substring
// and whose absolute amount falls inside [MinAbs, MaxAbs]. A zero MaxAbs
// means unbounded above.
type AmountOmitRule struct {
	Contains string          `json:"contains"`
	MinAbs   decimal.Decimal `json:"min_abs"`
	MaxAbs   decimal.Decimal `json:"max_abs"`
}

// CategoryCap limits which transactions of a category enter monthly totals.
// ExactAbs keeps only transactions at exactly that absolute amount; MaxAbs
// keeps only transactions at or below it. Exactly one should be set.
type CategoryCap struct {
	Category string          `json:"category"`
	ExactAbs decimal.Decimal `json:"exact_abs,omitempty"`
	MaxAbs   decimal.Decimal `json:"max_abs,omitempty"`
}

// EffectiveConfig is the merged, immutable-per-build configuration snapshot
// every core function takes as a parameter. It is rebuilt (never mutated) on
// each aggregation pass because the admin UI edits the override file
// out-of-band.
type EffectiveConfig struct {
	CategoryKeywords          []CategoryKeywords
	SubcategoryMaps           map[string][]LabelKeywords
	SubSubcategoryMaps        map[string]map[string][]LabelKeywords
	SubSubSubcategoryMaps     map[string]map[string]map[string][]LabelKeywords
	CustomTransactionKeywords map[string]CustomRule
	OmitKeywords              []string
	AmountOmitRules           []AmountOmitRule
	ReturnKeywords            []string
	TransferKeywords          []string
	StrictBoundaryKeywords    []string
	CategoryCaps              []CategoryCap
	HiddenCategories          []string
}

// IsHidden reports whether a category is excluded from monthly totals. Hidden
// categories still classify normally; they just never reach the headline
// numbers.
func (c EffectiveConfig) IsHidden(category string) bool {
	for _, h := range c.HiddenCategories {
		if h == category {
			return true
		}
	}
	return false
}

// KeywordsFor returns the keyword list for a category, or nil when the
// category is not configured.
func (c EffectiveConfig) KeywordsFor(category string) []string {
	for _, entry := range c.CategoryKeywords {
		if entry.Category == category {
			return entry.Keywords
		}
	}
	return nil
}

// CapFor returns the amount cap for a category, if one is configured.
func (c EffectiveConfig) CapFor(category string) (CategoryCap, bool) {
	for _, cap := range c.CategoryCaps {
		if cap.Category == category {
			return cap, true
		}
	}
	return CategoryCap{}, false
}

// Overlay is the on-disk shape of the seed and live-override layers. Field
// names match the admin UI's JSON file format, which uses plain objects; any
// ordering those objects carried in the file is not preserved, so labels new
// to an overlay are appended in sorted order during the merge.
type Overlay struct {
	CategoryKeywords          map[string][]string                       `json:"CATEGORY_KEYWORDS"`
	SubcategoryMaps           map[string]map[string][]string            `json:"SUBCATEGORY_MAPS"`
	SubSubcategoryMaps        map[string]map[string]map[string][]string `json:"SUBSUBCATEGORY_MAPS"`
	SubSubSubcategoryMaps     map[string]map[string]map[string]map[string][]string `json:"SUBSUBSUBCATEGORY_MAPS"`
	CustomTransactionKeywords map[string]CustomRule                     `json:"CUSTOM_TRANSACTION_KEYWORDS"`
	OmitKeywords              []string                                  `json:"OMIT_KEYWORDS"`
	AmountOmitRules           []AmountOmitRule                          `json:"AMOUNT_OMIT_RULES"`
	ReturnKeywords            []string                                  `json:"RETURN_KEYWORDS"`
	TransferKeywords          []string                                  `json:"TRANSFER_KEYWORDS"`
	StrictBoundaryKeywords    []string                                  `json:"STRICT_BOUNDARY_KEYWORDS"`
	CategoryCaps              []CategoryCap                             `json:"CATEGORY_AMOUNT_CAPS"`
	HiddenCategories          []string                                  `json:"HIDDEN_CATEGORIES"`
}

// Merge applies an overlay onto the config, returning a new snapshot.
// Semantics follow the layered-merge contract: map-valued keys merge
// recursively with the overlay winning per key, list-valued keys concatenate
// and dedupe preserving base order, absent overlay keys leave the base alone.
func (c EffectiveConfig) Merge(o Overlay) EffectiveConfig {
	out := c

	out.CategoryKeywords = mergeOrderedKeywords(c.CategoryKeywords, o.CategoryKeywords)
	out.SubcategoryMaps = mergeLevelMaps(c.SubcategoryMaps, o.SubcategoryMaps)

	if o.SubSubcategoryMaps != nil {
		merged := make(map[string]map[string][]LabelKeywords, len(c.SubSubcategoryMaps))
		for cat, subs := range c.SubSubcategoryMaps {
			merged[cat] = mergeLevelMaps(subs, o.SubSubcategoryMaps[cat])
		}
		for _, cat := range sortedKeys(o.SubSubcategoryMaps) {
			if _, ok := merged[cat]; !ok {
				merged[cat] = mergeLevelMaps(nil, o.SubSubcategoryMaps[cat])
			}
		}
		out.SubSubcategoryMaps = merged
	}

	if o.SubSubSubcategoryMaps != nil {
		merged := make(map[string]map[string]map[string][]LabelKeywords, len(c.SubSubSubcategoryMaps))
		for cat, subs := range c.SubSubSubcategoryMaps {
			merged[cat] = mergeDeepMaps(subs, o.SubSubSubcategoryMaps[cat])
		}
		for _, cat := range sortedKeys(o.SubSubSubcategoryMaps) {
			if _, ok := merged[cat]; !ok {
				merged[cat] = mergeDeepMaps(nil, o.SubSubSubcategoryMaps[cat])
			}
		}
		out.SubSubSubcategoryMaps = merged
	}

	if o.CustomTransactionKeywords != nil {
		merged := make(map[string]CustomRule, len(c.CustomTransactionKeywords))
		for k, v := range c.CustomTransactionKeywords {
			merged[k] = v
		}
		for k, v := range o.CustomTransactionKeywords {
			merged[k] = v
		}
		out.CustomTransactionKeywords = merged
	}

	out.OmitKeywords = mergeLists(c.OmitKeywords, o.OmitKeywords)
	out.ReturnKeywords = mergeLists(c.ReturnKeywords, o.ReturnKeywords)
	out.TransferKeywords = mergeLists(c.TransferKeywords, o.TransferKeywords)
	out.StrictBoundaryKeywords = mergeLists(c.StrictBoundaryKeywords, o.StrictBoundaryKeywords)
	out.HiddenCategories = mergeLists(c.HiddenCategories, o.HiddenCategories)
	out.AmountOmitRules = mergeOmitRules(c.AmountOmitRules, o.AmountOmitRules)
	out.CategoryCaps = mergeCaps(c.CategoryCaps, o.CategoryCaps)

	return out
}

// mergeLists concatenates base and overlay then dedupes preserving first
// occurrence order.
func mergeLists(base, overlay []string) []string {
	if overlay == nil {
		return base
	}
	seen := make(map[string]bool, len(base)+len(overlay))
	out := make([]string, 0, len(base)+len(overlay))
	for _, s := range append(append([]string{}, base...), overlay...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func mergeOrderedKeywords(base []CategoryKeywords, overlay map[string][]string) []CategoryKeywords {
	if overlay == nil {
		return base
	}
	out := make([]CategoryKeywords, 0, len(base))
	covered := make(map[string]bool, len(base))
	for _, entry := range base {
		covered[entry.Category] = true
		if kws, ok := overlay[entry.Category]; ok {
			out = append(out, CategoryKeywords{Category: entry.Category, Keywords: mergeLists(entry.Keywords, kws)})
		} else {
			out = append(out, entry)
		}
	}
	for _, cat := range sortedKeys(overlay) {
		if !covered[cat] {
			out = append(out, CategoryKeywords{Category: cat, Keywords: mergeLists(nil, overlay[cat])})
		}
	}
	return out
}

func mergeOrderedLabels(base []LabelKeywords, overlay map[string][]string) []LabelKeywords {
	if overlay == nil {
		return base
	}
	out := make([]LabelKeywords, 0, len(base))
	covered := make(map[string]bool, len(base))
	for _, entry := range base {
		covered[entry.Label] = true
		if kws, ok := overlay[entry.Label]; ok {
			out = append(out, LabelKeywords{Label: entry.Label, Keywords: mergeLists(entry.Keywords, kws)})
		} else {
			out = append(out, entry)
		}
	}
	for _, label := range sortedKeys(overlay) {
		if !covered[label] {
			out = append(out, LabelKeywords{Label: label, Keywords: mergeLists(nil, overlay[label])})
		}
	}
	return out
}

func mergeLevelMaps(base map[string][]LabelKeywords, overlay map[string]map[string][]string) map[string][]LabelKeywords {
	if overlay == nil {
		return base
	}
	out := make(map[string][]LabelKeywords, len(base))
	for key, labels := range base {
		out[key] = mergeOrderedLabels(labels, overlay[key])
	}
	for _, key := range sortedKeys(overlay) {
		if _, ok := out[key]; !ok {
			out[key] = mergeOrderedLabels(nil, overlay[key])
		}
	}
	return out
}

func mergeDeepMaps(base map[string]map[string][]LabelKeywords, overlay map[string]map[string]map[string][]string) map[string]map[string][]LabelKeywords {
	if overlay == nil {
		return base
	}
	out := make(map[string]map[string][]LabelKeywords, len(base))
	for key, level := range base {
		out[key] = mergeLevelMaps(level, overlay[key])
	}
	for _, key := range sortedKeys(overlay) {
		if _, ok := out[key]; !ok {
			out[key] = mergeLevelMaps(nil, overlay[key])
		}
	}
	return out
}

func mergeOmitRules(base, overlay []AmountOmitRule) []AmountOmitRule {
	if overlay == nil {
		return base
	}
	out := append(append([]AmountOmitRule{}, base...), overlay...)
	seen := make(map[string]bool, len(out))
	deduped := out[:0]
	for _, r := range out {
		key := r.Contains + "|" + r.MinAbs.String() + "|" + r.MaxAbs.String()
		if !seen[key] {
			seen[key] = true
			deduped = append(deduped, r)
		}
	}
	return deduped
}

func mergeCaps(base, overlay []CategoryCap) []CategoryCap {
	if overlay == nil {
		return base
	}
	out := make([]CategoryCap, 0, len(base))
	replaced := make(map[string]bool, len(overlay))
	for _, cap := range overlay {
		replaced[cap.Category] = true
	}
	for _, cap := range base {
		if !replaced[cap.Category] {
			out = append(out, cap)
		}
	}
	return append(out, overlay...)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
