package css

import (
	_ "embed"
	"sort"
	"sync"
)

// Rule pairs a selector with its declarations.
type Rule struct {
	Selector     Selector
	Declarations map[string]string
}

// ParseStylesheet parses CSS text into an ordered rule list. Malformed
// rules and declarations are skipped, never fatal.
func ParseStylesheet(css string) []Rule {
	return NewParser(css).Parse()
}

// SortRules orders rules by ascending specificity, preserving source
// order among equal priorities so that later rules win ties.
func SortRules(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Selector.Priority() < rules[j].Selector.Priority()
	})
}

//go:embed default.css
var defaultCSS string

var (
	defaultSheetOnce sync.Once
	defaultSheet     []Rule
)

// DefaultStyleSheet returns the built-in user agent rules, parsed once.
// Callers must treat the returned slice as immutable.
func DefaultStyleSheet() []Rule {
	defaultSheetOnce.Do(func() {
		defaultSheet = ParseStylesheet(defaultCSS)
	})
	return defaultSheet
}
