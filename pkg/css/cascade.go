package css

import (
	"strconv"
	"strings"

	"lumen/pkg/html"
)

// InheritedProperties lists the properties that inherit by default,
// with their root defaults.
var InheritedProperties = map[string]string{
	"color":       "black",
	"font-size":   "16px",
	"font-weight": "normal",
	"font-style":  "normal",
}

const rootFontSize = 16.0

// Style resolves the style map for node and all its descendants, parent
// before children. rules must already be sorted by ascending priority
// (see SortRules); later rules overwrite matching keys, and an inline
// style attribute overwrites everything regardless of specificity.
func Style(node *html.Node, rules []Rule) {
	node.Style = make(map[string]string)

	for property, defaultValue := range InheritedProperties {
		if node.Parent != nil {
			node.Style[property] = node.Parent.Style[property]
		} else {
			node.Style[property] = defaultValue
		}
	}

	for _, rule := range rules {
		if !rule.Selector.Matches(node) {
			continue
		}
		for property, value := range rule.Declarations {
			node.Style[property] = value
		}
	}

	if inline, ok := node.GetAttribute("style"); ok {
		for property, value := range NewParser(inline).Body() {
			node.Style[property] = value
		}
	}

	resolvePercentFontSize(node)

	for _, child := range node.Children {
		Style(child, rules)
	}
}

// resolvePercentFontSize rewrites a percentage font-size into pixels
// relative to the parent's already-resolved size. Runs after every
// other source has been applied so chains like 200% of 50% compose.
func resolvePercentFontSize(node *html.Node) {
	size := node.Style["font-size"]
	if !strings.HasSuffix(size, "%") {
		return
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(size, "%"), 64)
	if err != nil {
		pct = 100
	}
	parentPx := rootFontSize
	if node.Parent != nil {
		if px, ok := ParseLength(node.Parent.Style["font-size"]); ok {
			parentPx = px
		}
	}
	node.Style["font-size"] = FormatPx(parentPx * pct / 100)
}

// ParseLength parses a pixel length such as "16px" (a bare number is
// accepted too).
func ParseLength(value string) (float64, bool) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "px")
	px, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return px, true
}

// FormatPx renders a pixel value the way stylesheets write it.
func FormatPx(px float64) string {
	return strconv.FormatFloat(px, 'f', -1, 64) + "px"
}
