package css

import (
	"lumen/pkg/html"
)

// Selector matches document nodes and carries a specificity used to
// order the cascade.
type Selector interface {
	Matches(node *html.Node) bool
	Priority() int
}

// TagSelector matches elements by tag name. Text nodes never match.
type TagSelector struct {
	Tag string
}

func (s TagSelector) Matches(node *html.Node) bool {
	return node.Type == html.ElementNode && node.TagName == s.Tag
}

func (s TagSelector) Priority() int { return 1 }

// DescendantSelector matches a node when Descendant matches it and some
// strict ancestor matches Ancestor.
type DescendantSelector struct {
	Ancestor   Selector
	Descendant Selector
}

func (s DescendantSelector) Matches(node *html.Node) bool {
	if !s.Descendant.Matches(node) {
		return false
	}
	for parent := node.Parent; parent != nil; parent = parent.Parent {
		if s.Ancestor.Matches(parent) {
			return true
		}
	}
	return false
}

func (s DescendantSelector) Priority() int {
	return s.Ancestor.Priority() + s.Descendant.Priority()
}
