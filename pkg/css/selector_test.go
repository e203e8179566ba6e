package css

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumen/pkg/html"
)

func TestTagSelector_Matches(t *testing.T) {
	root := html.Parse("<div><p>hello</p></div>")
	body := root.Children[0]
	div := body.Children[0]
	p := div.Children[0]
	text := p.Children[0]

	sel := TagSelector{Tag: "p"}
	assert.False(t, sel.Matches(div))
	assert.True(t, sel.Matches(p))
	assert.False(t, sel.Matches(text), "text nodes never match")
}

func TestDescendantSelector_Matches(t *testing.T) {
	root := html.Parse("<div><section><p>x</p></section></div>")
	body := root.Children[0]
	div := body.Children[0]
	section := div.Children[0]
	p := section.Children[0]

	tests := []struct {
		name       string
		ancestor   string
		descendant string
		target     *html.Node
		want       bool
	}{
		{"direct parent", "section", "p", p, true},
		{"skipping a level", "div", "p", p, true},
		{"implied body counts", "body", "p", p, true},
		{"self is not an ancestor", "p", "p", p, false},
		{"no matching ancestor", "article", "p", p, false},
		{"descendant part must match", "div", "p", section, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := DescendantSelector{
				Ancestor:   TagSelector{Tag: tt.ancestor},
				Descendant: TagSelector{Tag: tt.descendant},
			}
			assert.Equal(t, tt.want, sel.Matches(tt.target))
		})
	}
}

func TestSelector_Priority(t *testing.T) {
	tag := TagSelector{Tag: "p"}
	assert.Equal(t, 1, tag.Priority())

	two := DescendantSelector{Ancestor: TagSelector{Tag: "div"}, Descendant: tag}
	assert.Equal(t, 2, two.Priority())

	three := DescendantSelector{Ancestor: two, Descendant: TagSelector{Tag: "a"}}
	assert.Equal(t, 3, three.Priority())
}

func TestSortRules_StableAscending(t *testing.T) {
	red := map[string]string{"color": "red"}
	blue := map[string]string{"color": "blue"}
	rules := []Rule{
		{Selector: DescendantSelector{Ancestor: TagSelector{Tag: "div"}, Descendant: TagSelector{Tag: "p"}}, Declarations: red},
		{Selector: TagSelector{Tag: "p"}, Declarations: blue},
		{Selector: TagSelector{Tag: "a"}, Declarations: red},
	}
	SortRules(rules)

	assert.Equal(t, 1, rules[0].Selector.Priority())
	assert.Equal(t, 1, rules[1].Selector.Priority())
	assert.Equal(t, 2, rules[2].Selector.Priority())
	// Equal priorities keep their source order.
	assert.Equal(t, TagSelector{Tag: "p"}, rules[0].Selector)
	assert.Equal(t, TagSelector{Tag: "a"}, rules[1].Selector)
}
