package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleRule(t *testing.T) {
	rules := NewParser("p { color: red; font-size: 12px; }").Parse()
	require.Len(t, rules, 1)
	sel, ok := rules[0].Selector.(TagSelector)
	require.True(t, ok)
	assert.Equal(t, "p", sel.Tag)
	assert.Equal(t, map[string]string{
		"color":     "red",
		"font-size": "12px",
	}, rules[0].Declarations)
}

func TestParse_MultipleRules(t *testing.T) {
	rules := NewParser("a { color: blue } b { font-weight: bold }").Parse()
	require.Len(t, rules, 2)
	assert.Equal(t, "blue", rules[0].Declarations["color"])
	assert.Equal(t, "bold", rules[1].Declarations["font-weight"])
}

func TestParse_DescendantSelector(t *testing.T) {
	rules := NewParser("DIV P { color: red }").Parse()
	require.Len(t, rules, 1)
	sel, ok := rules[0].Selector.(DescendantSelector)
	require.True(t, ok)
	assert.Equal(t, TagSelector{Tag: "div"}, sel.Ancestor)
	assert.Equal(t, TagSelector{Tag: "p"}, sel.Descendant)
	assert.Equal(t, 2, sel.Priority())
}

func TestParse_DeepDescendantPriority(t *testing.T) {
	rules := NewParser("ul li a { color: blue }").Parse()
	require.Len(t, rules, 1)
	assert.Equal(t, 3, rules[0].Selector.Priority())
}

func TestBody_SkipsBadDeclaration(t *testing.T) {
	decls := NewParser("color: red; $%&; font-size: 2px").Body()
	assert.Equal(t, map[string]string{
		"color":     "red",
		"font-size": "2px",
	}, decls)
}

func TestBody_MissingFinalSemicolon(t *testing.T) {
	decls := NewParser("color: red").Body()
	assert.Equal(t, map[string]string{"color": "red"}, decls)
}

func TestBody_LowercasesProperty(t *testing.T) {
	decls := NewParser("COLOR: Red").Body()
	assert.Equal(t, "Red", decls["color"])
}

func TestParse_RecoversAfterBadRule(t *testing.T) {
	// The bad rule is skipped to its closing brace; parsing resumes with
	// the rule after it.
	rules := NewParser("a { color: red; } { color: blue; } i { font-style: italic }").Parse()
	require.Len(t, rules, 2)
	assert.Equal(t, TagSelector{Tag: "a"}, rules[0].Selector)
	assert.Equal(t, TagSelector{Tag: "i"}, rules[1].Selector)
}

func TestParse_SelectorWithStrayTokens(t *testing.T) {
	// Unknown words in selector position chain into a descendant
	// selector rather than aborting the rule.
	rules := NewParser("a { color: red; } b bad-word c { font-size: 1px; }").Parse()
	require.Len(t, rules, 2)
	assert.Equal(t, 1, rules[0].Selector.Priority())
	assert.Equal(t, 3, rules[1].Selector.Priority())
	assert.Equal(t, "1px", rules[1].Declarations["font-size"])
}

func TestParse_UnclosedRuleDropped(t *testing.T) {
	rules := NewParser("p { color: red;").Parse()
	assert.Empty(t, rules)
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, NewParser("").Parse())
	assert.Empty(t, NewParser("   \n\t ").Parse())
}

func TestParseStylesheet_DefaultSheet(t *testing.T) {
	rules := DefaultStyleSheet()
	require.NotEmpty(t, rules)
	found := false
	for _, rule := range rules {
		if sel, ok := rule.Selector.(TagSelector); ok && sel.Tag == "a" {
			found = true
			assert.Equal(t, "blue", rule.Declarations["color"])
		}
	}
	assert.True(t, found, "default sheet styles anchors")
}
