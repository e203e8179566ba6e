package html

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is a node in the document tree: either an element or a text run.
// Children are owned in source order; Parent is a lookup-only back
// reference. Style holds the resolved property map populated by the
// cascade resolver.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
	Style      map[string]string
}

func NewElement(tag string, attributes map[string]string, parent *Node) *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    tag,
		Attributes: attributes,
		Parent:     parent,
	}
}

func NewText(text string, parent *Node) *Node {
	return &Node{
		Type:   TextNode,
		Text:   text,
		Parent: parent,
	}
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// AddChild appends a child node and sets up the parent relationship.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Walk visits n and every descendant in depth-first source order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// IsVoid reports whether tag is a void element: it cannot contain
// children and has no closing tag.
func IsVoid(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

// IsHeadOnly reports whether tag is valid only inside the document head.
func IsHeadOnly(tag string) bool {
	switch tag {
	case "base", "basefont", "bgsound", "noscript",
		"link", "meta", "title", "style", "script":
		return true
	}
	return false
}
