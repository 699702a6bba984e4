// Package render describes rendered markup as a tree of nodes.
//
// Surfaces produce a fresh [Node] tree on every build. The tree can be
// queried (tests and the rasterizer read it), serialized to HTML, and
// fingerprinted so a host can skip committing identical output.
package render

import (
	"strings"
)

// Attr is a single attribute. Boolean attributes have an empty Value and
// Bool set.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Bool  bool   `json:"bool,omitempty"`
}

// Node is an element or, when Tag is empty, a text node.
type Node struct {
	Tag      string   `json:"tag,omitempty"`
	Text     string   `json:"text,omitempty"`
	Classes  []string `json:"classes,omitempty"`
	Attrs    []Attr   `json:"attrs,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

// Element creates an element node. Nil children are skipped so optional
// content can be passed inline.
func Element(tag string, children ...*Node) *Node {
	n := &Node{Tag: tag}
	n.Append(children...)
	return n
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Append adds non-nil children.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// SetAttr sets a valued attribute, replacing any previous value.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i] = Attr{Name: name, Value: value}
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// SetBoolAttr adds a boolean attribute when on, and removes it otherwise.
func (n *Node) SetBoolAttr(name string, on bool) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			if on {
				n.Attrs[i] = Attr{Name: name, Bool: true}
			} else {
				n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			}
			return n
		}
	}
	if on {
		n.Attrs = append(n.Attrs, Attr{Name: name, Bool: true})
	}
	return n
}

// SetClasses replaces the class list.
func (n *Node) SetClasses(classes ...string) *Node {
	n.Classes = append([]string(nil), classes...)
	return n
}

// Attr returns an attribute's value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// HasClass reports whether the class list contains class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first node in depth-first order, n included, for which
// match returns true.
func (n *Node) Find(match func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindTag returns the first element with the given tag.
func (n *Node) FindTag(tag string) *Node {
	return n.Find(func(x *Node) bool { return x.Tag == tag })
}

// FindClass returns the first element carrying class.
func (n *Node) FindClass(class string) *Node {
	return n.Find(func(x *Node) bool { return x.HasClass(class) })
}

// FindSlot returns the slot element with the given name; "" finds the
// default slot.
func (n *Node) FindSlot(name string) *Node {
	return n.Find(func(x *Node) bool {
		if x.Tag != "slot" {
			return false
		}
		v, _ := x.Attr("name")
		return v == name
	})
}

// TextContent concatenates all descendant text, trimmed.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.collectText(&sb)
	return strings.TrimSpace(sb.String())
}

func (n *Node) collectText(sb *strings.Builder) {
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.collectText(sb)
	}
}
