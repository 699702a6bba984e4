package render

import (
	"bytes"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML serializes the tree.
func (n *Node) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n.toHTML()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fingerprint hashes the serialized tree. Equal trees have equal
// fingerprints. A tree that cannot be serialized returns the error and no
// fingerprint.
func (n *Node) Fingerprint() (uint64, error) {
	out, err := n.HTML()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64String(out), nil
}

func (n *Node) toHTML() *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if len(n.Classes) > 0 {
		hn.Attr = append(hn.Attr, html.Attribute{Key: "class", Val: strings.Join(n.Classes, " ")})
	}
	for _, a := range n.Attrs {
		hn.Attr = append(hn.Attr, html.Attribute{Key: a.Name, Val: a.Value})
	}
	for _, c := range n.Children {
		hn.AppendChild(c.toHTML())
	}
	return hn
}
