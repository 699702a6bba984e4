package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Node {
	btn := Element("button",
		Element("span", Text("Save")).SetClasses("label"),
		Element("span", Element("slot").SetAttr("name", "icon")).SetClasses("leading-icon"),
		nil,
	)
	btn.SetAttr("id", "button").SetBoolAttr("disabled", true)
	btn.SetClasses(ClassMap([]string{"mdc-button"},
		Class{Name: "mdc-button--raised", On: true},
		Class{Name: "mdc-button--dense", On: false},
	)...)
	return btn
}

func TestClassMapKeepsOrderAndDropsOff(t *testing.T) {
	got := ClassMap([]string{"a"}, Class{"b", true}, Class{"c", false}, Class{"", true}, Class{"d", true})
	assert.Equal(t, []string{"a", "b", "d"}, got)
}

func TestAppendSkipsNil(t *testing.T) {
	assert.Len(t, sample().Children, 2)
}

func TestBoolAttrToggles(t *testing.T) {
	n := Element("button").SetBoolAttr("disabled", true)
	assert.True(t, n.HasAttr("disabled"))
	n.SetBoolAttr("disabled", false)
	assert.False(t, n.HasAttr("disabled"))
	n.SetBoolAttr("hidden", false)
	assert.Empty(t, n.Attrs)
}

func TestSetAttrReplaces(t *testing.T) {
	n := Element("button").SetAttr("aria-label", "a").SetAttr("aria-label", "b")
	v, ok := n.Attr("aria-label")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Len(t, n.Attrs, 1)
}

func TestQueries(t *testing.T) {
	n := sample()
	assert.NotNil(t, n.FindSlot("icon"))
	assert.Nil(t, n.FindSlot(""))
	assert.Equal(t, "Save", n.FindClass("label").TextContent())
	assert.Nil(t, n.FindTag("mwc-ripple"))
	assert.True(t, n.HasClass("mdc-button--raised"))
	assert.False(t, n.HasClass("mdc-button--dense"))
}

func TestHTML(t *testing.T) {
	out, err := sample().HTML()
	require.NoError(t, err)
	assert.Equal(t,
		`<button class="mdc-button mdc-button--raised" id="button" disabled=""><span class="label">Save</span><span class="leading-icon"><slot name="icon"></slot></span></button>`,
		out)
}

func TestHTMLEscapesText(t *testing.T) {
	out, err := Element("span", Text("<b>&")).HTML()
	require.NoError(t, err)
	assert.Equal(t, "<span>&lt;b&gt;&amp;</span>", out)
}

func TestFingerprintTracksContent(t *testing.T) {
	fingerprint := func(n *Node) uint64 {
		t.Helper()
		fp, err := n.Fingerprint()
		require.NoError(t, err)
		return fp
	}
	a, b := sample(), sample()
	assert.Equal(t, fingerprint(a), fingerprint(b))
	b.SetBoolAttr("disabled", false)
	assert.NotEqual(t, fingerprint(a), fingerprint(b))
}

func TestFingerprintUnserializableTree(t *testing.T) {
	// Void elements cannot carry children.
	n := Element("span", Element("br", Text("x")))
	_, err := n.HTML()
	require.Error(t, err)

	fp, err := n.Fingerprint()
	assert.Error(t, err)
	assert.Zero(t, fp)
}
