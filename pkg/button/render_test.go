package button_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/render"
	rbtest "github.com/go-drift/ripplebutton/pkg/testing"
)

func TestRenderClassSet(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{
		Raised: true, Unelevated: true, Outlined: true, Dense: true, ExpandContent: true,
	})
	tree := tr.Surface.Tree()

	assert.Equal(t, "button", tree.Tag)
	id, _ := tree.Attr("id")
	assert.Equal(t, "button", id)
	assert.Equal(t, []string{
		button.ClassButton, button.ClassRaised, button.ClassUnelevated,
		button.ClassOutlined, button.ClassDense,
	}, tree.Classes)
	assert.True(t, tree.FindClass(button.ClassSlotContainer).HasClass(button.ClassFlex))
	assert.False(t, tree.HasAttr("disabled"))
}

func TestRenderAccessibleLabel(t *testing.T) {
	tests := []struct {
		name string
		cfg  button.Config
		want string
	}{
		{"label wins", button.Config{Label: "Save", Icon: "star"}, "Save"},
		{"icon only", button.Config{Icon: "star"}, "star"},
		{"empty", button.Config{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := rbtest.NewTester(t, tt.cfg)
			label, ok := tr.Surface.Tree().Attr("aria-label")
			require.True(t, ok)
			assert.Equal(t, tt.want, label)
		})
	}
}

func TestRenderHTML(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{Label: "Save", Icon: "star", Dense: true})

	out, err := tr.Surface.Tree().HTML()
	require.NoError(t, err)
	assert.Equal(t, `<button class="mdc-button mdc-button--dense" id="button" aria-label="Save">`+
		`<span class="leading-icon"><slot name="icon"><mwc-icon class="mdc-button__icon">star</mwc-icon></slot></span>`+
		`<span class="mdc-button__label">Save</span>`+
		`<span class="slot-container"><slot></slot></span>`+
		`<span class="trailing-icon"><slot name="trailingIcon"></slot></span>`+
		`</button>`, out)
}

func TestHostAttributes(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{Label: "OK"})
	assert.Empty(t, tr.Surface.HostAttributes())

	tr.Surface.Update(func(cfg *button.Config) {
		cfg.Disabled = true
		cfg.Fullwidth = true
	})
	assert.Equal(t, []render.Attr{
		{Name: "disabled", Bool: true},
		{Name: "fullwidth", Bool: true},
	}, tr.Surface.HostAttributes())

	host := tr.Surface.RenderHost()
	assert.Equal(t, button.TagHost, host.Tag)
	require.Len(t, host.Children, 1)
	assert.Equal(t, "button", host.Children[0].Tag)
}

func TestVariantConstructors(t *testing.T) {
	opts := button.Options{}
	assert.Equal(t, button.Config{}, button.NewText(button.Config{}, opts).Config())
	assert.True(t, button.NewRaised(button.Config{}, opts).Config().Raised)
	assert.True(t, button.NewUnelevated(button.Config{}, opts).Config().Unelevated)
	assert.True(t, button.NewOutlined(button.Config{}, opts).Config().Outlined)

	var b button.Button = button.NewRaised(button.Config{Label: "OK"}, opts)
	assert.NotPanics(t, b.Focus)
	assert.Equal(t, "OK", b.Config().Label)
	b.Dispose()
}

func TestParseVariant(t *testing.T) {
	for _, v := range []button.Variant{button.Text, button.Raised, button.Unelevated, button.Outlined} {
		got, err := button.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	got, err := button.ParseVariant(" Raised ")
	require.NoError(t, err)
	assert.Equal(t, button.Raised, got)

	_, err = button.ParseVariant("floating")
	assert.Error(t, err)
}
