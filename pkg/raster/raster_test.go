package raster_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/raster"
	"github.com/go-drift/ripplebutton/pkg/render"
	"github.com/go-drift/ripplebutton/pkg/ripple"
	rbtest "github.com/go-drift/ripplebutton/pkg/testing"
)

// corner is a pixel inside the button box, clear of the label.
const corner = 10

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestSnapshotContainer(t *testing.T) {
	tests := []struct {
		name string
		cfg  button.Config
		want color.RGBA
	}{
		{"raised", button.Config{Raised: true, Label: "OK"}, raster.Primary},
		{"disabled raised", button.Config{Raised: true, Disabled: true, Label: "OK"}, raster.Disabled},
		{"text", button.Config{Label: "OK"}, raster.Background},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := rbtest.NewTester(t, tt.cfg)
			img, err := raster.Snapshot(tr.Surface.Tree(), ripple.State{}, raster.Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rgba(img.At(corner, corner)))
		})
	}
}

func TestSnapshotOutlinedHasBorder(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{Outlined: true, Label: "OK"})
	img, err := raster.Snapshot(tr.Surface.Tree(), ripple.State{}, raster.Options{})
	require.NoError(t, err)

	assert.Equal(t, raster.Outline, rgba(img.At(8, 20)))
	assert.Equal(t, raster.Background, rgba(img.At(corner, corner)))
}

func TestSnapshotDrawsLabel(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{Label: "SAVE"})
	img, err := raster.Snapshot(tr.Surface.Tree(), ripple.State{}, raster.Options{})
	require.NoError(t, err)

	inked := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rgba(img.At(x, y)) != raster.Background {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 20)
}

func TestSnapshotRippleOverlays(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{Raised: true})
	state := ripple.State{
		OriginX:      44,
		OriginY:      18,
		Radius:       60,
		WaveOpacity:  ripple.PressOpacity,
		HoverOpacity: ripple.HoverOpacity,
	}
	img, err := raster.Snapshot(tr.Surface.Tree(), state, raster.Options{})
	require.NoError(t, err)

	got := rgba(img.At(corner, corner))
	assert.NotEqual(t, raster.Primary, got)
	assert.Greater(t, got.G, raster.Primary.G, "white ink lightens the filled container")
}

func TestSnapshotScaleAndEncode(t *testing.T) {
	tr := rbtest.NewTester(t, button.Config{Label: "OK"})
	img, err := raster.Snapshot(tr.Surface.Tree(), ripple.State{}, raster.Options{Scale: 2})
	require.NoError(t, err)

	small, err := raster.Snapshot(tr.Surface.Tree(), ripple.State{}, raster.Options{})
	require.NoError(t, err)
	assert.Equal(t, small.Bounds().Dx()*2, img.Bounds().Dx())
	assert.Equal(t, small.Bounds().Dy()*2, img.Bounds().Dy())

	var buf bytes.Buffer
	require.NoError(t, raster.Encode(&buf, img))
	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), cfg.Width)
}

func TestSnapshotRejectsNonButton(t *testing.T) {
	_, err := raster.Snapshot(nil, ripple.State{}, raster.Options{})
	assert.Error(t, err)
	_, err = raster.Snapshot(render.Element("div"), ripple.State{}, raster.Options{})
	assert.Error(t, err)
}
