// Package raster draws a rendered button and its ripple state to an image.
//
// Snapshots are meant for eyeballing replays and for golden comparisons of
// coarse layout: the container style, the label and icon text in their
// slots, and the ripple overlays. They are not a styling engine.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/dom"
	"github.com/go-drift/ripplebutton/pkg/errors"
	"github.com/go-drift/ripplebutton/pkg/render"
	"github.com/go-drift/ripplebutton/pkg/ripple"
)

// Palette colors.
var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Primary    = color.RGBA{0x62, 0x00, 0xee, 0xff}
	OnPrimary  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Disabled   = color.RGBA{0xbd, 0xbd, 0xbd, 0xff}
	Outline    = color.RGBA{0x9e, 0x9e, 0x9e, 0xff}
)

const (
	padding     = 8
	iconSpacing = 6
)

// Options configures a snapshot.
type Options struct {
	// Bounds is the button's box. Empty uses button.DefaultBounds.
	Bounds dom.Rect
	// Scale multiplies the output size. Zero means 1.
	Scale int
}

// Snapshot draws tree, the markup of a button surface, with the ripple in
// state. Passing the zero State draws no overlays.
func Snapshot(tree *render.Node, state ripple.State, opts Options) (*image.RGBA, error) {
	if tree == nil || tree.Tag != "button" {
		return nil, &errors.Error{Op: "raster.Snapshot", Kind: errors.KindRender, Err: fmt.Errorf("not a button tree")}
	}
	bounds := opts.Bounds
	if !bounds.IsValid() {
		bounds = button.DefaultBounds
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	w, h := int(bounds.Width()), int(bounds.Height())
	canvas := image.NewRGBA(image.Rect(0, 0, w+2*padding, h+2*padding))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	box := image.Rect(padding, padding, padding+w, padding+h)

	disabled := tree.HasAttr("disabled")
	filled := tree.HasClass(button.ClassRaised) || tree.HasClass(button.ClassUnelevated)
	ink, text := Primary, Primary
	switch {
	case disabled && filled:
		fill(canvas, box, Disabled)
		ink, text = OnPrimary, OnPrimary
	case disabled:
		ink, text = Disabled, Disabled
	case filled:
		fill(canvas, box, Primary)
		ink, text = OnPrimary, OnPrimary
	}
	if tree.HasClass(button.ClassOutlined) {
		stroke(canvas, box, Outline)
	}

	overlay(canvas, box, ink, state.HoverOpacity)
	overlay(canvas, box, ink, state.FocusOpacity)
	if state.WaveOpacity > 0 && state.Radius > 0 {
		center := image.Pt(box.Min.X+int(state.OriginX), box.Min.Y+int(state.OriginY))
		wave := &circle{center: center, r: int(state.Radius)}
		draw.DrawMask(canvas, box, &image.Uniform{C: withAlpha(ink, state.WaveOpacity)}, image.Point{}, wave, box.Min, draw.Over)
	}

	drawContent(canvas, box, tree, text)

	if scale == 1 {
		return canvas, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, canvas.Bounds().Dx()*scale, canvas.Bounds().Dy()*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return out, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return &errors.Error{Op: "raster.Encode", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// drawContent lays out leading icon, label and trailing icon centered in box.
func drawContent(dst *image.RGBA, box image.Rectangle, tree *render.Node, c color.Color) {
	face := basicfont.Face7x13
	var parts []string
	if n := tree.FindSlot(button.SlotIcon); n != nil {
		if s := n.TextContent(); s != "" {
			parts = append(parts, "["+s+"]")
		}
	}
	if n := tree.FindClass(button.ClassLabel); n != nil {
		if s := n.TextContent(); s != "" {
			parts = append(parts, s)
		}
	}
	if n := tree.FindSlot(button.SlotTrailingIcon); n != nil {
		if s := n.TextContent(); s != "" {
			parts = append(parts, "["+s+"]")
		}
	}
	if len(parts) == 0 {
		return
	}

	widths := make([]int, len(parts))
	total := iconSpacing * (len(parts) - 1)
	for i, p := range parts {
		widths[i] = font.MeasureString(face, p).Ceil()
		total += widths[i]
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	baseline := box.Min.Y + (box.Dy()+ascent-metrics.Descent.Ceil())/2
	x := box.Min.X + (box.Dx()-total)/2

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	for i, p := range parts {
		d.Dot = fixed.P(x, baseline)
		d.DrawString(p)
		x += widths[i] + iconSpacing
	}
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func overlay(dst *image.RGBA, r image.Rectangle, c color.RGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	draw.Draw(dst, r, &image.Uniform{C: withAlpha(c, opacity)}, image.Point{}, draw.Over)
}

func stroke(dst *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, c)
		dst.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, c)
		dst.Set(r.Max.X-1, y, c)
	}
}

func withAlpha(c color.RGBA, opacity float64) color.NRGBA {
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity * 0xff)}
}

// circle is an alpha mask of a filled disc.
type circle struct {
	center image.Point
	r      int
}

func (c *circle) ColorModel() color.Model { return color.AlphaModel }

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(c.center.X-c.r, c.center.Y-c.r, c.center.X+c.r, c.center.Y+c.r)
}

func (c *circle) At(x, y int) color.Color {
	dx, dy := x-c.center.X, y-c.center.Y
	if dx*dx+dy*dy <= c.r*c.r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}
