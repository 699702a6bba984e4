// Package config loads button configurations and interaction scripts from
// YAML.
//
// Files are decoded with yaml.v3 and validated with validator/v10. Validation
// failures are reported as *errors.ValidationError with a yaml-style field
// path such as "steps[2].op"; everything else is wrapped in an *errors.Error
// of kind config.
package config

import (
	"github.com/go-drift/ripplebutton/pkg/button"
	"github.com/go-drift/ripplebutton/pkg/dom"
)

// SchemaMajor is the major schema version this package reads. Files without
// a version are read as this major.
const SchemaMajor = "v1"

// Variant is a button as written in YAML.
type Variant struct {
	Version string `yaml:"version" validate:"omitempty,schema_version"`
	// Variant selects the constructor; empty means text.
	Variant string `yaml:"variant" validate:"omitempty,variant"`

	Raised        bool    `yaml:"raised"`
	Unelevated    bool    `yaml:"unelevated"`
	Outlined      bool    `yaml:"outlined"`
	Dense         bool    `yaml:"dense"`
	Disabled      bool    `yaml:"disabled"`
	TrailingIcon  bool    `yaml:"trailingIcon"`
	Fullwidth     bool    `yaml:"fullwidth"`
	Icon          string  `yaml:"icon" validate:"max=256"`
	Label         string  `yaml:"label" validate:"max=256"`
	ExpandContent bool    `yaml:"expandContent"`
	Width         float64 `yaml:"width" validate:"gte=0"`
	Height        float64 `yaml:"height" validate:"gte=0"`
}

// Button returns the variant and configuration to construct the button with.
// The variant name has already been validated.
func (v Variant) Button() (button.Variant, button.Config) {
	kind, _ := button.ParseVariant(v.Variant)
	return kind, button.Config{
		Raised:        v.Raised,
		Unelevated:    v.Unelevated,
		Outlined:      v.Outlined,
		Dense:         v.Dense,
		Disabled:      v.Disabled,
		TrailingIcon:  v.TrailingIcon,
		Fullwidth:     v.Fullwidth,
		Icon:          v.Icon,
		Label:         v.Label,
		ExpandContent: v.ExpandContent,
	}
}

// Bounds returns the button's box at the origin. Zero sizes fall back to
// button.DefaultBounds.
func (v Variant) Bounds() dom.Rect {
	w, h := v.Width, v.Height
	if w == 0 {
		w = button.DefaultBounds.Width()
	}
	if h == 0 {
		h = button.DefaultBounds.Height()
	}
	return dom.RectXYWH(0, 0, w, h)
}

// Step operations that are not dom events.
const (
	OpFlush   = "flush"
	OpAdvance = "advance"
	OpDispose = "dispose"

	// OpElementFocus and OpElementBlur focus or blur the native element
	// directly; the "focus" and "blur" ops call Surface.Focus and
	// Surface.Blur.
	OpElementFocus = "elementfocus"
	OpElementBlur  = "elementblur"
)

// Script is a button plus a list of interaction steps to replay against it.
type Script struct {
	Version string  `yaml:"version" validate:"omitempty,schema_version"`
	Button  Variant `yaml:"button"`
	Steps   []Step  `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is one scripted operation. Pointer and touch events take X and Y in
// document coordinates; when both are omitted the event lands on the
// button's center. Touch events use Touch as the touch point id. focus and
// blur call the surface's imperative operations. advance moves the clock by
// MS milliseconds and runs a frame; flush runs a frame without moving it.
type Step struct {
	Op    string   `yaml:"op" validate:"required,step_op"`
	X     *float64 `yaml:"x"`
	Y     *float64 `yaml:"y"`
	Touch int64    `yaml:"touch" validate:"gte=0"`
	MS    int      `yaml:"ms" validate:"required_if=Op advance,gte=0"`
}

// Position returns the step's coordinates, using the center of bounds for
// any that were omitted.
func (s Step) Position(bounds dom.Rect) (x, y float64) {
	x, y = bounds.Center()
	if s.X != nil {
		x = *s.X
	}
	if s.Y != nil {
		y = *s.Y
	}
	return x, y
}

// IsEvent reports whether the step dispatches a dom event.
func (s Step) IsEvent() bool {
	_, ok := dom.ParseEventType(s.Op)
	return ok
}
