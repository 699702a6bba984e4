package button

import (
	"fmt"
	"strings"

	"github.com/go-drift/ripplebutton/pkg/render"
)

// Button is what every variant exposes: the render contract plus the
// imperative focus operations.
type Button interface {
	// Render returns the current markup.
	Render() *render.Node
	// Focus focuses the native button and shows the focus ripple.
	Focus()
	// Blur removes focus and hides the focus ripple.
	Blur()
	// Config returns the current variant configuration.
	Config() Config
	// SetConfig replaces the configuration and schedules a rebuild.
	SetConfig(Config)
	// Dispose releases listeners and the ripple.
	Dispose()
}

// Variant picks the modifier a constructor forces on.
type Variant int

const (
	// Text is the flat, borderless button.
	Text Variant = iota
	// Raised has an elevated filled container.
	Raised
	// Unelevated has a flat filled container.
	Unelevated
	// Outlined has a border and no fill.
	Outlined
)

func (v Variant) String() string {
	switch v {
	case Text:
		return "text"
	case Raised:
		return "raised"
	case Unelevated:
		return "unelevated"
	case Outlined:
		return "outlined"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant parses a variant name, case-insensitively.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return Text, nil
	case "raised":
		return Raised, nil
	case "unelevated":
		return Unelevated, nil
	case "outlined":
		return Outlined, nil
	default:
		return Text, fmt.Errorf("unknown button variant %q", name)
	}
}

// Apply returns cfg with the variant's modifier switched on.
func (v Variant) Apply(cfg Config) Config {
	switch v {
	case Raised:
		cfg.Raised = true
	case Unelevated:
		cfg.Unelevated = true
	case Outlined:
		cfg.Outlined = true
	}
	return cfg
}

// New creates a surface of variant v.
func New(v Variant, cfg Config, opts Options) *Surface {
	return NewSurface(v.Apply(cfg), opts)
}

// NewText creates a text button.
func NewText(cfg Config, opts Options) *Surface { return New(Text, cfg, opts) }

// NewRaised creates a raised button.
func NewRaised(cfg Config, opts Options) *Surface { return New(Raised, cfg, opts) }

// NewUnelevated creates an unelevated button.
func NewUnelevated(cfg Config, opts Options) *Surface { return New(Unelevated, cfg, opts) }

// NewOutlined creates an outlined button.
func NewOutlined(cfg Config, opts Options) *Surface { return New(Outlined, cfg, opts) }
