package button

import (
	"github.com/go-drift/ripplebutton/pkg/render"
	"github.com/go-drift/ripplebutton/pkg/ripple"
)

// Class names of the rendered markup.
const (
	ClassButton        = "mdc-button"
	ClassRaised        = "mdc-button--raised"
	ClassUnelevated    = "mdc-button--unelevated"
	ClassOutlined      = "mdc-button--outlined"
	ClassDense         = "mdc-button--dense"
	ClassLabel         = "mdc-button__label"
	ClassIcon          = "mdc-button__icon"
	ClassLeadingIcon   = "leading-icon"
	ClassTrailingIcon  = "trailing-icon"
	ClassSlotContainer = "slot-container"
	ClassFlex          = "flex"

	SlotIcon         = "icon"
	SlotTrailingIcon = "trailingIcon"

	TagHost   = "mwc-button"
	TagRipple = "mwc-ripple"
	TagIcon   = "mwc-icon"
)

// Render builds the button markup from the current configuration and mount
// state. It has no side effects.
func (s *Surface) Render() *render.Node {
	cfg := s.config.Value()

	btn := render.Element("button",
		s.renderRipple(),
		render.Element("span",
			render.Element("slot", s.renderIcon(cfg.HasLeadingIcon())).SetAttr("name", SlotIcon),
		).SetClasses(ClassLeadingIcon),
		render.Element("span", render.Text(cfg.Label)).SetClasses(ClassLabel),
		render.Element("span",
			render.Element("slot"),
		).SetClasses(render.ClassMap([]string{ClassSlotContainer},
			render.Class{Name: ClassFlex, On: cfg.ExpandContent})...),
		render.Element("span",
			render.Element("slot", s.renderIcon(cfg.HasTrailingIcon())).SetAttr("name", SlotTrailingIcon),
		).SetClasses(ClassTrailingIcon),
	)
	btn.SetAttr("id", "button")
	btn.SetClasses(render.ClassMap([]string{ClassButton},
		render.Class{Name: ClassRaised, On: cfg.Raised},
		render.Class{Name: ClassUnelevated, On: cfg.Unelevated},
		render.Class{Name: ClassOutlined, On: cfg.Outlined},
		render.Class{Name: ClassDense, On: cfg.Dense},
	)...)
	btn.SetBoolAttr("disabled", cfg.Disabled)
	btn.SetAttr("aria-label", cfg.AccessibleLabel())
	return btn
}

// HostAttributes returns the attributes reflected on the host element for
// external styling.
func (s *Surface) HostAttributes() []render.Attr {
	return s.hostNode(nil).Attrs
}

// RenderHost wraps the button in the host element.
func (s *Surface) RenderHost() *render.Node {
	return s.hostNode(s.Render())
}

func (s *Surface) hostNode(child *render.Node) *render.Node {
	cfg := s.config.Value()
	return render.Element(TagHost, child).
		SetBoolAttr("disabled", cfg.Disabled).
		SetBoolAttr("fullwidth", cfg.Fullwidth)
}

func (s *Surface) renderRipple() *render.Node {
	if s.mount.Value() == ripple.MountNotRequested {
		return nil
	}
	props := s.RippleProps()
	return render.Element(TagRipple).
		SetBoolAttr("primary", props.Primary()).
		SetBoolAttr("disabled", props.Disabled)
}

func (s *Surface) renderIcon(show bool) *render.Node {
	if !show {
		return nil
	}
	return render.Element(TagIcon, render.Text(s.config.Value().Icon)).SetClasses(ClassIcon)
}
