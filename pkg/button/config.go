package button

// Config is the variant configuration of a button. Every field is
// independent; combinations such as Raised with Unelevated are allowed and
// simply render both modifier classes.
type Config struct {
	Raised     bool `yaml:"raised" json:"raised"`
	Unelevated bool `yaml:"unelevated" json:"unelevated"`
	Outlined   bool `yaml:"outlined" json:"outlined"`
	Dense      bool `yaml:"dense" json:"dense"`
	// Disabled is reflected as the native disabled attribute.
	Disabled bool `yaml:"disabled" json:"disabled"`
	// TrailingIcon moves the icon after the label.
	TrailingIcon bool `yaml:"trailingIcon" json:"trailingIcon"`
	// Fullwidth is reflected on the host for external styling.
	Fullwidth bool   `yaml:"fullwidth" json:"fullwidth"`
	Icon      string `yaml:"icon" json:"icon" validate:"max=256"`
	Label     string `yaml:"label" json:"label" validate:"max=256"`
	// ExpandContent lets slotted content grow to fill the button.
	ExpandContent bool `yaml:"expandContent" json:"expandContent"`
}

// Filled reports whether the button has a filled container, which selects
// the ripple's filled color mode.
func (c Config) Filled() bool {
	return c.Raised || c.Unelevated
}

// AccessibleLabel is the label, or the icon name for icon-only buttons.
func (c Config) AccessibleLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Icon
}

// HasLeadingIcon reports whether the icon renders before the label.
func (c Config) HasLeadingIcon() bool {
	return c.Icon != "" && !c.TrailingIcon
}

// HasTrailingIcon reports whether the icon renders after the label.
func (c Config) HasTrailingIcon() bool {
	return c.Icon != "" && c.TrailingIcon
}
