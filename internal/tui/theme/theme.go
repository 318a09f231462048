// Package theme defines the dashboard color themes.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps dashboard roles to colors.
type Theme struct {
	Name         string
	Background   lipgloss.Color
	Surface      lipgloss.Color // cards and panels
	SurfaceHover lipgloss.Color // active tab, selected row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // focused card
	TextDim      lipgloss.Color
	TextMuted    lipgloss.Color
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color

	// Money roles
	Revenue  lipgloss.Color
	Expense  lipgloss.Color
	Positive lipgloss.Color // non-negative cash flow
	Negative lipgloss.Color // negative cash flow

	// Series is cycled through for per-year lines.
	Series []lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	Revenue:      lipgloss.Color("#4385BE"),
	Expense:      lipgloss.Color("#D14D41"),
	Positive:     lipgloss.Color("#4385BE"),
	Negative:     lipgloss.Color("#D14D41"),
	Series: []lipgloss.Color{
		"#3AA99F", "#D0A215", "#CE5D97", "#879A39", "#DA702C",
	},
}

// TokyoNight is a cool blue and purple theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	SurfaceHover: lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	Revenue:      lipgloss.Color("#7AA2F7"),
	Expense:      lipgloss.Color("#F7768E"),
	Positive:     lipgloss.Color("#7AA2F7"),
	Negative:     lipgloss.Color("#F7768E"),
	Series: []lipgloss.Color{
		"#7DCFFF", "#E0AF68", "#BB9AF7", "#9ECE6A", "#FF9E64",
	},
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	Revenue:      lipgloss.Color("4"),
	Expense:      lipgloss.Color("1"),
	Positive:     lipgloss.Color("4"),
	Negative:     lipgloss.Color("1"),
	Series: []lipgloss.Color{
		"6", "3", "5", "2", "11",
	},
}

// All available themes.
var All = []Theme{FlexokiDark, TokyoNight, Terminal}

// Names returns the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// SeriesColor returns the color for the i-th series.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	if len(t.Series) == 0 {
		return t.Accent
	}
	return t.Series[i%len(t.Series)]
}

// SignColor returns Negative for amounts below zero and Positive otherwise.
func (t Theme) SignColor(amount int64) lipgloss.Color {
	if amount < 0 {
		return t.Negative
	}
	return t.Positive
}
