package ui

import "github.com/charmbracelet/lipgloss"

// Dark palette (One Dark)
var (
	darkFgMuted = lipgloss.Color("#636B78")
	darkRed     = lipgloss.Color("#E06C75")
	darkGreen   = lipgloss.Color("#98C379")
	darkYellow  = lipgloss.Color("#E5C07B")
	darkBlue    = lipgloss.Color("#61AFEF")
	darkMagenta = lipgloss.Color("#C678DD")
)

// Light palette
var (
	lightFgMuted = lipgloss.Color("#A0A1A7")
	lightRed     = lipgloss.Color("#CA1243")
	lightGreen   = lipgloss.Color("#50A14F")
	lightYellow  = lipgloss.Color("#C18401")
	lightBlue    = lipgloss.Color("#0184BC")
	lightMagenta = lipgloss.Color("#A626A4")
)

// Theme is the style set for one palette; the active theme follows the
// persisted dark-mode preference.
type Theme struct {
	Header    lipgloss.Style
	FilterBar lipgloss.Style
	Done      lipgloss.Style
	Overdue   lipgloss.Style
	DueToday  lipgloss.Style
	High      lipgloss.Style
	Badge     lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	BarFill   lipgloss.Style
	BarEmpty  lipgloss.Style
}

func DarkTheme() Theme {
	return Theme{
		Header:    lipgloss.NewStyle().Foreground(darkMagenta).Bold(true),
		FilterBar: lipgloss.NewStyle().Foreground(darkBlue),
		Done:      lipgloss.NewStyle().Foreground(darkFgMuted).Strikethrough(true),
		Overdue:   lipgloss.NewStyle().Foreground(darkRed).Bold(true),
		DueToday:  lipgloss.NewStyle().Foreground(darkYellow),
		High:      lipgloss.NewStyle().Foreground(darkRed),
		Badge:     lipgloss.NewStyle().Foreground(darkFgMuted),
		Status:    lipgloss.NewStyle().Foreground(darkGreen),
		Help:      lipgloss.NewStyle().Foreground(darkFgMuted),
		BarFill:   lipgloss.NewStyle().Foreground(darkGreen),
		BarEmpty:  lipgloss.NewStyle().Foreground(darkFgMuted),
	}
}

func LightTheme() Theme {
	return Theme{
		Header:    lipgloss.NewStyle().Foreground(lightMagenta).Bold(true),
		FilterBar: lipgloss.NewStyle().Foreground(lightBlue),
		Done:      lipgloss.NewStyle().Foreground(lightFgMuted).Strikethrough(true),
		Overdue:   lipgloss.NewStyle().Foreground(lightRed).Bold(true),
		DueToday:  lipgloss.NewStyle().Foreground(lightYellow),
		High:      lipgloss.NewStyle().Foreground(lightRed),
		Badge:     lipgloss.NewStyle().Foreground(lightFgMuted),
		Status:    lipgloss.NewStyle().Foreground(lightGreen),
		Help:      lipgloss.NewStyle().Foreground(lightFgMuted),
		BarFill:   lipgloss.NewStyle().Foreground(lightGreen),
		BarEmpty:  lipgloss.NewStyle().Foreground(lightFgMuted),
	}
}

func themeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
