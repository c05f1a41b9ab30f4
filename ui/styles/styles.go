package styles

import "github.com/charmbracelet/lipgloss"

var (
	accent   = lipgloss.Color("141")
	muted    = lipgloss.Color("241")
	positive = lipgloss.Color("42")
	negative = lipgloss.Color("203")
	warning  = lipgloss.Color("214")
)

func HeaderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1).
		Width(width)
}

func SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted)
}

func InputStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func ButtonStyle(enabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(2).
		Bold(true)
	if enabled {
		return style.Foreground(lipgloss.Color("231")).Background(accent)
	}
	return style.Foreground(muted).Background(lipgloss.Color("237"))
}

func SpinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(accent)
}

// ResultStyle frames a verdict card in the tone's colour
func ResultStyle(positiveTone bool, width int) lipgloss.Style {
	color := negative
	if positiveTone {
		color = positive
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(1, 2).
		Align(lipgloss.Center)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func ErrorStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(negative).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(negative).
		Padding(0, 2)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func AdvisoryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(warning)
}
