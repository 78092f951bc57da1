package render

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder   = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber   = lipgloss.NewStyle().Foreground(colorCyan)
	styleOverflow = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	stylePlain    = lipgloss.NewStyle()
)

// kindStyles colors canvas cells by the kind of node that drew them.
var kindStyles = map[Kind]lipgloss.Style{
	KindWindow:    lipgloss.NewStyle().Foreground(colorDim),
	KindText:      lipgloss.NewStyle().Foreground(colorWhite),
	KindLink:      lipgloss.NewStyle().Foreground(colorBlue).Underline(true),
	KindButton:    lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
	KindEdit:      lipgloss.NewStyle().Foreground(colorYellow),
	KindSeparator: lipgloss.NewStyle().Foreground(colorGray),
}

func styleFor(k Kind) lipgloss.Style {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return stylePlain
}
