package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)
	countStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	helpStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)
	sectionFocusStyle = sectionStyle.BorderForeground(colorFocus)

	labelStyle      = lipgloss.NewStyle().Foreground(colorSubtext0).Width(18)
	inputStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	inputFocusStyle = inputStyle.Background(colorSurface1).Foreground(colorFocus)

	buttonStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1).MarginRight(1)
	buttonFocusStyle = buttonStyle.Foreground(colorBase).Background(colorFocus).Bold(true)

	tableBorderStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	tableSelStyle    = tableCellStyle.Background(colorSurface1).Foreground(colorFocus)

	toastSuccessStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorSuccess).Padding(0, 1)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(colorBase).Background(colorError).Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(1, 2)
	searchStyle = lipgloss.NewStyle().Foreground(colorInfo)
)
