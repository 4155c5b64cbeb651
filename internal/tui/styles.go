package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorAccent  = lipgloss.Color("57")
	colorBright  = lipgloss.Color("229")
	colorMuted   = lipgloss.Color("240")
	colorInfo    = lipgloss.Color("39")
	colorError   = lipgloss.Color("196")
	colorLabel   = lipgloss.Color("245")
	colorSpinner = lipgloss.Color("205")
)

//nolint:gochecknoglobals // Shared lipgloss styles, read-only after init.
var (
	// HeaderStyle renders view titles.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBright).Background(colorAccent).Padding(0, 1)

	// LabelStyle renders field labels.
	LabelStyle = lipgloss.NewStyle().Foreground(colorLabel)

	// ValueStyle renders field values.
	ValueStyle = lipgloss.NewStyle().Bold(true)

	// InfoStyle renders status messages.
	InfoStyle = lipgloss.NewStyle().Foreground(colorInfo)

	// ErrorStyle renders load errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	// SpinnerStyle colors the loading spinner.
	SpinnerStyle = lipgloss.NewStyle().Foreground(colorSpinner)

	// TableHeaderStyle renders column headers.
	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorMuted).
				BorderBottom(true).
				Bold(true).
				Padding(0, 1)

	// TableSelectedStyle highlights the cursor row.
	TableSelectedStyle = lipgloss.NewStyle().Foreground(colorBright).Background(colorAccent)

	// ControlStyle renders an enabled pagination control.
	ControlStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	// ControlDisabledStyle renders a disabled pagination control.
	ControlDisabledStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	// BarStyle frames the pagination bar.
	BarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			BorderTop(true)

	// PickerCursorStyle highlights the picker cursor row.
	PickerCursorStyle = lipgloss.NewStyle().Foreground(colorBright).Background(colorAccent).Padding(0, 1)

	// PickerItemStyle renders the other picker rows.
	PickerItemStyle = lipgloss.NewStyle().Padding(0, 1)
)
