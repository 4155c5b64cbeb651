package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ViewState is the screen a model is currently showing.
type ViewState int

const (
	// ViewStateList shows the table and pagination bar.
	ViewStateList ViewState = iota
	// ViewStateDetail shows every field of the selected record.
	ViewStateDetail
	// ViewStatePicker shows the rows-per-page picker.
	ViewStatePicker
	// ViewStateQuitting is set once the program is shutting down.
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStatePicker:
		return "picker"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Default terminal dimensions, used until the first tea.WindowSizeMsg.
const (
	defaultWidth  = 120
	defaultHeight = 30
	minWidth      = 40
	minHeight     = 5

	// chromeHeight is the number of lines around the table: loading line,
	// table header and border, pagination bar and help.
	chromeHeight = 8
)

// LoadingState wraps the spinner shown while the fetch is outstanding.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading indicator with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return &LoadingState{spinner: s, message: "Loading survivors..."}
}

// Init starts the spinner animation.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// RenderLoading renders the spinner followed by the loading message.
func RenderLoading(l *LoadingState) string {
	if l == nil {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, l.spinner.View(), " ", InfoStyle.Render(l.message))
}

// OutputMode is the way results are presented on stdout.
type OutputMode int

const (
	// OutputModePlain writes an unstyled table, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a styled static table.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// DetectOutputMode picks the output mode from flags, environment and the terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if forceColor {
		return OutputModeStyled
	}
	if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !IsTerminal() {
		return OutputModePlain
	}
	if os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsTerminal reports whether both stdin and stdout are terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// TerminalWidth returns the stdout terminal width, or the default width.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
