package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gleemora/survivors/internal/loader"
	"github.com/gleemora/survivors/internal/pagination"
	"github.com/gleemora/survivors/internal/survivor"
)

// detailLabelWidth aligns labels in the detail view.
const detailLabelWidth = 22

//nolint:gochecknoglobals // Printer is safe for concurrent use and read-only.
var countPrinter = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// View renders the current view (Bubble Tea interface).
func (m *SurvivorsModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStatePicker:
		return m.renderPickerView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderListView renders the loading line, the table, the pagination bar and help.
// The loading indicator sits above the table rather than replacing it.
func (m *SurvivorsModel) renderListView() string {
	var sections []string

	if m.loader.Loading() {
		sections = append(sections, RenderLoading(m.loading))
	}

	if line := m.renderLoadError(); line != "" {
		sections = append(sections, line)
	}

	sections = append(sections,
		m.table.View(),
		m.renderPaginationBar(),
		m.help.View(m.keys),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLoadError returns the error line, or "" when errors are silent or the
// load did not fail.
func (m *SurvivorsModel) renderLoadError() string {
	if !m.showLoadErrors || m.loader.Canceled() {
		return ""
	}

	switch m.loader.Failure() {
	case loader.FailureNetwork:
		return ErrorStyle.Render("Could not reach the survivor service.")
	case loader.FailureMalformed:
		return ErrorStyle.Render("The survivor service sent an unexpected response.")
	default:
		return ""
	}
}

// renderPaginationBar renders "Rows per page", the displayed range, the page
// indicator and the four navigation controls.
func (m *SurvivorsModel) renderPaginationBar() string {
	count := m.loader.Count()
	controls := m.pager.Controls(count)
	from, to := pagination.DisplayedRows(count, m.pager.Page, m.pager.PageSize)

	rowsPerPage := LabelStyle.Render("Rows per page:") + " " +
		ValueStyle.Render(pagination.PageSizeLabel(m.pager.PageSize))
	rangeText := FormatCount(from) + "–" + FormatCount(to) + " of " + FormatCount(count)
	page := LabelStyle.Render("Page") + " " + m.paginator.View()

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		rowsPerPage, "   ",
		rangeText, "   ",
		page, "  ",
		renderControl("«", controls.First),
		renderControl("‹", controls.Previous),
		renderControl("›", controls.Next),
		renderControl("»", controls.Last),
	)
	return BarStyle.Render(bar)
}

func renderControl(label string, enabled bool) string {
	if enabled {
		return ControlStyle.Render(label)
	}
	return ControlDisabledStyle.Render(label)
}

func (m *SurvivorsModel) renderPickerView() string {
	if m.picker == nil {
		return m.renderListView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.picker.View(), "", m.help.View(m.picker.KeyMap()))
}

// renderDetailView shows every field of the selected record untruncated.
func (m *SurvivorsModel) renderDetailView() string {
	rec, ok := m.SelectedRecord()
	if !ok {
		return m.renderListView()
	}
	return RenderSurvivorDetail(rec, m.formatter, m.width)
}

// RenderSurvivorDetail renders one record as a labeled field list wrapped to width.
func RenderSurvivorDetail(rec survivor.Record, f survivor.Formatter, width int) string {
	titles := survivor.ColumnTitles()
	cells := f.Cells(rec)

	valueWidth := max(width-detailLabelWidth-1, minWidth/2)
	valueStyle := lipgloss.NewStyle().Width(valueWidth)

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(rec.Name))
	sb.WriteString("\n\n")
	for i, title := range titles {
		label := LabelStyle.Width(detailLabelWidth).Render(title)
		value := cells[i]
		if value == "" {
			value = "-"
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, " ", valueStyle.Render(value)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("esc back · q quit"))
	return sb.String()
}
