package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gleemora/survivors/internal/loader"
	"github.com/gleemora/survivors/internal/logging"
	"github.com/gleemora/survivors/internal/pagination"
	"github.com/gleemora/survivors/internal/survivor"
	"github.com/gleemora/survivors/internal/tui/picker"
)

// Column widths in display cells, in column order.
//
//nolint:gochecknoglobals // Read-only layout table.
var columnWidths = []int{20, 28, 16, 16, 16, 5, 24, 30, 12, 10, 24, 30}

// survivorsLoadedMsg carries the fetch result back into Update.
type survivorsLoadedMsg struct {
	result loader.Result
}

// Options configures a SurvivorsModel.
type Options struct {
	// PageSize is the initial rows per page; zero means pagination.DefaultPageSize.
	PageSize int

	// ShowLoadErrors renders a distinct error line when the fetch fails.
	// When false a failed load looks like an empty result.
	ShowLoadErrors bool

	// Location is the zone dates are shown in. Nil means local time.
	Location *time.Location
}

// SurvivorsModel is the Bubble Tea model for the paginated survivor table.
// It owns the loader of its record set and the pagination state; both change
// only inside Update.
type SurvivorsModel struct {
	// View state
	state   ViewState
	loader  *loader.Loader
	pager   pagination.State
	rows    []survivor.Record          // Visible slice of the current page
	rowKeys []string                   // Row keys (emails) in table order
	byKey   map[string]survivor.Record // Visible records by key

	// Interactive components
	table     table.Model
	paginator paginator.Model
	picker    *picker.Model[int]
	help      help.Model
	keys      keyMap
	loading   *LoadingState

	// Display configuration
	formatter      survivor.Formatter
	showLoadErrors bool
	width          int
	height         int

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	live   bool
}

// NewSurvivorsModel creates a model that loads its records through ldr when
// the program starts. Canceling ctx or quitting abandons the fetch.
func NewSurvivorsModel(ctx context.Context, ldr *loader.Loader, opts Options) *SurvivorsModel {
	pageSize := opts.PageSize
	if pageSize == 0 {
		pageSize = pagination.DefaultPageSize
	}

	ctx, cancel := context.WithCancel(ctx)

	p := paginator.New()
	p.Type = paginator.Arabic

	m := &SurvivorsModel{
		state:          ViewStateList,
		loader:         ldr,
		pager:          pagination.NewState(pageSize),
		paginator:      p,
		help:           help.New(),
		keys:           defaultKeyMap(),
		loading:        NewLoadingState(),
		formatter:      survivor.Formatter{Location: opts.Location},
		showLoadErrors: opts.ShowLoadErrors,
		width:          defaultWidth,
		height:         defaultHeight,
		ctx:            ctx,
		cancel:         cancel,
		live:           true,
	}
	m.table = newSurvivorsTable()
	m.refreshTable()
	return m
}

func newSurvivorsTable() table.Model {
	titles := survivor.ColumnTitles()
	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		columns[i] = table.Column{Title: title, Width: columnWidths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}

// Init starts the one fetch of the model's lifetime.
func (m *SurvivorsModel) Init() tea.Cmd {
	if !m.loader.Begin() {
		return nil
	}

	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
		Str("component", "tui").
		Msg("survivor fetch started")

	ldr, ctx := m.loader, m.ctx
	fetch := func() tea.Msg {
		return survivorsLoadedMsg{result: ldr.Fetch(ctx)}
	}
	return tea.Batch(m.loading.Init(), fetch)
}

// Update handles messages and updates the model state.
func (m *SurvivorsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.live {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshTable()
		return m, nil

	case survivorsLoadedMsg:
		return m.handleLoaded(msg)

	case picker.ChosenMsg[int]:
		m.pager = m.pager.WithPageSize(msg.Item.Value)
		m.picker = nil
		m.state = ViewStateList
		m.refreshTable()
		return m, nil

	case picker.CanceledMsg:
		m.picker = nil
		m.state = ViewStateList
		return m, nil
	}

	if _, ok := msg.(spinner.TickMsg); ok {
		if !m.loader.Loading() {
			return m, nil
		}
		return m, m.loading.Update(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case ViewStateList:
		return m.handleListKey(keyMsg)
	case ViewStateDetail:
		return m.handleDetailKey(keyMsg)
	case ViewStatePicker:
		return m.handlePickerKey(keyMsg)
	default:
		return m, nil
	}
}

func (m *SurvivorsModel) handleLoaded(msg survivorsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loader.Settle(msg.result)

	log := logging.FromContext(m.ctx)
	if err := m.loader.Err(); err != nil {
		log.Warn().Ctx(m.ctx).
			Str("component", "tui").
			Str("failure", m.loader.Failure().String()).
			Err(err).
			Msg("survivor fetch failed")
	} else {
		log.Info().Ctx(m.ctx).
			Str("component", "tui").
			Int("records", m.loader.Count()).
			Msg("survivor fetch settled")
	}

	m.refreshTable()
	return m, nil
}

func (m *SurvivorsModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.First):
		m.navigate(pagination.ActionFirst)
	case key.Matches(msg, m.keys.Previous):
		m.navigate(pagination.ActionPrevious)
	case key.Matches(msg, m.keys.Next):
		m.navigate(pagination.ActionNext)
	case key.Matches(msg, m.keys.Last):
		m.navigate(pagination.ActionLast)
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.PageSize):
		m.openPicker()
	case key.Matches(msg, m.keys.Detail):
		if _, ok := m.SelectedRecord(); ok {
			m.state = ViewStateDetail
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *SurvivorsModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Back):
		m.state = ViewStateList
	}
	return m, nil
}

func (m *SurvivorsModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}
	if m.picker == nil {
		m.state = ViewStateList
		return m, nil
	}
	_, cmd := m.picker.Update(msg)
	return m, cmd
}

// navigate applies action when its control is enabled.
func (m *SurvivorsModel) navigate(action pagination.Action) {
	count := m.loader.Count()
	if !m.pager.Controls(count).Enabled(action) {
		return
	}
	m.pager = m.pager.Apply(action, count)
	m.refreshTable()
}

func (m *SurvivorsModel) openPicker() {
	options := pagination.PageSizeOptions()
	items := make([]picker.Item[int], len(options))
	for i, opt := range options {
		items[i] = picker.Item[int]{Label: opt.Label, Value: opt.Value}
	}

	m.picker = picker.New("Rows per page", items, pagination.OptionIndex(m.pager.PageSize), renderPickerItem)
	m.state = ViewStatePicker
}

func renderPickerItem(item picker.Item[int], selected bool) string {
	if selected {
		return PickerCursorStyle.Render(item.Label)
	}
	return PickerItemStyle.Render(item.Label)
}

// quit tears the view down: the fetch context is canceled and any result
// arriving afterwards is dropped.
func (m *SurvivorsModel) quit() tea.Cmd {
	m.Close()
	m.state = ViewStateQuitting
	return tea.Quit
}

// Close cancels an outstanding fetch and stops the model from accepting messages.
// It is safe to call more than once.
func (m *SurvivorsModel) Close() {
	m.live = false
	m.cancel()
}

// refreshTable re-derives the visible slice, the table rows and the paginator
// from the loader and pagination state.
func (m *SurvivorsModel) refreshTable() {
	records := m.loader.Records()
	count := len(records)

	m.rows = pagination.VisibleSlice(records, m.pager.Page, m.pager.PageSize)
	m.rowKeys = make([]string, len(m.rows))
	m.byKey = make(map[string]survivor.Record, len(m.rows))

	rows := make([]table.Row, len(m.rows))
	for i, rec := range m.rows {
		m.rowKeys[i] = rec.Key()
		m.byKey[rec.Key()] = rec
		cells := m.formatter.Cells(rec)
		for c := range cells {
			cells[c] = survivor.Truncate(cells[c], columnWidths[c])
		}
		rows[i] = table.Row(cells)
	}

	m.table.SetRows(rows)
	m.table.SetWidth(max(m.width, minWidth))
	m.table.SetHeight(m.rowLines() + lipgloss.Height(TableHeaderStyle.Render("")))
	if m.table.Cursor() >= len(rows) || m.table.Cursor() < 0 {
		m.table.SetCursor(0)
	}

	perPage := m.pager.PageSize
	if perPage <= 0 {
		perPage = max(count, 1)
	}
	m.paginator.PerPage = perPage
	m.paginator.SetTotalPages(count)
	if m.paginator.TotalPages < 1 {
		m.paginator.TotalPages = 1
	}
	m.paginator.Page = m.pager.Page
}

// rowLines is the number of row lines the table reserves: the visible rows
// plus filler rows on a final partial page, bounded by the terminal.
func (m *SurvivorsModel) rowLines() int {
	h := len(m.rows) + pagination.EmptyRowCount(m.pager.Page, m.pager.PageSize, m.loader.Count())
	if limit := m.height - chromeHeight; limit >= minHeight && h > limit {
		h = limit
	}
	return max(h, 1)
}

// SelectedRecord returns the record under the table cursor, resolved through
// its email key.
func (m *SurvivorsModel) SelectedRecord() (survivor.Record, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rowKeys) {
		return survivor.Record{}, false
	}
	rec, ok := m.byKey[m.rowKeys[cursor]]
	return rec, ok
}

// State returns the current view state.
func (m *SurvivorsModel) State() ViewState {
	return m.state
}

// Pagination returns the current pagination state.
func (m *SurvivorsModel) Pagination() pagination.State {
	return m.pager
}

// VisibleRecords returns the records on the current page.
func (m *SurvivorsModel) VisibleRecords() []survivor.Record {
	out := make([]survivor.Record, len(m.rows))
	copy(out, m.rows)
	return out
}

// Loading reports whether the fetch is outstanding.
func (m *SurvivorsModel) Loading() bool {
	return m.loader.Loading()
}

// Err returns the load error, if any.
func (m *SurvivorsModel) Err() error {
	return m.loader.Err()
}
