package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleemora/survivors/internal/loader"
	"github.com/gleemora/survivors/internal/pagination"
	"github.com/gleemora/survivors/internal/survivor"
	"github.com/gleemora/survivors/internal/tui/picker"
)

func testRecords(n int) []survivor.Record {
	records := make([]survivor.Record, n)
	for i := range records {
		records[i] = survivor.Record{
			ID:                i + 1,
			Name:              fmt.Sprintf("Survivor %d", i+1),
			Email:             fmt.Sprintf("s%d@example.com", i+1),
			StoryOfResilience: fmt.Sprintf("Story number %d", i+1),
			CreatedAt:         "2024-03-04T10:00:00Z",
		}
	}
	return records
}

type statusLog struct {
	transitions [][2]loader.Status
}

func (s *statusLog) observe(from, to loader.Status) {
	s.transitions = append(s.transitions, [2]loader.Status{from, to})
}

// newTestModel builds a model whose source returns records or err.
func newTestModel(records []survivor.Record, err error, opts Options) (*SurvivorsModel, *statusLog) {
	log := &statusLog{}
	src := loader.SourceFunc(func(context.Context) ([]survivor.Record, error) {
		return records, err
	})
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return NewSurvivorsModel(context.Background(), loader.New(src, loader.WithStatusObserver(log.observe)), opts), log
}

// mountAndSettle runs Init and delivers the fetch result the way the runtime would.
func mountAndSettle(t *testing.T, m *SurvivorsModel) {
	t.Helper()
	require.NotNil(t, m.Init())
	require.True(t, m.Loading())
	m.Update(survivorsLoadedMsg{result: m.loader.Fetch(m.ctx)})
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewSurvivorsModel(t *testing.T) {
	m, _ := newTestModel(nil, nil, Options{})

	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, pagination.NewState(pagination.DefaultPageSize), m.Pagination())
	assert.False(t, m.Loading())
	assert.Empty(t, m.VisibleRecords())
}

func TestSurvivorsModel_LoadSuccess(t *testing.T) {
	records := testRecords(12)
	m, log := newTestModel(records, nil, Options{})

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())
	assert.Contains(t, m.View(), "Loading survivors")
	// The table is still rendered while loading.
	assert.Contains(t, m.View(), "Name")

	m.Update(survivorsLoadedMsg{result: m.loader.Fetch(m.ctx)})

	assert.False(t, m.Loading())
	assert.NotContains(t, m.View(), "Loading survivors")
	assert.Equal(t, records[:5], m.VisibleRecords())
	assert.Equal(t, [][2]loader.Status{
		{loader.StatusIdle, loader.StatusLoading},
		{loader.StatusLoading, loader.StatusIdle},
	}, log.transitions)

	view := m.View()
	assert.Contains(t, view, "Survivor 1")
	assert.Contains(t, view, "1–5 of 12")
	assert.Contains(t, view, "Rows per page:")
}

func TestSurvivorsModel_InitOnce(t *testing.T) {
	m, log := newTestModel(testRecords(2), nil, Options{})
	mountAndSettle(t, m)

	assert.Nil(t, m.Init())
	assert.Len(t, log.transitions, 2)
}

func TestSurvivorsModel_LoadFailureIsSilentByDefault(t *testing.T) {
	m, log := newTestModel(nil, fmt.Errorf("%w: refused", loader.ErrNetwork), Options{})
	mountAndSettle(t, m)

	assert.False(t, m.Loading())
	assert.Empty(t, m.VisibleRecords())
	assert.ErrorIs(t, m.Err(), loader.ErrNetwork)
	assert.Len(t, log.transitions, 2)

	view := m.View()
	assert.NotContains(t, view, "Could not reach")
	assert.Contains(t, view, "0–0 of 0")
}

func TestSurvivorsModel_ShowLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network", fmt.Errorf("%w: refused", loader.ErrNetwork), "Could not reach the survivor service."},
		{"malformed", fmt.Errorf("%w: eof", loader.ErrMalformedResponse), "unexpected response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(nil, tt.err, Options{ShowLoadErrors: true})
			mountAndSettle(t, m)
			assert.Contains(t, m.View(), tt.want)
		})
	}

	t.Run("empty result shows no error", func(t *testing.T) {
		m, _ := newTestModel(nil, nil, Options{ShowLoadErrors: true})
		mountAndSettle(t, m)
		assert.NotContains(t, m.View(), "survivor service")
	})
}

func TestSurvivorsModel_SevenRecordsNavigation(t *testing.T) {
	records := testRecords(7)
	m, _ := newTestModel(records, nil, Options{})
	mountAndSettle(t, m)

	assert.Equal(t, 0, m.Pagination().Page)
	assert.Len(t, m.VisibleRecords(), 5)
	assert.Equal(t, 5, m.rowLines())

	// Previous and first are disabled on page 0.
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(keyRunes('g'))
	assert.Equal(t, 0, m.Pagination().Page)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Pagination().Page)
	assert.Equal(t, records[5:], m.VisibleRecords())
	// Two rows plus three filler rows keep the page height.
	assert.Equal(t, 5, m.rowLines())
	assert.Contains(t, m.View(), "6–7 of 7")

	// Next and last are disabled on the last page.
	m.Update(keyRunes('l'))
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 1, m.Pagination().Page)

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.Pagination().Page)

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.Pagination().Page)

	m.Update(keyRunes('G'))
	assert.Equal(t, 1, m.Pagination().Page)
}

func TestSurvivorsModel_ZeroRecords(t *testing.T) {
	m, _ := newTestModel([]survivor.Record{}, nil, Options{})
	mountAndSettle(t, m)

	assert.Equal(t, pagination.Controls{}, m.Pagination().Controls(0))
	assert.Equal(t, 1, m.Pagination().PageCount(0))
	assert.Empty(t, m.VisibleRecords())

	for _, k := range []tea.KeyMsg{keyRunes('g'), keyRunes('h'), keyRunes('l'), keyRunes('G')} {
		m.Update(k)
	}
	assert.Equal(t, 0, m.Pagination().Page)

	// Enter does nothing without a row.
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewStateList, m.State())
}

func TestSurvivorsModel_PageSizePicker(t *testing.T) {
	m, _ := newTestModel(testRecords(30), nil, Options{})
	mountAndSettle(t, m)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.Pagination().Page)

	m.Update(keyRunes('r'))
	require.Equal(t, ViewStatePicker, m.State())
	assert.Contains(t, m.View(), "Rows per page")
	assert.Contains(t, m.View(), "apply", "picker help comes from its key map")

	// Cursor starts on the current size (5); move to 25.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, picker.ChosenMsg[int]{}, msg)
	m.Update(msg)

	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, pagination.State{Page: 0, PageSize: 25}, m.Pagination())
	assert.Len(t, m.VisibleRecords(), 25)
}

func TestSurvivorsModel_PageSizeAll(t *testing.T) {
	m, _ := newTestModel(testRecords(30), nil, Options{PageSize: pagination.AllRows})
	mountAndSettle(t, m)

	assert.Len(t, m.VisibleRecords(), 30)
	assert.Equal(t, pagination.Controls{}, m.Pagination().Controls(30))
	assert.Contains(t, m.View(), "1–30 of 30")
}

func TestSurvivorsModel_PickerCancel(t *testing.T) {
	m, _ := newTestModel(testRecords(3), nil, Options{PageSize: 10})
	mountAndSettle(t, m)

	m.Update(keyRunes('r'))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, 10, m.Pagination().PageSize)
}

func TestSurvivorsModel_DetailView(t *testing.T) {
	records := testRecords(3)
	m, _ := newTestModel(records, nil, Options{})
	mountAndSettle(t, m)

	m.Update(keyRunes('j'))
	rec, ok := m.SelectedRecord()
	require.True(t, ok)
	assert.Equal(t, records[1].Email, rec.Email)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewStateDetail, m.State())
	view := m.View()
	assert.Contains(t, view, "Story number 2")
	assert.Contains(t, view, "Monday 04, March, 2024")

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, ViewStateList, m.State())
}

func TestSurvivorsModel_QuitDropsLateResult(t *testing.T) {
	m, log := newTestModel(testRecords(4), nil, Options{})
	require.NotNil(t, m.Init())

	_, cmd := m.Update(keyRunes('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, ViewStateQuitting, m.State())
	assert.Empty(t, m.View())
	require.ErrorIs(t, m.ctx.Err(), context.Canceled)

	// The fetch finishing after teardown must not touch the model.
	m.Update(survivorsLoadedMsg{result: loader.Result{Records: testRecords(4)}})
	assert.False(t, m.loader.Settled())
	assert.Empty(t, m.VisibleRecords())
	assert.Len(t, log.transitions, 1)
}

func TestSurvivorsModel_WindowResize(t *testing.T) {
	m, _ := newTestModel(testRecords(30), nil, Options{PageSize: pagination.AllRows})
	mountAndSettle(t, m)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, 20-chromeHeight, m.rowLines())
}

func TestSurvivorsModel_HelpToggle(t *testing.T) {
	m, _ := newTestModel(testRecords(1), nil, Options{})
	mountAndSettle(t, m)

	assert.NotContains(t, m.View(), "first page")
	m.Update(keyRunes('?'))
	assert.Contains(t, m.View(), "first page")
}

func TestViewStateString(t *testing.T) {
	assert.Equal(t, "list", ViewStateList.String())
	assert.Equal(t, "picker", ViewStatePicker.String())
	assert.Equal(t, "unknown", ViewState(42).String())
}
