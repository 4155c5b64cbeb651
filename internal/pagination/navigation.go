package pagination

// Action is a navigation request from the pagination bar.
type Action int

const (
	// ActionFirst jumps to the first page.
	ActionFirst Action = iota
	// ActionPrevious moves back one page.
	ActionPrevious
	// ActionNext moves forward one page.
	ActionNext
	// ActionLast jumps to the last page.
	ActionLast
)

// String returns the label used for the action in logs and the help line.
func (a Action) String() string {
	switch a {
	case ActionFirst:
		return "first page"
	case ActionPrevious:
		return "previous page"
	case ActionNext:
		return "next page"
	case ActionLast:
		return "last page"
	default:
		return "unknown"
	}
}

// First returns the first page index.
func First(_, _, _ int) int {
	return 0
}

// Previous returns page-1. It does not guard against page 0; the control is
// disabled there instead (see EnabledControls).
func Previous(_, page, _ int) int {
	return page - 1
}

// Next returns page+1. Only valid while the next control is enabled.
func Next(_, page, _ int) int {
	return page + 1
}

// Last returns the index of the last page.
func Last(recordCount, _, pageSize int) int {
	last := PageCount(recordCount, pageSize) - 1
	if last < 0 {
		return 0
	}
	return last
}

// Controls reports which navigation buttons are enabled.
type Controls struct {
	First    bool
	Previous bool
	Next     bool
	Last     bool
}

// EnabledControls computes the enabled state of each control for the current position.
// First/previous are disabled on page 0; next/last are disabled on or past the last page.
func EnabledControls(recordCount, page, pageSize int) Controls {
	atStart := page == 0
	atEnd := page >= PageCount(recordCount, pageSize)-1

	return Controls{
		First:    !atStart,
		Previous: !atStart,
		Next:     !atEnd,
		Last:     !atEnd,
	}
}

// Enabled reports whether the control for action is enabled.
func (c Controls) Enabled(action Action) bool {
	switch action {
	case ActionFirst:
		return c.First
	case ActionPrevious:
		return c.Previous
	case ActionNext:
		return c.Next
	case ActionLast:
		return c.Last
	default:
		return false
	}
}

// State is the pagination position of one view.
type State struct {
	// Page is the zero-based current page.
	Page int

	// PageSize is the number of rows per page, or AllRows.
	PageSize int
}

// NewState returns a State on page 0 with the given page size.
func NewState(pageSize int) State {
	return State{Page: 0, PageSize: pageSize}
}

// Apply performs action if its control is enabled for recordCount records and
// returns the resulting state. Disabled actions leave the state unchanged.
func (s State) Apply(action Action, recordCount int) State {
	if !EnabledControls(recordCount, s.Page, s.PageSize).Enabled(action) {
		return s
	}

	switch action {
	case ActionFirst:
		s.Page = First(recordCount, s.Page, s.PageSize)
	case ActionPrevious:
		s.Page = Previous(recordCount, s.Page, s.PageSize)
	case ActionNext:
		s.Page = Next(recordCount, s.Page, s.PageSize)
	case ActionLast:
		s.Page = Last(recordCount, s.Page, s.PageSize)
	}
	return s
}

// WithPageSize returns the state with a new page size. The page always resets to 0
// so a stale page beyond the new page count is never rendered.
func (s State) WithPageSize(pageSize int) State {
	return State{Page: 0, PageSize: pageSize}
}

// Controls returns the enabled controls for this state.
func (s State) Controls(recordCount int) Controls {
	return EnabledControls(recordCount, s.Page, s.PageSize)
}

// PageCount returns the page count for this state.
func (s State) PageCount(recordCount int) int {
	return PageCount(recordCount, s.PageSize)
}
