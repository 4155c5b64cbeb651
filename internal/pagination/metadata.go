package pagination

// Meta contains metadata about a paginated record list.
type Meta struct {
	Page        int  `json:"page"         yaml:"page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	From        int  `json:"from"         yaml:"from"`
	To          int  `json:"to"           yaml:"to"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates pagination metadata for state over totalCount records.
func NewMeta(state State, totalCount int) Meta {
	controls := state.Controls(totalCount)
	from, to := DisplayedRows(totalCount, state.Page, state.PageSize)

	return Meta{
		Page:        state.Page,
		PageSize:    state.PageSize,
		TotalPages:  state.PageCount(totalCount),
		TotalItems:  totalCount,
		From:        from,
		To:          to,
		HasPrevious: controls.Previous,
		HasNext:     controls.Next,
	}
}
