// Package pagination provides the client-side paging core for the survivors view.
//
// This package is pure and performs no I/O. It contains:
//   - VisibleSlice, PageCount, EmptyRowCount: derive the rows shown for a (page, pageSize) pair
//   - First/Previous/Next/Last and EnabledControls: bounds rules for the navigation bar
//   - State: the (page, pageSize) record owned by one view, updated only through Apply and WithPageSize
//   - Meta: summary of a paginated result for structured output
//
// Pages are zero-based. A page size of AllRows (-1) disables partitioning.
package pagination
