package pagination

// VisibleSlice returns the records shown on page for the given page size.
// A pageSize <= 0 returns records unchanged. A page past the end yields an empty slice.
// The result shares the backing array of records; callers must not write through it.
func VisibleSlice[T any](records []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return records
	}

	start := page * pageSize
	if page < 0 || start >= len(records) {
		return []T{}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	return records[start:end]
}

// PageCount returns the number of pages needed for recordCount records.
// It is never less than 1, so an empty list still has a single (empty) page.
func PageCount(recordCount, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}

	pages := recordCount / pageSize
	if recordCount%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}

// EmptyRowCount returns how many filler rows to reserve so the final partial page
// keeps the same height as a full one. The first page never reserves filler rows.
func EmptyRowCount(page, pageSize, recordCount int) int {
	if page <= 0 || pageSize <= 0 {
		return 0
	}

	empty := (page+1)*pageSize - recordCount
	if empty < 0 {
		return 0
	}
	return empty
}

// DisplayedRows returns the 1-based inclusive range of records shown on page,
// as used by the "from–to of count" indicator. Both values are 0 for an empty list.
//
//nolint:nonamedreturns // Named returns document the pair.
func DisplayedRows(recordCount, page, pageSize int) (from, to int) {
	if recordCount == 0 {
		return 0, 0
	}
	if pageSize <= 0 {
		return 1, recordCount
	}

	from = page*pageSize + 1
	to = (page + 1) * pageSize
	if to > recordCount {
		to = recordCount
	}
	if from > to {
		from = to
	}
	return from, to
}
