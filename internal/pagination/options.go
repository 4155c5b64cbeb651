package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Page size values offered by the rows-per-page selector.
const (
	// AllRows is the page-size sentinel meaning "show every record on one page".
	AllRows         = -1
	DefaultPageSize = 5
	DefaultPage     = 0
	allRowsLabel    = "All"
)

// Common validation errors.
var (
	ErrInvalidPageSize = errors.New("page-size must be one of 5, 10, 25 or all")
	ErrInvalidPage     = errors.New("page must be >= 0")
)

// PageSizeOption is one entry of the rows-per-page selector.
type PageSizeOption struct {
	Value int
	Label string
}

// PageSizeOptions returns the selectable page sizes in display order.
func PageSizeOptions() []PageSizeOption {
	return []PageSizeOption{
		{Value: 5, Label: "5"},    //nolint:mnd // Selector value.
		{Value: 10, Label: "10"},  //nolint:mnd // Selector value.
		{Value: 25, Label: "25"},  //nolint:mnd // Selector value.
		{Value: AllRows, Label: allRowsLabel},
	}
}

// IsValidPageSize reports whether size is one of the selector options.
func IsValidPageSize(size int) bool {
	for _, opt := range PageSizeOptions() {
		if opt.Value == size {
			return true
		}
	}
	return false
}

// OptionIndex returns the selector index of size, or 0 if size is not an option.
func OptionIndex(size int) int {
	for i, opt := range PageSizeOptions() {
		if opt.Value == size {
			return i
		}
	}
	return 0
}

// PageSizeLabel returns the selector label for size ("All" for the sentinel).
func PageSizeLabel(size int) string {
	if size <= 0 {
		return allRowsLabel
	}
	return strconv.Itoa(size)
}

// ParsePageSize parses a page size flag or config value.
// Accepts "5", "10", "25", "all" (any case) and "-1". Empty input yields the default.
func ParsePageSize(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultPageSize, nil
	}
	if strings.EqualFold(value, "all") {
		return AllRows, nil
	}

	size, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPageSize, value)
	}
	if !IsValidPageSize(size) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}
	return size, nil
}

// ValidatePage checks that page is non-negative.
func ValidatePage(page int) error {
	if page < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	return nil
}
