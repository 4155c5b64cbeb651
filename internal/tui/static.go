package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gleemora/survivors/internal/pagination"
	"github.com/gleemora/survivors/internal/survivor"
)

// plainCellWidth caps long free-text cells in static output.
const plainCellWidth = 40

// PageView is one page of records for static output.
type PageView struct {
	Records   []survivor.Record
	State     pagination.State
	Formatter survivor.Formatter
}

// Visible returns the records on the selected page.
func (p PageView) Visible() []survivor.Record {
	return pagination.VisibleSlice(p.Records, p.State.Page, p.State.PageSize)
}

// Meta returns the pagination metadata of the page.
func (p PageView) Meta() pagination.Meta {
	return pagination.NewMeta(p.State, len(p.Records))
}

// RenderPlain writes the page as an aligned, unstyled table followed by a
// pagination summary line.
func RenderPlain(w io.Writer, p PageView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(survivor.ColumnTitles(), "\t")); err != nil {
		return err
	}

	for _, rec := range p.Visible() {
		cells := p.Formatter.Cells(rec)
		for i := range cells {
			cells[i] = survivor.Truncate(sanitizeCell(cells[i]), plainCellWidth)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "\n"+PaginationSummary(p.Meta()))
	return err
}

// RenderStyled writes the page like RenderPlain with a bold header row.
func RenderStyled(w io.Writer, p PageView) error {
	var buf strings.Builder
	if err := RenderPlain(&buf, p); err != nil {
		return err
	}

	header, rest, _ := strings.Cut(buf.String(), "\n")
	_, err := fmt.Fprint(w, ValueStyle.Render(header)+"\n"+rest)
	return err
}

// PaginationSummary renders the pagination bar as plain text, for example
// "Rows per page: 5  1–5 of 7  Page 1/2".
func PaginationSummary(meta pagination.Meta) string {
	return fmt.Sprintf("Rows per page: %s  %s–%s of %s  Page %d/%d",
		pagination.PageSizeLabel(meta.PageSize),
		FormatCount(meta.From), FormatCount(meta.To), FormatCount(meta.TotalItems),
		meta.Page+1, meta.TotalPages,
	)
}

// sanitizeCell keeps multi-line answers on one table line.
func sanitizeCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type jsonPage struct {
	Data       []survivor.Record `json:"data"`
	Pagination pagination.Meta   `json:"pagination"`
}

// RenderJSON writes the visible records and pagination metadata as indented JSON.
func RenderJSON(w io.Writer, p PageView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonPage{Data: p.Visible(), Pagination: p.Meta()})
}
