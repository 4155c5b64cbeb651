package survivor

import (
	"time"

	"github.com/mattn/go-runewidth"
)

// JoinDateLayout renders dates as "Monday 02, January, 2006".
const JoinDateLayout = "Monday 02, January, 2006"

// InvalidDate is rendered for timestamps that cannot be parsed.
const InvalidDate = "Invalid Date"

// truncateTail is appended to cells cut to fit their column.
const truncateTail = "…"

// zonedLayouts carry their own offset and are parsed as absolute instants.
//
//nolint:gochecknoglobals // Read-only lookup table.
var zonedLayouts = []string{
	time.RFC3339Nano,
}

// wallClockLayouts have no zone and are read as wall-clock time in the display location.
//
//nolint:gochecknoglobals // Read-only lookup table.
var wallClockLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Column titles in display order.
//
//nolint:gochecknoglobals // Read-only column order.
var columnTitles = []string{
	"Name",
	"Email",
	"Phone Number",
	"Location",
	"Profession",
	"Age",
	"Reason for Joining",
	"Story",
	"Involved in Advocacy",
	"Referral",
	"Socials",
	"Joined at",
}

// ColumnTitles returns the table headers in their fixed order.
func ColumnTitles() []string {
	titles := make([]string, len(columnTitles))
	copy(titles, columnTitles)
	return titles
}

// Formatter turns records into display strings. The zero value formats in local time.
type Formatter struct {
	// Location is the zone dates are shown in. Nil means time.Local.
	Location *time.Location
}

// FormatJoinDate formats an ISO-8601 timestamp as a long-form local date.
func FormatJoinDate(iso string) string {
	return Formatter{}.FormatJoinDate(iso)
}

// FormatJoinDate formats an ISO-8601 timestamp in the formatter's location.
func (f Formatter) FormatJoinDate(iso string) string {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}

	t, ok := parseTimestamp(iso, loc)
	if !ok {
		return InvalidDate
	}
	return t.In(loc).Format(JoinDateLayout)
}

// Cells returns the display cells of r in column order.
func (f Formatter) Cells(r Record) []string {
	return []string{
		r.Name,
		r.Email,
		r.PhoneNumber,
		r.Location,
		r.Profession,
		r.Age,
		r.CommunityReason,
		r.StoryOfResilience,
		r.Advocacy(),
		r.ReferralCode,
		r.SocialMediaProfiles,
		f.FormatJoinDate(r.CreatedAt),
	}
}

// Truncate shortens s to at most width terminal cells, marking the cut with an ellipsis.
// Widths are measured in display cells so wide runes do not overflow a column.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, truncateTail)
}

func parseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
