// Package datekey normalizes the date representations used at the input
// boundary to one canonical calendar date and derives the keys everything
// else is built on: the yyyy-mm month bucket key, the yyyy-mm-dd storage
// key, and the whole-day distance to today.
package datekey

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat reports input whose shape or calendar values do not
// match the expected format.
var ErrInvalidDateFormat = errors.New("invalid date format")

// CalendarDate is the canonical internal date: year, month, day, no
// time-of-day and no location.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Format identifies a supported display-date layout.
type Format string

const (
	FormatISO     Format = "iso"     // yyyy-mm-dd
	FormatBR      Format = "br"      // dd/mm/yyyy
	FormatCompact Format = "compact" // ddmmyyyy, as typed into the original form
)

// ParseFormat parses a format name as it appears in configuration.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatISO, FormatBR, FormatCompact:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown date format %q", s)
}

// New validates year/month/day against the real calendar.
func New(year, month, day int) (CalendarDate, error) {
	if year < 1 || year > 9999 {
		return CalendarDate{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDateFormat, year)
	}
	// time.Date normalizes out-of-range values (Feb 30 -> Mar 2), so a
	// changed round-trip means the input was not a real date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return CalendarDate{}, fmt.Errorf("%w: no such date %04d-%02d-%02d", ErrInvalidDateFormat, year, month, day)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// Parse converts a display-facing date string in the given format to a
// canonical date. The shape is checked explicitly (length, separators,
// digits) before calendar validation, so malformed input fails loudly
// instead of being coerced.
func Parse(input string, f Format) (CalendarDate, error) {
	var year, month, day int
	var err error

	switch f {
	case FormatISO:
		if len(input) != 10 || input[4] != '-' || input[7] != '-' {
			return CalendarDate{}, fmt.Errorf("%w: %q is not yyyy-mm-dd", ErrInvalidDateFormat, input)
		}
		year, month, day, err = fields(input[:4], input[5:7], input[8:])
	case FormatBR:
		if len(input) != 10 || input[2] != '/' || input[5] != '/' {
			return CalendarDate{}, fmt.Errorf("%w: %q is not dd/mm/yyyy", ErrInvalidDateFormat, input)
		}
		year, month, day, err = fields(input[6:], input[3:5], input[:2])
	case FormatCompact:
		if len(input) != 8 {
			return CalendarDate{}, fmt.Errorf("%w: %q is not ddmmyyyy", ErrInvalidDateFormat, input)
		}
		year, month, day, err = fields(input[4:], input[2:4], input[:2])
	default:
		return CalendarDate{}, fmt.Errorf("unknown date format %q", f)
	}
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q: %v", ErrInvalidDateFormat, input, err)
	}

	return New(year, month, day)
}

// FormatAs renders a canonical date in the given display format.
func FormatAs(d CalendarDate, f Format) string {
	switch f {
	case FormatBR:
		return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
	case FormatCompact:
		return fmt.Sprintf("%02d%02d%04d", d.Day, d.Month, d.Year)
	default:
		return d.StorageKey()
	}
}

// Display renders the dd/mm/yyyy convention used in rendered tables.
func (d CalendarDate) Display() string {
	return FormatAs(d, FormatBR)
}

// MonthKey returns the sortable yyyy-mm bucket key.
func (d CalendarDate) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// StorageKey returns the yyyy-mm-dd form, the only representation ever
// persisted regardless of the input format.
func (d CalendarDate) StorageKey() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseStorageKey is the inverse of StorageKey.
func ParseStorageKey(s string) (CalendarDate, error) {
	return Parse(s, FormatISO)
}

// DaysUntil returns the whole days from today's midnight to date's
// midnight: negative when date is past, 0 today, positive otherwise.
func DaysUntil(date, today CalendarDate) int {
	// Both operands are already clamped to midnight; doing the arithmetic
	// in UTC keeps DST transitions from shaving hours off the difference.
	due := time.Date(date.Year, time.Month(date.Month), date.Day, 0, 0, 0, 0, time.UTC)
	now := time.Date(today.Year, time.Month(today.Month), today.Day, 0, 0, 0, 0, time.UTC)
	return int(due.Sub(now).Hours() / 24)
}

// Today derives the local calendar date from a clock reading.
func Today(now time.Time) CalendarDate {
	year, month, day := now.Date()
	return CalendarDate{Year: year, Month: int(month), Day: day}
}

func fields(yearStr, monthStr, dayStr string) (year, month, day int, err error) {
	if year, err = atoi(yearStr); err != nil {
		return 0, 0, 0, fmt.Errorf("year: %w", err)
	}
	if month, err = atoi(monthStr); err != nil {
		return 0, 0, 0, fmt.Errorf("month: %w", err)
	}
	if day, err = atoi(dayStr); err != nil {
		return 0, 0, 0, fmt.Errorf("day: %w", err)
	}
	return year, month, day, nil
}

// atoi accepts only unsigned decimal digits; strconv would also take
// signs and spaces, which have no place inside a fixed-width date field.
func atoi(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
