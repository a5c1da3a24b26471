package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

// excelEpochOffset is the spreadsheet serial for 1970-01-01 UTC.
const excelEpochOffset = 25569

const secondsPerDay = 86400

// dateLayouts are the textual date formats seen across the source
// exports. Tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"2-Jan-2006",
	"02-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	// two-digit-year forms, as rendered by the builtin short date formats
	"01-02-06",
	"1/2/06",
	"1-2-06",
}

// ToDate normalizes a cell into a canonical date. Numeric cells are read
// as spreadsheet day serials, string cells are parsed against the known
// layouts. Returns false for anything unparseable; never panics.
func ToDate(c model.Cell) (time.Time, bool) {
	switch c.Kind {
	case model.CellDate:
		return c.Date, true
	case model.CellNumber:
		secs := (c.Num - excelEpochOffset) * secondsPerDay
		return time.Unix(int64(secs), 0).UTC(), true
	case model.CellString:
		s := strings.TrimSpace(c.Str)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// ToNumber normalizes a cell into a float. A trailing percent sign is
// stripped before parsing. Returns false for anything non-numeric;
// calculators must treat that as absent, not zero.
func ToNumber(c model.Cell) (float64, bool) {
	switch c.Kind {
	case model.CellNumber:
		return c.Num, true
	case model.CellString:
		s := strings.TrimSpace(c.Str)
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, true
		}
		// tolerate trailing junk the way the exports sometimes carry it,
		// e.g. "12 days"
		if n, ok := parseNumericPrefix(s); ok {
			return n, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// parseNumericPrefix parses the longest leading float of s.
func parseNumericPrefix(s string) (float64, bool) {
	end := 0
	for end < len(s) {
		ch := s[end]
		isDigit := ch >= '0' && ch <= '9'
		isSign := end == 0 && (ch == '-' || ch == '+')
		if !isDigit && !isSign && ch != '.' {
			break
		}
		end++
	}
	prefix := strings.TrimRight(s[:end], ".")
	if prefix == "" || prefix == "-" || prefix == "+" {
		return 0, false
	}
	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
