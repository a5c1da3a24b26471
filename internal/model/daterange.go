package model

import "time"

// RangeType names one of the three independently scoped date windows.
type RangeType string

const (
	RangeLinkedIn   RangeType = "linkedin"
	RangeTurnover   RangeType = "turnover"
	RangeTimeToFill RangeType = "timeToFill"
)

// AllRangeTypes lists every named date range.
var AllRangeTypes = []RangeType{RangeLinkedIn, RangeTurnover, RangeTimeToFill}

// Valid reports whether t is a known range type.
func (t RangeType) Valid() bool {
	return t == RangeLinkedIn || t == RangeTurnover || t == RangeTimeToFill
}

// DateRange is an inclusive calendar window.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// Contains reports whether d falls inside the window, bounds inclusive.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// DefaultDateRange returns the fixed calendar bounds used until the user
// picks a window for the given range type.
func DefaultDateRange(t RangeType) DateRange {
	switch t {
	case RangeLinkedIn:
		return DateRange{
			Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		}
	default:
		// turnover and timeToFill share the second-half window
		return DateRange{
			Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		}
	}
}
