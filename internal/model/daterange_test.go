package model

import (
	"testing"
	"time"
)

func TestDateRange_ContainsInclusive(t *testing.T) {
	t.Parallel()

	r := DateRange{
		Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	if !r.Contains(r.Start) || !r.Contains(r.End) {
		t.Fatalf("bounds must be inclusive")
	}
	if r.Contains(r.Start.AddDate(0, 0, -1)) {
		t.Fatalf("day before start must be out")
	}
	if r.Contains(r.End.AddDate(0, 0, 1)) {
		t.Fatalf("day after end must be out")
	}
}

func TestDefaultDateRange_PerType(t *testing.T) {
	t.Parallel()

	linkedin := DefaultDateRange(RangeLinkedIn)
	if linkedin.Start.Month() != time.January {
		t.Fatalf("linkedin default: %+v", linkedin)
	}
	for _, rt := range []RangeType{RangeTurnover, RangeTimeToFill} {
		r := DefaultDateRange(rt)
		if r.Start.Month() != time.July {
			t.Fatalf("%s default: %+v", rt, r)
		}
	}
}

func TestSessionState_RangeFallsBackToDefault(t *testing.T) {
	t.Parallel()

	s := NewSessionState()
	delete(s.Ranges, RangeTurnover)
	got := s.Range(RangeTurnover)
	if !got.Start.Equal(DefaultDateRange(RangeTurnover).Start) {
		t.Fatalf("fallback range: %+v", got)
	}
}
