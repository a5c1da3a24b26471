package kpi

import (
	"testing"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

var trackerHeaders = []string{colERFReceived, colJoiningDate, colStatus, colTimeToFill}

func trackerRow(erf, joined, status, ttf string) model.Row {
	return rowOf(trackerHeaders, []model.Cell{
		model.StringCell(erf),
		model.StringCell(joined),
		model.StringCell(status),
		model.StringCell(ttf),
	})
}

func TestTimeToFill_AverageWithClamp(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		trackerRow("2025-08-01", "2025-08-31", "Hired", "30"),
		trackerRow("2025-09-01", "2025-09-15", "Hired", "-5"), // clamps to 0
	}
	got, ok := TimeToFill(rows, window("2025-07-01", "2025-12-31"))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got != 15.0 {
		t.Fatalf("time to fill: got %v want 15.0", got)
	}
}

func TestTimeToFill_FiltersRows(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		trackerRow("2025-01-10", "2025-02-01", "Hired", "22"), // ERF outside window
		trackerRow("2025-08-01", "2025-09-01", "Open", "10"),  // not hired
		trackerRow("", "2025-09-01", "Hired", "10"),           // no ERF date
		trackerRow("2025-08-01", "", "Hired", "10"),           // no joining date
	}
	if _, ok := TimeToFill(rows, window("2025-07-01", "2025-12-31")); ok {
		t.Fatalf("expected unavailable when no row qualifies")
	}
}

func TestTimeToFill_UnparseableValueCountsAsZero(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		trackerRow("2025-08-01", "2025-08-20", "Hired", "pending"),
		trackerRow("2025-08-02", "2025-08-22", "Hired", "20"),
	}
	got, ok := TimeToFill(rows, window("2025-07-01", "2025-12-31"))
	if !ok || got != 10.0 {
		t.Fatalf("got %v ok=%v want 10.0", got, ok)
	}
}
