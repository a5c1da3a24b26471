package kpi

import (
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
)

// Recruitment tracker column headers.
const (
	colERFReceived = "ERF Received On"
	colTimeToFill  = "Time To Fill"
)

const statusHired = "Hired"

// TimeToFill averages the recorded time-to-fill of hired positions whose
// ERF date falls inside the window, rounded to one decimal. Negative or
// unparseable values clamp to 0. Returns ok=false when no row qualifies;
// an empty window must surface as unavailable, never as a fabricated 0.
func TimeToFill(rows []model.Row, window model.DateRange) (float64, bool) {
	var sum float64
	count := 0

	for _, row := range rows {
		erf, hasERF := parser.ToDate(row.Get(colERFReceived))
		_, hasJoin := parser.ToDate(row.Get(colJoiningDate))
		if !hasERF || !hasJoin {
			continue
		}
		if row.Get(colStatus).Str != statusHired {
			continue
		}
		if !window.Contains(erf) {
			continue
		}

		days, ok := parser.ToNumber(row.Get(colTimeToFill))
		if !ok || days < 0 {
			days = 0
		}
		sum += days
		count++
	}

	if count == 0 {
		return 0, false
	}
	return round1(sum / float64(count)), true
}
