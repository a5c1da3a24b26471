// Package kpi holds the pure KPI calculators, the chart aggregators and
// the static KPI registry. Every calculator takes normalized rows (plus a
// date window where noted) and either returns a result or reports it as
// unavailable; malformed rows are skipped, never fatal.
package kpi

import (
	"math"
	"strconv"
	"strings"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
)

// EDM report column headers.
const (
	colEmployeeID  = "Employee ID"
	colStatus      = "Status"
	colJoiningDate = "Joining Date"
	colExitDate    = "Exit Date"
	colAge         = "Employee's Age"
	colReligion    = "Religion"
	colCompany     = "Company"
	colType        = "Type"
)

const statusActive = "Active"

// TurnoverRate computes exits over average headcount for the window,
// as a percentage rounded to one decimal. A zero average headcount
// yields 0, not a division error.
func TurnoverRate(rows []model.Row, window model.DateRange) float64 {
	exits := 0
	headcountStart := 0
	headcountEnd := 0

	for _, row := range rows {
		joined, hasJoin := parser.ToDate(row.Get(colJoiningDate))
		exited, hasExit := parser.ToDate(row.Get(colExitDate))

		if hasExit && window.Contains(exited) {
			exits++
		}
		if hasJoin && !joined.After(window.Start) && (!hasExit || !exited.Before(window.Start)) {
			headcountStart++
		}
		if hasJoin && !joined.After(window.End) && (!hasExit || exited.After(window.End)) {
			headcountEnd++
		}
	}

	avgHeadcount := float64(headcountStart+headcountEnd) / 2
	if avgHeadcount == 0 {
		return 0
	}
	return round1(float64(exits) / avgHeadcount * 100)
}

// TotalActiveEmployees counts distinct employee identifiers whose status
// is Active. The status match is exact, as in DiversityIndex; the chart
// aggregators are the only consumers that fold case and whitespace.
func TotalActiveEmployees(rows []model.Row) int {
	active := make(map[string]struct{})
	for _, row := range rows {
		id := cellKey(row.Get(colEmployeeID))
		if id == "" {
			continue
		}
		if row.Get(colStatus).Str != statusActive {
			continue
		}
		active[id] = struct{}{}
	}
	return len(active)
}

// cellKey normalizes a cell into a distinct-count key. Numeric ids keep
// their integer spelling so 1001 and "1001" collapse.
func cellKey(c model.Cell) string {
	switch c.Kind {
	case model.CellString:
		return strings.TrimSpace(c.Str)
	case model.CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
