package kpi

import (
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
)

// LinkedIn analytics export column headers.
const (
	colDate           = "Date"
	colTotalFollowers = "Total followers"
	colTotalPageViews = "Total page views (total)"
	colImpressions    = "Impressions (total)"
)

// LinkedInFollowers sums new followers over the window.
func LinkedInFollowers(rows []model.Row, window model.DateRange) float64 {
	return sumMetricInRange(rows, colTotalFollowers, window)
}

// LinkedInPageViews sums page views over the window.
func LinkedInPageViews(rows []model.Row, window model.DateRange) float64 {
	return sumMetricInRange(rows, colTotalPageViews, window)
}

// LinkedInImpressions sums impressions over the window.
func LinkedInImpressions(rows []model.Row, window model.DateRange) float64 {
	return sumMetricInRange(rows, colImpressions, window)
}

// sumMetricInRange sums the named numeric column over rows whose date
// falls inside the window, bounds inclusive. Rows with a missing or
// unparseable date are excluded; a range matching nothing sums to 0.
func sumMetricInRange(rows []model.Row, column string, window model.DateRange) float64 {
	var sum float64
	for _, row := range rows {
		date, ok := parser.ToDate(row.Get(colDate))
		if !ok || !window.Contains(date) {
			continue
		}
		if v, ok := parser.ToNumber(row.Get(column)); ok {
			sum += v
		}
	}
	return sum
}
