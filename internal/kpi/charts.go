package kpi

import (
	"sort"
	"strings"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

// companyShortNames maps the registered long company names to their
// dashboard display codes. Unmapped names pass through unchanged.
var companyShortNames = map[string]string{
	"Jaffer Business Systems (Private) Limited":        "JBSPL",
	"Energy and Automation Pakistan (Private) Limited": "ENA",
	"Jaffer Business Systems Inc.":                     "JBSInc",
	"Impare Tech (Private) Limited":                    "Impare",
	"Hysab Kytab (Private) Limited":                    "HK",
}

// Employment type buckets. Anything unrecognized lands in Permanent.
const (
	typeContract     = "Contract"
	typeProbationary = "Probationary"
	typePermanent    = "Permanent"
)

// EDMCharts builds both employee-distribution charts from the EDM
// report, counting Active employees only.
func EDMCharts(rows []model.Row) model.ChartData {
	var active []model.Row
	for _, row := range rows {
		status := strings.ToLower(strings.TrimSpace(row.Get(colStatus).Str))
		if status == "active" {
			active = append(active, row)
		}
	}
	return model.ChartData{
		Company: EmployeesByCompany(active),
		Type:    EmployeesByType(active),
	}
}

// EmployeesByCompany counts active rows per company, maps long names to
// short display codes and sorts descending by count.
func EmployeesByCompany(activeRows []model.Row) []model.ChartBucket {
	counts := map[string]int{}
	for _, row := range activeRows {
		company := strings.TrimSpace(row.Get(colCompany).Str)
		if company == "" {
			continue
		}
		counts[company]++
	}

	buckets := make([]model.ChartBucket, 0, len(counts))
	for name, count := range counts {
		buckets = append(buckets, model.ChartBucket{Name: companyShortName(name), Value: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Value != buckets[j].Value {
			return buckets[i].Value > buckets[j].Value
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}

// EmployeesByType classifies active rows into Contract, Probationary or
// Permanent, with Permanent as the catch-all. Zero buckets are omitted.
func EmployeesByType(activeRows []model.Row) []model.ChartBucket {
	counts := map[string]int{typeContract: 0, typeProbationary: 0, typePermanent: 0}
	for _, row := range activeRows {
		t := strings.TrimSpace(row.Get(colType).Str)
		if t == "" {
			continue
		}
		switch strings.ToLower(t) {
		case "contract":
			counts[typeContract]++
		case "probationary":
			counts[typeProbationary]++
		default:
			counts[typePermanent]++
		}
	}

	var buckets []model.ChartBucket
	for _, name := range []string{typeContract, typeProbationary, typePermanent} {
		if counts[name] > 0 {
			buckets = append(buckets, model.ChartBucket{Name: name, Value: counts[name]})
		}
	}
	return buckets
}

// companyShortName resolves a company's display code.
func companyShortName(name string) string {
	if short, ok := companyShortNames[name]; ok {
		return short
	}
	return name
}
