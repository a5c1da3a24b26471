package kpi

import (
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
)

// AssumedGenderSplit is the fixed gender distribution used by the
// diversity index instead of a computed one. The source data carries no
// reliable gender field; the 90/10 assumption is a documented limitation
// kept for output comparability. Correct here once real data exists.
var AssumedGenderSplit = map[string]float64{
	"Male":   0.9,
	"Female": 0.1,
}

// Age bucket labels of the diversity breakdown.
const (
	ageUnder30 = "Under 30"
	age30to50  = "30-50"
	ageOver50  = "Over 50"
)

// DiversityResult is the diversity index with its display breakdowns.
type DiversityResult struct {
	Index      float64
	Breakdowns model.DiversityBreakdowns
}

// DiversityIndex scores Active employees on three dimensions with a
// Simpson-style 1-sum(p^2) per dimension, averaged and scaled to 0-100,
// rounded to one decimal. Returns ok=false when no employee is Active.
func DiversityIndex(rows []model.Row) (DiversityResult, bool) {
	var active []model.Row
	for _, row := range rows {
		if row.Get(colStatus).Str == statusActive {
			active = append(active, row)
		}
	}
	if len(active) == 0 {
		return DiversityResult{}, false
	}

	genderScore := simpsonScore(AssumedGenderSplit)

	ageCounts := map[string]float64{}
	for _, row := range active {
		age, ok := parser.ToNumber(row.Get(colAge))
		if !ok {
			continue
		}
		switch {
		case age < 30:
			ageCounts[ageUnder30]++
		case age <= 50:
			ageCounts[age30to50]++
		default:
			ageCounts[ageOver50]++
		}
	}
	ageScore := simpsonScore(ageCounts)

	religionCounts := map[string]float64{}
	for _, row := range active {
		religion := cellKey(row.Get(colReligion))
		if religion == "" {
			continue
		}
		religionCounts[religion]++
	}
	religionScore := simpsonScore(religionCounts)

	index := (genderScore + ageScore + religionScore) / 3 * 100

	return DiversityResult{
		Index: round1(index),
		Breakdowns: model.DiversityBreakdowns{
			Gender:   percentages(AssumedGenderSplit),
			Age:      percentages(ageCounts),
			Religion: percentages(religionCounts),
		},
	}, true
}

// simpsonScore computes 1 - sum(p^2) over the category counts. An empty
// dimension scores 0.
func simpsonScore(counts map[string]float64) float64 {
	var total float64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	var sumSquares float64
	for _, c := range counts {
		p := c / total
		sumSquares += p * p
	}
	return 1 - sumSquares
}

// percentages converts category counts into rounded display percentages.
func percentages(counts map[string]float64) map[string]float64 {
	var total float64
	for _, c := range counts {
		total += c
	}
	out := make(map[string]float64, len(counts))
	for name, c := range counts {
		if total == 0 {
			out[name] = 0
			continue
		}
		out[name] = round1(c / total * 100)
	}
	return out
}
