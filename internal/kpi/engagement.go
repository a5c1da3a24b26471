package kpi

import (
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
)

// Survey question headers, verbatim from the eNPS/cNPS export.
const (
	colRecommendScore = "How likely are you to recommend JBS to a friend or colleague?"
	colCultureRating  = "How would you rate the company culture?"
)

// EngagementScore blends a rescaled eNPS with the mean culture rating,
// 50/50, rounded to one decimal. Respondents are promoters (>=9),
// passives (7-8) or detractors (<=6) on the 0-10 recommend scale; eNPS
// is rescaled from [-100,100] to [0,100]. Returns ok=false when either
// input has zero valid responses.
func EngagementScore(rows []model.Row) (float64, bool) {
	promoters, detractors, responses := 0, 0, 0

	for _, row := range rows {
		score, ok := parser.ToNumber(row.Get(colRecommendScore))
		if !ok {
			continue
		}
		responses++
		switch {
		case score >= 9:
			promoters++
		case score >= 7:
			// passive
		default:
			detractors++
		}
	}
	if responses == 0 {
		return 0, false
	}

	enps := (float64(promoters) - float64(detractors)) / float64(responses) * 100
	enpsRescaled := (enps + 100) / 2

	var cultureSum float64
	cultureCount := 0
	for _, row := range rows {
		rating, ok := parser.ToNumber(row.Get(colCultureRating))
		if !ok {
			continue
		}
		cultureSum += rating / 10 * 100
		cultureCount++
	}
	if cultureCount == 0 {
		return 0, false
	}

	cultureMean := cultureSum / float64(cultureCount)
	return round1(enpsRescaled*0.5 + cultureMean*0.5), true
}
