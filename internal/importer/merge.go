package importer

import (
	"time"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/kpi"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

func nowUTC() time.Time { return time.Now().UTC() }

// calculateEDM derives every EDM-sourced value: turnover, diversity,
// active headcount and the two distribution charts.
func calculateEDM(state *model.SessionState, rows []model.Row) []string {
	var updated []string

	turnover := kpi.TurnoverRate(rows, state.Range(model.RangeTurnover))
	state.KPIs[model.KPITurnoverRate] = model.ScalarValue(turnover)
	updated = append(updated, model.KPITurnoverRate)

	if diversity, ok := kpi.DiversityIndex(rows); ok {
		breakdowns := diversity.Breakdowns
		state.KPIs[model.KPIDiversityIndex] = model.ScalarValue(diversity.Index)
		state.KPIs[model.KPIDiversityBreakdowns] = model.KPIValue{Kind: model.ValueDiversity, Diversity: &breakdowns}
		updated = append(updated, model.KPIDiversityIndex, model.KPIDiversityBreakdowns)
	}

	activeCount := kpi.TotalActiveEmployees(rows)
	state.KPIs[model.KPITotalActiveEmployees] = model.ScalarValue(float64(activeCount))
	updated = append(updated, model.KPITotalActiveEmployees)

	// refresh the headcount shown on a previously computed AI Training
	if existing, ok := state.KPIs[model.KPIAITraining]; ok && existing.AITraining != nil {
		stats := *existing.AITraining
		stats.TotalActiveEmployees = activeCount
		state.KPIs[model.KPIAITraining] = model.KPIValue{Kind: model.ValueAITraining, AITraining: &stats}
		updated = append(updated, model.KPIAITraining)
	}

	state.Charts = kpi.EDMCharts(rows)
	return updated
}

func calculateRecruitment(state *model.SessionState, rows []model.Row) []string {
	days, ok := kpi.TimeToFill(rows, state.Range(model.RangeTimeToFill))
	if !ok {
		return nil
	}
	state.KPIs[model.KPITimeToFill] = model.ScalarValue(days)
	return []string{model.KPITimeToFill}
}

func calculateSurvey(state *model.SessionState, rows []model.Row) []string {
	score, ok := kpi.EngagementScore(rows)
	if !ok {
		return nil
	}
	state.KPIs[model.KPIEngagementScore] = model.ScalarValue(score)
	return []string{model.KPIEngagementScore}
}

// calculateLearnerDetail computes AI Training, preferring the license
// count from a previously uploaded learning report as denominator.
func calculateLearnerDetail(state *model.SessionState, rows []model.Row) []string {
	totalLicenses := 0
	if v, ok := state.KPIs[model.KPITotalLinkedInLicenses]; ok && v.IsScalar() {
		totalLicenses = int(v.Scalar)
	}

	stats, ok := kpi.AITraining(rows, totalLicenses)
	if !ok {
		return nil
	}
	if v, ok := state.KPIs[model.KPITotalActiveEmployees]; ok && v.IsScalar() {
		stats.TotalActiveEmployees = int(v.Scalar)
	}
	state.KPIs[model.KPIAITraining] = model.KPIValue{Kind: model.ValueAITraining, AITraining: &stats}
	return []string{model.KPIAITraining}
}

// calculateLearning computes talent development plus the license count,
// and rebases a previously computed AI Training percentage on the new
// denominator. The trained set does not depend on the denominator, so
// rebasing is equivalent to recomputing against the detail report.
func calculateLearning(state *model.SessionState, rows []model.Row) []string {
	var updated []string

	if rate, ok := kpi.TalentDevelopment(rows); ok {
		state.KPIs[model.KPITalentDevelopment] = model.ScalarValue(rate)
		updated = append(updated, model.KPITalentDevelopment)
	}

	licenses, ok := kpi.TotalLinkedInLicenses(rows)
	if !ok {
		return updated
	}
	state.KPIs[model.KPITotalLinkedInLicenses] = model.ScalarValue(float64(licenses))
	updated = append(updated, model.KPITotalLinkedInLicenses)

	if existing, ok := state.KPIs[model.KPIAITraining]; ok && existing.AITraining != nil && licenses > 0 {
		stats := *existing.AITraining
		stats.TotalLearners = licenses
		stats.Percentage = kpi.Rebase(stats.AITrained, licenses)
		state.KPIs[model.KPIAITraining] = model.KPIValue{Kind: model.ValueAITraining, AITraining: &stats}
		updated = append(updated, model.KPIAITraining)
	}
	return updated
}

// engagementMetric selects which field of the LinkedIn engagement
// triple an upload populates.
type engagementMetric int

const (
	metricFollowers engagementMetric = iota
	metricPageViews
	metricImpressions
)

// calculateEngagementMetric sums one LinkedIn metric over the linkedin
// window and merges it into the engagement triple, preserving the
// fields populated by the other two reports.
func calculateEngagementMetric(state *model.SessionState, rows []model.Row, metric engagementMetric) []string {
	window := state.Range(model.RangeLinkedIn)

	var incoming model.LinkedInEngagement
	switch metric {
	case metricFollowers:
		v := kpi.LinkedInFollowers(rows, window)
		incoming.Followers = &v
	case metricPageViews:
		v := kpi.LinkedInPageViews(rows, window)
		incoming.PageViews = &v
	case metricImpressions:
		v := kpi.LinkedInImpressions(rows, window)
		incoming.Impressions = &v
	}

	engagement := model.LinkedInEngagement{}
	if existing, ok := state.KPIs[model.KPILinkedInEngagement]; ok && existing.Engagement != nil {
		engagement = *existing.Engagement
	}
	engagement.Merge(incoming)

	state.KPIs[model.KPILinkedInEngagement] = model.KPIValue{Kind: model.ValueEngagement, Engagement: &engagement}
	return []string{model.KPILinkedInEngagement}
}
