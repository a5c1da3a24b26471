package kpi

import (
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

// Company pillars grouping the KPI catalog.
const (
	PillarTalentAcquisition = "Talent Acquisition"
	PillarTalentManagement  = "Talent Management"
	PillarLearning          = "Learning"
	PillarEmployerBranding  = "Employer Branding"
)

// HR pillars.
const (
	HRPillarOrganization = "P&C Organization"
	HRPillarTalentSkills = "Talent & Skills"
	HRPillarLeadership   = "Leadership & Culture"
)

// Definition is a static KPI descriptor. Name is the persistence key of
// the live value; it is empty for KPIs that are tracked but not derived
// from uploads. Definitions are defined once and never mutated.
type Definition struct {
	Name          string         `json:"name,omitempty"`
	Title         string         `json:"kpi"`
	CompanyPillar string         `json:"companyPillar"`
	HRPillar      string         `json:"hrPillar"`
	Target        string         `json:"target"`
	TargetValue   float64        `json:"targetValue"`
	Status        string         `json:"status"`
	Icon          string         `json:"icon"`
	Calculable    bool           `json:"calculable"`
	DataFile      model.FileType `json:"dataFile,omitempty"`
	Description   string         `json:"description"`
	DataSource    string         `json:"dataSource,omitempty"`
	Formula       string         `json:"formula,omitempty"`
	Default       *float64       `json:"-"`
}

// View is one catalog entry merged with its live value: the calculated
// value when present, otherwise the static default. Composite KPIs also
// expose their structured payloads.
type View struct {
	Definition
	CurrentValue *float64                   `json:"currentValue"`
	AITraining   *model.AITrainingStats     `json:"aiTraining,omitempty"`
	Engagement   *model.LinkedInEngagement  `json:"linkedinEngagement,omitempty"`
	Botnostic    *model.BotnosticStats      `json:"botnosticSolutions,omitempty"`
	Diversity    *model.DiversityBreakdowns `json:"diversityBreakdowns,omitempty"`
}

func ptr(v float64) *float64 { return &v }

// Catalog returns the static KPI catalog in display order.
func Catalog() []Definition {
	return []Definition{
		{
			Title:         "Hiring Quality",
			CompanyPillar: PillarTalentAcquisition,
			HRPillar:      HRPillarOrganization,
			Target:        "20% of hires meeting or exceeding performance expectations",
			TargetValue:   20,
			Status:        "Start Tracking",
			Icon:          "👥",
			Calculable:    false,
			Default:       ptr(0),
			Description:   "Measures the quality of new hires based on performance reviews and manager feedback.",
		},
		{
			Name:          model.KPITurnoverRate,
			Title:         "People Turnover Rate",
			CompanyPillar: PillarTalentAcquisition,
			HRPillar:      HRPillarOrganization,
			Target:        "Reduce turnover rate by 5%",
			TargetValue:   5,
			Status:        "In Progress",
			Icon:          "📉",
			Calculable:    true,
			DataFile:      model.FileEDMReport,
			Default:       ptr(34.4),
			Description:   "Yearly turnover calculated from the EDM report, which tracks employee exits and headcount data throughout the year.",
			DataSource:    "EDM Report",
			Formula:       "Turnover Rate (%) = (Number of Exits / Average Headcount) × 100",
		},
		{
			Name:          model.KPITimeToFill,
			Title:         "Time to Fill",
			CompanyPillar: PillarTalentAcquisition,
			HRPillar:      HRPillarOrganization,
			Target:        "Reduce average time to fill critical positions by 5%",
			TargetValue:   5,
			Status:        "In Progress",
			Icon:          "⏱️",
			Calculable:    true,
			DataFile:      model.FileRecruitmentTracker,
			Default:       nil, // no placeholder until calculated
			Description:   "Measures recruitment efficiency from requisition receipt to joining.",
			DataSource:    "Recruitment Tracker",
			Formula:       "Average of system-recorded Time To Fill for hired positions whose ERF date falls in the selected window",
		},
		{
			Name:          model.KPIDiversityIndex,
			Title:         "Diversity & Inclusion Index",
			CompanyPillar: PillarTalentAcquisition,
			HRPillar:      HRPillarLeadership,
			Target:        "Ensure an average of 10% workplace diversity (including age, gender and minority groups)",
			TargetValue:   10,
			Status:        "In Progress",
			Icon:          "🤝",
			Calculable:    true,
			DataFile:      model.FileEDMReport,
			Default:       ptr(27.9),
			Description:   "Tracks workplace diversity across age, gender and minority representation.",
			DataSource:    "EDM Report",
			Formula:       "Diversity Index = Average of (Gender Diversity + Age Diversity + Religious Diversity)",
		},
		{
			Name:          model.KPIBotnosticSolutions,
			Title:         "Botnostic Solutions - Talent Management",
			CompanyPillar: PillarTalentManagement,
			HRPillar:      HRPillarTalentSkills,
			Target:        "Track assessment participation and training engagement",
			TargetValue:   100,
			Status:        "In Implementation",
			Icon:          "🎯",
			Calculable:    true,
			DataFile:      model.FileTalentXData,
			Default:       ptr(0),
			Description:   "Tracks talent management and training needs assessment through the Botnostic platform.",
			DataSource:    "TalentX Data (Master Sheet & Employee Data)",
			Formula:       "Assessments Given = distinct employee_id | Logged In = distinct employee_code | Training Started = rows with training_progress_percentage > 0",
		},
		{
			Title:         "AI-Driven P&C Processes",
			CompanyPillar: PillarTalentManagement,
			HRPillar:      HRPillarOrganization,
			Target:        "Implement AI in 25% of P&C processes",
			TargetValue:   25,
			Status:        "In Progress",
			Icon:          "🤖",
			Calculable:    false,
			Default:       ptr(0),
			Description:   "Tracks the adoption of AI technology across HR processes.",
			DataSource:    "Internal AI Implementation Tracking",
		},
		{
			Name:          model.KPIEngagementScore,
			Title:         "Employee Engagement Score",
			CompanyPillar: PillarTalentManagement,
			HRPillar:      HRPillarLeadership,
			Target:        "Achieve at least 20% engagement",
			TargetValue:   20,
			Status:        "In Progress",
			Icon:          "💪",
			Calculable:    true,
			DataFile:      model.FileENPSSurvey,
			Default:       ptr(69),
			Description:   "Measures employee satisfaction, advocacy and cultural alignment from survey responses.",
			DataSource:    "eNPS & cNPS Survey",
			Formula:       "Engagement (%) = Average of (eNPS Percentage + Culture Score Percentage)",
		},
		{
			Name:          model.KPIAITraining,
			Title:         "AI Training",
			CompanyPillar: PillarLearning,
			HRPillar:      HRPillarTalentSkills,
			Target:        "35% of permanent employees trained in AI tools",
			TargetValue:   35,
			Status:        "In Progress",
			Icon:          "🎓",
			Calculable:    true,
			DataFile:      model.FileLinkedInLearnerDetail,
			Default:       ptr(75),
			Description:   "Percentage of license holders who completed AI tool courses at 80% or higher.",
			DataSource:    "LinkedIn Learner Detail Report",
			Formula:       "AI Training (%) = (Employees with ≥80% completion in AI courses / Total License Holders) × 100",
		},
		{
			Name:          model.KPITalentDevelopment,
			Title:         "Talent Development",
			CompanyPillar: PillarLearning,
			HRPillar:      HRPillarTalentSkills,
			Target:        "60% completion rate of skill development",
			TargetValue:   60,
			Status:        "In Progress",
			Icon:          "📚",
			Calculable:    true,
			DataFile:      model.FileLinkedInLearning,
			Default:       ptr(6.7),
			Description:   "Percentage of employees who completed 80% or more of their assigned learning hours.",
			DataSource:    "LinkedIn Learning Report",
			Formula:       "Talent Development (%) = (Employees with ≥80% target completion / Total employees in sheet) × 100",
		},
		{
			Name:          model.KPILinkedInEngagement,
			Title:         "LinkedIn Page Engagement",
			CompanyPillar: PillarEmployerBranding,
			HRPillar:      HRPillarOrganization,
			Target:        "Increase LinkedIn followers by 20%, achieve 5,000 total page views, and reach 10,000 total impressions",
			TargetValue:   20,
			Status:        "In Progress",
			Icon:          "📱",
			Calculable:    true,
			DataFile:      model.FileLinkedInFollowers,
			Default:       ptr(0),
			Description:   "Tracks the People and Culture LinkedIn page through follower growth, page views and content impressions.",
			DataSource:    "LinkedIn Followers, Visitors and Content Reports",
			Formula:       "Over the selected window: Total Followers (sum), Total Page Views (sum), Total Impressions (sum)",
		},
	}
}

// MergedCatalog joins the static catalog with live calculated values.
// A calculated value always wins over the static default; uploading one
// file never clears values derived from other files.
func MergedCatalog(state *model.SessionState) []View {
	defs := Catalog()
	views := make([]View, 0, len(defs))

	for _, def := range defs {
		view := View{Definition: def, CurrentValue: def.Default}

		if def.Name != "" {
			if live, ok := state.KPIs[def.Name]; ok {
				applyLiveValue(&view, live)
			}
		}

		// composite side-channels attached regardless of the headline value
		switch def.Name {
		case model.KPIDiversityIndex:
			if v, ok := state.KPIs[model.KPIDiversityBreakdowns]; ok {
				view.Diversity = v.Diversity
			}
		case model.KPIAITraining:
			if v, ok := state.KPIs[model.KPITotalActiveEmployees]; ok && view.AITraining != nil {
				view.AITraining.TotalActiveEmployees = int(v.Scalar)
			}
		}

		views = append(views, view)
	}
	return views
}

// applyLiveValue projects a live KPIValue onto the view's headline
// number and structured payload.
func applyLiveValue(view *View, live model.KPIValue) {
	switch live.Kind {
	case model.ValueScalar:
		view.CurrentValue = ptr(live.Scalar)
	case model.ValueAITraining:
		stats := *live.AITraining
		view.AITraining = &stats
		view.CurrentValue = ptr(stats.Percentage)
	case model.ValueEngagement:
		engagement := *live.Engagement
		view.Engagement = &engagement
		if engagement.Followers != nil {
			view.CurrentValue = engagement.Followers
		}
	case model.ValueBotnostic:
		stats := *live.Botnostic
		view.Botnostic = &stats
		view.CurrentValue = ptr(float64(stats.AssessmentGiven))
	case model.ValueDiversity:
		view.Diversity = live.Diversity
	}
}
