package importer

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/store"
)

func newTestCoordinator(t *testing.T) *Coordinator {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "hrkpi.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewCoordinator(st, log)
}

// buildXLSX writes a single-sheet workbook with the given rows.
func buildXLSX(t *testing.T, sheetName string, rows [][]any) io.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func edmWorkbook(t *testing.T) io.Reader {
	return buildXLSX(t, "EDM Report", [][]any{
		{"Employee ID", "Status", "Joining Date", "Exit Date", "Employee's Age", "Religion", "Company", "Type"},
		{"1001", "Exited", "2024-01-01", "2025-08-01", 35, "Islam", "Jaffer Business Systems (Private) Limited", "Permanent"},
		{"1002", "Active", "2024-01-01", "", 28, "Islam", "Hysab Kytab (Private) Limited", "Contract"},
	})
}

func TestImport_EDMReport(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)
	result, err := c.Import("u1", model.FileEDMReport, "edm_august.xlsx", edmWorkbook(t))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.RowCount != 2 {
		t.Fatalf("row count: %d", result.RowCount)
	}

	// one exit of an average 1.5 headcount inside the default window
	turnover := result.State.KPIs[model.KPITurnoverRate]
	if !turnover.IsScalar() || turnover.Scalar != 66.7 {
		t.Fatalf("turnover: %+v", turnover)
	}
	active := result.State.KPIs[model.KPITotalActiveEmployees]
	if !active.IsScalar() || active.Scalar != 1 {
		t.Fatalf("active employees: %+v", active)
	}
	if _, ok := result.State.KPIs[model.KPIDiversityIndex]; !ok {
		t.Fatalf("diversity missing")
	}

	// everything must survive a fresh session load
	state, err := c.State("u1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := state.KPIs[model.KPITurnoverRate]; got.Scalar != 66.7 {
		t.Fatalf("persisted turnover: %+v", got)
	}
	if len(state.Charts.Company) == 0 {
		t.Fatalf("charts not persisted")
	}
	file, ok := state.Files[model.FileEDMReport]
	if !ok || file.FileName != "edm_august.xlsx" || file.RowCount != 2 {
		t.Fatalf("file metadata: %+v", file)
	}
}

func TestImport_EDMReuploadReplacesCharts(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)
	if _, err := c.Import("u1", model.FileEDMReport, "edm_august.xlsx", edmWorkbook(t)); err != nil {
		t.Fatalf("import: %v", err)
	}

	// a corrected export with no active employees must replace the
	// persisted charts, not leave the previous breakdowns behind
	allExited := buildXLSX(t, "EDM Report", [][]any{
		{"Employee ID", "Status", "Joining Date", "Exit Date", "Employee's Age", "Religion", "Company", "Type"},
		{"1001", "Exited", "2024-01-01", "2025-08-01", 35, "Islam", "Jaffer Business Systems (Private) Limited", "Permanent"},
	})
	if _, err := c.Import("u1", model.FileEDMReport, "edm_september.xlsx", allExited); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	state, err := c.State("u1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(state.Charts.Company) != 0 {
		t.Fatalf("stale company chart: %+v", state.Charts.Company)
	}
	if len(state.Charts.Type) != 0 {
		t.Fatalf("stale type chart: %+v", state.Charts.Type)
	}
}

func TestImport_LinkedInTripleMerges(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)

	followers := buildXLSX(t, "New followers", [][]any{
		{"Date", "Total followers"},
		{"2025-02-01", 10},
		{"2025-03-01", 15},
	})
	if _, err := c.Import("u1", model.FileLinkedInFollowers, "followers.xlsx", followers); err != nil {
		t.Fatalf("followers import: %v", err)
	}

	visitors := buildXLSX(t, "Visitor metrics", [][]any{
		{"Date", "Total page views (total)"},
		{"2025-02-01", 300},
	})
	if _, err := c.Import("u1", model.FileLinkedInVisitors, "visitors.xlsx", visitors); err != nil {
		t.Fatalf("visitors import: %v", err)
	}

	content := buildXLSX(t, "Metrics", [][]any{
		{"Date", "Impressions (total)"},
		{"2025-02-01", 5000},
	})
	result, err := c.Import("u1", model.FileLinkedInContent, "content.xlsx", content)
	if err != nil {
		t.Fatalf("content import: %v", err)
	}

	engagement := result.State.KPIs[model.KPILinkedInEngagement].Engagement
	if engagement == nil {
		t.Fatalf("engagement missing")
	}
	if engagement.Followers == nil || *engagement.Followers != 25 {
		t.Fatalf("followers lost after later uploads: %+v", engagement)
	}
	if engagement.PageViews == nil || *engagement.PageViews != 300 {
		t.Fatalf("page views lost: %+v", engagement)
	}
	if engagement.Impressions == nil || *engagement.Impressions != 5000 {
		t.Fatalf("impressions: %+v", engagement)
	}

	// and again from a fresh load
	state, err := c.State("u1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	persisted := state.KPIs[model.KPILinkedInEngagement].Engagement
	if persisted == nil || persisted.Followers == nil || *persisted.Followers != 25 {
		t.Fatalf("persisted engagement: %+v", persisted)
	}
}

func TestImport_LearningRebasesAITraining(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)

	detail := buildXLSX(t, "Learner Detail", [][]any{
		{"Email", "Skills", "Percent Completed"},
		{"alice@jbs.com", "Generative AI", "85"},
		{"bob@jbs.com", "Data Visualization", "90"},
	})
	result, err := c.Import("u1", model.FileLinkedInLearnerDetail, "detail.xlsx", detail)
	if err != nil {
		t.Fatalf("detail import: %v", err)
	}
	ai := result.State.KPIs[model.KPIAITraining].AITraining
	if ai == nil || ai.AITrained != 1 || ai.TotalLearners != 2 || ai.Percentage != 50.0 {
		t.Fatalf("ai training: %+v", ai)
	}

	// learner summary carries 4 license holders, so the percentage rebases
	summary := buildXLSX(t, "LinkedIn Learner Summary", [][]any{
		{"Email", "Target", "Remaining Hours"},
		{"alice@jbs.com", 40, 8},
		{"bob@jbs.com", 40, 30},
		{"carol@jbs.com", 40, 40},
		{"dave@jbs.com", 40, 40},
	})
	result, err = c.Import("u1", model.FileLinkedInLearning, "summary.xlsx", summary)
	if err != nil {
		t.Fatalf("summary import: %v", err)
	}

	licenses := result.State.KPIs[model.KPITotalLinkedInLicenses]
	if !licenses.IsScalar() || licenses.Scalar != 4 {
		t.Fatalf("licenses: %+v", licenses)
	}
	ai = result.State.KPIs[model.KPIAITraining].AITraining
	if ai == nil || ai.TotalLearners != 4 || ai.Percentage != 25.0 {
		t.Fatalf("rebased ai training: %+v", ai)
	}
	talent := result.State.KPIs[model.KPITalentDevelopment]
	if !talent.IsScalar() || talent.Scalar != 25.0 {
		t.Fatalf("talent development: %+v", talent)
	}
}

func TestImport_TalentXTwoSheets(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", model.TalentXEmployeeSheet)
	if _, err := f.NewSheet(model.TalentXMasterSheet); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	employee := [][]any{
		{"employee_id", "assessment"},
		{1, "done"},
		{2, "done"},
	}
	for i, row := range employee {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(model.TalentXEmployeeSheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	master := [][]any{
		{"employee_code", "training_progress_percentage"},
		{"EMP-A", 0},
		{"EMP-B", 60},
	}
	for i, row := range master {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(model.TalentXMasterSheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	result, err := c.Import("u1", model.FileTalentXData, "talentx.xlsx", bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	stats := result.State.KPIs[model.KPIBotnosticSolutions].Botnostic
	if stats == nil {
		t.Fatalf("botnostic missing")
	}
	want := model.BotnosticStats{AssessmentGiven: 2, LoggedIn: 2, TrainingStarted: 1}
	if *stats != want {
		t.Fatalf("got %+v want %+v", *stats, want)
	}
	if result.RowCount != 4 {
		t.Fatalf("row count: %d", result.RowCount)
	}
}

func TestImport_UnavailableResultKeepsPreviousValue(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)

	good := buildXLSX(t, "Survey", [][]any{
		{"How likely are you to recommend JBS to a friend or colleague?", "How would you rate the company culture?"},
		{10, 8},
	})
	if _, err := c.Import("u1", model.FileENPSSurvey, "survey.xlsx", good); err != nil {
		t.Fatalf("import: %v", err)
	}

	// a survey with no usable responses must not overwrite the score
	empty := buildXLSX(t, "Survey", [][]any{
		{"How likely are you to recommend JBS to a friend or colleague?", "How would you rate the company culture?"},
		{"n/a", "n/a"},
	})
	result, err := c.Import("u1", model.FileENPSSurvey, "survey2.xlsx", empty)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.UpdatedKPIs) != 0 {
		t.Fatalf("updated kpis: %v", result.UpdatedKPIs)
	}

	state, err := c.State("u1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	score := state.KPIs[model.KPIEngagementScore]
	if !score.IsScalar() || score.Scalar != 90.0 {
		t.Fatalf("engagement score: %+v", score)
	}
}

func TestImport_UnknownFileType(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)
	if _, err := c.Import("u1", "payroll", "x.xlsx", bytes.NewReader(nil)); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSetDateRange_Validation(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := c.SetDateRange("u1", model.RangeTurnover, model.DateRange{Start: start, End: end}); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	if err := c.SetDateRange("u1", "fiscal", model.DateRange{Start: end, End: start}); err == nil {
		t.Fatalf("expected error for unknown range type")
	}
	if err := c.SetDateRange("u1", model.RangeTurnover, model.DateRange{Start: end, End: start}); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
}

func TestReset_ClearsState(t *testing.T) {
	t.Parallel()

	c := newTestCoordinator(t)
	if _, err := c.Import("u1", model.FileEDMReport, "edm.xlsx", edmWorkbook(t)); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := c.Reset("u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	state, err := c.State("u1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(state.KPIs) != 0 || len(state.Files) != 0 {
		t.Fatalf("state not cleared: %+v", state)
	}
}
