package kpi

import (
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
)

// TalentX export column headers.
const (
	colBotnosticEmployeeID = "employee_id"
	colBotnosticCode       = "employee_code"
	colTrainingProgress    = "training_progress_percentage"
)

// BotnosticMetrics derives the assessment-platform participation triple
// from the two TalentX sheets: distinct assessed employees from the
// employee sheet, distinct logged-in employees from the master roster,
// and the count of roster rows with any training progress.
func BotnosticMetrics(employeeRows, masterRows []model.Row) model.BotnosticStats {
	assessed := make(map[string]struct{})
	for _, row := range employeeRows {
		if id := cellKey(row.Get(colBotnosticEmployeeID)); id != "" {
			assessed[id] = struct{}{}
		}
	}

	loggedIn := make(map[string]struct{})
	trainingStarted := 0
	for _, row := range masterRows {
		if code := cellKey(row.Get(colBotnosticCode)); code != "" {
			loggedIn[code] = struct{}{}
		}
		if progress, ok := parser.ToNumber(row.Get(colTrainingProgress)); ok && progress > 0 {
			trainingStarted++
		}
	}

	return model.BotnosticStats{
		AssessmentGiven: len(assessed),
		LoggedIn:        len(loggedIn),
		TrainingStarted: trainingStarted,
	}
}
