package kpi

import (
	"testing"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

func TestBotnosticMetrics_ParticipationTriple(t *testing.T) {
	t.Parallel()

	employeeRows := []model.Row{
		rowOf([]string{colBotnosticEmployeeID}, []model.Cell{model.NumberCell(1)}),
		rowOf([]string{colBotnosticEmployeeID}, []model.Cell{model.NumberCell(2)}),
		rowOf([]string{colBotnosticEmployeeID}, []model.Cell{model.NumberCell(2)}), // repeat assessment
		rowOf([]string{colBotnosticEmployeeID}, []model.Cell{model.EmptyCell}),
	}

	masterHeaders := []string{colBotnosticCode, colTrainingProgress}
	masterRows := []model.Row{
		rowOf(masterHeaders, []model.Cell{model.StringCell("EMP-A"), model.NumberCell(0)}),
		rowOf(masterHeaders, []model.Cell{model.StringCell("EMP-B"), model.NumberCell(55)}),
		rowOf(masterHeaders, []model.Cell{model.StringCell("EMP-C"), model.EmptyCell}),
	}

	got := BotnosticMetrics(employeeRows, masterRows)
	want := model.BotnosticStats{AssessmentGiven: 2, LoggedIn: 3, TrainingStarted: 1}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestBotnosticMetrics_EmptySheets(t *testing.T) {
	t.Parallel()

	got := BotnosticMetrics(nil, nil)
	if got != (model.BotnosticStats{}) {
		t.Fatalf("got %+v want zero stats", got)
	}
}
