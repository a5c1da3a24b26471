package kpi

import (
	"testing"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

var surveyHeaders = []string{colRecommendScore, colCultureRating}

func surveyRow(recommend, culture model.Cell) model.Row {
	return rowOf(surveyHeaders, []model.Cell{recommend, culture})
}

func TestEngagementScore_BlendsENPSAndCulture(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		surveyRow(model.NumberCell(10), model.NumberCell(8)), // promoter
		surveyRow(model.NumberCell(8), model.NumberCell(6)),  // passive
		surveyRow(model.NumberCell(2), model.NumberCell(10)), // detractor
	}
	got, ok := EngagementScore(rows)
	if !ok {
		t.Fatalf("expected ok")
	}
	// eNPS 0 rescales to 50, culture mean 80, blended 65
	if got != 65.0 {
		t.Fatalf("engagement: got %v want 65.0", got)
	}
}

func TestEngagementScore_SkipsNonNumericResponses(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		surveyRow(model.NumberCell(9), model.NumberCell(7)),
		surveyRow(model.StringCell("prefer not to say"), model.StringCell("-")),
	}
	got, ok := EngagementScore(rows)
	if !ok {
		t.Fatalf("expected ok")
	}
	// one promoter: eNPS 100 rescales to 100, culture 70, blended 85
	if got != 85.0 {
		t.Fatalf("engagement: got %v want 85.0", got)
	}
}

func TestEngagementScore_NoResponses(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		surveyRow(model.EmptyCell, model.EmptyCell),
	}
	if _, ok := EngagementScore(rows); ok {
		t.Fatalf("expected unavailable")
	}
}

func TestEngagementScore_NoCultureRatings(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		surveyRow(model.NumberCell(9), model.EmptyCell),
	}
	if _, ok := EngagementScore(rows); ok {
		t.Fatalf("expected unavailable without culture ratings")
	}
}
