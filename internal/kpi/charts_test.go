package kpi

import (
	"reflect"
	"testing"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

func TestEDMCharts_ActiveOnlyCaseInsensitive(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		edmRow("1", "Active", "", "", 0, "", "Jaffer Business Systems (Private) Limited", "Permanent"),
		edmRow("2", " active ", "", "", 0, "", "Jaffer Business Systems (Private) Limited", "Contract"),
		edmRow("3", "ACTIVE", "", "", 0, "", "Hysab Kytab (Private) Limited", "Probationary"),
		edmRow("4", "Exited", "", "", 0, "", "Hysab Kytab (Private) Limited", "Permanent"),
	}
	charts := EDMCharts(rows)

	wantCompany := []model.ChartBucket{
		{Name: "JBSPL", Value: 2},
		{Name: "HK", Value: 1},
	}
	if !reflect.DeepEqual(charts.Company, wantCompany) {
		t.Fatalf("company chart: %+v", charts.Company)
	}

	wantType := []model.ChartBucket{
		{Name: "Contract", Value: 1},
		{Name: "Probationary", Value: 1},
		{Name: "Permanent", Value: 1},
	}
	if !reflect.DeepEqual(charts.Type, wantType) {
		t.Fatalf("type chart: %+v", charts.Type)
	}
}

func TestEmployeesByCompany_SortAndPassthrough(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		edmRow("1", "Active", "", "", 0, "", "Acme Widgets", "Permanent"),
		edmRow("2", "Active", "", "", 0, "", "Acme Widgets", "Permanent"),
		edmRow("3", "Active", "", "", 0, "", "Impare Tech (Private) Limited", "Permanent"),
		edmRow("4", "Active", "", "", 0, "", "Beta Corp", "Permanent"),
	}
	got := EmployeesByCompany(rows)
	want := []model.ChartBucket{
		{Name: "Acme Widgets", Value: 2}, // unmapped name passes through
		{Name: "Beta Corp", Value: 1},    // count tie broken by name
		{Name: "Impare", Value: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestEmployeesByType_CatchAllAndOmitZero(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		edmRow("1", "Active", "", "", 0, "", "X", "Intern"),
		edmRow("2", "Active", "", "", 0, "", "X", "contract"),
		edmRow("3", "Active", "", "", 0, "", "X", ""),
	}
	got := EmployeesByType(rows)
	want := []model.ChartBucket{
		{Name: "Contract", Value: 1},
		{Name: "Permanent", Value: 1}, // Intern lands in the catch-all, blank is skipped
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
