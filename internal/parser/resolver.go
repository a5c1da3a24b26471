package parser

import (
	"strings"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

// learningSheetCandidates are the case-insensitive substring candidates
// tried in priority order when resolving a learning-report workbook.
var learningSheetCandidates = []string{
	"linkedin learner summary",
	"learner summary",
	"summary",
	"licenses",
	"learning summary",
	"employee learning",
}

// Resolution is the outcome of sheet resolution. FellBack is set when
// the requested sheet was absent and a heuristic tier chose instead.
type Resolution struct {
	SheetName string
	Strategy  string
	FellBack  bool
}

// strategy is one tier of the resolution chain. Returns "" when the
// tier does not apply.
type strategy struct {
	name string
	pick func(wb *model.Workbook, requested string) string
}

// ResolveSheet selects the sheet to read for the given file type.
// Tiers are tried in order and the first hit wins; the final tier is
// unconditional, so resolution is total for any non-empty workbook.
func ResolveSheet(wb *model.Workbook, requested string, fileType model.FileType) (Resolution, error) {
	if len(wb.SheetNames) == 0 {
		return Resolution{}, ErrNoSheets
	}

	chain := []strategy{
		{name: "exact", pick: pickExact},
	}
	if fileType == model.FileLinkedInLearning {
		chain = append(chain,
			strategy{name: "learning-priority", pick: pickLearningCandidate},
			strategy{name: "learning-keyword", pick: pickLearnerKeyword},
			strategy{name: "first-with-email", pick: pickFirstWithEmail},
		)
	}
	chain = append(chain,
		strategy{name: "substring", pick: pickSubstring},
		strategy{name: "first", pick: pickFirst},
	)

	for _, s := range chain {
		if name := s.pick(wb, requested); name != "" {
			return Resolution{
				SheetName: name,
				Strategy:  s.name,
				FellBack:  s.name != "exact" && requested != "",
			}, nil
		}
	}

	// unreachable: pickFirst always returns a sheet
	return Resolution{SheetName: wb.SheetNames[0], Strategy: "first", FellBack: requested != ""}, nil
}

func pickExact(wb *model.Workbook, requested string) string {
	if requested == "" {
		return ""
	}
	for _, name := range wb.SheetNames {
		if name == requested {
			return name
		}
	}
	return ""
}

func pickLearningCandidate(wb *model.Workbook, _ string) string {
	for _, candidate := range learningSheetCandidates {
		for _, name := range wb.SheetNames {
			if strings.Contains(strings.ToLower(name), candidate) {
				return name
			}
		}
	}
	return ""
}

func pickLearnerKeyword(wb *model.Workbook, _ string) string {
	for _, name := range wb.SheetNames {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "learner") || strings.Contains(lower, "license") {
			return name
		}
	}
	return ""
}

func pickFirstWithEmail(wb *model.Workbook, _ string) string {
	first := wb.FirstSheet()
	if first == nil || len(first.Rows) == 0 {
		return ""
	}
	if _, ok := FindColumn(first.Rows[0], "email"); ok {
		return first.Name
	}
	return ""
}

func pickSubstring(wb *model.Workbook, requested string) string {
	if requested == "" {
		return ""
	}
	lower := strings.ToLower(requested)
	for _, name := range wb.SheetNames {
		if strings.Contains(strings.ToLower(name), lower) {
			return name
		}
	}
	return ""
}

func pickFirst(wb *model.Workbook, _ string) string {
	return wb.SheetNames[0]
}

// FindColumn returns the first header, in column order, whose
// lower-cased form contains the given substring.
func FindColumn(row model.Row, substring string) (string, bool) {
	lower := strings.ToLower(substring)
	for _, header := range row.Headers {
		if strings.Contains(strings.ToLower(header), lower) {
			return header, true
		}
	}
	return "", false
}
