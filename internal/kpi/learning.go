package kpi

import (
	"regexp"
	"strings"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/parser"
)

// Learner detail report column headers. The email column is located by
// substring search because its spelling drifts across exports.
const (
	colPercentCompleted = "Percent Completed"
	colSkills           = "Skills"
)

// Learning report (learner summary) column headers.
const (
	colEmail          = "Email"
	colTargetHours    = "Target"
	colRemainingHours = "Remaining Hours"
)

// completionThreshold is the completion percentage at which a course or
// a target counts as fulfilled.
const completionThreshold = 80

// aiWord matches "ai" as a whole word, case-insensitively.
var aiWord = regexp.MustCompile(`(?i)\bai\b`)

// isAICourse reports whether a skills field names an AI course.
func isAICourse(skills string) bool {
	lower := strings.ToLower(skills)
	return strings.Contains(lower, "artificial intelligence") || aiWord.MatchString(skills)
}

// AITraining computes the share of license holders who completed an AI
// course at 80% or better, rounded to one decimal. The denominator is
// totalLicenses when positive (the learning report's license count),
// otherwise the distinct emails found in the detail data itself.
// Returns ok=false when the email column is missing or the denominator
// is zero.
func AITraining(rows []model.Row, totalLicenses int) (model.AITrainingStats, bool) {
	if len(rows) == 0 {
		return model.AITrainingStats{}, false
	}
	emailCol, ok := parser.FindColumn(rows[0], "email")
	if !ok {
		return model.AITrainingStats{}, false
	}

	denominator := totalLicenses
	if denominator <= 0 {
		all := make(map[string]struct{})
		for _, row := range rows {
			if email := normalizeEmail(row.Get(emailCol)); email != "" {
				all[email] = struct{}{}
			}
		}
		denominator = len(all)
	}
	if denominator == 0 {
		return model.AITrainingStats{}, false
	}

	trained := make(map[string]struct{})
	for _, row := range rows {
		email := normalizeEmail(row.Get(emailCol))
		skills := row.Get(colSkills).Str
		if email == "" || skills == "" {
			continue
		}
		if !isAICourse(skills) {
			continue
		}
		completed, ok := parser.ToNumber(row.Get(colPercentCompleted))
		if ok && completed >= completionThreshold {
			trained[email] = struct{}{}
		}
	}

	return model.AITrainingStats{
		Percentage:    round1(float64(len(trained)) / float64(denominator) * 100),
		TotalLearners: denominator,
		AITrained:     len(trained),
	}, true
}

// TalentDevelopment computes the share of distinct learners who finished
// at least 80% of their target hours, rounded to one decimal. Rows with
// non-numeric target or remaining hours are skipped. Returns ok=false
// when no learner qualifies for the denominator.
func TalentDevelopment(rows []model.Row) (float64, bool) {
	unique := make(map[string]struct{})
	completed := make(map[string]struct{})

	for _, row := range rows {
		email := normalizeEmail(row.Get(colEmail))
		target, okTarget := parser.ToNumber(row.Get(colTargetHours))
		remaining, okRemaining := parser.ToNumber(row.Get(colRemainingHours))
		if email == "" || !okTarget || !okRemaining {
			continue
		}

		unique[email] = struct{}{}

		if target == 0 {
			continue
		}
		completion := (target - remaining) / target * 100
		if completion >= completionThreshold {
			completed[email] = struct{}{}
		}
	}

	if len(unique) == 0 {
		return 0, false
	}
	return round1(float64(len(completed)) / float64(len(unique)) * 100), true
}

// TotalLinkedInLicenses counts distinct normalized emails in the
// learning report; it serves as the AI Training denominator once the
// report is uploaded. Returns ok=false when the email column is absent.
func TotalLinkedInLicenses(rows []model.Row) (int, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	emailCol, ok := parser.FindColumn(rows[0], "email")
	if !ok {
		return 0, false
	}

	unique := make(map[string]struct{})
	for _, row := range rows {
		if email := normalizeEmail(row.Get(emailCol)); email != "" {
			unique[email] = struct{}{}
		}
	}
	return len(unique), true
}

// Rebase recomputes an AI Training percentage against a new license
// denominator. The trained set is independent of the denominator, so no
// re-read of the detail report is needed.
func Rebase(trained, totalLicenses int) float64 {
	if totalLicenses <= 0 {
		return 0
	}
	return round1(float64(trained) / float64(totalLicenses) * 100)
}

// normalizeEmail lower-cases and trims an email cell so duplicate
// learners collapse across rows.
func normalizeEmail(c model.Cell) string {
	if c.Kind != model.CellString {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.Str))
}
