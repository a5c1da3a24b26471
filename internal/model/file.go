package model

import "time"

// FileType identifies one of the HR source exports the dashboard ingests.
type FileType string

const (
	FileEDMReport             FileType = "edmReport"
	FileRecruitmentTracker    FileType = "recruitmentTracker"
	FileENPSSurvey            FileType = "enpsSurvey"
	FileLinkedInLearnerDetail FileType = "linkedinLearnerDetail"
	FileLinkedInLearning      FileType = "linkedinLearning"
	FileLinkedInFollowers     FileType = "linkedinFollowers"
	FileLinkedInVisitors      FileType = "linkedinVisitors"
	FileLinkedInContent       FileType = "linkedinContent"
	FileTalentXData           FileType = "talentxData"
)

// AllFileTypes lists every supported file type.
var AllFileTypes = []FileType{
	FileEDMReport,
	FileRecruitmentTracker,
	FileENPSSurvey,
	FileLinkedInLearnerDetail,
	FileLinkedInLearning,
	FileLinkedInFollowers,
	FileLinkedInVisitors,
	FileLinkedInContent,
	FileTalentXData,
}

// Valid reports whether t is a known file type.
func (t FileType) Valid() bool {
	for _, ft := range AllFileTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// ExpectedSheet is the sheet name each export is expected to carry.
// TalentX workbooks are read twice (TalentXEmployeeSheet and
// TalentXMasterSheet) and are not listed here.
var ExpectedSheet = map[FileType]string{
	FileLinkedInFollowers: "New followers",
	FileLinkedInVisitors:  "Visitor metrics",
	FileLinkedInContent:   "Metrics",
	FileLinkedInLearning:  "LinkedIn Learner Summary",
}

// Sheet names inside a TalentX workbook.
const (
	TalentXEmployeeSheet = "Employee data"
	TalentXMasterSheet   = "TalentX - Master Sheet"
)

// UploadedFile is the persisted metadata of the last upload per file type.
// Raw content is never persisted; only recomputed KPI values are.
type UploadedFile struct {
	FileType   FileType  `json:"fileType"`
	FileName   string    `json:"fileName"`
	RowCount   int       `json:"rowCount"`
	UploadedAt time.Time `json:"uploadedAt"`
}
