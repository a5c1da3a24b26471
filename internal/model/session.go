package model

// ChartBucket is one categorical count for a dashboard chart.
type ChartBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ChartData holds the two employee-distribution charts derived from the
// EDM report.
type ChartData struct {
	Company []ChartBucket `json:"company"`
	Type    []ChartBucket `json:"type"`
}

// SessionState is the working dashboard state for one user: live KPI
// values, upload metadata, date-range selections and chart aggregates.
// It is passed explicitly through each calculate-and-merge step; the
// store is the side-effecting boundary after each mutation.
type SessionState struct {
	KPIs   map[string]KPIValue
	Files  map[FileType]UploadedFile
	Ranges map[RangeType]DateRange
	Charts ChartData
}

// NewSessionState creates an empty state with the default date ranges.
func NewSessionState() *SessionState {
	ranges := make(map[RangeType]DateRange, len(AllRangeTypes))
	for _, t := range AllRangeTypes {
		ranges[t] = DefaultDateRange(t)
	}
	return &SessionState{
		KPIs:   make(map[string]KPIValue),
		Files:  make(map[FileType]UploadedFile),
		Ranges: ranges,
	}
}

// Range returns the selected window for the given range type, falling
// back to its fixed default.
func (s *SessionState) Range(t RangeType) DateRange {
	if r, ok := s.Ranges[t]; ok {
		return r
	}
	return DefaultDateRange(t)
}
