package store

import (
	"errors"
	"fmt"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

// LoadSession assembles the user's working state from all four stores.
// A missing chart record is normal for a fresh user; KPI records that no
// longer decode are dropped rather than failing the whole load.
func (s *Store) LoadSession(userID string) (*model.SessionState, error) {
	state := model.NewSessionState()

	records, err := s.ListKPIs(userID)
	if err != nil {
		return nil, fmt.Errorf("load session kpis: %w", err)
	}
	for _, record := range records {
		value, err := model.KPIValueFromRecord(record.Name, record.Value, record.Metadata)
		if err != nil {
			continue
		}
		state.KPIs[record.Name] = value
	}

	files, err := s.ListUploadedFiles(userID)
	if err != nil {
		return nil, fmt.Errorf("load session files: %w", err)
	}
	for _, file := range files {
		state.Files[file.FileType] = file
	}

	ranges, err := s.ListDateRanges(userID)
	if err != nil {
		return nil, fmt.Errorf("load session ranges: %w", err)
	}
	for rangeType, window := range ranges {
		state.Ranges[rangeType] = window
	}

	charts, err := s.GetChartData(userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("load session charts: %w", err)
	}
	if err == nil {
		state.Charts = charts
	}

	return state, nil
}
