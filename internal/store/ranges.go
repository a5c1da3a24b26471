package store

import (
	"fmt"
	"time"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

const dateFormat = "2006-01-02"

// UpsertDateRange saves one named date-range selection.
func (s *Store) UpsertDateRange(userID string, rangeType model.RangeType, window model.DateRange) error {
	_, err := s.db.Exec(`
		INSERT INTO date_ranges (user_id, range_type, start_date, end_date, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, range_type) DO UPDATE SET
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			updated_at = excluded.updated_at
	`, userID, string(rangeType), window.Start.Format(dateFormat), window.End.Format(dateFormat),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert date range %s: %w", rangeType, err)
	}
	return nil
}

// ListDateRanges returns the saved date-range selections for the user.
func (s *Store) ListDateRanges(userID string) (map[model.RangeType]model.DateRange, error) {
	rows, err := s.db.Query(`
		SELECT range_type, start_date, end_date
		FROM date_ranges WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list date ranges: %w", err)
	}
	defer rows.Close()

	ranges := make(map[model.RangeType]model.DateRange)
	for rows.Next() {
		var rangeType, start, end string
		if err := rows.Scan(&rangeType, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan date range: %w", err)
		}
		startDate, err := time.Parse(dateFormat, start)
		if err != nil {
			continue
		}
		endDate, err := time.Parse(dateFormat, end)
		if err != nil {
			continue
		}
		ranges[model.RangeType(rangeType)] = model.DateRange{Start: startDate, End: endDate}
	}
	return ranges, rows.Err()
}
