package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

// UpsertChartData saves the employee-distribution chart aggregates.
func (s *Store) UpsertChartData(userID string, charts model.ChartData) error {
	companyJSON, err := json.Marshal(charts.Company)
	if err != nil {
		return fmt.Errorf("failed to encode company chart: %w", err)
	}
	typeJSON, err := json.Marshal(charts.Type)
	if err != nil {
		return fmt.Errorf("failed to encode type chart: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO chart_data (user_id, company_data, type_data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			company_data = excluded.company_data,
			type_data = excluded.type_data,
			updated_at = excluded.updated_at
	`, userID, string(companyJSON), string(typeJSON), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert chart data: %w", err)
	}
	return nil
}

// GetChartData returns the saved chart aggregates, or ErrNotFound when
// the user has none yet.
func (s *Store) GetChartData(userID string) (model.ChartData, error) {
	var companyJSON, typeJSON string
	err := s.db.QueryRow(`
		SELECT company_data, type_data FROM chart_data WHERE user_id = ?
	`, userID).Scan(&companyJSON, &typeJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ChartData{}, ErrNotFound
	}
	if err != nil {
		return model.ChartData{}, fmt.Errorf("failed to get chart data: %w", err)
	}

	var charts model.ChartData
	if err := json.Unmarshal([]byte(companyJSON), &charts.Company); err != nil {
		return model.ChartData{}, fmt.Errorf("failed to decode company chart: %w", err)
	}
	if err := json.Unmarshal([]byte(typeJSON), &charts.Type); err != nil {
		return model.ChartData{}, fmt.Errorf("failed to decode type chart: %w", err)
	}
	return charts, nil
}
