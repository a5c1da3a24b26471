package store

import (
	"database/sql"
	"fmt"
	"time"
)

// KPIRecord is one persisted KPI row: a nullable numeric value plus a
// nullable structured-metadata JSON payload.
type KPIRecord struct {
	Name     string
	Value    *float64
	Metadata []byte
}

// UpsertKPI saves a calculated KPI, replacing any prior value for the
// same name.
func (s *Store) UpsertKPI(userID string, record KPIRecord) error {
	var value sql.NullFloat64
	if record.Value != nil {
		value = sql.NullFloat64{Float64: *record.Value, Valid: true}
	}
	var metadata sql.NullString
	if record.Metadata != nil {
		metadata = sql.NullString{String: string(record.Metadata), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO calculated_kpis (user_id, kpi_name, kpi_value, metadata, calculated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, kpi_name) DO UPDATE SET
			kpi_value = excluded.kpi_value,
			metadata = excluded.metadata,
			calculated_at = excluded.calculated_at
	`, userID, record.Name, value, metadata, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert kpi %s: %w", record.Name, err)
	}
	return nil
}

// ListKPIs returns every calculated KPI for the user.
func (s *Store) ListKPIs(userID string) ([]KPIRecord, error) {
	rows, err := s.db.Query(`
		SELECT kpi_name, kpi_value, metadata
		FROM calculated_kpis WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpis: %w", err)
	}
	defer rows.Close()

	var records []KPIRecord
	for rows.Next() {
		var record KPIRecord
		var value sql.NullFloat64
		var metadata sql.NullString
		if err := rows.Scan(&record.Name, &value, &metadata); err != nil {
			return nil, fmt.Errorf("failed to scan kpi: %w", err)
		}
		if value.Valid {
			v := value.Float64
			record.Value = &v
		}
		if metadata.Valid {
			record.Metadata = []byte(metadata.String)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
