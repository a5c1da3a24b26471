package store

import (
	"fmt"
	"time"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/model"
)

// UpsertUploadedFile records the last upload for a file type.
func (s *Store) UpsertUploadedFile(userID string, file model.UploadedFile) error {
	_, err := s.db.Exec(`
		INSERT INTO uploaded_files (user_id, file_type, file_name, row_count, uploaded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, file_type) DO UPDATE SET
			file_name = excluded.file_name,
			row_count = excluded.row_count,
			uploaded_at = excluded.uploaded_at
	`, userID, string(file.FileType), file.FileName, file.RowCount, file.UploadedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert uploaded file: %w", err)
	}
	return nil
}

// ListUploadedFiles returns every upload record for the user.
func (s *Store) ListUploadedFiles(userID string) ([]model.UploadedFile, error) {
	rows, err := s.db.Query(`
		SELECT file_type, file_name, row_count, uploaded_at
		FROM uploaded_files WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploaded files: %w", err)
	}
	defer rows.Close()

	var files []model.UploadedFile
	for rows.Next() {
		var file model.UploadedFile
		var fileType, uploadedAt string
		if err := rows.Scan(&fileType, &file.FileName, &file.RowCount, &uploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan uploaded file: %w", err)
		}
		file.FileType = model.FileType(fileType)
		file.UploadedAt, _ = time.Parse(time.RFC3339, uploadedAt)
		files = append(files, file)
	}
	return files, rows.Err()
}
