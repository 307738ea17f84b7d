package repository

import (
	"context"

	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create appends a progress entry. The timestamp is assigned server-side;
// entries are never updated or deleted.
func (r *ProgressRepository) Create(ctx context.Context, userID int64, weight float64, goal string) (*models.ProgressEntry, error) {
	query := `
		INSERT INTO progress_entries (user_id, weight, goal, recorded_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, user_id, weight, goal, recorded_at
	`
	var entry models.ProgressEntry
	err := r.db.QueryRow(ctx, query, userID, weight, goal).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Weight,
		&entry.Goal,
		&entry.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ProgressRepository) ListByUserID(ctx context.Context, userID int64) ([]models.ProgressEntry, error) {
	query := `
		SELECT id, user_id, weight, goal, recorded_at
		FROM progress_entries
		WHERE user_id = $1
		ORDER BY recorded_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ProgressEntry, 0)
	for rows.Next() {
		var entry models.ProgressEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Weight,
			&entry.Goal,
			&entry.RecordedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
