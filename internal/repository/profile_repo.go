package repository

import (
	"context"

	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type ProfileInput struct {
	Age           int
	HeightCM      float64
	WeightKG      float64
	Sex           string
	ActivityLevel string
	Goal          string
}

// Upsert overwrites the whole profile row for a user, creating it on first
// write. A profile row always belongs to an existing user via the foreign key.
func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, input ProfileInput) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, age, height_cm, weight_kg, sex, activity_level, goal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET age = EXCLUDED.age,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			sex = EXCLUDED.sex,
			activity_level = EXCLUDED.activity_level,
			goal = EXCLUDED.goal,
			updated_at = NOW()
		RETURNING id, user_id, age, height_cm, weight_kg, sex, activity_level, goal, created_at, updated_at
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query,
		userID,
		input.Age,
		input.HeightCM,
		input.WeightKG,
		input.Sex,
		input.ActivityLevel,
		input.Goal,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Age,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.Sex,
		&profile.ActivityLevel,
		&profile.Goal,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `
		SELECT id, user_id, age, height_cm, weight_kg, sex, activity_level, goal, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Age,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.Sex,
		&profile.ActivityLevel,
		&profile.Goal,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
