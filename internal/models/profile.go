package models

import "time"

type Profile struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Age           int       `json:"age"`
	HeightCM      float64   `json:"height_cm"`
	WeightKG      float64   `json:"weight_kg"`
	Sex           string    `json:"sex"`
	ActivityLevel string    `json:"activity_level"`
	Goal          string    `json:"goal"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
