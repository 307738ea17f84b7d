package models

import "time"

type ProgressEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Weight     float64   `json:"weight"`
	Goal       string    `json:"goal"`
	RecordedAt time.Time `json:"date"`
}
