package handlers

import "strings"

var allowedSexes = map[string]struct{}{
	"male":   {},
	"female": {},
	"other":  {},
}

var allowedActivityLevels = map[string]struct{}{
	"sedentary":   {},
	"light":       {},
	"moderate":    {},
	"active":      {},
	"very_active": {},
}

func validateCreateProfileRequest(req createProfileRequest) string {
	if req.UserID <= 0 {
		return "user_id must be greater than 0"
	}
	if req.Age <= 0 {
		return "age must be greater than 0"
	}
	if req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if _, ok := allowedSexes[strings.ToLower(strings.TrimSpace(req.Sex))]; !ok {
		return "sex must be one of: male, female, other"
	}
	if _, ok := allowedActivityLevels[strings.ToLower(strings.TrimSpace(req.ActivityLevel))]; !ok {
		return "activity_level must be one of: sedentary, light, moderate, active, very_active"
	}
	if strings.TrimSpace(req.Goal) == "" {
		return "goal is required"
	}
	return ""
}
