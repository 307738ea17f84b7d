package services

import (
	"math"

	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

// CalculateMacros derives daily macro targets from body weight in kilograms:
// 2.0 g/kg protein, 3.0 g/kg carbs, 1.0 g/kg fat, each rounded to one decimal.
func CalculateMacros(weightKG float64) models.Macros {
	return models.Macros{
		Protein: round1(weightKG * 2.0),
		Carbs:   round1(weightKG * 3.0),
		Fats:    round1(weightKG * 1.0),
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
