package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

const (
	defaultWeightKG = 70
	defaultGoal     = "General Fitness"
)

// Keyword sets overlap, so dispatch order matters: first match wins.
var (
	workoutKeywords    = []string{"workout", "exercise", "train", "gym"}
	dietKeywords       = []string{"diet", "food", "nutrition", "eat"}
	weightLossKeywords = []string{"weight loss", "fat loss", "lose weight"}
	muscleKeywords     = []string{"muscle", "gain", "bulk", "size"}
)

// FallbackAdvice builds a complete advice payload without any external call.
// It is the safety net beneath every failure in the chat path, so it is total:
// any (profile, message) pair yields all five fields, and the macros field is
// always calculator-derived regardless of which template matched.
func FallbackAdvice(profile *models.Profile, message string) models.AdvicePayload {
	weight := float64(defaultWeightKG)
	goal := defaultGoal
	if profile != nil {
		weight = profile.WeightKG
		goal = profile.Goal
	}

	lower := strings.ToLower(message)

	var payload models.AdvicePayload
	switch {
	case containsAny(lower, workoutKeywords):
		payload = models.AdvicePayload{
			Response: "Here's a balanced workout plan for your fitness goals",
			Advice:   "Focus on compound exercises with proper form. Progressive overload is key for continuous improvement.",
			WorkoutPlan: []string{
				"Monday: Upper Body - Bench Press 3x8-10, Rows 3x8-10, Shoulder Press 3x10-12",
				"Tuesday: Lower Body - Squats 3x8-10, Deadlifts 3x5-8, Lunges 3x12",
				"Wednesday: Rest or Active Recovery",
				"Thursday: Upper Body - Pull-ups 3xAMRAP, Dips 3x10-12, Bicep Curls 3x12",
				"Friday: Lower Body - Leg Press 4x12, Leg Curls 4x12, Calf Raises 4x15",
				"Weekend: Cardio and Mobility",
			},
			NutritionTips: fmt.Sprintf("Eat %dg protein daily. Time carbs around workouts. Stay hydrated with 3-4L water.", grams(weight, 2.0)),
		}
	case containsAny(lower, dietKeywords):
		payload = models.AdvicePayload{
			Response: "Nutrition advice for your fitness journey",
			Advice:   "Focus on whole foods, adequate protein, and proper meal timing around workouts.",
			WorkoutPlan: []string{
				"Combine proper nutrition with consistent training for best results",
			},
			NutritionTips: fmt.Sprintf(`For %s:
- Protein: %dg daily from chicken, fish, eggs, dairy
- Carbs: %dg from rice, potatoes, oats, fruits
- Fats: %dg from nuts, avocado, olive oil
- Meal frequency: 4-6 meals daily
- Hydration: 3-4 liters water minimum`, goal, grams(weight, 2.0), grams(weight, 3.0), grams(weight, 1.0)),
		}
	case containsAny(lower, weightLossKeywords):
		payload = models.AdvicePayload{
			Response: "Weight loss strategy with sustainable approach",
			Advice:   "Create a moderate calorie deficit through diet and exercise. Focus on protein to preserve muscle.",
			WorkoutPlan: []string{
				"Monday: HIIT Cardio - 30min interval training",
				"Tuesday: Strength Training - Full body compound exercises",
				"Wednesday: Steady State Cardio - 45min moderate pace",
				"Thursday: Strength Training - Different exercises from Tuesday",
				"Friday: Active Recovery - Walking, stretching, mobility",
				"Weekend: Rest or light activity",
			},
			NutritionTips: fmt.Sprintf("Create 500-calorie deficit daily. Eat %dg protein. Focus on fiber-rich foods for satiety.", grams(weight, 2.0)),
		}
	case containsAny(lower, muscleKeywords):
		payload = models.AdvicePayload{
			Response: "Muscle building program with progressive overload",
			Advice:   "Focus on compound lifts with progressive overload. Ensure calorie surplus with adequate protein.",
			WorkoutPlan: []string{
				"Monday: Chest & Triceps - Heavy pressing movements",
				"Tuesday: Back & Biceps - Pulling movements",
				"Wednesday: Legs & Core - Squats, deadlifts, accessories",
				"Thursday: Shoulders & Arms - Overhead press and isolation",
				"Friday: Weak Points - Address lagging muscle groups",
				"Weekend: Rest and recovery",
			},
			NutritionTips: fmt.Sprintf("Eat 300-500 calorie surplus. Protein: %dg daily. Carbs around workouts for energy.", grams(weight, 2.2)),
		}
	default:
		payload = models.AdvicePayload{
			Response: "Comprehensive fitness guidance",
			Advice:   "Consistency in training and nutrition is the foundation of success. Focus on progressive improvement.",
			WorkoutPlan: []string{
				"Monday: Strength Training - Compound exercises 3-4 sets",
				"Tuesday: Cardiovascular Training - 30-45 minutes",
				"Wednesday: Active Recovery - Mobility and flexibility",
				"Thursday: Hypertrophy Training - 8-12 rep range",
				"Friday: Full Body Metabolic Conditioning",
				"Weekend: Rest or recreational activities",
			},
			NutritionTips: fmt.Sprintf("Balanced macronutrients: Protein %dg, Carbs %dg, Fats %dg daily", grams(weight, 2.0), grams(weight, 3.0), grams(weight, 1.0)),
		}
	}

	payload.Macros = CalculateMacros(weight)
	return payload
}

// ProfileIncompleteAdvice is returned when a chat request arrives from a user
// with no stored profile. It is distinct from every keyword template and
// carries zero macros.
func ProfileIncompleteAdvice() models.AdvicePayload {
	return models.AdvicePayload{
		Response: "Please complete your profile first to receive personalized fitness advice.",
		Advice:   "Your profile helps me understand your age, fitness level, goals, and body composition to provide customized plans.",
		WorkoutPlan: []string{
			"Complete profile setup to unlock personalized training program",
		},
		NutritionTips: "Profile information is essential for creating diet plans based on your metabolic needs",
		Macros:        models.Macros{},
	}
}

func containsAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func grams(weightKG, multiplier float64) int {
	return int(math.Round(weightKG * multiplier))
}
