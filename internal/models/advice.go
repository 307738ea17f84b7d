package models

// Macros holds daily gram targets for each macronutrient.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// AdvicePayload is the structured result of a chat request. All five fields
// are always populated, whether the advice came from the LLM or from the
// deterministic fallback.
type AdvicePayload struct {
	Response      string   `json:"response"`
	Advice        string   `json:"advice"`
	WorkoutPlan   []string `json:"workout_plan"`
	NutritionTips string   `json:"nutrition_tips"`
	Macros        Macros   `json:"macros"`
}
