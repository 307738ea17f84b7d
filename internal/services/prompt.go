package services

import (
	"fmt"

	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

const advicePromptTemplate = `You are an expert fitness trainer and nutritionist. Provide response in this exact JSON format:

{
  "response": "Brief summary",
  "advice": "Detailed fitness advice",
  "workout_plan": ["exercise1", "exercise2", "exercise3"],
  "nutrition_tips": "Diet recommendations",
  "macros": {
    "protein": 150,
    "carbs": 200,
    "fats": 50
  }
}

User Profile: age %d, height %.1f cm, weight %.1f kg, sex %s, activity level %s, goal %s
User Question: %s

Provide practical, science-based fitness advice. Respond with ONLY the JSON object.`

// BuildAdvicePrompt renders the profile and question into the instruction
// prompt for the LLM. The caller guarantees profile is non-nil; chat requests
// without a profile never reach this step.
func BuildAdvicePrompt(profile *models.Profile, question string) string {
	return fmt.Sprintf(advicePromptTemplate,
		profile.Age,
		profile.HeightCM,
		profile.WeightKG,
		profile.Sex,
		profile.ActivityLevel,
		profile.Goal,
		question,
	)
}
