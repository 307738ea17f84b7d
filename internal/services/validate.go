package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

var requiredAdviceFields = []string{"response", "advice", "workout_plan", "nutrition_tips", "macros"}

// ParseAdvice validates raw LLM output against the advice schema. Models
// often wrap JSON in Markdown code fences, so those are stripped first; after
// that the text must be a JSON object carrying all five required fields with
// the right shapes. Any violation is an error, which the caller routes to the
// deterministic fallback.
func ParseAdvice(raw string) (*models.AdvicePayload, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return nil, fmt.Errorf("empty response")
	}
	if !strings.HasPrefix(cleaned, "{") {
		return nil, fmt.Errorf("response is not a JSON object")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	for _, field := range requiredAdviceFields {
		if _, ok := fields[field]; !ok {
			return nil, fmt.Errorf("missing required field %q", field)
		}
	}

	var payload models.AdvicePayload
	if err := json.Unmarshal(fields["response"], &payload.Response); err != nil {
		return nil, fmt.Errorf("field response must be a string")
	}
	if err := json.Unmarshal(fields["advice"], &payload.Advice); err != nil {
		return nil, fmt.Errorf("field advice must be a string")
	}
	if err := json.Unmarshal(fields["workout_plan"], &payload.WorkoutPlan); err != nil {
		return nil, fmt.Errorf("field workout_plan must be a list of strings")
	}
	if len(payload.WorkoutPlan) == 0 {
		return nil, fmt.Errorf("field workout_plan must not be empty")
	}
	if err := json.Unmarshal(fields["nutrition_tips"], &payload.NutritionTips); err != nil {
		return nil, fmt.Errorf("field nutrition_tips must be a string")
	}

	var macros struct {
		Protein *float64 `json:"protein"`
		Carbs   *float64 `json:"carbs"`
		Fats    *float64 `json:"fats"`
	}
	if err := json.Unmarshal(fields["macros"], &macros); err != nil {
		return nil, fmt.Errorf("field macros must be an object with numeric values")
	}
	if macros.Protein == nil || macros.Carbs == nil || macros.Fats == nil {
		return nil, fmt.Errorf("field macros must carry numeric protein, carbs and fats")
	}
	payload.Macros = models.Macros{
		Protein: *macros.Protein,
		Carbs:   *macros.Carbs,
		Fats:    *macros.Fats,
	}

	return &payload, nil
}
