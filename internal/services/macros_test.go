package services

import (
	"math"
	"testing"
)

func TestCalculateMacrosRatios(t *testing.T) {
	weights := []float64{48.3, 62.5, 70, 80, 101.17}

	for _, weight := range weights {
		macros := CalculateMacros(weight)

		wantProtein := math.Round(weight*2.0*10) / 10
		wantCarbs := math.Round(weight*3.0*10) / 10
		wantFats := math.Round(weight*1.0*10) / 10

		if macros.Protein != wantProtein {
			t.Errorf("weight %.2f: expected protein %.1f, got %.1f", weight, wantProtein, macros.Protein)
		}
		if macros.Carbs != wantCarbs {
			t.Errorf("weight %.2f: expected carbs %.1f, got %.1f", weight, wantCarbs, macros.Carbs)
		}
		if macros.Fats != wantFats {
			t.Errorf("weight %.2f: expected fats %.1f, got %.1f", weight, wantFats, macros.Fats)
		}
	}
}

func TestCalculateMacrosReferenceWeight(t *testing.T) {
	macros := CalculateMacros(80)

	if macros.Protein != 160.0 || macros.Carbs != 240.0 || macros.Fats != 80.0 {
		t.Fatalf("expected {160 240 80}, got %+v", macros)
	}
}
