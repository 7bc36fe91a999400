package utils

import (
	"errors"
	"math"
)

// The onboarding goal uses Mifflin-St Jeor with a fixed age of 30 and a
// 0.8 deficit multiplier. It is derived once at account setup; later
// weight changes do not recompute it.
const (
	goalAgeYears      = 30
	goalDeficitFactor = 0.8
)

// DailyCalorieGoal expects height in centimeters and weight in kilograms.
func DailyCalorieGoal(gender string, heightCm, weightKg float64) int {
	base := 10*weightKg + 6.25*heightCm - 5*goalAgeYears
	if gender == "male" {
		base += 5
	} else {
		base -= 161
	}
	return int(math.Round(base * goalDeficitFactor))
}

// WaterGoalML is the daily hydration target in milliliters (33 ml/kg).
func WaterGoalML(weightKg float64) int {
	return int(math.Round(weightKg * 33))
}

// StepGoal is the fixed daily step target.
const StepGoal = 10000

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}
