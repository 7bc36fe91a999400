package utils

import (
	"math"
	"testing"
)

func TestDailyCalorieGoal(t *testing.T) {
	tests := []struct {
		name     string
		gender   string
		heightCm float64
		weightKg float64
		want     int
	}{
		// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75, * 0.8 = 1319
		{name: "male", gender: "male", heightCm: 175, weightKg: 70, want: 1319},
		// 10*60 + 6.25*165 - 5*30 - 161 = 1320.25, * 0.8 = 1056.2
		{name: "female", gender: "female", heightCm: 165, weightKg: 60, want: 1056},
		// other uses the female offset
		{name: "other", gender: "other", heightCm: 180, weightKg: 80, want: 1291},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DailyCalorieGoal(tt.gender, tt.heightCm, tt.weightKg); got != tt.want {
				t.Errorf("DailyCalorieGoal(%q, %v, %v) = %d, want %d",
					tt.gender, tt.heightCm, tt.weightKg, got, tt.want)
			}
		})
	}
}

func TestWaterGoalML(t *testing.T) {
	if got := WaterGoalML(70); got != 2310 {
		t.Errorf("WaterGoalML(70) = %d, want 2310", got)
	}
	if got := WaterGoalML(60); got != 1980 {
		t.Errorf("WaterGoalML(60) = %d, want 1980", got)
	}
}

func TestCalculateBMI(t *testing.T) {
	got, err := CalculateBMI(175, 70)
	if err != nil {
		t.Fatalf("CalculateBMI: %v", err)
	}
	if math.Abs(got-22.857) > 0.01 {
		t.Errorf("BMI = %v, want ~22.857", got)
	}

	invalid := []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"zero height", 0, 70},
		{"zero weight", 175, 0},
		{"height out of range", 300, 70},
		{"weight out of range", 175, 500},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CalculateBMI(tt.heightCm, tt.weightKg); err == nil {
				t.Errorf("CalculateBMI(%v, %v) accepted invalid input", tt.heightCm, tt.weightKg)
			}
		})
	}
}
