package models

import "testing"

func TestValidFastingDuration(t *testing.T) {
	for _, d := range FastingDurations {
		if !ValidFastingDuration(d) {
			t.Errorf("ValidFastingDuration(%d) = false", d)
		}
	}
	for _, d := range []int{0, 8, 13, 15, 24, -16} {
		if ValidFastingDuration(d) {
			t.Errorf("ValidFastingDuration(%d) = true", d)
		}
	}
}

func TestNewAppDataDefaults(t *testing.T) {
	d := NewAppData()
	if d.Profile != nil {
		t.Error("fresh AppData should have no profile")
	}
	if d.Logs == nil || len(d.Logs) != 0 {
		t.Errorf("Logs = %v, want empty map", d.Logs)
	}
	if d.Fasting.IsActive {
		t.Error("fresh AppData should not be fasting")
	}
	if d.Fasting.StartTime != nil {
		t.Error("fresh AppData has a fasting start time")
	}
	if d.Fasting.TargetDuration != DefaultFastingDuration {
		t.Errorf("TargetDuration = %d, want %d", d.Fasting.TargetDuration, DefaultFastingDuration)
	}
}

func TestSanitizeRestoresInvariants(t *testing.T) {
	d := AppData{}
	d.Sanitize()
	if d.Logs == nil {
		t.Error("Sanitize left Logs nil")
	}
	if d.Fasting.TargetDuration != DefaultFastingDuration {
		t.Errorf("TargetDuration = %d, want %d", d.Fasting.TargetDuration, DefaultFastingDuration)
	}

	// An active session without a start time is contradictory; the
	// session is dropped rather than guessed at.
	active := AppData{Logs: map[string]DailyLog{}}
	active.Fasting = FastingSession{IsActive: true, TargetDuration: 16}
	active.Sanitize()
	if active.Fasting.IsActive {
		t.Error("Sanitize kept an active session with no start time")
	}
}

func TestTotalCalories(t *testing.T) {
	log := DailyLog{Meals: []FoodItem{
		{Name: "Oatmeal", Calories: 320.5},
		{Name: "Salad", Calories: 180},
	}}
	if got := log.TotalCalories(); got != 500.5 {
		t.Errorf("TotalCalories = %v, want 500.5", got)
	}
	if got := (DailyLog{}).TotalCalories(); got != 0 {
		t.Errorf("empty log TotalCalories = %v, want 0", got)
	}
}
