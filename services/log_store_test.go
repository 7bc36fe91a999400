package services

import (
	"testing"

	"github.com/jiyuan880304-cmd/fitfocus/models"
)

func TestGetLogOrDefaultCreatesZeroValuedEntry(t *testing.T) {
	logs := map[string]models.DailyLog{}

	got := GetLogOrDefault(logs, "2024-01-01", 70)

	if got.Date != "2024-01-01" {
		t.Errorf("date = %q, want 2024-01-01", got.Date)
	}
	if got.WaterIntake != 0 || got.BowelMovements != 0 || got.Steps != 0 {
		t.Errorf("counters not zero: %+v", got)
	}
	if got.Meals == nil || len(got.Meals) != 0 {
		t.Errorf("meals = %v, want empty slice", got.Meals)
	}
	if got.Weight == nil || *got.Weight != 70 {
		t.Errorf("weight = %v, want 70", got.Weight)
	}
	if len(logs) != 0 {
		t.Errorf("input mapping was mutated: %v", logs)
	}
}

func TestGetLogOrDefaultReturnsExisting(t *testing.T) {
	existing := models.DailyLog{Date: "2024-01-01", WaterIntake: 750, Steps: 4000}
	logs := map[string]models.DailyLog{"2024-01-01": existing}

	got := GetLogOrDefault(logs, "2024-01-01", 70)
	if got.WaterIntake != 750 || got.Steps != 4000 {
		t.Errorf("got %+v, want the existing entry", got)
	}
}

func TestPutLogDoesNotMutateInput(t *testing.T) {
	logs := map[string]models.DailyLog{
		"2024-01-01": {Date: "2024-01-01", WaterIntake: 500},
	}

	next := PutLog(logs, "2024-01-02", models.DailyLog{Date: "2024-01-02", Steps: 100})

	if len(logs) != 1 {
		t.Errorf("input mapping grew to %d entries", len(logs))
	}
	if len(next) != 2 {
		t.Errorf("result has %d entries, want 2", len(next))
	}
	if next["2024-01-01"].WaterIntake != 500 {
		t.Errorf("existing entry lost: %+v", next["2024-01-01"])
	}
	if next["2024-01-02"].Steps != 100 {
		t.Errorf("new entry missing: %+v", next["2024-01-02"])
	}
}

func TestPutLogOverwrite(t *testing.T) {
	logs := map[string]models.DailyLog{
		"2024-01-01": {Date: "2024-01-01", WaterIntake: 250},
	}

	next := PutLog(logs, "2024-01-01", models.DailyLog{Date: "2024-01-01", WaterIntake: 500})

	if logs["2024-01-01"].WaterIntake != 250 {
		t.Errorf("input entry changed: %+v", logs["2024-01-01"])
	}
	if next["2024-01-01"].WaterIntake != 500 {
		t.Errorf("overwrite missing: %+v", next["2024-01-01"])
	}
}
