package services

import "github.com/jiyuan880304-cmd/fitfocus/models"

// The log map is treated as immutable per update so the reward engine
// can diff the before/after snapshots of today's entry. Both helpers
// therefore copy instead of mutating their input.

// GetLogOrDefault returns the entry for dateKey, or a fresh zero-valued
// log seeded with fallbackWeight when the date has never been touched.
func GetLogOrDefault(logs map[string]models.DailyLog, dateKey string, fallbackWeight float64) models.DailyLog {
	if entry, ok := logs[dateKey]; ok {
		return entry
	}
	w := fallbackWeight
	return models.DailyLog{
		Date:           dateKey,
		Meals:          []models.FoodItem{},
		WaterIntake:    0,
		BowelMovements: 0,
		Steps:          0,
		Weight:         &w,
	}
}

// PutLog returns a copy of logs with dateKey mapped to entry.
func PutLog(logs map[string]models.DailyLog, dateKey string, entry models.DailyLog) map[string]models.DailyLog {
	next := make(map[string]models.DailyLog, len(logs)+1)
	for k, v := range logs {
		next[k] = v
	}
	next[dateKey] = entry
	return next
}
