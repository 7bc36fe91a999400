package models

// FoodItem is one logged meal entry. Immutable once created; removal is
// the only mutation (the item is dropped from the owning log's slice).
type FoodItem struct {
	ID        string  `json:"id"` // time-based, unique within the log
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Timestamp int64   `json:"timestamp"` // unix millis
}

// DailyLog holds everything recorded for one calendar date.
// The map key in AppData.Logs and the Date field are the same
// "YYYY-MM-DD" string.
type DailyLog struct {
	Date           string     `json:"date"`
	Meals          []FoodItem `json:"meals"`
	WaterIntake    int        `json:"waterIntake"` // cumulative ml
	BowelMovements int        `json:"bowelMovements"`
	Steps          int        `json:"steps"`
	Weight         *float64   `json:"weight,omitempty"` // kg, unset until measured
}

// TotalCalories sums the calories of every meal logged for the day.
func (l DailyLog) TotalCalories() float64 {
	var sum float64
	for _, m := range l.Meals {
		sum += m.Calories
	}
	return sum
}
