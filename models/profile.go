package models

type PetType string

const (
	PetCat   PetType = "cat"
	PetDog   PetType = "dog"
	PetMouse PetType = "mouse"
)

// AffectionMax is the hard upper bound on pet affection.
const AffectionMax = 100

// UserProfile is the singleton per-user profile inside AppData.
// Tokens and affection are only ever increased by the reward engine;
// the shop is the only place tokens are spent.
type UserProfile struct {
	Name             string   `json:"name"`
	Gender           string   `json:"gender"` // "male" | "female" | "other"
	Height           float64  `json:"height"` // cm
	Weight           float64  `json:"weight"` // kg
	TargetWeight     float64  `json:"targetWeight"`
	DailyCalorieGoal int      `json:"dailyCalorieGoal"`
	Avatar           string   `json:"avatar,omitempty"`
	MotivationImage  string   `json:"motivationImage,omitempty"`
	Tokens           int      `json:"tokens"`
	Affection        int      `json:"affection"`
	Inventory        []string `json:"inventory"`
	PetType          PetType  `json:"petType"`
	PetName          string   `json:"petName"`
}
