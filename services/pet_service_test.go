package services

import (
	"errors"
	"testing"

	"github.com/jiyuan880304-cmd/fitfocus/models"
)

func petOwner(tokens, affection int) models.UserProfile {
	return models.UserProfile{
		Name: "Mia", PetName: "Mochi", PetType: models.PetCat,
		Tokens: tokens, Affection: affection, Inventory: []string{},
	}
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name          string
		profile       models.UserProfile
		itemID        string
		wantTokens    int
		wantAffection int
		wantInventory []string
	}{
		{
			name:    "treat",
			profile: petOwner(100, 10),
			itemID:  "tuna", wantTokens: 50, wantAffection: 20,
			wantInventory: []string{"tuna"},
		},
		{
			name:    "exact balance",
			profile: petOwner(150, 0),
			itemID:  "toy", wantTokens: 0, wantAffection: 25,
			wantInventory: []string{"toy"},
		},
		{
			name:    "affection clamps at cap",
			profile: petOwner(600, 95),
			itemID:  "bed", wantTokens: 100, wantAffection: models.AffectionMax,
			wantInventory: []string{"bed"},
		},
		{
			name: "duplicates stack",
			profile: models.UserProfile{
				Tokens: 200, Affection: 0, Inventory: []string{"snack"},
			},
			itemID: "snack", wantTokens: 120, wantAffection: 15,
			wantInventory: []string{"snack", "snack"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, item, err := Purchase(tt.profile, tt.itemID)
			if err != nil {
				t.Fatalf("Purchase: %v", err)
			}
			if item.ID != tt.itemID {
				t.Errorf("item = %q, want %q", item.ID, tt.itemID)
			}
			if got.Tokens != tt.wantTokens {
				t.Errorf("tokens = %d, want %d", got.Tokens, tt.wantTokens)
			}
			if got.Affection != tt.wantAffection {
				t.Errorf("affection = %d, want %d", got.Affection, tt.wantAffection)
			}
			if len(got.Inventory) != len(tt.wantInventory) {
				t.Fatalf("inventory = %v, want %v", got.Inventory, tt.wantInventory)
			}
			for i, id := range tt.wantInventory {
				if got.Inventory[i] != id {
					t.Errorf("inventory[%d] = %q, want %q", i, got.Inventory[i], id)
				}
			}
		})
	}
}

func TestPurchaseInsufficientTokens(t *testing.T) {
	p := petOwner(49, 10)
	got, _, err := Purchase(p, "tuna")
	if !errors.Is(err, ErrInsufficientTokens) {
		t.Fatalf("err = %v, want ErrInsufficientTokens", err)
	}
	if got.Tokens != 49 || got.Affection != 10 || len(got.Inventory) != 0 {
		t.Errorf("rejected purchase changed state: %+v", got)
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	p := petOwner(1000, 10)
	if _, _, err := Purchase(p, "laser-pointer"); err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestPurchaseDoesNotShareInventoryBacking(t *testing.T) {
	p := petOwner(200, 0)
	p.Inventory = []string{"tuna"}
	got, _, err := Purchase(p, "snack")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	got.Inventory[0] = "mutated"
	if p.Inventory[0] != "tuna" {
		t.Error("purchase aliased the caller's inventory slice")
	}
}

func TestPetSpeech(t *testing.T) {
	base := petOwner(0, 50)
	base.DailyCalorieGoal = 1800

	tests := []struct {
		name      string
		affection int
		log       models.DailyLog
		want      string
	}{
		{
			name: "high affection wins", affection: 95,
			log:  models.DailyLog{WaterIntake: 3000},
			want: "Mochi loves you the most! Let's stay together forever~",
		},
		{
			name: "hydrated", affection: 50,
			log:  models.DailyLog{WaterIntake: 2000},
			want: "You drank so much water today! Healthy, just like me!",
		},
		{
			name: "bowel movement", affection: 50,
			log:  models.DailyLog{BowelMovements: 1},
			want: "An empty tummy feels great, doesn't it~",
		},
		{
			name: "over calorie goal", affection: 50,
			log: models.DailyLog{Meals: []models.FoodItem{
				{Name: "Feast", Calories: 2500},
			}},
			want: "Oops, you ate more than me today... let's do better tomorrow!",
		},
		{
			name: "default", affection: 50,
			log:  models.DailyLog{},
			want: "Let's work hard and get healthy together today!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.Affection = tt.affection
			if got := PetSpeech(p, tt.log); got != tt.want {
				t.Errorf("PetSpeech = %q, want %q", got, tt.want)
			}
		})
	}
}
