package services

import (
	"errors"
	"fmt"

	"github.com/jiyuan880304-cmd/fitfocus/models"
)

// ShopItem is one purchasable pet treat. Buying it spends tokens and
// boosts affection; every purchase appends to the inventory, duplicates
// included.
type ShopItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Cost           int    `json:"cost"`
	Icon           string `json:"icon"`
	Description    string `json:"description"`
	AffectionBoost int    `json:"affectionBoost"`
}

var ShopCatalog = []ShopItem{
	{ID: "tuna", Name: "Gourmet Treat", Cost: 50, Icon: "🍱", Description: "A delicious snack!", AffectionBoost: 10},
	{ID: "toy", Name: "Premium Toy", Cost: 150, Icon: "🧶", Description: "Playtime", AffectionBoost: 25},
	{ID: "bed", Name: "Luxury Bed", Cost: 500, Icon: "🏠", Description: "Sweet dreams", AffectionBoost: 60},
	{ID: "snack", Name: "Nutrition Supplement", Cost: 80, Icon: "🍭", Description: "A sweet taste", AffectionBoost: 15},
}

var ErrInsufficientTokens = errors.New("not enough tokens")

func shopItem(itemID string) (ShopItem, bool) {
	for _, it := range ShopCatalog {
		if it.ID == itemID {
			return it, true
		}
	}
	return ShopItem{}, false
}

// Purchase deducts the item cost, appends the item to the inventory and
// boosts affection (clamped at the cap). The token balance can never go
// negative: an unaffordable purchase is rejected outright.
func Purchase(profile models.UserProfile, itemID string) (models.UserProfile, ShopItem, error) {
	item, ok := shopItem(itemID)
	if !ok {
		return profile, ShopItem{}, fmt.Errorf("unknown shop item %q", itemID)
	}
	if profile.Tokens < item.Cost {
		return profile, item, ErrInsufficientTokens
	}

	inventory := make([]string, 0, len(profile.Inventory)+1)
	inventory = append(inventory, profile.Inventory...)
	inventory = append(inventory, item.ID)

	profile.Tokens -= item.Cost
	profile.Inventory = inventory
	profile.Affection += item.AffectionBoost
	if profile.Affection > models.AffectionMax {
		profile.Affection = models.AffectionMax
	}
	return profile, item, nil
}

// PetSpeech picks the pet's dialogue line from the day's state. Rules
// are checked in priority order.
func PetSpeech(profile models.UserProfile, todayLog models.DailyLog) string {
	name := profile.PetName
	switch {
	case profile.Affection >= 90:
		return fmt.Sprintf("%s loves you the most! Let's stay together forever~", name)
	case todayLog.WaterIntake >= 2000:
		return "You drank so much water today! Healthy, just like me!"
	case todayLog.BowelMovements > 0:
		return "An empty tummy feels great, doesn't it~"
	case todayLog.TotalCalories() > float64(profile.DailyCalorieGoal):
		return "Oops, you ate more than me today... let's do better tomorrow!"
	default:
		return "Let's work hard and get healthy together today!"
	}
}
