package services

import "github.com/jiyuan880304-cmd/fitfocus/models"

// Reward rates. Water and steps pay per threshold tier crossed; bowel
// movements pay per event; meals pay a flat bonus at creation time.
const (
	WaterTierML        = 250
	WaterTierTokens    = 20
	WaterTierAffection = 5

	StepTierSize      = 1000
	StepTierTokens    = 50
	StepTierAffection = 2

	BowelEventTokens    = 30
	BowelEventAffection = 3

	MealBonusTokens    = 5
	MealBonusAffection = 2
)

// ApplyBonus folds a reward delta into a profile. Affection is clamped
// at models.AffectionMax; a zero delta returns the profile untouched.
func ApplyBonus(profile models.UserProfile, tokens, affection int) models.UserProfile {
	if tokens == 0 && affection == 0 {
		return profile
	}
	profile.Tokens += tokens
	profile.Affection += affection
	if profile.Affection > models.AffectionMax {
		profile.Affection = models.AffectionMax
	}
	return profile
}

// Accrue computes the reward earned by the transition from prev to next
// for a single day and folds it into profile.
//
// A nil snapshot on either side means there is nothing to diff against
// (first write of the day), so no bonus is computed. Decreases are never
// penalized: only upward tier crossings and new bowel events pay out.
// The function is pure and deterministic; calling it again with the
// same pair yields the same profile.
func Accrue(prev, next *models.DailyLog, profile models.UserProfile) models.UserProfile {
	if prev == nil || next == nil {
		return profile
	}

	tokens, affection := 0, 0

	if next.WaterIntake > prev.WaterIntake {
		tiers := next.WaterIntake/WaterTierML - prev.WaterIntake/WaterTierML
		if tiers > 0 {
			tokens += tiers * WaterTierTokens
			affection += tiers * WaterTierAffection
		}
	}

	if next.Steps > prev.Steps {
		tiers := next.Steps/StepTierSize - prev.Steps/StepTierSize
		if tiers > 0 {
			tokens += tiers * StepTierTokens
			affection += tiers * StepTierAffection
		}
	}

	if next.BowelMovements > prev.BowelMovements {
		count := next.BowelMovements - prev.BowelMovements
		tokens += count * BowelEventTokens
		affection += count * BowelEventAffection
	}

	return ApplyBonus(profile, tokens, affection)
}

// MealBonus applies the flat per-meal reward. Meals are append-only, so
// this is a degenerate accrual with no snapshot diff.
func MealBonus(profile models.UserProfile) models.UserProfile {
	return ApplyBonus(profile, MealBonusTokens, MealBonusAffection)
}
