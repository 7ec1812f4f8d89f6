package mealplan

import "math"

// Activity multipliers for the TDEE estimate. Unknown activity levels fall
// back to the sedentary multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const (
	GoalWeightLoss  = "weight_loss"
	GoalMaintenance = "maintenance"
	GoalMuscleGain  = "muscle_gain"
)

// Macro calorie-share ratios per goal: protein, carbs, fat.
var goalMacroRatios = map[string][3]float64{
	GoalMaintenance: {0.30, 0.40, 0.30},
	GoalWeightLoss:  {0.40, 0.30, 0.30},
	GoalMuscleGain:  {0.30, 0.45, 0.25},
}

// ComputeTargets derives the daily calorie target and macro grams from a
// biometric profile. The calorie target is always a multiple of 50 and is
// clamped to a per-gender sanity band: weight-loss plans are capped at
// 2200/1800 kcal (male/female) and every plan gets a 1500/1200 kcal floor.
func ComputeTargets(profile Profile) Targets {
	tdee := basalRate(profile) * activityFactor(profile.Activity)

	target := tdee
	switch profile.Goal {
	case GoalWeightLoss:
		target -= 500
	case GoalMuscleGain:
		target += 300
	}

	if profile.Goal == GoalWeightLoss {
		cap := 1800.0
		if profile.Gender == "male" {
			cap = 2200.0
		}
		if target > cap {
			target = cap
		}
	}

	floor := 1200.0
	if profile.Gender == "male" {
		floor = 1500.0
	}
	if target < floor {
		target = floor
	}

	calories := int(math.Round(target/50)) * 50

	ratios, ok := goalMacroRatios[profile.Goal]
	if !ok {
		ratios = goalMacroRatios[GoalMaintenance]
	}

	return Targets{
		Calories: calories,
		Protein:  int(math.Round(float64(calories) * ratios[0] / 4)),
		Carbs:    int(math.Round(float64(calories) * ratios[1] / 4)),
		Fat:      int(math.Round(float64(calories) * ratios[2] / 9)),
	}
}

// basalRate estimates the basal metabolic rate via Mifflin-St Jeor, reduced
// by 15% when BMI exceeds 30 where the raw formula overestimates.
func basalRate(profile Profile) float64 {
	bmr := 10*profile.WeightKG + 6.25*profile.HeightCM - 5*float64(profile.Age)
	if profile.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	heightM := profile.HeightCM / 100
	if heightM > 0 {
		bmi := profile.WeightKG / (heightM * heightM)
		if bmi > 30 {
			bmr *= 0.85
		}
	}
	return bmr
}

func activityFactor(activity string) float64 {
	if factor, ok := activityMultipliers[activity]; ok {
		return factor
	}
	return activityMultipliers["sedentary"]
}
