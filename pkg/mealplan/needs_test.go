package mealplan

import "testing"

func TestComputeTargetsMaintenanceScenario(t *testing.T) {
	profile := Profile{
		Age:      30,
		Gender:   "male",
		HeightCM: 180,
		WeightKG: 75,
		Activity: "moderate",
		Goal:     GoalMaintenance,
	}

	targets := ComputeTargets(profile)

	if targets.Calories != 2700 {
		t.Errorf("Expected 2700 kcal daily target, got %d", targets.Calories)
	}
	if targets.Protein != 203 {
		t.Errorf("Expected 203g protein (30%% of calories), got %d", targets.Protein)
	}
	if targets.Carbs != 270 {
		t.Errorf("Expected 270g carbs (40%% of calories), got %d", targets.Carbs)
	}
	if targets.Fat != 90 {
		t.Errorf("Expected 90g fat (30%% of calories), got %d", targets.Fat)
	}
}

func TestBasalRateBMICorrection(t *testing.T) {
	profile := Profile{Age: 40, Gender: "male", HeightCM: 170, WeightKG: 100}

	// Raw Mifflin-St Jeor: 1000 + 1062.5 - 200 + 5 = 1867.5, then scaled
	// by 0.85 because BMI (34.6) exceeds 30.
	got := basalRate(profile)
	want := 1867.5 * 0.85
	if got != want {
		t.Errorf("Expected BMI-corrected BMR %.3f, got %.3f", want, got)
	}
}

func TestComputeTargetsWeightLossCap(t *testing.T) {
	profile := Profile{
		Age:      25,
		Gender:   "male",
		HeightCM: 190,
		WeightKG: 130,
		Activity: "active",
		Goal:     GoalWeightLoss,
	}

	targets := ComputeTargets(profile)
	if targets.Calories != 2200 {
		t.Errorf("Expected weight-loss target capped at 2200, got %d", targets.Calories)
	}
}

func TestComputeTargetsSafetyFloor(t *testing.T) {
	profile := Profile{
		Age:      60,
		Gender:   "female",
		HeightCM: 150,
		WeightKG: 45,
		Activity: "sedentary",
		Goal:     GoalWeightLoss,
	}

	targets := ComputeTargets(profile)
	if targets.Calories != 1200 {
		t.Errorf("Expected target raised to 1200 floor, got %d", targets.Calories)
	}
}

func TestComputeTargetsUnknownActivityDefaultsToSedentary(t *testing.T) {
	base := Profile{Age: 30, Gender: "male", HeightCM: 180, WeightKG: 75, Goal: GoalMaintenance}

	unknown := base
	unknown.Activity = "couch_surfing"
	sedentary := base
	sedentary.Activity = "sedentary"

	if got, want := ComputeTargets(unknown), ComputeTargets(sedentary); got != want {
		t.Errorf("Unknown activity should fall back to sedentary: got %+v, want %+v", got, want)
	}
}

func TestComputeTargetsAlwaysRoundedAndBanded(t *testing.T) {
	profiles := []Profile{
		{Age: 18, Gender: "female", HeightCM: 155, WeightKG: 50, Activity: "light", Goal: GoalWeightLoss},
		{Age: 35, Gender: "male", HeightCM: 175, WeightKG: 82, Activity: "moderate", Goal: GoalMuscleGain},
		{Age: 52, Gender: "female", HeightCM: 168, WeightKG: 95, Activity: "sedentary", Goal: GoalWeightLoss},
		{Age: 27, Gender: "male", HeightCM: 200, WeightKG: 110, Activity: "very_active", Goal: GoalMaintenance},
		{Age: 70, Gender: "male", HeightCM: 160, WeightKG: 55, Activity: "sedentary", Goal: GoalWeightLoss},
	}

	for _, profile := range profiles {
		targets := ComputeTargets(profile)

		if targets.Calories%50 != 0 {
			t.Errorf("Target %d for %+v is not a multiple of 50", targets.Calories, profile)
		}

		floor := 1200
		if profile.Gender == "male" {
			floor = 1500
		}
		if targets.Calories < floor {
			t.Errorf("Target %d for %+v is below the %d floor", targets.Calories, profile, floor)
		}

		if profile.Goal == GoalWeightLoss {
			cap := 1800
			if profile.Gender == "male" {
				cap = 2200
			}
			if targets.Calories > cap {
				t.Errorf("Weight-loss target %d for %+v exceeds the %d cap", targets.Calories, profile, cap)
			}
		}
	}
}
