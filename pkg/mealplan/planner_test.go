package mealplan

import (
	"fmt"
	"testing"

	"github.com/sanchita-88/meal-planner/pkg/catalog"
)

// weekCatalog builds a catalog wide enough that rotation rules can be
// honored for a full week: a dozen items per slot plus a couple of staples.
func weekCatalog() []catalog.FoodItem {
	var foods []catalog.FoodItem
	for i, slot := range Slots {
		for j := 0; j < 12; j++ {
			id := fmt.Sprintf("%s-%d", slot, j)
			foods = append(foods, dish(id, 120+40*j+10*i, slot))
		}
	}
	foods = append(foods,
		catalog.FoodItem{ID: "st-1", Name: "Steamed Rice", Calories: 200, Categories: []string{SlotLunch, SlotDinner}, Veg: true},
		catalog.FoodItem{ID: "st-2", Name: "Whole Wheat Bread", Calories: 120, Categories: []string{SlotBreakfast}, Veg: true},
	)
	return foods
}

func TestGenerateWeeklyPlanStructure(t *testing.T) {
	engine := testEngine(21)
	targets := Targets{Calories: 2200, Protein: 165, Carbs: 220, Fat: 73}

	plan := engine.GenerateWeeklyPlan(weekCatalog(), targets, Preferences{}, nil)

	if plan.Targets != targets {
		t.Errorf("Plan must carry the targets it was generated for, got %+v", plan.Targets)
	}
	if len(plan.Days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(plan.Days))
	}
	for i, day := range plan.Days {
		if day.Day != DayNames[i] {
			t.Errorf("Day %d named %q, expected %q", i, day.Day, DayNames[i])
		}
		for _, slot := range Slots {
			if day.Meals.MealForSlot(slot).Items == nil {
				t.Errorf("%s %s has nil items", day.Day, slot)
			}
		}
	}
}

func TestWeeklyPlanHonorsRepetitionCap(t *testing.T) {
	foods := weekCatalog()
	targets := Targets{Calories: 2000}

	for seed := int64(0); seed < 5; seed++ {
		plan := testEngine(seed).GenerateWeeklyPlan(foods, targets, Preferences{}, nil)

		counts := make(map[string]int)
		for _, day := range plan.Days {
			for _, slot := range Slots {
				for _, item := range day.Meals.MealForSlot(slot).Items {
					if !isStaple(item) {
						counts[item.ID]++
					}
				}
			}
		}
		for id, count := range counts {
			if count > maxWeeklyUses {
				t.Errorf("seed %d: non-staple %s used %d times, cap is %d", seed, id, count, maxWeeklyUses)
			}
		}
	}
}

func TestWeeklyPlanAvoidsBackToBackSlotRepeats(t *testing.T) {
	foods := weekCatalog()
	targets := Targets{Calories: 2000}

	for seed := int64(0); seed < 5; seed++ {
		plan := testEngine(seed).GenerateWeeklyPlan(foods, targets, Preferences{}, nil)

		for i := 1; i < len(plan.Days); i++ {
			for _, slot := range Slots {
				previous := make(map[string]bool)
				for _, item := range plan.Days[i-1].Meals.MealForSlot(slot).Items {
					previous[item.ID] = true
				}
				for _, item := range plan.Days[i].Meals.MealForSlot(slot).Items {
					if isStaple(item) {
						continue
					}
					if previous[item.ID] {
						t.Errorf("seed %d: %s repeated in %s on %s and %s",
							seed, item.ID, slot, plan.Days[i-1].Day, plan.Days[i].Day)
					}
				}
			}
		}
	}
}

func TestGenerateWeeklyPlanFreshStatePerCall(t *testing.T) {
	engine := testEngine(33)
	foods := weekCatalog()
	targets := Targets{Calories: 2000}

	// Back-to-back generations on the same engine must each obey the
	// weekly cap independently; leaked state would exhaust the pool.
	for call := 0; call < 3; call++ {
		plan := engine.GenerateWeeklyPlan(foods, targets, Preferences{}, nil)

		counts := make(map[string]int)
		for _, day := range plan.Days {
			for _, slot := range Slots {
				for _, item := range day.Meals.MealForSlot(slot).Items {
					if !isStaple(item) {
						counts[item.ID]++
					}
				}
			}
		}
		for id, count := range counts {
			if count > maxWeeklyUses {
				t.Errorf("call %d: %s used %d times, state leaked across calls", call, id, count)
			}
		}
	}
}

func TestGenerateWeeklyPlanEmptyFilteredCatalog(t *testing.T) {
	engine := testEngine(1)
	foods := []catalog.FoodItem{
		{ID: "f1", Name: "Chicken Curry", Calories: 400, Categories: []string{SlotLunch}, Veg: false},
	}

	plan := engine.GenerateWeeklyPlan(foods, Targets{Calories: 1800}, Preferences{Vegetarian: true}, nil)

	if len(plan.Days) != 7 {
		t.Fatalf("Expected 7 days even with an empty catalog, got %d", len(plan.Days))
	}
	for _, day := range plan.Days {
		for _, slot := range Slots {
			if meal := day.Meals.MealForSlot(slot); len(meal.Items) != 0 || meal.TotalCalories != 0 {
				t.Errorf("%s %s expected empty meal, got %+v", day.Day, slot, meal)
			}
		}
	}
}

func TestSlotTargets(t *testing.T) {
	targets := SlotTargets(2000)

	expected := map[string]int{
		SlotBreakfast: 500,
		SlotLunch:     700,
		SlotSnack:     200,
		SlotDinner:    600,
	}
	for slot, want := range expected {
		if targets[slot] != want {
			t.Errorf("%s target: expected %d, got %d", slot, want, targets[slot])
		}
	}
}

func TestRegenerateSingleMealAvoidsFood(t *testing.T) {
	foods := weekCatalog()

	for seed := int64(0); seed < 10; seed++ {
		meal := testEngine(seed).RegenerateSingleMeal(foods, SlotLunch, 650, Preferences{}, "lunch-3", nil)

		for _, item := range meal.Items {
			if item.ID == "lunch-3" {
				t.Errorf("seed %d: avoided food reappeared in regenerated meal", seed)
			}
		}
	}
}

func TestRegenerateSingleMealFallbackOfLastResort(t *testing.T) {
	engine := testEngine(9)
	foods := []catalog.FoodItem{dish("only", 300, SlotSnack)}

	// With no alternative candidate, the relaxed fallback may return the
	// avoided food rather than an empty meal.
	meal := engine.RegenerateSingleMeal(foods, SlotSnack, 300, Preferences{}, "only", nil)

	if len(meal.Items) != 1 || meal.Items[0].ID != "only" {
		t.Errorf("Expected the sole candidate despite avoidance, got %v", meal.Items)
	}
}

func TestRegenerateSingleMealAppliesPreferences(t *testing.T) {
	engine := testEngine(4)
	foods := []catalog.FoodItem{
		{ID: "f1", Name: "Peanut Salad", Calories: 300, Categories: []string{SlotSnack}, Veg: true},
		{ID: "f2", Name: "Fruit Bowl", Calories: 280, Categories: []string{SlotSnack}, Veg: true},
	}

	meal := engine.RegenerateSingleMeal(foods, SlotSnack, 300, Preferences{Allergies: []string{"peanut"}}, "", nil)

	for _, item := range meal.Items {
		if item.ID == "f1" {
			t.Error("Allergy filter must apply to regenerated meals")
		}
	}
}

func TestNormalizeTagScores(t *testing.T) {
	if scores := NormalizeTagScores(nil); scores == nil {
		t.Error("Expected non-nil map from nil input")
	}

	source := map[string]int{"spicy": 4, "fried": -2}
	scores := NormalizeTagScores(source)

	if scores["spicy"] != 4 || scores["fried"] != -2 {
		t.Errorf("Expected scores preserved, got %v", scores)
	}
	if scores["unseen"] != 0 {
		t.Errorf("Unseen tag must read as zero, got %d", scores["unseen"])
	}

	// The normalized map is a copy, not a view.
	source["spicy"] = 99
	if scores["spicy"] != 4 {
		t.Error("Normalized scores must not alias the source map")
	}
}

func TestTagScoresInfluenceSelection(t *testing.T) {
	foods := []catalog.FoodItem{
		{ID: "f1", Name: "Plain Oats", Calories: 300, Categories: []string{SlotBreakfast}, Veg: true, Tags: []string{"bland"}},
		{ID: "f2", Name: "Masala Omelette", Calories: 300, Categories: []string{SlotBreakfast}, Veg: true, Tags: []string{"spicy"}},
	}

	// Equal calorie fit; a strong learned weight must dominate the jitter.
	scores := TagScores{"spicy": 200}

	for seed := int64(0); seed < 10; seed++ {
		meal := testEngine(seed).RegenerateSingleMeal(foods, SlotBreakfast, 300, Preferences{}, "", scores)
		if len(meal.Items) == 0 || meal.Items[0].ID != "f2" {
			t.Errorf("seed %d: expected learned preference to pick f2 first, got %v", seed, meal.Items)
		}
	}
}
