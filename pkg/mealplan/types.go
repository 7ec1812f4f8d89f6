package mealplan

import (
	"github.com/sanchita-88/meal-planner/pkg/catalog"
)

// Meal slots, in serving order.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotSnack     = "snack"
	SlotDinner    = "dinner"
)

// Slots lists every meal slot of a day, in serving order.
var Slots = []string{SlotBreakfast, SlotLunch, SlotSnack, SlotDinner}

// DayNames is the fixed day ordering of a weekly plan.
var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Share of the daily calorie target assigned to each slot. The rounded
// per-slot targets are not re-normalized to sum to the daily target.
var slotShares = map[string]float64{
	SlotBreakfast: 0.25,
	SlotLunch:     0.35,
	SlotSnack:     0.10,
	SlotDinner:    0.30,
}

type (
	// Profile holds the biometric inputs of the needs calculator. Field
	// presence is validated by the caller before the profile reaches here.
	Profile struct {
		Age      int
		Gender   string
		HeightCM float64
		WeightKG float64
		Activity string
		Goal     string
	}

	// Preferences are the hard dietary constraints applied when filtering
	// the catalog: vegetarian-only, allergy terms and explicit dislikes.
	Preferences struct {
		Vegetarian bool
		Allergies  []string
		Dislikes   []string
	}

	// TagScores maps a food tag to its learned signed weight. Positive
	// favors, negative avoids; unseen tags read as zero.
	TagScores map[string]int

	// Targets is the daily calorie target with its macro split, derived
	// once per plan request and immutable thereafter.
	Targets struct {
		Calories int `json:"calories"`
		Protein  int `json:"protein"`
		Carbs    int `json:"carbs"`
		Fat      int `json:"fat"`
	}

	// MacroTotals is the summed macro grams of a meal's items.
	MacroTotals struct {
		Protein int `json:"protein"`
		Carbs   int `json:"carbs"`
		Fat     int `json:"fat"`
	}

	// Meal is the set of items selected for one slot on one day. The
	// totals always equal the exact sums over Items.
	Meal struct {
		Items         []catalog.FoodItem `json:"items"`
		TotalCalories int                `json:"totalCalories"`
		Macros        MacroTotals        `json:"macros"`
	}

	// DayMeals holds one meal per slot.
	DayMeals struct {
		Breakfast Meal `json:"breakfast"`
		Lunch     Meal `json:"lunch"`
		Snack     Meal `json:"snack"`
		Dinner    Meal `json:"dinner"`
	}

	// DayPlan pairs a day name with its meals.
	DayPlan struct {
		Day   string   `json:"day"`
		Meals DayMeals `json:"meals"`
	}

	// WeekPlan is a full 7-day plan together with the targets used to
	// generate it.
	WeekPlan struct {
		Targets Targets   `json:"targets"`
		Days    []DayPlan `json:"weekPlan"`
	}
)

// NormalizeTagScores copies a learned tag-score mapping into a TagScores
// value. Persistence layers hand the mapping over in whatever shape they
// use internally; this is the single point where it is converted, so the
// engine always sees a plain non-nil map.
func NormalizeTagScores(scores map[string]int) TagScores {
	normalized := make(TagScores, len(scores))
	for tag, weight := range scores {
		normalized[tag] = weight
	}
	return normalized
}

func newMeal(items []catalog.FoodItem) Meal {
	meal := Meal{Items: items}
	for _, item := range items {
		meal.TotalCalories += item.Calories
		meal.Macros.Protein += item.Protein
		meal.Macros.Carbs += item.Carbs
		meal.Macros.Fat += item.Fat
	}
	return meal
}

func emptyMeal() Meal {
	return Meal{Items: []catalog.FoodItem{}}
}

// MealForSlot returns the day's meal for the given slot.
func (d DayMeals) MealForSlot(slot string) Meal {
	switch slot {
	case SlotBreakfast:
		return d.Breakfast
	case SlotLunch:
		return d.Lunch
	case SlotSnack:
		return d.Snack
	case SlotDinner:
		return d.Dinner
	}
	return emptyMeal()
}
