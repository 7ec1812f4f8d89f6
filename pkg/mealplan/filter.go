package mealplan

import (
	"strings"

	"github.com/sanchita-88/meal-planner/pkg/catalog"
)

// FilterCatalog reduces the full catalog to the items usable for this user.
// Vegetarian-only users lose non-veg items. Allergy terms drop any item whose
// name or tags contain the term, case-insensitive. Dislikes drop exact ID or
// name matches only. An empty result is valid; planning degrades to empty
// meals.
func FilterCatalog(items []catalog.FoodItem, prefs Preferences) []catalog.FoodItem {
	filtered := make([]catalog.FoodItem, 0, len(items))

	for _, item := range items {
		if prefs.Vegetarian && !item.Veg {
			continue
		}
		if matchesAllergy(item, prefs.Allergies) {
			continue
		}
		if matchesDislike(item, prefs.Dislikes) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func matchesAllergy(item catalog.FoodItem, allergies []string) bool {
	name := strings.ToLower(item.Name)
	for _, allergy := range allergies {
		term := strings.ToLower(allergy)
		if term == "" {
			continue
		}
		if strings.Contains(name, term) || item.HasTag(term) {
			return true
		}
	}
	return false
}

func matchesDislike(item catalog.FoodItem, dislikes []string) bool {
	for _, dislike := range dislikes {
		if dislike == item.ID || dislike == item.Name {
			return true
		}
	}
	return false
}
