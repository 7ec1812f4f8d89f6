package catalog

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
)

type (
	// FoodItem is a single entry of the food catalog. Items are read-only
	// once loaded; the planner never mutates them.
	FoodItem struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		Calories   int      `json:"calories"`
		Protein    int      `json:"protein"`
		Carbs      int      `json:"carbs"`
		Fat        int      `json:"fat"`
		Categories []string `json:"categories"`
		Veg        bool     `json:"veg"`
		Tags       []string `json:"tags"`
	}

	CatalogRepository interface {
		GetFoods() []FoodItem
	}

	catalogRepository struct {
		path string

		once  sync.Once
		foods []FoodItem
	}
)

func NewCatalogRepository(path string) CatalogRepository {
	return &catalogRepository{path: path}
}

// GetFoods returns the full catalog in file order. The file is read once;
// a missing or malformed file yields an empty catalog rather than an error,
// downstream planning degrades to empty meals.
func (r *catalogRepository) GetFoods() []FoodItem {
	r.once.Do(func() {
		r.foods = loadFoods(r.path)
	})
	return r.foods
}

// loadFoods accepts either a bare JSON array or a {"foods": [...]} wrapper.
func loadFoods(path string) []FoodItem {
	raw, err := os.ReadFile(path)
	if err != nil {
		return []FoodItem{}
	}

	var foods []FoodItem
	if err := json.Unmarshal(raw, &foods); err == nil {
		return foods
	}

	var wrapped struct {
		Foods []FoodItem `json:"foods"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Foods != nil {
		return wrapped.Foods
	}
	return []FoodItem{}
}

// HasCategory reports whether the item is eligible for the given meal slot.
func (f FoodItem) HasCategory(slot string) bool {
	for _, c := range f.Categories {
		if c == slot {
			return true
		}
	}
	return false
}

// HasTag reports whether any of the item's tags contains the given term,
// case-insensitive.
func (f FoodItem) HasTag(term string) bool {
	for _, t := range f.Tags {
		if strings.Contains(strings.ToLower(t), strings.ToLower(term)) {
			return true
		}
	}
	return false
}
