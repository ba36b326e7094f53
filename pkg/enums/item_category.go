package enums

import "fmt"

// ItemCategory groups tracked items for shelf-life suggestions.
type ItemCategory string

const (
	ItemCategoryFruits     ItemCategory = "fruits"
	ItemCategoryVegetables ItemCategory = "vegetables"
	ItemCategoryMeat       ItemCategory = "meat"
	ItemCategoryDairy      ItemCategory = "dairy"
	ItemCategoryGrains     ItemCategory = "grains"
	ItemCategorySnacks     ItemCategory = "snacks"
	ItemCategoryBeverages  ItemCategory = "beverages"
	ItemCategoryOther      ItemCategory = "other"
)

var validItemCategories = []ItemCategory{
	ItemCategoryFruits,
	ItemCategoryVegetables,
	ItemCategoryMeat,
	ItemCategoryDairy,
	ItemCategoryGrains,
	ItemCategorySnacks,
	ItemCategoryBeverages,
	ItemCategoryOther,
}

// IsValid checks whether the given category matches the canonical enum.
func (c ItemCategory) IsValid() bool {
	for _, candidate := range validItemCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseItemCategory converts raw strings into ItemCategory.
func ParseItemCategory(value string) (ItemCategory, error) {
	for _, candidate := range validItemCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item category %q", value)
}
