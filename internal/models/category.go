package models

// Transaction categories as presented by the mobile client. The backend
// stores the display name verbatim.
const (
	CategoryFoodDrinks     = "Food & Drinks"
	CategoryShopping       = "Shopping"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryBills          = "Bills"
	CategoryIncome         = "Income"
	CategoryOther          = "Other"
)

// AllCategories returns all valid category names.
func AllCategories() []string {
	return []string{
		CategoryFoodDrinks,
		CategoryShopping,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryBills,
		CategoryIncome,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is one of the known categories.
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
