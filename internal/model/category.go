package model

// Category is one of the fixed domain tags the backend accepts.
type Category string

const (
	CategoryFood       Category = "food"
	CategoryTransport  Category = "transport"
	CategoryHousing    Category = "housing"
	CategoryHealth     Category = "health"
	CategoryShopping   Category = "shopping"
	CategoryEducation  Category = "education"
	CategorySalary     Category = "salary"
	CategoryFreelance  Category = "freelance"
	CategoryInvestment Category = "investment"
	CategoryGift       Category = "gift"
	CategoryOther      Category = "other"
)

// categoryLabels maps tags to their display labels, matching the backend's
// category choices.
var categoryLabels = map[Category]string{
	CategoryFood:       "Food & Dining",
	CategoryTransport:  "Transport",
	CategoryHousing:    "Housing & Rent",
	CategoryHealth:     "Health & Medical",
	CategoryShopping:   "Shopping",
	CategoryEducation:  "Education",
	CategorySalary:     "Salary",
	CategoryFreelance:  "Freelance",
	CategoryInvestment: "Investment",
	CategoryGift:       "Gift",
	CategoryOther:      "Other",
}

// Categories lists every valid category tag in canonical order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryHealth,
		CategoryShopping,
		CategoryEducation,
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryGift,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known category tags.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human-readable label for the category. Unknown tags
// fall back to the raw tag so stale data still renders.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}
