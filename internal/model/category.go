package model

// Category is the closed set of capabilities a query can be routed to.
// The numeric values 1..5 are the tokens the classifier prompt asks the model to emit.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryTripPlanning
	CategoryTransport
	CategoryAccommodation
	CategoryTranslation
	CategoryFoodActivity
)

// RoutableCategories are the categories the classifier can select, in token order.
var RoutableCategories = []Category{
	CategoryTripPlanning,
	CategoryTransport,
	CategoryAccommodation,
	CategoryTranslation,
	CategoryFoodActivity,
}

var categoryNames = map[Category]string{
	CategoryGeneric:       "Generic",
	CategoryTripPlanning:  "TripPlanning",
	CategoryTransport:     "Transport",
	CategoryAccommodation: "Accommodation",
	CategoryTranslation:   "Translation",
	CategoryFoodActivity:  "FoodActivity",
}

var categoryLabels = map[Category]string{
	CategoryGeneric:       "通用助手",
	CategoryTripPlanning:  "行程规划代理",
	CategoryTransport:     "交通助手代理",
	CategoryAccommodation: "住宿推荐代理",
	CategoryTranslation:   "翻译代理",
	CategoryFoodActivity:  "美食与活动助手",
}

// String returns the display name reported as agentUsed.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryGeneric]
}

// Label returns the Chinese agent name used in prompts and chat channels.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryGeneric]
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// CategoryFromToken maps a classifier token (1..5) to a routable Category.
func CategoryFromToken(token int) (Category, bool) {
	if token < 1 || token > len(RoutableCategories) {
		return CategoryGeneric, false
	}
	return RoutableCategories[token-1], true
}
