package production

// Recipe is a production rule: one facility produces OutputQuantity units of ItemID per cycle.
// Several recipes may produce the same item.
type Recipe struct {
	ID             string
	ItemID         string
	FacilityID     string
	OutputQuantity float64
}

// Material is a consumption edge: RecipeID consumes Quantity units of MaterialID per cycle
type Material struct {
	RecipeID   string
	MaterialID string
	Quantity   float64
}

// Dataset is the raw catalog content as supplied by a loader.
// Each collection keeps the order in which the loader produced it.
type Dataset struct {
	Items      []Item
	Facilities []Facility
	Recipes    []Recipe
	Materials  []Material
}
