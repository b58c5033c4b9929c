package production

// Catalog provides read-only lookups over a loaded dataset.
//
// The catalog is indexed once at construction and never mutated afterwards, so a
// single instance can serve any number of concurrent tree builds. Lookups that find
// nothing return the zero value with false, or an empty slice; they never fail.
type Catalog struct {
	items      []Item
	facilities []Facility
	recipes    []Recipe
	materials  []Material

	itemByID          map[string]Item
	facilityByID      map[string]Facility
	recipesByItem     map[string][]Recipe
	materialsByRecipe map[string][]Material
}

// NewCatalog indexes a dataset. When ids are duplicated the first record wins,
// matching a front-to-back search of the collection.
func NewCatalog(dataset *Dataset) *Catalog {
	if dataset == nil {
		dataset = &Dataset{}
	}

	c := &Catalog{
		items:             append([]Item(nil), dataset.Items...),
		facilities:        append([]Facility(nil), dataset.Facilities...),
		recipes:           append([]Recipe(nil), dataset.Recipes...),
		materials:         append([]Material(nil), dataset.Materials...),
		itemByID:          make(map[string]Item, len(dataset.Items)),
		facilityByID:      make(map[string]Facility, len(dataset.Facilities)),
		recipesByItem:     make(map[string][]Recipe),
		materialsByRecipe: make(map[string][]Material),
	}

	for _, item := range c.items {
		if _, exists := c.itemByID[item.ID]; !exists {
			c.itemByID[item.ID] = item
		}
	}
	for _, facility := range c.facilities {
		if _, exists := c.facilityByID[facility.ID]; !exists {
			c.facilityByID[facility.ID] = facility
		}
	}
	for _, recipe := range c.recipes {
		c.recipesByItem[recipe.ItemID] = append(c.recipesByItem[recipe.ItemID], recipe)
	}
	for _, material := range c.materials {
		c.materialsByRecipe[material.RecipeID] = append(c.materialsByRecipe[material.RecipeID], material)
	}

	return c
}

// FindItem looks up an item by ID
func (c *Catalog) FindItem(itemID string) (Item, bool) {
	item, ok := c.itemByID[itemID]
	return item, ok
}

// FindFacility looks up a facility by ID
func (c *Catalog) FindFacility(facilityID string) (Facility, bool) {
	facility, ok := c.facilityByID[facilityID]
	return facility, ok
}

// RecipesProducing returns every recipe whose output is itemID, in catalog order
func (c *Catalog) RecipesProducing(itemID string) []Recipe {
	return append([]Recipe(nil), c.recipesByItem[itemID]...)
}

// MaterialsFor returns the materials consumed by recipeID, in catalog order
func (c *Catalog) MaterialsFor(recipeID string) []Material {
	return append([]Material(nil), c.materialsByRecipe[recipeID]...)
}

// Items returns all items in catalog order
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Facilities returns all facilities in catalog order
func (c *Catalog) Facilities() []Facility {
	return append([]Facility(nil), c.facilities...)
}

// Dataset returns a copy of the records the catalog was built from
func (c *Catalog) Dataset() *Dataset {
	return &Dataset{
		Items:      c.Items(),
		Facilities: c.Facilities(),
		Recipes:    append([]Recipe(nil), c.recipes...),
		Materials:  append([]Material(nil), c.materials...),
	}
}
