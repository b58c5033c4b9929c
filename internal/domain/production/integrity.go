package production

import "fmt"

// DanglingReference is a reference from one record to an ID that is not in the dataset
type DanglingReference struct {
	// "recipe.item_id", "recipe.facility_id", "material.recipe_id" or "material.material_id"
	Field string

	// ID of the referring record (recipe ID, or the material's recipe ID)
	OwnerID string

	// The ID that could not be resolved
	MissingID string
}

func (r DanglingReference) String() string {
	return fmt.Sprintf("%s %s -> %s (missing)", r.Field, r.OwnerID, r.MissingID)
}

// FindDanglingReferences lists references that a tree build would degrade on.
// Such datasets are still loadable; the builder turns these into warnings.
func FindDanglingReferences(dataset *Dataset) []DanglingReference {
	catalog := NewCatalog(dataset)
	dangling := make([]DanglingReference, 0)

	recipeIDs := make(map[string]bool, len(dataset.Recipes))
	for _, recipe := range dataset.Recipes {
		recipeIDs[recipe.ID] = true

		if _, ok := catalog.FindItem(recipe.ItemID); !ok {
			dangling = append(dangling, DanglingReference{Field: "recipe.item_id", OwnerID: recipe.ID, MissingID: recipe.ItemID})
		}
		if _, ok := catalog.FindFacility(recipe.FacilityID); !ok {
			dangling = append(dangling, DanglingReference{Field: "recipe.facility_id", OwnerID: recipe.ID, MissingID: recipe.FacilityID})
		}
	}

	for _, material := range dataset.Materials {
		if !recipeIDs[material.RecipeID] {
			dangling = append(dangling, DanglingReference{Field: "material.recipe_id", OwnerID: material.RecipeID, MissingID: material.RecipeID})
		}
		if _, ok := catalog.FindItem(material.MaterialID); !ok {
			dangling = append(dangling, DanglingReference{Field: "material.material_id", OwnerID: material.RecipeID, MissingID: material.MaterialID})
		}
	}

	return dangling
}
