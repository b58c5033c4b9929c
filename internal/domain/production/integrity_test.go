package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

func TestFindDanglingReferences_CleanDataset(t *testing.T) {
	dataset := sampleDataset()

	assert.Empty(t, production.FindDanglingReferences(dataset))
}

func TestFindDanglingReferences_ReportsEveryBrokenLink(t *testing.T) {
	dataset := &production.Dataset{
		Items:      []production.Item{{ID: "plate"}},
		Facilities: []production.Facility{{ID: "smelter", ProcessTime: 1}},
		Recipes: []production.Recipe{
			{ID: "r1", ItemID: "plate", FacilityID: "ghost-facility", OutputQuantity: 1},
			{ID: "r2", ItemID: "ghost-item", FacilityID: "smelter", OutputQuantity: 1},
		},
		Materials: []production.Material{
			{RecipeID: "r1", MaterialID: "ghost-ore", Quantity: 1},
			{RecipeID: "r9", MaterialID: "plate", Quantity: 1},
		},
	}

	dangling := production.FindDanglingReferences(dataset)

	require.Len(t, dangling, 4)
	assert.Equal(t, "recipe.facility_id", dangling[0].Field)
	assert.Equal(t, "ghost-facility", dangling[0].MissingID)
	assert.Equal(t, "recipe.item_id", dangling[1].Field)
	assert.Equal(t, "material.material_id", dangling[2].Field)
	assert.Equal(t, "material.recipe_id", dangling[3].Field)
	assert.Equal(t, "material.recipe_id r9 -> r9 (missing)", dangling[3].String())
}
