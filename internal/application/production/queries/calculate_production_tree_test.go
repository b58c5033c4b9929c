package queries_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/queries"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/services"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/test/helpers"
)

func newTreeHandler() *queries.CalculateProductionTreeHandler {
	return queries.NewCalculateProductionTreeHandler(services.NewStaticCatalogLoader(helpers.PlateCatalog()))
}

func TestCalculateProductionTree_PlateChain(t *testing.T) {
	// Arrange
	handler := newTreeHandler()
	query := &queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: 600, TimePeriodMinutes: 60}

	// Act
	result, err := handler.Handle(context.Background(), query)

	// Assert
	require.NoError(t, err)
	response := result.(*queries.CalculateProductionTreeResponse)
	assert.Equal(t, "plate", response.ItemID)
	assert.Equal(t, 10.0, response.RequiredPerMinute)
	assert.Equal(t, 5, response.TotalEquipment)
	assert.Empty(t, response.Warnings)
	assert.True(t, strings.HasPrefix(response.BuildID, "tree-plate-"))

	require.Len(t, response.Tree.Children, 1)
	smelter := response.Tree.Children[0]
	assert.Equal(t, "smelter", smelter.ID)
	assert.Equal(t, 5, smelter.Required)
	require.Len(t, smelter.Children, 1)
	assert.Equal(t, 20.0, smelter.Children[0].Required)
}

func TestCalculateProductionTree_WarningsCarryBuildID(t *testing.T) {
	// Arrange
	catalog := helpers.NewCatalogBuilder().
		WithItem("gear").
		WithRecipe("r-gear", "gear", "missing-press", 1).
		Build()
	handler := queries.NewCalculateProductionTreeHandler(services.NewStaticCatalogLoader(catalog))
	logger := helpers.NewMockLogger()
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	result, err := handler.Handle(ctx, &queries.CalculateProductionTreeQuery{ItemID: "gear", TargetQuantity: 1, TimePeriodMinutes: 1})

	// Assert
	require.NoError(t, err)
	response := result.(*queries.CalculateProductionTreeResponse)
	require.Len(t, response.Warnings, 1)
	assert.Equal(t, production.WarningUnknownFacility, response.Warnings[0].Kind)
	assert.Equal(t, 0, response.TotalEquipment)

	warnEntries := logger.EntriesWithLevel(common.LevelWarn)
	require.Len(t, warnEntries, 1)
	assert.Equal(t, response.BuildID, warnEntries[0].Metadata["build_id"])
}

func TestCalculateProductionTree_UnknownRootIsSentinel(t *testing.T) {
	handler := newTreeHandler()

	result, err := handler.Handle(context.Background(), &queries.CalculateProductionTreeQuery{ItemID: "ghost", TargetQuantity: 1, TimePeriodMinutes: 1})

	require.NoError(t, err)
	response := result.(*queries.CalculateProductionTreeResponse)
	assert.Equal(t, production.UnknownItemID, response.Tree.ID)
	assert.True(t, response.Tree.IsLeaf())
}

func TestCalculateProductionTree_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		query   queries.CalculateProductionTreeQuery
		field   string
		message string
	}{
		{
			name:    "no item",
			query:   queries.CalculateProductionTreeQuery{TargetQuantity: 1, TimePeriodMinutes: 1},
			field:   "item_id",
			message: "Invalid input: No item selected.",
		},
		{
			name:    "zero quantity",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: 0, TimePeriodMinutes: 1},
			field:   "target_quantity",
			message: "Invalid input: Production quantity must be a positive number.",
		},
		{
			name:    "negative quantity",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: -3, TimePeriodMinutes: 1},
			field:   "target_quantity",
			message: "Invalid input: Production quantity must be a positive number.",
		},
		{
			name:    "NaN quantity",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: math.NaN(), TimePeriodMinutes: 1},
			field:   "target_quantity",
			message: "Invalid input: Production quantity must be a positive number.",
		},
		{
			name:    "zero minutes",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: 1, TimePeriodMinutes: 0},
			field:   "time_period_minutes",
			message: "Invalid input: Time period must be a positive number.",
		},
		{
			name:    "infinite minutes",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: 1, TimePeriodMinutes: math.Inf(1)},
			field:   "time_period_minutes",
			message: "Invalid input: Time period must be a positive number.",
		},
		{
			name:    "quantity above bound",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: 1e19, TimePeriodMinutes: 1},
			field:   "target_quantity",
			message: "Invalid input: Production quantity must not exceed 1000000000000.",
		},
		{
			name:    "largest finite quantity",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: 1e308, TimePeriodMinutes: 1},
			field:   "target_quantity",
			message: "Invalid input: Production quantity must not exceed 1000000000000.",
		},
		{
			name:    "minutes above bound",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: 1, TimePeriodMinutes: 2e12},
			field:   "time_period_minutes",
			message: "Invalid input: Time period must not exceed 1000000000000 minutes.",
		},
		{
			name:    "rate above bound",
			query:   queries.CalculateProductionTreeQuery{ItemID: "plate", TargetQuantity: 1e12, TimePeriodMinutes: 1e-6},
			field:   "time_period_minutes",
			message: "Invalid input: Production rate must not exceed 1000000000000 per minute.",
		},
	}

	handler := newTreeHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := tt.query

			_, err := handler.Handle(context.Background(), &query)

			var inputErr *production.ErrInvalidRateInput
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestCalculateProductionTree_LargestAcceptedRequest(t *testing.T) {
	// Arrange
	handler := newTreeHandler()

	// Act
	result, err := handler.Handle(context.Background(), &queries.CalculateProductionTreeQuery{
		ItemID:            "plate",
		TargetQuantity:    queries.MaxTargetQuantity,
		TimePeriodMinutes: 1,
	})

	// Assert
	require.NoError(t, err)
	response := result.(*queries.CalculateProductionTreeResponse)
	assert.Equal(t, 1e12, response.RequiredPerMinute)
	assert.Greater(t, response.TotalEquipment, 0)
	assert.False(t, math.IsInf(response.Tree.Children[0].Children[0].Required, 0))
}

func TestCalculateProductionTree_WrongRequestType(t *testing.T) {
	_, err := newTreeHandler().Handle(context.Background(), &queries.ListItemsQuery{})

	assert.Error(t, err)
}
