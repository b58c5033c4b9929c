package queries

import (
	"context"
	"fmt"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/services"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/pkg/utils"
)

// CalculateProductionTreeQuery asks for the requirement tree of producing
// TargetQuantity units of ItemID within TimePeriodMinutes
type CalculateProductionTreeQuery struct {
	ItemID            string  `validate:"required"`
	TargetQuantity    float64 `validate:"finite,gt=0,lte=1e12"`
	TimePeriodMinutes float64 `validate:"finite,gt=0,lte=1e12"`
}

// CalculateProductionTreeResponse carries the tree and its summary
type CalculateProductionTreeResponse struct {
	BuildID           string
	ItemID            string
	RequiredPerMinute float64
	Tree              *production.ItemNode
	TotalEquipment    int
	Warnings          []production.BuildWarning
}

// CalculateProductionTreeHandler handles the CalculateProductionTree query
type CalculateProductionTreeHandler struct {
	catalogs *services.CatalogLoader
}

// NewCalculateProductionTreeHandler creates a new CalculateProductionTreeHandler
func NewCalculateProductionTreeHandler(catalogs *services.CatalogLoader) *CalculateProductionTreeHandler {
	return &CalculateProductionTreeHandler{catalogs: catalogs}
}

// Handle executes the CalculateProductionTree query
func (h *CalculateProductionTreeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*CalculateProductionTreeQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CalculateProductionTreeQuery")
	}

	if err := validateRequest(query); err != nil {
		return nil, err
	}

	rate := services.RequiredPerMinute(query.TargetQuantity, query.TimePeriodMinutes)
	if err := validateRate(rate); err != nil {
		return nil, err
	}

	catalog, err := h.catalogs.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	buildID := utils.GenerateBuildID("tree", query.ItemID)
	ctx = common.WithBuildID(ctx, buildID)

	tree, warnings := services.NewTreeBuilder(catalog).BuildTreeWithWarnings(ctx, query.ItemID, rate)

	common.LoggerFromContext(ctx).Log(common.LevelInfo, "Production tree built", map[string]interface{}{
		"build_id":        buildID,
		"item_id":         query.ItemID,
		"rate":            rate,
		"total_equipment": production.TotalEquipment(tree),
		"warnings":        len(warnings),
	})

	return &CalculateProductionTreeResponse{
		BuildID:           buildID,
		ItemID:            query.ItemID,
		RequiredPerMinute: rate,
		Tree:              tree,
		TotalEquipment:    production.TotalEquipment(tree),
		Warnings:          warnings,
	}, nil
}
