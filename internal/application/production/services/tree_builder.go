package services

import (
	"context"
	"math"
	"time"

	"github.com/Halasue/endfield-aic-calculator/internal/adapters/metrics"
	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// TreeBuilder expands a required rate of an item backwards through the recipe graph
// into a requirement tree of item and equipment nodes.
//
// Every recipe producing an item becomes its own equipment branch and receives the
// full demand; alternatives are neither ranked nor split. Equipment demand is not
// merged across branches.
//
// Building never fails. Missing items become UnknownItemID leaves, recipes whose
// facility is missing or whose numbers are unusable are dropped, and an item met again among its own ancestors
// stops that path. Each of these is logged as a WARN entry through the context
// logger and reported in the warnings returned by BuildTreeWithWarnings.
type TreeBuilder struct {
	catalog *production.Catalog
}

// NewTreeBuilder creates a tree builder over an immutable catalog.
// One builder may be used from many goroutines at once.
func NewTreeBuilder(catalog *production.Catalog) *TreeBuilder {
	return &TreeBuilder{catalog: catalog}
}

// BuildProductionTree builds the tree for producing targetQuantity units of itemID
// within timePeriodMinutes
func (b *TreeBuilder) BuildProductionTree(
	ctx context.Context,
	itemID string,
	targetQuantity float64,
	timePeriodMinutes float64,
) *production.ItemNode {
	return b.BuildTree(ctx, itemID, RequiredPerMinute(targetQuantity, timePeriodMinutes))
}

// BuildTree builds the tree for a rate of requiredPerMinute units of itemID per minute
func (b *TreeBuilder) BuildTree(ctx context.Context, itemID string, requiredPerMinute float64) *production.ItemNode {
	tree, _ := b.BuildTreeWithWarnings(ctx, itemID, requiredPerMinute)
	return tree
}

// BuildTreeWithWarnings builds the tree and also returns the soft failures met on the way,
// in the order they were encountered
func (b *TreeBuilder) BuildTreeWithWarnings(
	ctx context.Context,
	itemID string,
	requiredPerMinute float64,
) (*production.ItemNode, []production.BuildWarning) {
	start := time.Now()

	build := &treeBuild{
		catalog:  b.catalog,
		logger:   common.LoggerFromContext(ctx),
		buildID:  common.BuildIDFromContext(ctx),
		warnings: make([]production.BuildWarning, 0),
	}

	root := build.buildItem(itemID, requiredPerMinute, nil)

	metrics.RecordTreeBuilt(itemID, production.CountNodes(root), production.TotalEquipment(root), time.Since(start))

	return root, build.warnings
}

// treeBuild holds the state of one build. Nothing in it is shared between builds.
type treeBuild struct {
	catalog  *production.Catalog
	logger   common.Logger
	buildID  string
	warnings []production.BuildWarning
}

// buildItem produces the item node for itemID. ancestors holds the items above this
// call on the current path only; extending it never affects sibling branches.
func (t *treeBuild) buildItem(itemID string, requiredPerMinute float64, ancestors *production.AncestorPath) *production.ItemNode {
	item, found := t.catalog.FindItem(itemID)
	if !found {
		t.warn(production.BuildWarning{
			Kind:   production.WarningUnknownItem,
			ItemID: itemID,
			Path:   ancestors.IDs(),
		})
		return production.NewItemNode(production.UnknownItemID, requiredPerMinute)
	}

	node := production.NewItemNode(item.ID, requiredPerMinute)

	// Seeds are raw materials: never expanded, even if recipes exist
	if item.IsSeed {
		return node
	}

	if ancestors.Contains(itemID) {
		t.warn(production.BuildWarning{
			Kind:   production.WarningCycle,
			ItemID: itemID,
			Path:   ancestors.IDs(),
		})
		return node
	}

	path := ancestors.With(itemID)

	for _, recipe := range t.catalog.RecipesProducing(itemID) {
		if equipment := t.buildRecipe(recipe, requiredPerMinute, ancestors, path); equipment != nil {
			node.AddChild(equipment)
		}
	}

	return node
}

// buildRecipe produces the equipment branch running recipe at requiredPerMinute,
// or nil when the branch has to be dropped
func (t *treeBuild) buildRecipe(
	recipe production.Recipe,
	requiredPerMinute float64,
	ancestors *production.AncestorPath,
	path *production.AncestorPath,
) *production.EquipmentNode {
	facility, found := t.catalog.FindFacility(recipe.FacilityID)
	if !found {
		t.warn(production.BuildWarning{
			Kind:       production.WarningUnknownFacility,
			ItemID:     recipe.ItemID,
			RecipeID:   recipe.ID,
			FacilityID: recipe.FacilityID,
			Path:       ancestors.IDs(),
		})
		return nil
	}

	materials := t.catalog.MaterialsFor(recipe.ID)
	if !isUsableRecipe(recipe, facility, materials) {
		t.warn(production.BuildWarning{
			Kind:       production.WarningInvalidRecipe,
			ItemID:     recipe.ItemID,
			RecipeID:   recipe.ID,
			FacilityID: recipe.FacilityID,
			Path:       ancestors.IDs(),
		})
		return nil
	}

	equipment := production.NewEquipmentNode(facility.ID, equipmentCount(requiredPerMinute*facility.ProcessTime/recipe.OutputQuantity))

	for _, material := range materials {
		materialRate := requiredPerMinute * material.Quantity / recipe.OutputQuantity
		if math.IsInf(materialRate, 1) {
			materialRate = math.MaxFloat64
		}
		equipment.AddChild(t.buildItem(material.MaterialID, materialRate, path))
	}

	return equipment
}

// equipmentCount rounds a continuous machine demand up to whole machines.
// Partial machines are not allowed: any fractional demand takes one more machine.
// Demands beyond the int range saturate at math.MaxInt.
func equipmentCount(demand float64) int {
	switch {
	case math.IsNaN(demand) || demand <= 0:
		return 0
	case demand >= math.MaxInt:
		return math.MaxInt
	}
	return int(math.Ceil(demand))
}

// isUsableRecipe rejects data that would make machine counts or material rates meaningless
func isUsableRecipe(recipe production.Recipe, facility production.Facility, materials []production.Material) bool {
	if recipe.OutputQuantity <= 0 || !isFinite(recipe.OutputQuantity) {
		return false
	}
	if facility.ProcessTime < 0 || !isFinite(facility.ProcessTime) {
		return false
	}
	for _, material := range materials {
		if material.Quantity < 0 || !isFinite(material.Quantity) {
			return false
		}
	}
	return true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (t *treeBuild) warn(warning production.BuildWarning) {
	t.warnings = append(t.warnings, warning)

	metadata := warning.Metadata()
	if t.buildID != "" {
		metadata["build_id"] = t.buildID
	}
	t.logger.Log(common.LevelWarn, warning.Message(), metadata)

	metrics.RecordBuildWarning(warning.Kind)
}
