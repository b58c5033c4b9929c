package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/queries"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/services"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/test/helpers"
)

// ============================================================================
// Production Tree Test Context
// ============================================================================

type productionTreeContext struct {
	dataset production.Dataset
	logger  *helpers.MockLogger

	tree     *production.ItemNode
	response *queries.CalculateProductionTreeResponse
	err      error
}

func (c *productionTreeContext) reset() {
	c.dataset = production.Dataset{}
	c.logger = helpers.NewMockLogger()
	c.tree = nil
	c.response = nil
	c.err = nil
}

// InitializeProductionTreeScenario registers the requirement tree steps
func InitializeProductionTreeScenario(ctx *godog.ScenarioContext) {
	c := &productionTreeContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog contains items:$`, c.theCatalogContainsItems)
	ctx.Step(`^the catalog contains facilities:$`, c.theCatalogContainsFacilities)
	ctx.Step(`^the catalog contains recipes:$`, c.theCatalogContainsRecipes)
	ctx.Step(`^the catalog contains materials:$`, c.theCatalogContainsMaterials)
	ctx.Step(`^the catalog also has recipe "([^"]*)" making (\d+(?:\.\d+)?) "([^"]*)" on "([^"]*)" from (\d+(?:\.\d+)?) "([^"]*)"$`, c.theCatalogAlsoHasRecipe)

	// When steps
	ctx.Step(`^I build the tree for "([^"]*)" at (\d+(?:\.\d+)?) per minute$`, c.iBuildTheTreeFor)
	ctx.Step(`^I request (-?\d+(?:\.\d+)?) "([^"]*)" over (-?\d+(?:\.\d+)?) minutes$`, c.iRequestOverMinutes)

	// Then steps
	ctx.Step(`^the tree should be:$`, c.theTreeShouldBe)
	ctx.Step(`^the total equipment should be (\d+)$`, c.theTotalEquipmentShouldBe)
	ctx.Step(`^the equipment "([^"]*)" should require (\d+)$`, c.theEquipmentShouldRequire)
	ctx.Step(`^no build warnings should be logged$`, c.noBuildWarningsShouldBeLogged)
	ctx.Step(`^a "([^"]*)" build warning should be logged for "([^"]*)"$`, c.aBuildWarningShouldBeLoggedFor)
	ctx.Step(`^the required rate should be (\d+(?:\.\d+)?) per minute$`, c.theRequiredRateShouldBe)
	ctx.Step(`^the response should carry a build id starting with "([^"]*)"$`, c.theResponseShouldCarryABuildID)
	ctx.Step(`^the request should fail with "([^"]*)"$`, c.theRequestShouldFailWith)
}

// ============================================================================
// Given
// ============================================================================

func (c *productionTreeContext) theCatalogContainsItems(table *godog.Table) error {
	for _, row := range dataRows(table) {
		isSeed, err := strconv.ParseBool(cell(table, row, "is_seed"))
		if err != nil {
			return fmt.Errorf("invalid is_seed: %w", err)
		}
		id := cell(table, row, "item_id")
		c.dataset.Items = append(c.dataset.Items, production.Item{ID: id, NameEN: id, NameJP: id, IsSeed: isSeed})
	}
	return nil
}

func (c *productionTreeContext) theCatalogContainsFacilities(table *godog.Table) error {
	for _, row := range dataRows(table) {
		processTime, err := strconv.ParseFloat(cell(table, row, "process_time"), 64)
		if err != nil {
			return fmt.Errorf("invalid process_time: %w", err)
		}
		c.dataset.Facilities = append(c.dataset.Facilities, production.Facility{
			ID:          cell(table, row, "facility_id"),
			ProcessTime: processTime,
		})
	}
	return nil
}

func (c *productionTreeContext) theCatalogContainsRecipes(table *godog.Table) error {
	for _, row := range dataRows(table) {
		output, err := strconv.ParseFloat(cell(table, row, "output_quantity"), 64)
		if err != nil {
			return fmt.Errorf("invalid output_quantity: %w", err)
		}
		c.dataset.Recipes = append(c.dataset.Recipes, production.Recipe{
			ID:             cell(table, row, "recipe_id"),
			ItemID:         cell(table, row, "item_id"),
			FacilityID:     cell(table, row, "facility_id"),
			OutputQuantity: output,
		})
	}
	return nil
}

func (c *productionTreeContext) theCatalogContainsMaterials(table *godog.Table) error {
	for _, row := range dataRows(table) {
		quantity, err := strconv.ParseFloat(cell(table, row, "quantity"), 64)
		if err != nil {
			return fmt.Errorf("invalid quantity: %w", err)
		}
		c.dataset.Materials = append(c.dataset.Materials, production.Material{
			RecipeID:   cell(table, row, "recipe_id"),
			MaterialID: cell(table, row, "material_id"),
			Quantity:   quantity,
		})
	}
	return nil
}

func (c *productionTreeContext) theCatalogAlsoHasRecipe(recipeID string, output float64, itemID, facilityID string, quantity float64, materialID string) error {
	c.ensureItem(itemID)
	c.ensureItem(materialID)
	c.dataset.Recipes = append(c.dataset.Recipes, production.Recipe{
		ID:             recipeID,
		ItemID:         itemID,
		FacilityID:     facilityID,
		OutputQuantity: output,
	})
	c.dataset.Materials = append(c.dataset.Materials, production.Material{
		RecipeID:   recipeID,
		MaterialID: materialID,
		Quantity:   quantity,
	})
	return nil
}

func (c *productionTreeContext) ensureItem(itemID string) {
	for _, item := range c.dataset.Items {
		if item.ID == itemID {
			return
		}
	}
	c.dataset.Items = append(c.dataset.Items, production.Item{ID: itemID, NameEN: itemID, NameJP: itemID})
}

// ============================================================================
// When
// ============================================================================

func (c *productionTreeContext) loggingContext() context.Context {
	return common.WithLogger(context.Background(), c.logger)
}

func (c *productionTreeContext) iBuildTheTreeFor(itemID string, rate float64) error {
	builder := services.NewTreeBuilder(production.NewCatalog(&c.dataset))
	c.tree = builder.BuildTree(c.loggingContext(), itemID, rate)
	return nil
}

func (c *productionTreeContext) iRequestOverMinutes(quantity float64, itemID string, minutes float64) error {
	catalogs := services.NewStaticCatalogLoader(production.NewCatalog(&c.dataset))
	handler := queries.NewCalculateProductionTreeHandler(catalogs)

	result, err := handler.Handle(c.loggingContext(), &queries.CalculateProductionTreeQuery{
		ItemID:            itemID,
		TargetQuantity:    quantity,
		TimePeriodMinutes: minutes,
	})
	c.err = err
	if err == nil {
		c.response = result.(*queries.CalculateProductionTreeResponse)
		c.tree = c.response.Tree
	}
	return nil
}

// ============================================================================
// Then
// ============================================================================

func (c *productionTreeContext) theTreeShouldBe(table *godog.Table) error {
	if c.tree == nil {
		return fmt.Errorf("no tree was built")
	}

	actual := flattenTree(c.tree, 0, nil)
	expected := make([]string, 0, len(table.Rows)-1)
	for _, row := range dataRows(table) {
		expected = append(expected, fmt.Sprintf("%s %s %s %s",
			cell(table, row, "depth"),
			cell(table, row, "type"),
			cell(table, row, "id"),
			cell(table, row, "required"),
		))
	}

	if strings.Join(actual, "\n") != strings.Join(expected, "\n") {
		return fmt.Errorf("tree mismatch\nexpected:\n  %s\nactual:\n  %s",
			strings.Join(expected, "\n  "), strings.Join(actual, "\n  "))
	}
	return nil
}

func (c *productionTreeContext) theTotalEquipmentShouldBe(expected int) error {
	if c.tree == nil {
		return fmt.Errorf("no tree was built")
	}
	if actual := production.TotalEquipment(c.tree); actual != expected {
		return fmt.Errorf("expected total equipment %d, got %d", expected, actual)
	}
	if c.response != nil && c.response.TotalEquipment != expected {
		return fmt.Errorf("expected response total equipment %d, got %d", expected, c.response.TotalEquipment)
	}
	return nil
}

func (c *productionTreeContext) theEquipmentShouldRequire(facilityID string, expected int) error {
	totals := production.EquipmentByFacility(c.tree)
	actual, ok := totals[facilityID]
	if !ok {
		return fmt.Errorf("no equipment node for %s in tree", facilityID)
	}
	if actual != expected {
		return fmt.Errorf("expected %d %s, got %d", expected, facilityID, actual)
	}
	return nil
}

func (c *productionTreeContext) noBuildWarningsShouldBeLogged() error {
	if kinds := c.logger.WarningKinds(); len(kinds) > 0 {
		return fmt.Errorf("expected no warnings, got %v", kinds)
	}
	return nil
}

func (c *productionTreeContext) aBuildWarningShouldBeLoggedFor(kind, itemID string) error {
	for _, entry := range c.logger.EntriesWithLevel(common.LevelWarn) {
		if entry.Metadata["kind"] == kind && entry.Metadata["item_id"] == itemID {
			return nil
		}
	}
	return fmt.Errorf("no %s warning for %s; warnings logged: %v", kind, itemID, c.logger.WarningKinds())
}

func (c *productionTreeContext) theRequiredRateShouldBe(expected float64) error {
	if c.err != nil {
		return fmt.Errorf("request failed: %w", c.err)
	}
	if c.response.RequiredPerMinute != expected {
		return fmt.Errorf("expected rate %v, got %v", expected, c.response.RequiredPerMinute)
	}
	if c.response.Tree.Required != expected {
		return fmt.Errorf("expected root rate %v, got %v", expected, c.response.Tree.Required)
	}
	return nil
}

func (c *productionTreeContext) theResponseShouldCarryABuildID(prefix string) error {
	if c.response == nil {
		return fmt.Errorf("no response")
	}
	if !strings.HasPrefix(c.response.BuildID, prefix) {
		return fmt.Errorf("build id %q does not start with %q", c.response.BuildID, prefix)
	}
	return nil
}

func (c *productionTreeContext) theRequestShouldFailWith(message string) error {
	if c.err == nil {
		return fmt.Errorf("expected request to fail with %q, but it succeeded", message)
	}
	if c.err.Error() != message {
		return fmt.Errorf("expected error %q, got %q", message, c.err.Error())
	}
	return nil
}

// ============================================================================
// Helper Functions
// ============================================================================

// flattenTree lists nodes in pre-order as "depth type id required"
func flattenTree(node production.RequirementNode, depth int, lines []string) []string {
	var required string
	switch n := node.(type) {
	case *production.ItemNode:
		required = strconv.FormatFloat(n.Required, 'f', -1, 64)
	case *production.EquipmentNode:
		required = strconv.Itoa(n.Required)
	}

	lines = append(lines, fmt.Sprintf("%d %s %s %s", depth, node.Type(), node.NodeID(), required))
	for _, child := range node.ChildNodes() {
		lines = flattenTree(child, depth+1, lines)
	}
	return lines
}

// dataRows returns the table rows after the header
func dataRows(table *godog.Table) []*messages.PickleTableRow {
	if len(table.Rows) < 2 {
		return nil
	}
	return table.Rows[1:]
}

// cell gets a cell value from a table row by column name.
// The first row (table.Rows[0]) is the header.
func cell(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}
