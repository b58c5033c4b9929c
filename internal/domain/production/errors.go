package production

import (
	"fmt"
	"strings"
)

// WarningKind classifies the soft failures met while building a tree
type WarningKind string

const (
	// WarningUnknownItem means an item ID was not in the catalog; the node became a sentinel leaf
	WarningUnknownItem WarningKind = "unknown_item"

	// WarningUnknownFacility means a recipe referenced a missing facility; the recipe branch was dropped
	WarningUnknownFacility WarningKind = "unknown_facility"

	// WarningCycle means an item was already among its own ancestors; the path stopped at a leaf
	WarningCycle WarningKind = "cycle"

	// WarningInvalidRecipe means a recipe, its facility or one of its materials had an
	// unusable number (output quantity not positive, process time or material quantity
	// negative, or any of them non-finite); the recipe branch was dropped
	WarningInvalidRecipe WarningKind = "invalid_recipe"
)

// BuildWarning describes one soft failure. None of them abort a build.
type BuildWarning struct {
	Kind       WarningKind
	ItemID     string
	RecipeID   string
	FacilityID string

	// Item IDs from the root down to the parent of the affected node
	Path []string
}

// Message returns a human readable description of the warning
func (w BuildWarning) Message() string {
	switch w.Kind {
	case WarningUnknownItem:
		return fmt.Sprintf("item not found: %s", w.ItemID)
	case WarningUnknownFacility:
		return fmt.Sprintf("facility not found: %s (recipe %s for %s skipped)", w.FacilityID, w.RecipeID, w.ItemID)
	case WarningInvalidRecipe:
		return fmt.Sprintf("invalid recipe %s for %s on %s skipped", w.RecipeID, w.ItemID, w.FacilityID)
	case WarningCycle:
		return fmt.Sprintf("circular recipe reference for %s: %s", w.ItemID, strings.Join(append(append([]string(nil), w.Path...), w.ItemID), " -> "))
	default:
		return fmt.Sprintf("build warning %s for %s", w.Kind, w.ItemID)
	}
}

// Metadata returns the structured log fields for the warning
func (w BuildWarning) Metadata() map[string]interface{} {
	metadata := map[string]interface{}{
		"kind":    string(w.Kind),
		"item_id": w.ItemID,
		"path":    append([]string(nil), w.Path...),
	}
	if w.RecipeID != "" {
		metadata["recipe_id"] = w.RecipeID
	}
	if w.FacilityID != "" {
		metadata["facility_id"] = w.FacilityID
	}
	return metadata
}

// ErrItemNotFound indicates a lookup by ID found no item
type ErrItemNotFound struct {
	ItemID string
}

func (e *ErrItemNotFound) Error() string {
	return fmt.Sprintf("item not found: %s", e.ItemID)
}

// ErrInvalidRateInput indicates a non-positive or non-finite quantity or time period
type ErrInvalidRateInput struct {
	Field   string
	Message string
}

func (e *ErrInvalidRateInput) Error() string {
	return fmt.Sprintf("Invalid input: %s", e.Message)
}
