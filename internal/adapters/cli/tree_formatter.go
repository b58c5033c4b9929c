package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

const (
	colorReset     = "\033[0m"
	colorEquipment = "\033[36m" // Cyan
	colorSeed      = "\033[32m" // Green
	colorUnknown   = "\033[31m" // Red
)

// NameResolver returns the display name of an item, if known
type NameResolver func(itemID string) (string, bool)

// TreeFormatter renders requirement trees as box-drawn text
type TreeFormatter struct {
	useColors     bool
	ratePrecision int32
	names         NameResolver
	seeds         map[string]bool
}

// NewTreeFormatter creates a new tree formatter. Rates are rounded to ratePrecision decimals.
func NewTreeFormatter(useColors bool, ratePrecision int) *TreeFormatter {
	return &TreeFormatter{
		useColors:     useColors,
		ratePrecision: int32(ratePrecision),
		seeds:         map[string]bool{},
	}
}

// WithCatalogNames labels item nodes with their catalog names for locale and marks seeds
func (f *TreeFormatter) WithCatalogNames(items []production.Item, locale production.Locale) *TreeFormatter {
	byID := make(map[string]string, len(items))
	for _, item := range items {
		if _, exists := byID[item.ID]; exists {
			continue
		}
		byID[item.ID] = item.DisplayName(locale)
		if item.IsSeed {
			f.seeds[item.ID] = true
		}
	}
	f.names = func(itemID string) (string, bool) {
		name, ok := byID[itemID]
		return name, ok
	}
	return f
}

// FormatRate renders an item rate as "12.50/min"
func (f *TreeFormatter) FormatRate(perMinute float64) string {
	if isNonFinite(perMinute) {
		return strconv.FormatFloat(perMinute, 'f', -1, 64) + "/min"
	}
	return decimal.NewFromFloat(perMinute).StringFixed(f.ratePrecision) + "/min"
}

// FormatTree renders a requirement tree, one node per line
func (f *TreeFormatter) FormatTree(root *production.ItemNode) string {
	if root == nil {
		return "(empty tree)"
	}

	var builder strings.Builder
	f.formatNode(&builder, root, "", true, true)
	return builder.String()
}

// formatNode recursively formats a node and its children
func (f *TreeFormatter) formatNode(builder *strings.Builder, node production.RequirementNode, prefix string, isLast bool, isRoot bool) {
	var linePrefix string
	if isRoot {
		linePrefix = ""
	} else if isLast {
		linePrefix = prefix + "└── "
	} else {
		linePrefix = prefix + "├── "
	}

	builder.WriteString(linePrefix)
	builder.WriteString(f.nodeLabel(node))
	builder.WriteString("\n")

	children := node.ChildNodes()
	if len(children) == 0 {
		return
	}

	var childPrefix string
	if isRoot {
		childPrefix = ""
	} else if isLast {
		childPrefix = prefix + "    "
	} else {
		childPrefix = prefix + "│   "
	}

	for i, child := range children {
		f.formatNode(builder, child, childPrefix, i == len(children)-1, false)
	}
}

func (f *TreeFormatter) nodeLabel(node production.RequirementNode) string {
	switch n := node.(type) {
	case *production.EquipmentNode:
		return fmt.Sprintf("%s[%s]%s x%d", f.color(colorEquipment), n.ID, f.reset(), n.Required)
	case *production.ItemNode:
		color := ""
		switch {
		case n.ID == production.UnknownItemID:
			color = colorUnknown
		case f.seeds[n.ID]:
			color = colorSeed
		}
		return fmt.Sprintf("%s%s%s  %s", f.color(color), f.itemName(n.ID), f.reset(), f.FormatRate(n.Required))
	default:
		return node.NodeID()
	}
}

func (f *TreeFormatter) itemName(itemID string) string {
	if f.names == nil {
		return itemID
	}
	name, ok := f.names(itemID)
	if !ok || name == itemID {
		return itemID
	}
	return fmt.Sprintf("%s (%s)", name, itemID)
}

func (f *TreeFormatter) color(code string) string {
	if !f.useColors || code == "" {
		return ""
	}
	return code
}

func (f *TreeFormatter) reset() string {
	if !f.useColors {
		return ""
	}
	return colorReset
}

// FormatTreeSummary creates a compact summary of the tree
func (f *TreeFormatter) FormatTreeSummary(root *production.ItemNode) string {
	if root == nil {
		return "No requirement tree"
	}

	return fmt.Sprintf(
		"Tree: %d nodes, depth=%d, raw inputs=%s",
		production.CountNodes(root),
		production.TreeDepth(root),
		strings.Join(production.LeafItemIDs(root), ", "),
	)
}

// FormatEquipmentBreakdown lists equipment counts per facility in first-seen order
func (f *TreeFormatter) FormatEquipmentBreakdown(root *production.ItemNode) string {
	if root == nil {
		return ""
	}

	totals := production.EquipmentByFacility(root)
	order := make([]string, 0, len(totals))
	seen := make(map[string]bool, len(totals))
	var walk func(node production.RequirementNode)
	walk = func(node production.RequirementNode) {
		if node.Type() == production.NodeTypeEquipment && !seen[node.NodeID()] {
			seen[node.NodeID()] = true
			order = append(order, node.NodeID())
		}
		for _, child := range node.ChildNodes() {
			walk(child)
		}
	}
	walk(root)

	var builder strings.Builder
	for _, facilityID := range order {
		builder.WriteString(fmt.Sprintf("  %-24s %d\n", facilityID, totals[facilityID]))
	}
	return builder.String()
}

// formatQuantity renders a per-cycle quantity without trailing zeros
func formatQuantity(quantity float64) string {
	if isNonFinite(quantity) {
		return strconv.FormatFloat(quantity, 'f', -1, 64)
	}
	return decimal.NewFromFloat(quantity).String()
}

// isNonFinite reports values decimal cannot represent
func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
