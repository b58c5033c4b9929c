package production

import "math"

// TotalEquipment sums the machine counts of every equipment node in the tree.
// The sum saturates at math.MaxInt.
func TotalEquipment(node RequirementNode) int {
	if node == nil {
		return 0
	}

	total := 0
	if equipment, ok := node.(*EquipmentNode); ok {
		total = addSaturating(total, equipment.Required)
	}
	for _, child := range node.ChildNodes() {
		total = addSaturating(total, TotalEquipment(child))
	}
	return total
}

// addSaturating adds two non-negative counts, clamping at math.MaxInt
func addSaturating(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// TreeDepth returns the number of nodes on the longest root-to-leaf path
func TreeDepth(node RequirementNode) int {
	if node == nil {
		return 0
	}

	maxChildDepth := 0
	for _, child := range node.ChildNodes() {
		if depth := TreeDepth(child); depth > maxChildDepth {
			maxChildDepth = depth
		}
	}
	return maxChildDepth + 1
}

// CountNodes returns the number of nodes in the tree, counting repeated items separately
func CountNodes(node RequirementNode) int {
	if node == nil {
		return 0
	}

	count := 1
	for _, child := range node.ChildNodes() {
		count += CountNodes(child)
	}
	return count
}

// LeafItemIDs returns the unique IDs of leaf item nodes in depth-first order.
// These are the raw materials, unproducible items and cycle cut points of the tree.
func LeafItemIDs(node RequirementNode) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	collectLeafItems(node, seen, &result)
	return result
}

func collectLeafItems(node RequirementNode, seen map[string]bool, result *[]string) {
	if node == nil {
		return
	}
	if node.Type() == NodeTypeItem && node.IsLeaf() {
		if !seen[node.NodeID()] {
			seen[node.NodeID()] = true
			*result = append(*result, node.NodeID())
		}
		return
	}
	for _, child := range node.ChildNodes() {
		collectLeafItems(child, seen, result)
	}
}

// EquipmentByFacility sums machine counts per facility ID.
// Branches are not merged, so this reports the same overstatement as TotalEquipment
// when several recipes produce one item.
func EquipmentByFacility(node RequirementNode) map[string]int {
	totals := make(map[string]int)
	sumEquipment(node, totals)
	return totals
}

func sumEquipment(node RequirementNode, totals map[string]int) {
	if node == nil {
		return
	}
	if equipment, ok := node.(*EquipmentNode); ok {
		totals[equipment.ID] = addSaturating(totals[equipment.ID], equipment.Required)
	}
	for _, child := range node.ChildNodes() {
		sumEquipment(child, totals)
	}
}
