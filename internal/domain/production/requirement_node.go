package production

import "encoding/json"

// NodeType tags the two kinds of requirement tree nodes
type NodeType string

const (
	// NodeTypeItem marks a node carrying a continuous rate (units per minute)
	NodeTypeItem NodeType = "item"

	// NodeTypeEquipment marks a node carrying a whole machine count
	NodeTypeEquipment NodeType = "equipment"
)

// UnknownItemID is the ID given to item nodes whose item is missing from the catalog
const UnknownItemID = "UNKNOWN_ITEM"

// RequirementNode is a node of a production requirement tree.
//
// The tree alternates strictly: an *ItemNode only has *EquipmentNode children
// (one per recipe producing the item) and an *EquipmentNode only has *ItemNode
// children (one per material the recipe consumes). Leaves are always item nodes.
// The interface is sealed; the two node types are the only implementations.
type RequirementNode interface {
	Type() NodeType
	NodeID() string
	ChildNodes() []RequirementNode
	IsLeaf() bool

	requirementNode()
}

// ItemNode is the demand for one item at a continuous rate
type ItemNode struct {
	// Item ID, or UnknownItemID when the item was not in the catalog
	ID string

	// Required rate in units per minute
	Required float64

	// One child per recipe that produces this item (empty for leaves)
	Children []*EquipmentNode
}

// EquipmentNode is the machine count needed to run one recipe at the parent item's rate
type EquipmentNode struct {
	// Facility ID
	ID string

	// Required number of machines, rounded up
	Required int

	// One child per material the recipe consumes
	Children []*ItemNode
}

// NewItemNode creates a childless item node
func NewItemNode(id string, required float64) *ItemNode {
	return &ItemNode{
		ID:       id,
		Required: required,
		Children: make([]*EquipmentNode, 0),
	}
}

// NewEquipmentNode creates a childless equipment node
func NewEquipmentNode(id string, required int) *EquipmentNode {
	return &EquipmentNode{
		ID:       id,
		Required: required,
		Children: make([]*ItemNode, 0),
	}
}

// AddChild appends an equipment branch to this item
func (n *ItemNode) AddChild(child *EquipmentNode) {
	n.Children = append(n.Children, child)
}

func (n *ItemNode) Type() NodeType { return NodeTypeItem }

func (n *ItemNode) NodeID() string { return n.ID }

func (n *ItemNode) IsLeaf() bool { return len(n.Children) == 0 }

func (n *ItemNode) ChildNodes() []RequirementNode {
	children := make([]RequirementNode, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child)
	}
	return children
}

func (n *ItemNode) requirementNode() {}

// AddChild appends a material branch to this equipment
func (n *EquipmentNode) AddChild(child *ItemNode) {
	n.Children = append(n.Children, child)
}

func (n *EquipmentNode) Type() NodeType { return NodeTypeEquipment }

func (n *EquipmentNode) NodeID() string { return n.ID }

func (n *EquipmentNode) IsLeaf() bool { return len(n.Children) == 0 }

func (n *EquipmentNode) ChildNodes() []RequirementNode {
	children := make([]RequirementNode, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child)
	}
	return children
}

func (n *EquipmentNode) requirementNode() {}

// itemNodeJSON is the wire shape consumed by tree renderers
type itemNodeJSON struct {
	Type     NodeType         `json:"type"`
	ID       string           `json:"id"`
	Required float64          `json:"required"`
	Children []*EquipmentNode `json:"children"`
}

type equipmentNodeJSON struct {
	Type     NodeType    `json:"type"`
	ID       string      `json:"id"`
	Required int         `json:"required"`
	Children []*ItemNode `json:"children"`
}

// MarshalJSON encodes the node with its "type" tag and an always-present children array
func (n *ItemNode) MarshalJSON() ([]byte, error) {
	children := n.Children
	if children == nil {
		children = []*EquipmentNode{}
	}
	return json.Marshal(itemNodeJSON{
		Type:     NodeTypeItem,
		ID:       n.ID,
		Required: n.Required,
		Children: children,
	})
}

// MarshalJSON encodes the node with its "type" tag and an always-present children array
func (n *EquipmentNode) MarshalJSON() ([]byte, error) {
	children := n.Children
	if children == nil {
		children = []*ItemNode{}
	}
	return json.Marshal(equipmentNodeJSON{
		Type:     NodeTypeEquipment,
		ID:       n.ID,
		Required: n.Required,
		Children: children,
	})
}
