package production

// AncestorPath is the set of item IDs on the path from the tree root down to,
// but not including, the node being expanded.
//
// It is a persistent list: With returns a new path sharing its tail with the
// receiver, and nothing ever modifies an existing path. Sibling branches that
// extend the same parent therefore never see each other's items. The nil
// *AncestorPath is the empty path.
type AncestorPath struct {
	parent *AncestorPath
	itemID string
	length int
}

// With returns a new path extended by itemID
func (p *AncestorPath) With(itemID string) *AncestorPath {
	return &AncestorPath{
		parent: p,
		itemID: itemID,
		length: p.Len() + 1,
	}
}

// Contains reports whether itemID is on the path
func (p *AncestorPath) Contains(itemID string) bool {
	for node := p; node != nil; node = node.parent {
		if node.itemID == itemID {
			return true
		}
	}
	return false
}

// Len returns the number of items on the path
func (p *AncestorPath) Len() int {
	if p == nil {
		return 0
	}
	return p.length
}

// IDs returns the item IDs from the root downwards
func (p *AncestorPath) IDs() []string {
	ids := make([]string, p.Len())
	i := len(ids) - 1
	for node := p; node != nil; node = node.parent {
		ids[i] = node.itemID
		i--
	}
	return ids
}
