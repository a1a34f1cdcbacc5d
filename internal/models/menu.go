package models

// MenuNode is one entry of the navigation tree served to the sidebar.
// Leaves carry a Weblink; containers carry a Submenu and may also be navigable.
type MenuNode struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	HasDropdown *bool      `json:"hasDropdown,omitempty"` // Top-level drop-down trigger
	HasSubmenu  *bool      `json:"hasSubmenu,omitempty"`  // Second-level drill-down trigger
	Weblink     string     `json:"weblink,omitempty"`
	Submenu     []MenuNode `json:"submenu,omitempty"`
}

// Flag returns a pointer to b for the optional boolean fields of MenuNode.
func Flag(b bool) *bool {
	return &b
}

// IsLeaf reports whether the node has no children.
func (n MenuNode) IsLeaf() bool {
	return len(n.Submenu) == 0
}
