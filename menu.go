package veloxui

// Menu is an options menu.
type Menu interface {
	// FindItem returns the item with the given id, or nil.
	FindItem(id string) MenuItem
}

// MenuItem is an entry of a Menu.
type MenuItem interface {
	ItemID() string
}

// MenuInflater populates a menu from a menu resource.
type MenuInflater interface {
	Inflate(menuRes string, menu Menu)
}
