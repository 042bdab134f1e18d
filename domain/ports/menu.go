package ports

import "github.com/simbridge-dev/simbridge-sdk/domain/entities"

// MenuFunc is the fixed-signature callback the host invokes when a menu
// item is selected. itemRef is the per-item value supplied at AppendMenuItem
// time; the token is returned verbatim from menu creation.
type MenuFunc func(menu entities.RawHandle, itemRef int32, token entities.Token)

// Menus is the host's menu surface.
type Menus interface {
	// PluginsMenu returns the host's shared plugins menu, or 0 if the host
	// has none.
	PluginsMenu() entities.RawHandle

	// CreateMenu creates a submenu attached to parent at parentItem and
	// returns its raw id, or 0 on failure.
	CreateMenu(name string, parent entities.RawHandle, parentItem int32, fn MenuFunc, token entities.Token) entities.RawHandle

	// DestroyMenu destroys a menu created by CreateMenu. The host stops
	// invoking the menu's callback once this returns.
	DestroyMenu(id entities.RawHandle)

	// AppendMenuItem adds an item and returns its index, or a negative
	// value on failure. itemRef is passed back on selection.
	AppendMenuItem(id entities.RawHandle, name string, itemRef int32) int32

	// AppendMenuSeparator adds a separator line.
	AppendMenuSeparator(id entities.RawHandle)

	// CheckMenuItem sets the check mark state of an item.
	CheckMenuItem(id entities.RawHandle, index int32, checked bool)

	// ClearAllMenuItems removes every item from the menu.
	ClearAllMenuItems(id entities.RawHandle)
}
