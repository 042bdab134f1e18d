// Package menu builds host menus and routes item selections to typed
// handlers.
package menu

import (
	"log/slog"
	"strings"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
	"github.com/simbridge-dev/simbridge-sdk/internal/refcon"
)

// SelectionHandler receives menu item selections. item is the value passed
// to AppendItem for the selected entry.
type SelectionHandler interface {
	MenuSelected(m *Menu, item int32)
}

// SelectionHandlerFunc adapts a plain function to SelectionHandler.
type SelectionHandlerFunc func(m *Menu, item int32)

func (f SelectionHandlerFunc) MenuSelected(m *Menu, item int32) { f(m, item) }

// menus maps live correlation tokens to menu records.
var menus = refcon.NewTable()

type menuRecord struct {
	menu    *Menu
	handler SelectionHandler
}

// dispatchMenu is the one trampoline shared by every created menu.
func dispatchMenu(_ entities.RawHandle, item int32, token entities.Token) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("menu handler panicked", "token", uint64(token), "panic", r)
		}
	}()
	record, ok := menus.Get(token)
	if !ok {
		slog.Warn("menu callback with unknown token", "token", uint64(token))
		return
	}
	rec := record.(*menuRecord)
	// The handler may destroy its own menu; the record must not be
	// touched after dispatch.
	rec.handler.MenuSelected(rec.menu, item)
}

// Menu is a live host menu. Close destroys it.
type Menu struct {
	host  ports.Menus
	id    entities.MenuID
	token entities.Token
}

// Create creates a submenu attached to the given parent at the item index
// returned by the parent's AppendItem. A nil handler creates a menu whose
// selections are ignored.
func Create(host ports.Menus, name string, parent entities.MenuID, parentItem int32, handler SelectionHandler) (*Menu, error) {
	if strings.ContainsRune(name, 0) {
		return nil, &errors.NameEncodingError{Field: "menu name"}
	}
	if handler == nil {
		handler = SelectionHandlerFunc(func(*Menu, int32) {})
	}

	rec := &menuRecord{handler: handler}
	token := menus.Put(rec)
	raw := host.CreateMenu(name, parent.Raw(), parentItem, dispatchMenu, token)
	id, err := entities.WrapMenuID(raw)
	if err != nil {
		menus.Release(token)
		return nil, err
	}

	m := &Menu{host: host, id: id, token: token}
	rec.menu = m
	return m, nil
}

// PluginsMenu returns the host's shared plugins menu. It is owned by the
// host: it cannot be closed, and selections of items appended directly to
// it are not routed anywhere.
func PluginsMenu(host ports.Menus) (entities.MenuID, error) {
	return entities.WrapMenuID(host.PluginsMenu())
}

// ID returns the wrapped menu id.
func (m *Menu) ID() entities.MenuID { return m.id }

// AppendItem adds an item and returns its index within the menu. item is
// handed back to the selection handler when the entry is chosen.
func (m *Menu) AppendItem(name string, item int32) (int32, error) {
	if strings.ContainsRune(name, 0) {
		return 0, &errors.NameEncodingError{Field: "menu item name"}
	}
	index := m.host.AppendMenuItem(m.id.Raw(), name, item)
	if index < 0 {
		return 0, &errors.InvalidHandleError{Kind: "menu item"}
	}
	return index, nil
}

// AppendSeparator adds a separator line after the current last item.
func (m *Menu) AppendSeparator() { m.host.AppendMenuSeparator(m.id.Raw()) }

// CheckItem sets the check mark of the item at the given index.
func (m *Menu) CheckItem(index int32, checked bool) {
	m.host.CheckMenuItem(m.id.Raw(), index, checked)
}

// ClearAllItems removes every item from the menu.
func (m *Menu) ClearAllItems() { m.host.ClearAllMenuItems(m.id.Raw()) }

// Close destroys the menu and releases its token. The first call tears
// down; later calls are no-ops. Calling Close from inside the menu's own
// selection handler is legal.
func (m *Menu) Close() {
	if m.token == 0 {
		return
	}
	m.host.DestroyMenu(m.id.Raw())
	menus.Release(m.token)
	m.token = 0
}
