package tray

// Menu item ids.
const (
	ItemShow = "show"
	ItemHide = "hide"
	ItemQuit = "quit"
)

// Item is one tray menu entry. Separators carry no id.
type Item struct {
	ID        string
	Label     string
	Enabled   bool
	Separator bool
}

// Menu is the tray menu model. It is built once and never changes, so item
// ids stay stable for routing.
type Menu struct {
	items []Item
}

// NewMenu builds the fixed menu: show, hide, separator, quit.
func NewMenu() Menu {
	return Menu{items: []Item{
		{ID: ItemShow, Label: "Show window", Enabled: true},
		{ID: ItemHide, Label: "Hide window", Enabled: true},
		{Separator: true},
		{ID: ItemQuit, Label: "Quit", Enabled: true},
	}}
}

// Items returns a copy of the entries in display order.
func (m Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// IDs returns the ids of the non-separator entries in display order.
func (m Menu) IDs() []string {
	var ids []string
	for _, it := range m.items {
		if !it.Separator {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
