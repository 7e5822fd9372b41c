package player

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultCapacity is how many items a pack holds unless a save says
// otherwise.
const DefaultCapacity = 20

var (
	ErrInventoryFull = errors.New("inventory is full")
	ErrItemNotFound  = errors.New("item not found")
)

// Inventory is a capacity-limited bag of items. Lookups are by name and
// case-insensitive, matching how players type them.
type Inventory struct {
	Items    []Item `json:"items"`
	Capacity int    `json:"capacity"`
}

// NewInventory returns an empty inventory with the default capacity.
func NewInventory() *Inventory {
	return &Inventory{Capacity: DefaultCapacity}
}

// Add stores the item, or returns ErrInventoryFull.
func (inv *Inventory) Add(item Item) error {
	if len(inv.Items) >= inv.Capacity {
		return fmt.Errorf("cannot carry %s: %w", item.Name, ErrInventoryFull)
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// Find returns the first item matching name, case-insensitively.
func (inv *Inventory) Find(name string) (Item, bool) {
	idx := inv.index(name)
	if idx < 0 {
		return Item{}, false
	}
	return inv.Items[idx], true
}

// Remove takes the first item matching name out of the bag and returns it.
func (inv *Inventory) Remove(name string) (Item, error) {
	idx := inv.index(name)
	if idx < 0 {
		return Item{}, fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	item := inv.Items[idx]
	inv.Items = append(inv.Items[:idx], inv.Items[idx+1:]...)
	return item, nil
}

// Count returns how many items are carried.
func (inv *Inventory) Count() int { return len(inv.Items) }

// IsFull reports whether another item would be rejected.
func (inv *Inventory) IsFull() bool { return len(inv.Items) >= inv.Capacity }

// TotalValue sums the value of everything carried.
func (inv *Inventory) TotalValue() int {
	total := 0
	for _, item := range inv.Items {
		total += item.Value
	}
	return total
}

// ByCategory groups carried items by category, categories sorted
// alphabetically for stable display.
func (inv *Inventory) ByCategory() ([]string, map[string][]Item) {
	groups := make(map[string][]Item)
	for _, item := range inv.Items {
		cat := item.Category
		if cat == "" {
			cat = "misc"
		}
		groups[cat] = append(groups[cat], item)
	}
	cats := make([]string, 0, len(groups))
	for cat := range groups {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats, groups
}

func (inv *Inventory) index(name string) int {
	for i, item := range inv.Items {
		if strings.EqualFold(item.Name, name) {
			return i
		}
	}
	return -1
}
