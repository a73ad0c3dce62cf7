// Package allocator selects a subset of securities whose total price fills a budget
// as closely as possible without going over it (0/1 knapsack with value = price).
package allocator

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidCapacity is returned for a negative capacity
	ErrInvalidCapacity = errors.New(ErrMsgInvalidCapacity)
	// ErrInvalidPrice is returned when a catalog item has a negative price
	ErrInvalidPrice = errors.New(ErrMsgInvalidPrice)
	// ErrDuplicateItem is returned when a catalog names the same item twice
	ErrDuplicateItem = errors.New(ErrMsgDuplicateItem)
)

// Item is a single selectable catalog entry.
type Item struct {
	Name  string
	Price int
}

// Catalog is an ordered snapshot of selectable items.
// Iteration order decides which optimal subset wins when several exist,
// so callers should build it from a deterministic source.
type Catalog []Item

// FromMap builds a catalog from a name->price mapping ordered by name.
func FromMap(prices map[string]int) Catalog {
	catalog := make(Catalog, 0, len(prices))
	for name, price := range prices {
		catalog = append(catalog, Item{Name: name, Price: price})
	}
	sort.Slice(catalog, func(i, j int) bool {
		return catalog[i].Name < catalog[j].Name
	})
	return catalog
}

// Validate checks the catalog preconditions: unique names and non-negative prices.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c))
	for _, item := range c {
		if item.Price < 0 {
			return fmt.Errorf("%w: %s has price %d", ErrInvalidPrice, item.Name, item.Price)
		}
		if _, dup := seen[item.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, item.Name)
		}
		seen[item.Name] = struct{}{}
	}
	return nil
}

// Total sums the prices of the named items. Names missing from the catalog count as zero.
func (c Catalog) Total(names []string) int {
	prices := make(map[string]int, len(c))
	for _, item := range c {
		prices[item.Name] = item.Price
	}
	total := 0
	for _, name := range names {
		total += prices[name]
	}
	return total
}

// Allocate returns the names of the items whose prices add up to the largest sum
// not exceeding capacity. Each item is used at most once. Names are returned in
// catalog order.
//
// Ties between optimal subsets go to the first one found by sweeping the catalog
// in order and capacities from high to low, keeping an earlier choice unless a
// later item strictly improves it.
func Allocate(capacity int, catalog Catalog) ([]string, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	selected := []string{}
	if capacity == 0 || len(catalog) == 0 {
		return selected, nil
	}

	best := make([]int, capacity+1)
	taken := newChoiceTable(len(catalog), capacity+1)

	for k, item := range catalog {
		// Descending sweep keeps best[i-price] at its pre-item value, so the item is
		// counted at most once.
		for i := capacity; i >= item.Price; i-- {
			if candidate := best[i-item.Price] + item.Price; candidate > best[i] {
				best[i] = candidate
				taken.set(k, i)
			}
		}
	}

	// The last item that improved a capacity is the last one appended to its
	// selection; walk back through the earlier items from the remaining capacity.
	remaining := capacity
	for k := len(catalog) - 1; k >= 0 && remaining > 0; k-- {
		if taken.get(k, remaining) {
			selected = append(selected, catalog[k].Name)
			remaining -= catalog[k].Price
		}
	}

	for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
		selected[i], selected[j] = selected[j], selected[i]
	}
	return selected, nil
}

// choiceTable is a bitset recording whether item k improved capacity i.
type choiceTable struct {
	stride int
	words  []uint64
}

func newChoiceTable(items, capacities int) *choiceTable {
	stride := (capacities + 63) / 64
	return &choiceTable{
		stride: stride,
		words:  make([]uint64, items*stride),
	}
}

func (t *choiceTable) set(item, capacity int) {
	t.words[item*t.stride+capacity/64] |= 1 << (uint(capacity) % 64)
}

func (t *choiceTable) get(item, capacity int) bool {
	return t.words[item*t.stride+capacity/64]&(1<<(uint(capacity)%64)) != 0
}
