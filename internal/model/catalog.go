package model

import "fmt"

// collection is an insertion-ordered id -> item map.
type collection struct {
	items map[string]Item
	order []string
}

func newCollection() *collection {
	return &collection{items: map[string]Item{}}
}

func (c *collection) put(it Item) {
	if _, ok := c.items[it.ID]; !ok {
		c.order = append(c.order, it.ID)
	}
	c.items[it.ID] = it
}

// Catalog holds four independent collections, one per kind.
// It is not safe for concurrent mutation.
type Catalog struct {
	byKind map[Kind]*collection
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	c := &Catalog{byKind: make(map[Kind]*collection, len(Kinds))}
	for _, k := range Kinds {
		c.byKind[k] = newCollection()
	}
	return c
}

// Add inserts the item into its kind's collection. An existing item with the
// same id is replaced in place.
func (c *Catalog) Add(it Item) error {
	col, ok := c.byKind[it.Kind()]
	if !ok {
		return fmt.Errorf("item %q has no kind", it.ID)
	}
	col.put(it)
	return nil
}

// Get looks up an item by kind and id.
func (c *Catalog) Get(kind Kind, id string) (Item, bool) {
	col, ok := c.byKind[kind]
	if !ok {
		return Item{}, false
	}
	it, ok := col.items[id]
	return it, ok
}

// List returns the items of a kind in insertion order.
func (c *Catalog) List(kind Kind) []Item {
	col, ok := c.byKind[kind]
	if !ok {
		return nil
	}
	out := make([]Item, 0, len(col.order))
	for _, id := range col.order {
		out = append(out, col.items[id])
	}
	return out
}

// Len returns the number of items of a kind.
func (c *Catalog) Len(kind Kind) int {
	if col, ok := c.byKind[kind]; ok {
		return len(col.order)
	}
	return 0
}

// Total returns the number of items across all kinds.
func (c *Catalog) Total() int {
	n := 0
	for _, k := range Kinds {
		n += c.Len(k)
	}
	return n
}
