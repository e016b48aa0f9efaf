// Package catalog loads and serves the immutable vocabulary whitelist.
// The catalog is pure lookup: it holds no learner state.
package catalog

import "encoding/json"

// Catalog is the loaded, immutable vocabulary whitelist. Section order is
// the order of the source document and is semantically meaningful: it
// defines the default unlock chain.
type Catalog struct {
	sections  []Section
	byID      map[string]int // section id -> index into sections
	itemIndex map[string]Item
}

// New builds a Catalog from a parsed document.
func New(doc Document) *Catalog {
	c := &Catalog{
		sections:  doc.Sections,
		byID:      make(map[string]int, len(doc.Sections)),
		itemIndex: make(map[string]Item),
	}
	for i, s := range doc.Sections {
		c.byID[s.ID] = i
		for _, it := range s.Items {
			c.itemIndex[it.ID] = it
		}
	}
	return c
}

// Load parses and validates a whitelist document. Malformed source data
// returns a *LoadError; the caller should abort startup.
func Load(raw []byte) (*Catalog, error) {
	if err := validateDocument(raw); err != nil {
		return nil, &LoadError{Err: err}
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Err: err}
	}
	return New(doc), nil
}

// Sections returns all sections in curriculum order.
func (c *Catalog) Sections() []Section {
	return c.sections
}

// Section returns the section with the given id, or a *NotFoundError.
func (c *Catalog) Section(id string) (Section, error) {
	i, ok := c.byID[id]
	if !ok {
		return Section{}, &NotFoundError{Kind: "section", ID: id}
	}
	return c.sections[i], nil
}

// SectionIndex returns the position of a section in the curriculum order,
// or -1 if unknown.
func (c *Catalog) SectionIndex(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}

// Item returns the item with the given id from any section.
func (c *Catalog) Item(id string) (Item, error) {
	it, ok := c.itemIndex[id]
	if !ok {
		return Item{}, &NotFoundError{Kind: "item", ID: id}
	}
	return it, nil
}

// HasItem reports whether an item id exists in the whitelist.
func (c *Catalog) HasItem(id string) bool {
	_, ok := c.itemIndex[id]
	return ok
}

// AllItems returns every item across all sections, in section order.
func (c *Catalog) AllItems() []Item {
	var items []Item
	for _, s := range c.sections {
		items = append(items, s.Items...)
	}
	return items
}
