package item

import "strings"

// Repository owns the canonical set of items. Listing order is insertion
// order; it carries no scheduling meaning.
type Repository struct {
	items []Item
}

// NewRepository builds a repository seeded with the given items.
func NewRepository(items ...Item) *Repository {
	r := &Repository{}
	r.items = append(r.items, items...)
	return r
}

// Patch carries the fields an update should touch. Nil fields are left
// untouched.
type Patch struct {
	Title *string
	Color *string
	Note  *string
}

// Add validates and appends a new item, returning the created item.
func (r *Repository) Add(title, color, note string) (Item, error) {
	it, err := New(title, color, note)
	if err != nil {
		return Item{}, err
	}
	r.items = append(r.items, it)
	return it, nil
}

// Update merges the provided fields into the item with the given id.
func (r *Repository) Update(id string, p Patch) (Item, error) {
	idx := r.index(id)
	if idx < 0 {
		return Item{}, ErrNotFound
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return Item{}, ErrEmptyTitle
	}

	it := r.items[idx]
	if p.Title != nil {
		it.Title = strings.TrimSpace(*p.Title)
	}
	if p.Color != nil {
		it.Color = strings.TrimSpace(*p.Color)
	}
	if p.Note != nil {
		it.Note = strings.TrimSpace(*p.Note)
	}
	r.items[idx] = it
	return it, nil
}

// Remove deletes the item with the given id. The repository knows nothing
// about the schedule; purging scheduled references is the caller's job.
func (r *Repository) Remove(id string) error {
	idx := r.index(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	return nil
}

// Get returns the item with the given id.
func (r *Repository) Get(id string) (Item, bool) {
	if idx := r.index(id); idx >= 0 {
		return r.items[idx], true
	}
	return Item{}, false
}

// List returns the items in insertion order.
func (r *Repository) List() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Len reports how many items the repository holds.
func (r *Repository) Len() int {
	return len(r.items)
}

// Replace swaps the whole item set, used by load and import.
func (r *Repository) Replace(items []Item) {
	r.items = make([]Item, len(items))
	copy(r.items, items)
}

func (r *Repository) index(id string) int {
	for i, it := range r.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
