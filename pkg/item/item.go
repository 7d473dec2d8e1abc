// Package item defines the schedulable item model and the repository that
// owns the canonical item set.
package item

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/weekly/pkg/palette"
)

var (
	// ErrEmptyTitle rejects items whose title trims to nothing.
	ErrEmptyTitle = errors.New("item: title is empty")

	// ErrNotFound signals an unknown item id.
	ErrNotFound = errors.New("item: not found")
)

// Item is a reusable schedulable entity. The schedule layer never mutates
// items; edits go through the repository.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
	Note  string `json:"note,omitempty"`
}

// New validates the fields and mints an item with a fresh id. Ids are
// random and never reused, so a deleted item's id stays retired.
func New(title, color, note string) (Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Item{}, ErrEmptyTitle
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = palette.Fallback()
	}
	return Item{
		ID:    uuid.NewString(),
		Title: title,
		Color: color,
		Note:  strings.TrimSpace(note),
	}, nil
}
