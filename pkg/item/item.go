// Package item defines the single list entry type shared by the store, the
// controller and every display surface.
package item

import (
	"errors"
	"strings"
)

// ErrEmpty is returned by Parse when the text is blank after trimming.
var ErrEmpty = errors.New("item: empty text")

// Item is a list entry. It has no identity beyond its text; two items whose
// text matches ignoring case are the same item as far as duplicate
// detection is concerned.
type Item string

// Parse trims text and returns it as an Item.
func Parse(text string) (Item, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", ErrEmpty
	}
	return Item(t), nil
}

// String returns the item text.
func (i Item) String() string { return string(i) }

// Same reports whether i and text name the same item, ignoring case.
func (i Item) Same(text string) bool {
	return strings.EqualFold(string(i), strings.TrimSpace(text))
}

// Matches reports whether query is a case-insensitive substring of the item.
// The empty query matches everything.
func (i Item) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(i)), strings.ToLower(query))
}

// FromStrings converts raw texts into items, dropping blank entries.
func FromStrings(texts []string) []Item {
	out := make([]Item, 0, len(texts))
	for _, t := range texts {
		if it, err := Parse(t); err == nil {
			out = append(out, it)
		}
	}
	return out
}

// Strings returns the texts of items, in order.
func Strings(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = string(it)
	}
	return out
}
