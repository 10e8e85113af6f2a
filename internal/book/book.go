// Package book implements the mdBook preprocessor wire format: the [context, book] JSON
// array mdBook writes to a preprocessor's stdin and the book object it reads back.
//
// Fields this package does not model are kept verbatim, so a book survives a decode and
// encode cycle with only the chapter content changed.
package book

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Context is the first element of the preprocessor input.
type Context struct {
	Root          string         `json:"root"`
	Config        map[string]any `json:"config"`
	Renderer      string         `json:"renderer"`
	MDBookVersion string         `json:"mdbook_version"`
}

const (
	keySections = "sections"
	keyItems    = "items"
)

// Book is the ordered list of top-level items.
type Book struct {
	Items []*Item

	itemsKey string
	extra    map[string]json.RawMessage
}

// UnmarshalJSON accepts both the "sections" and the "items" spelling of the item list.
func (b *Book) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.itemsKey = keySections
	list, ok := raw[keySections]
	if !ok {
		if list, ok = raw[keyItems]; ok {
			b.itemsKey = keyItems
		}
	}
	delete(raw, b.itemsKey)
	b.Items = nil
	if ok && !isNull(list) {
		if err := json.Unmarshal(list, &b.Items); err != nil {
			return fmt.Errorf("%s: %w", b.itemsKey, err)
		}
	}
	b.extra = raw
	return nil
}

// MarshalJSON writes the item list under the key it was read from.
func (b *Book) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.extra)+1)
	for k, v := range b.extra {
		out[k] = v
	}
	key := b.itemsKey
	if key == "" {
		key = keySections
	}
	items := b.Items
	if items == nil {
		items = []*Item{}
	}
	out[key] = items
	return json.Marshal(out)
}

// Walk visits every chapter in document order, descending into sub-items before moving to
// the next sibling.
func (b *Book) Walk(fn func(*Chapter) error) error {
	return walkItems(b.Items, fn)
}

func walkItems(items []*Item, fn func(*Chapter) error) error {
	for _, it := range items {
		if it == nil || it.Chapter == nil {
			continue
		}
		if err := fn(it.Chapter); err != nil {
			return err
		}
		if err := walkItems(it.Chapter.SubItems, fn); err != nil {
			return err
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
