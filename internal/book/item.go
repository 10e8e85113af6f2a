package book

import (
	"encoding/json"
	"fmt"
)

// ItemKind discriminates the variants of a book item.
type ItemKind int

const (
	KindChapter ItemKind = iota
	KindSeparator
	KindPartTitle
)

func (k ItemKind) String() string {
	switch k {
	case KindChapter:
		return "Chapter"
	case KindSeparator:
		return "Separator"
	case KindPartTitle:
		return "PartTitle"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// Item is one entry of the table of contents. mdBook encodes it as an externally tagged
// enum: {"Chapter": {...}}, "Separator" or {"PartTitle": "..."}.
type Item struct {
	Kind      ItemKind
	Chapter   *Chapter // KindChapter only
	PartTitle string   // KindPartTitle only
}

// NewChapterItem wraps a chapter.
func NewChapterItem(c *Chapter) *Item { return &Item{Kind: KindChapter, Chapter: c} }

// NewSeparator returns a separator item.
func NewSeparator() *Item { return &Item{Kind: KindSeparator} }

// NewPartTitle returns a part title item.
func NewPartTitle(title string) *Item { return &Item{Kind: KindPartTitle, PartTitle: title} }

func (it *Item) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != KindSeparator.String() {
			return fmt.Errorf("unknown book item %q", tag)
		}
		*it = Item{Kind: KindSeparator}
		return nil
	}

	var variants map[string]json.RawMessage
	if err := json.Unmarshal(data, &variants); err != nil {
		return fmt.Errorf("book item: %w", err)
	}
	if len(variants) != 1 {
		return fmt.Errorf("book item must have exactly one variant, got %d", len(variants))
	}
	for tag, body := range variants {
		switch tag {
		case KindChapter.String():
			c := &Chapter{}
			if err := json.Unmarshal(body, c); err != nil {
				return fmt.Errorf("chapter: %w", err)
			}
			*it = Item{Kind: KindChapter, Chapter: c}
		case KindPartTitle.String():
			var title string
			if err := json.Unmarshal(body, &title); err != nil {
				return fmt.Errorf("part title: %w", err)
			}
			*it = Item{Kind: KindPartTitle, PartTitle: title}
		default:
			return fmt.Errorf("unknown book item %q", tag)
		}
	}
	return nil
}

func (it *Item) MarshalJSON() ([]byte, error) {
	switch it.Kind {
	case KindChapter:
		return json.Marshal(map[string]*Chapter{KindChapter.String(): it.Chapter})
	case KindSeparator:
		return json.Marshal(KindSeparator.String())
	case KindPartTitle:
		return json.Marshal(map[string]string{KindPartTitle.String(): it.PartTitle})
	default:
		return nil, fmt.Errorf("cannot encode %s", it.Kind)
	}
}
