package book

import (
	"encoding/json"
	"fmt"
)

// Chapter is an mdBook chapter. Path is nil for draft chapters.
type Chapter struct {
	Name        string
	Content     string
	Number      json.RawMessage // section number, kept as sent
	SubItems    []*Item
	Path        *string
	SourcePath  *string
	ParentNames []string

	extra map[string]json.RawMessage
}

const (
	fieldName        = "name"
	fieldContent     = "content"
	fieldNumber      = "number"
	fieldSubItems    = "sub_items"
	fieldPath        = "path"
	fieldSourcePath  = "source_path"
	fieldParentNames = "parent_names"
)

// PathString returns the chapter path, or "" for drafts.
func (c *Chapter) PathString() string {
	if c.Path == nil {
		return ""
	}
	return *c.Path
}

func (c *Chapter) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Chapter{}
	fields := []struct {
		key string
		dst any
	}{
		{fieldName, &c.Name},
		{fieldContent, &c.Content},
		{fieldSubItems, &c.SubItems},
		{fieldPath, &c.Path},
		{fieldSourcePath, &c.SourcePath},
		{fieldParentNames, &c.ParentNames},
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		delete(raw, f.key)
	}
	if v, ok := raw[fieldNumber]; ok {
		c.Number = v
		delete(raw, fieldNumber)
	}
	c.extra = raw
	return nil
}

func (c *Chapter) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.extra)+7)
	for k, v := range c.extra {
		out[k] = v
	}
	number := c.Number
	if len(number) == 0 {
		number = json.RawMessage("null")
	}
	subItems := c.SubItems
	if subItems == nil {
		subItems = []*Item{}
	}
	parents := c.ParentNames
	if parents == nil {
		parents = []string{}
	}
	out[fieldName] = c.Name
	out[fieldContent] = c.Content
	out[fieldNumber] = number
	out[fieldSubItems] = subItems
	out[fieldPath] = c.Path
	out[fieldSourcePath] = c.SourcePath
	out[fieldParentNames] = parents
	return json.Marshal(out)
}
