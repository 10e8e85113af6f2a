// Package markdown extracts link destinations from chapter content for reporting.
package markdown

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind `json:"kind" yaml:"kind"`
	Destination string   `json:"destination" yaml:"destination"`
}
