package pathfor

import "strings"

const (
	// Marker opens a placeholder. The chapter reference follows it directly.
	Marker = "{{#path_for "
	// Close ends a placeholder. It must appear on the same line as the marker.
	Close = "}}"
)

// Placeholder is one occurrence of Marker REFERENCE Close in a content body.
// Content[Start:End] is the full placeholder text.
type Placeholder struct {
	Start     int
	End       int
	Reference string // text between Marker and Close, untrimmed
	Name      string
	Anchor    string
	HasAnchor bool
}

// Scan returns every non-overlapping placeholder in content from left to right.
//
// The reference runs from the end of the marker to the first Close on the same line and
// holds at least one byte. A marker that does not close is ordinary text, and scanning
// resumes one byte after it.
func Scan(content string) []Placeholder {
	var out []Placeholder
	pos := 0
	for pos < len(content) {
		k := strings.Index(content[pos:], Marker)
		if k < 0 {
			break
		}
		start := pos + k
		refStart := start + len(Marker)
		refEnd, ok := closeOf(content, refStart)
		if !ok {
			pos = start + 1
			continue
		}
		ph := Placeholder{
			Start:     start,
			End:       refEnd + len(Close),
			Reference: content[refStart:refEnd],
		}
		ph.Name, ph.Anchor, ph.HasAnchor = ParseReference(ph.Reference)
		out = append(out, ph)
		pos = ph.End
	}
	return out
}

// closeOf finds the Close that terminates a reference starting at refStart and returns
// the reference end offset.
func closeOf(content string, refStart int) (int, bool) {
	line := content[refStart:]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	// at least one reference byte before the delimiter
	if len(line) < 1+len(Close) {
		return 0, false
	}
	k := strings.Index(line[1:], Close)
	if k < 0 {
		return 0, false
	}
	return refStart + 1 + k, true
}

// ParseReference splits NAME[#ANCHOR] on the first '#'. Surrounding blanks are dropped and
// anything after the first '#' is the anchor, further '#' included.
func ParseReference(ref string) (name, anchor string, hasAnchor bool) {
	ref = strings.Trim(ref, " \t")
	name, anchor, hasAnchor = strings.Cut(ref, "#")
	return name, anchor, hasAnchor
}
