package logfields

import (
	"log/slog"
	"testing"
	"time"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "rid", RunID("rid")},
		{"Chapter", KeyChapter, "Intro", Chapter("Intro")},
		{"Path", KeyPath, "intro.md", Path("intro.md")},
		{"ExistingPath", KeyExistingPath, "old.md", ExistingPath("old.md")},
		{"Name", KeyName, "n", Name("n")},
		{"Reference", KeyReference, "Setup#install", Reference("Setup#install")},
		{"Renderer", KeyRenderer, "html", Renderer("html")},
		{"BasePath", KeyBasePath, "/docs/", BasePath("/docs/")},
		{"MDBookVersion", KeyMDBookVersion, "0.4.40", MDBookVersion("0.4.40")},
		{"File", KeyFile, "book.json", File("book.json")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric, bool & float helpers.
func TestNumericHelpers(t *testing.T) {
	if v := Chapters(5); v.Key != KeyChapters {
		t.Fatalf("Chapters key mismatch: %s", v.Key)
	}
	if v := Placeholders(2); v.Key != KeyPlaceholders {
		t.Fatalf("Placeholders key mismatch: %s", v.Key)
	}
	if v := Strict(true); v.Key != KeyStrict || !v.Value.Bool() {
		t.Fatalf("Strict mismatch: %v", v)
	}
	if v := DurationMS(12.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
	if v := Since(time.Now()); v.Key != KeyDurationMS || v.Value.Float64() < 0 {
		t.Fatalf("Since mismatch: %v", v)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errTest{})
	if attr.Value.String() != "err-test" {
		t.Fatalf("Expected 'err-test', got %s", attr.Value.String())
	}
}

type errTest struct{}

func (e errTest) Error() string { return "err-test" }
