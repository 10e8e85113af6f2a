package integration

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/pathfor"
)

var updateGolden = flag.Bool("update-golden", false, "Update golden files")

const testdata = "../testdata"

// TestGolden_Books runs whole captured books through the preprocessor.
// basic covers part titles, separators, drafts and the html site-url as base.
// nested covers sub-chapters, case folding, blank trimming, multi-'#' anchors, Windows
// separators, unclosed markers and last-wins duplicates in lenient mode.
func TestGolden_Books(t *testing.T) {
	for _, name := range []string{"basic", "nested"} {
		t.Run(name, func(t *testing.T) {
			out, err := runBook(t, filepath.Join(testdata, "books", name+".json"))
			require.NoError(t, err)
			verifyChapters(t, chapterContents(t, out), filepath.Join(testdata, "golden", name+".yaml"), *updateGolden)
		})
	}
}

func TestGolden_Failures(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
		context  map[string]string
	}{
		{
			name:     "strict-duplicate",
			sentinel: pathfor.ErrDuplicateChapterName,
			context: map[string]string{
				pathfor.CtxName:         "setup",
				pathfor.CtxExistingPath: "setup.md",
				pathfor.CtxPath:         "other/setup.md",
			},
		},
		{
			name:     "unknown-name",
			sentinel: pathfor.ErrUnknownChapterName,
			context: map[string]string{
				pathfor.CtxName:      "Nowhere",
				pathfor.CtxReference: "Nowhere#top",
				pathfor.CtxChapter:   "Later",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runBook(t, filepath.Join(testdata, "books", tt.name+".json"))
			require.Error(t, err)
			assert.Empty(t, out, "nothing may be written on failure")
			assert.ErrorIs(t, err, tt.sentinel)

			classified, ok := ferrors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, ferrors.CategoryChapter, classified.Category())
			for k, want := range tt.context {
				got, _ := classified.Context().GetString(k)
				assert.Equal(t, want, got, "context %s", k)
			}
		})
	}
}
