package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/book"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/preprocessor"
)

// runBook feeds a captured [context, book] file through the preprocessor and returns what
// it wrote to stdout.
func runBook(t *testing.T, inputPath string) ([]byte, error) {
	t.Helper()

	// #nosec G304 -- test utility reading fixtures from testdata
	in, err := os.Open(inputPath)
	require.NoError(t, err, "failed to open input: %s", inputPath)
	defer func() { _ = in.Close() }()

	var out bytes.Buffer
	p := preprocessor.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err = p.Handle(in, &out)
	return out.Bytes(), err
}

// chapterContents maps each chapter of an output book to its content. Chapters are keyed
// by path; drafts have none and are keyed by name.
func chapterContents(t *testing.T, out []byte) map[string]string {
	t.Helper()

	var b book.Book
	require.NoError(t, json.Unmarshal(out, &b), "output is not a book")

	got := map[string]string{}
	require.NoError(t, b.Walk(func(c *book.Chapter) error {
		key := c.PathString()
		if key == "" {
			key = c.Name
		}
		got[key] = c.Content
		return nil
	}))
	return got
}

// verifyChapters compares chapter contents against a golden YAML file.
func verifyChapters(t *testing.T, got map[string]string, goldenPath string, updateGolden bool) {
	t.Helper()

	if updateGolden {
		data, err := yaml.Marshal(got)
		require.NoError(t, err, "failed to marshal golden chapters")

		err = os.MkdirAll(filepath.Dir(goldenPath), 0o750)
		require.NoError(t, err, "failed to create golden directory")

		err = os.WriteFile(goldenPath, data, 0o600)
		require.NoError(t, err, "failed to write golden file")

		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	// #nosec G304 -- test utility reading golden file from testdata
	goldenData, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "failed to read golden file: %s", goldenPath)

	var expected map[string]string
	require.NoError(t, yaml.Unmarshal(goldenData, &expected), "failed to parse golden chapters")
	require.Equal(t, expected, got, "chapter contents differ from %s", goldenPath)
}
