package preprocessor

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/book"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/config"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/pathfor"
)

func newTestPreprocessor() (*Preprocessor, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(logger), &logs
}

func chapterContents(t *testing.T, out []byte) map[string]string {
	t.Helper()
	b := &book.Book{}
	require.NoError(t, json.Unmarshal(out, b))
	contents := map[string]string{}
	require.NoError(t, b.Walk(func(c *book.Chapter) error {
		contents[c.Name] = c.Content
		return nil
	}))
	return contents
}

func TestHandle(t *testing.T) {
	in, err := os.ReadFile("testdata/input.json")
	require.NoError(t, err)

	p, logs := newTestPreprocessor()
	var out bytes.Buffer
	require.NoError(t, p.Handle(bytes.NewReader(in), &out))

	contents := chapterContents(t, out.Bytes())
	assert.Equal(t, "# Intro\n\nRead [setup](/docs/guide/setup.md#linux).\n", contents["Introduction"])
	assert.Equal(t, "# Setup\n\nBack to [intro](/docs/intro.md).\n", contents["Setup"])
	assert.Equal(t, "See /docs/guide/setup.md", contents["Appendix"])
	assert.Equal(t, "", contents["Planned"])

	assert.Contains(t, logs.String(), "run_id=")
	assert.Contains(t, logs.String(), "placeholders=3")
	assert.NotContains(t, logs.String(), "different mdBook version")
}

func TestHandleUnknownChapterWritesNothing(t *testing.T) {
	input := `[{"config": {}, "renderer": "html"}, {"sections": [
		{"Chapter": {"name": "A", "content": "[x]({{#path_for Missing}})", "path": "a.md", "sub_items": []}}
	]}]`

	p, _ := newTestPreprocessor()
	var out bytes.Buffer
	err := p.Handle(strings.NewReader(input), &out)

	require.ErrorIs(t, err, pathfor.ErrUnknownChapterName)
	assert.Zero(t, out.Len())
}

func TestHandleStrictDuplicate(t *testing.T) {
	input := `[{"config": {"preprocessor": {"chapter-path": {"strict": true}}}}, {"sections": [
		{"Chapter": {"name": "A", "content": "", "path": "a.md", "sub_items": []}},
		{"Chapter": {"name": "a", "content": "", "path": "b.md", "sub_items": []}}
	]}]`

	p, _ := newTestPreprocessor()
	var out bytes.Buffer
	err := p.Handle(strings.NewReader(input), &out)

	require.ErrorIs(t, err, pathfor.ErrDuplicateChapterName)
	assert.Zero(t, out.Len())
}

func TestHandleBadConfig(t *testing.T) {
	input := `[{"config": {"preprocessor": {"chapter-path": {"strict": "yes"}}}}, {"sections": []}]`

	p, _ := newTestPreprocessor()
	err := p.Handle(strings.NewReader(input), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preprocessor configuration")
}

func TestRunWarnsOnDuplicatesAndVersion(t *testing.T) {
	first, second := "first.md", "second.md"
	b := &book.Book{Items: []*book.Item{
		book.NewChapterItem(&book.Chapter{Name: "Dup", Path: &first, Content: "{{#path_for dup}}"}),
		book.NewPartTitle("Part"),
		book.NewChapterItem(&book.Chapter{Name: "DUP", Path: &second}),
	}}

	p, logs := newTestPreprocessor()
	out, err := p.Run(&book.Context{MDBookVersion: "0.3.0"}, b, config.Default())
	require.NoError(t, err)

	assert.Equal(t, "/second.md", b.Items[0].Chapter.Content)
	assert.Equal(t, 1, out.Result.Index.Len())
	assert.Len(t, out.Nodes, 3)
	assert.Contains(t, logs.String(), "Duplicate chapter name")
	assert.Contains(t, logs.String(), "existing_path=first.md")
	assert.Contains(t, logs.String(), "mdbook_version=0.3.0")
}

func TestResolveConfig(t *testing.T) {
	ctx := &book.Context{Config: map[string]any{
		"output": map[string]any{"html": map[string]any{"site-url": "/from-context/"}},
	}}

	cfg, err := ResolveConfig(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "/from-context/", cfg.BasePath)

	cfg, err = ResolveConfig(ctx, map[string]any{
		"output": map[string]any{"html": map[string]any{"site-url": "/from-toml/"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "/from-toml/", cfg.BasePath)

	cfg, err = ResolveConfig(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestForestMapping(t *testing.T) {
	p := "a.md"
	b := &book.Book{Items: []*book.Item{
		book.NewPartTitle("Part"),
		book.NewChapterItem(&book.Chapter{Name: "Draft", SubItems: []*book.Item{
			book.NewChapterItem(&book.Chapter{Name: "A", Path: &p}),
		}}),
		book.NewSeparator(),
	}}

	f := newForest(b)
	require.Len(t, f.nodes, 3)
	assert.Equal(t, "Part", f.nodes[0].Name)
	assert.Empty(t, f.nodes[0].Path)
	assert.Empty(t, f.nodes[1].Path)
	assert.Equal(t, "a.md", f.nodes[1].Children[0].Path)
	assert.Empty(t, f.nodes[2].Name)
	assert.Len(t, f.bindings, 2)
}
