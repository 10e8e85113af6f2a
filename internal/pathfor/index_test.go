package pathfor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/chapter"
	ferrors "git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
)

func book() []*chapter.Node {
	return []*chapter.Node{
		{Name: "Introduction", Path: "intro.md"},
		{Name: "User Guide", Children: []*chapter.Node{
			{Name: "Installation", Path: "guide/install.md", Children: []*chapter.Node{
				{Name: "Linux", Path: "guide/install/linux.md"},
			}},
			{Name: "Draft chapter"},
		}},
		{},
		{Name: "Whatever", Path: "foo/whatever.md"},
	}
}

func TestBuildIndex_UniqueNames(t *testing.T) {
	for _, strict := range []bool{false, true} {
		idx, err := BuildIndex(book(), strict)
		require.NoError(t, err)

		assert.Equal(t, 4, idx.Len())
		for name, want := range map[string]string{
			"Introduction": "intro.md",
			"Installation": "guide/install.md",
			"Linux":        "guide/install/linux.md",
			"Whatever":     "foo/whatever.md",
		} {
			got, ok := idx.Lookup(name)
			require.True(t, ok, name)
			assert.Equal(t, want, got)
		}
		assert.Empty(t, idx.Duplicates())
	}
}

func TestBuildIndex_StructuralNodesSkipped(t *testing.T) {
	idx, err := BuildIndex(book(), false)
	require.NoError(t, err)

	_, ok := idx.Lookup("User Guide")
	assert.False(t, ok, "part title without path must not be indexed")
	_, ok = idx.Lookup("Draft chapter")
	assert.False(t, ok, "draft without path must not be indexed")
	_, ok = idx.Lookup("Linux")
	assert.True(t, ok, "descendants of structural nodes are indexed")
}

func TestBuildIndex_CaseInsensitive(t *testing.T) {
	idx, err := BuildIndex(book(), false)
	require.NoError(t, err)

	for _, name := range []string{"whatever", "WHATEVER", "wHaTeVeR"} {
		got, ok := idx.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "foo/whatever.md", got)
	}
}

func TestBuildIndex_DuplicateLastWins(t *testing.T) {
	nodes := []*chapter.Node{
		{Name: "Setup", Path: "first/setup.md"},
		{Name: "Part", Children: []*chapter.Node{
			{Name: "SETUP", Path: "second/setup.md"},
		}},
		{Name: "setup", Path: "third/setup.md"},
	}

	idx, err := BuildIndex(nodes, false)
	require.NoError(t, err)

	got, ok := idx.Lookup("Setup")
	require.True(t, ok)
	assert.Equal(t, "third/setup.md", got)
	assert.Equal(t, []Duplicate{
		{Name: "SETUP", ExistingPath: "first/setup.md", Path: "second/setup.md"},
		{Name: "setup", ExistingPath: "second/setup.md", Path: "third/setup.md"},
	}, idx.Duplicates())
	assert.Equal(t, []Entry{{Key: "setup", Name: "setup", Path: "third/setup.md"}}, idx.Entries())
}

func TestBuildIndex_DuplicateStrict(t *testing.T) {
	nodes := []*chapter.Node{
		{Name: "Setup", Path: "first/setup.md"},
		{Name: "setup", Path: "second/setup.md"},
		{Name: "Later", Path: "later.md"},
	}

	idx, err := BuildIndex(nodes, true)
	require.Error(t, err)
	assert.Nil(t, idx)
	require.ErrorIs(t, err, ErrDuplicateChapterName)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryChapter))

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	name, _ := classified.Context().GetString(CtxName)
	assert.Equal(t, "setup", name)
	existing, _ := classified.Context().GetString(CtxExistingPath)
	assert.Equal(t, "first/setup.md", existing)
}

func TestBuildIndex_PathIsNotFolded(t *testing.T) {
	idx, err := BuildIndex([]*chapter.Node{{Name: "API", Path: "Reference/API.md"}}, false)
	require.NoError(t, err)

	got, _ := idx.Lookup("api")
	assert.Equal(t, "Reference/API.md", got)
}

func TestFoldName(t *testing.T) {
	assert.Equal(t, "whatever", FoldName("WhatEver"))
	assert.Equal(t, FoldName("Whatever"), FoldName("WHATEVER"))
	assert.Equal(t, FoldName("ÉCOLE"), FoldName("école"))
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	_, ok := idx.Lookup("x")
	assert.False(t, ok)
	assert.Zero(t, idx.Len())
	assert.Nil(t, idx.Entries())
	assert.Nil(t, idx.Duplicates())
}
