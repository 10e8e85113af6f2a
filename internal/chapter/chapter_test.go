package chapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest() []*Node {
	return []*Node{
		{Name: "Intro", Path: "intro.md"},
		{Name: "Part I", Children: []*Node{
			{Name: "Setup", Path: "part1/setup.md", Children: []*Node{
				{Name: "Linux", Path: "part1/linux.md"},
			}},
			{Name: "Usage", Path: "part1/usage.md"},
		}},
		{},
		{Name: "Appendix", Path: "appendix.md"},
	}
}

func TestWalkPreOrder(t *testing.T) {
	var names []string
	err := Walk(sampleForest(), func(n *Node) error {
		names = append(names, n.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro", "Part I", "Setup", "Linux", "Usage", "", "Appendix"}, names)
}

func TestWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	visited := 0
	err := Walk(sampleForest(), func(n *Node) error {
		visited++
		if n.Name == "Setup" {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestWalkSkipsNil(t *testing.T) {
	assert.Equal(t, 1, Count([]*Node{nil, {Name: "Only"}}))
}

func TestIndexable(t *testing.T) {
	assert.True(t, (&Node{Name: "A", Path: "a.md"}).Indexable())
	assert.False(t, (&Node{Name: "Part"}).Indexable())
	assert.False(t, (&Node{Path: "a.md"}).Indexable())
	assert.Equal(t, 7, Count(sampleForest()))
}
