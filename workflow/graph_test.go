package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_Traversal(t *testing.T) {
	graph, err := NewSequentialBuilder().Participants(
		NewMockCapability("a"),
		NewMockCapability("b"),
		NewMockCapability("c"),
	).Build()
	assert.NoError(t, err)

	// Following edges from the start visits every node exactly once.
	var visited []string
	node, ok := graph.Start()
	for ok {
		visited = append(visited, node.ID)
		node, ok = graph.Next(node.ID)
	}

	assert.Equal(t, []string{"a", "b", "c"}, visited)
}

func TestGraph_Node(t *testing.T) {
	graph, err := NewSequentialBuilder().Participants(NewMockCapability("a")).Build()
	assert.NoError(t, err)

	node, ok := graph.Node("a")
	assert.True(t, ok)
	assert.Equal(t, "a", node.ID)

	_, ok = graph.Node("missing")
	assert.False(t, ok)
}

func TestGraph_Next_UnknownNode(t *testing.T) {
	graph, err := NewSequentialBuilder().Participants(NewMockCapability("a")).Build()
	assert.NoError(t, err)

	_, ok := graph.Next("missing")
	assert.False(t, ok)
}
