package workflow

import (
	"github.com/hupe1980/seqflow/agent"
	"github.com/hupe1980/seqflow/core"
)

// SequentialBuilder assembles a chain graph from an ordered list of agent
// capabilities. The first participant becomes the start node, the last the
// terminal node, and each participant is connected to its successor in the
// given order.
//
// The builder is pure with respect to its inputs: capabilities are
// referenced, never invoked or mutated, and a failed Build returns no
// partial graph.
type SequentialBuilder struct {
	participants []agent.Capability
}

// NewSequentialBuilder creates an empty builder.
func NewSequentialBuilder() *SequentialBuilder {
	return &SequentialBuilder{}
}

// Participants appends capabilities to the chain in execution order and
// returns the builder for chaining.
func (b *SequentialBuilder) Participants(capabilities ...agent.Capability) *SequentialBuilder {
	b.participants = append(b.participants, capabilities...)
	return b
}

// Build validates the participant list and produces the chain graph.
//
// It returns core.ErrEmptyWorkflow for an empty list and a
// *core.DuplicateNodeError if two participants share a name. A single
// participant yields a legal one-node graph with no edges.
func (b *SequentialBuilder) Build() (*Graph, error) {
	if len(b.participants) == 0 {
		return nil, core.ErrEmptyWorkflow
	}

	seen := make(map[string]struct{}, len(b.participants))
	nodes := make([]Node, 0, len(b.participants))

	for _, capability := range b.participants {
		id := capability.Name()
		if _, dup := seen[id]; dup {
			return nil, &core.DuplicateNodeError{NodeID: id}
		}
		seen[id] = struct{}{}
		nodes = append(nodes, Node{ID: id, Capability: capability})
	}

	return newGraph(nodes), nil
}
