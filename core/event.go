package core

import "github.com/google/uuid"

// Event is a closed union of the values emitted on a run's event stream.
// Concrete event types implement the unexported isEvent marker so the set
// cannot grow outside this package and consumers can switch exhaustively.
//
// Events are ephemeral: they are delivered once, in emission order, and are
// not persisted beyond the run that produced them.
type Event interface{ isEvent() }

// PartialUpdate carries one incremental output fragment produced by the
// node identified by NodeID. Fragments for a node arrive in production
// order and always precede the node's NodeOutput.
type PartialUpdate struct {
	NodeID   string `json:"node_id"`
	Fragment string `json:"fragment"`
}

// isEvent implements the Event interface for PartialUpdate.
func (PartialUpdate) isEvent() {}

// NodeOutput carries the completed assistant message of a node. It is
// emitted strictly after all of the node's PartialUpdates and strictly
// before the successor node produces any event.
type NodeOutput struct {
	NodeID  string  `json:"node_id"`
	Message Message `json:"message"`
}

// isEvent implements the Event interface for NodeOutput.
func (NodeOutput) isEvent() {}

// WorkflowOutput carries the full conversation of a successful run. It is
// the terminal event: exactly one is emitted per successful run and no
// event follows it. A failed run never emits a WorkflowOutput.
type WorkflowOutput struct {
	Messages []Message `json:"messages"`
}

// isEvent implements the Event interface for WorkflowOutput.
func (WorkflowOutput) isEvent() {}

// NewID generates a unique identifier used to correlate runs in logs.
func NewID() string { return uuid.NewString() }
