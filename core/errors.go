package core

import (
	"fmt"
	"time"
)

var (
	// ErrEmptyWorkflow is returned when a graph is built from an empty
	// capability list.
	ErrEmptyWorkflow = fmt.Errorf("workflow requires at least one capability")

	// ErrNoOutput is returned when a run's event stream ended without ever
	// delivering a WorkflowOutput. It distinguishes "no output produced"
	// from a legitimately empty final text.
	ErrNoOutput = fmt.Errorf("workflow produced no output")
)

// DuplicateNodeError reports that two capabilities handed to the graph
// builder share the same identity. No partial graph is returned alongside
// this error.
type DuplicateNodeError struct {
	NodeID string
}

// Error implements the error interface.
func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node id %q", e.NodeID)
}

// NodeExecutionError reports that a node's capability failed mid-invocation.
// The run's event stream terminates without a WorkflowOutput; events already
// delivered before the failure remain valid.
type NodeExecutionError struct {
	NodeID string
	Cause  error
}

// Error implements the error interface.
func (e *NodeExecutionError) Error() string {
	return fmt.Sprintf("node %q execution failed: %v", e.NodeID, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *NodeExecutionError) Unwrap() error { return e.Cause }

// TimeoutError reports that a bounded wait for the final workflow result
// expired. It is distinct from NodeExecutionError: the run itself may still
// be in flight when the waiter gives up.
type TimeoutError struct {
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("workflow result not available within %s", e.Timeout)
}
