package agent

import (
	"context"

	"github.com/hupe1980/seqflow/core"
)

// Update is a single unit produced by a capability invocation. Text is set
// on every update: for partial updates it is the incremental fragment, for
// the final update it is the capability's authoritative aggregated text.
//
// The final text is not required to equal the concatenation of the
// preceding fragments; consumers must treat it as the source of truth.
type Update struct {
	Text  string
	Final bool
}

// Capability is the contract between the engine and an agent
// implementation. Given the conversation so far, Invoke asynchronously
// produces zero or more partial Updates followed by exactly one final
// Update, then closes both channels.
//
// Implementations must:
//   - respect context cancellation while producing updates
//   - close both channels when done, whether successful or not
//   - report failure on the error channel instead of a final Update
//
// The engine invokes a capability exactly once per node per run and never
// retries. Capabilities must not mutate the conversation slice they
// receive.
type Capability interface {
	// Name returns the capability's identity; it becomes the node ID in a
	// workflow graph and the Author of the messages it produces.
	Name() string

	// Description returns a human readable summary of the capability's
	// purpose.
	Description() string

	// Invoke runs the capability against the conversation.
	Invoke(ctx context.Context, conversation []core.Message) (<-chan Update, <-chan error)
}
