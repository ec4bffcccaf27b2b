package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/seqflow/core"
	"github.com/hupe1980/seqflow/logging"
	"github.com/hupe1980/seqflow/workflow"
)

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// EventBufferSize sets the channel buffer size for emitted events.
	// Larger buffers reduce blocking but increase memory usage.
	EventBufferSize int

	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger
}

// metricsLogger is the optional richer surface implemented by
// logging.SeqflowLogger. The engine records node and run metrics when the
// configured Logger provides it.
type metricsLogger interface {
	LogNodeExecution(node string, fragments int, dur time.Duration, success bool, err error)
	LogWorkflowRun(nodes int, dur time.Duration, success bool, err error)
}

// Engine executes a prebuilt workflow graph. The graph is read-only, so one
// Engine may serve any number of concurrent runs; each run owns its own
// conversation and its own event stream.
//
// Execution model: a single goroutine per run walks the chain serially. A
// node cannot start until its predecessor's completed message has been
// appended to the conversation. The only suspension points are the
// per-fragment waits on the capability's update channel and the
// context-guarded event sends, so a slow node never stalls stream liveness
// for fragments it has already produced.
type Engine struct {
	graph           *workflow.Graph
	eventBufferSize int
	logger          logging.Logger
}

// New creates an Engine for the given graph with optional overrides.
func New(graph *workflow.Graph, optFns ...func(o *Options)) *Engine {
	opts := Options{
		EventBufferSize: 100,
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Engine{
		graph:           graph,
		eventBufferSize: opts.EventBufferSize,
		logger:          opts.Logger,
	}
}

// Graph returns the graph this engine executes.
func (e *Engine) Graph() *workflow.Graph { return e.graph }

// Run starts an asynchronous run of the chain for the given task. It
// returns the run identifier plus the event and error channels. Both
// channels are closed when the run finishes.
//
// On success the event stream ends with exactly one WorkflowOutput carrying
// the full conversation. On failure the stream closes without a
// WorkflowOutput and a *core.NodeExecutionError is delivered on the error
// channel; events already emitted before the failure remain valid.
func (e *Engine) Run(ctx context.Context, task string) (string, <-chan core.Event, <-chan error) {
	runID := core.NewID()
	events := make(chan core.Event, e.eventBufferSize)
	errCh := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errCh)

		start := time.Now()
		var runErr error
		defer func() {
			if ml, ok := e.logger.(metricsLogger); ok {
				ml.LogWorkflowRun(e.graph.Len(), time.Since(start), runErr == nil, runErr)
			}
		}()

		conversation := []core.Message{core.NewUserMessage(task)}

		current, ok := e.graph.Start()
		for ok {
			message, err := e.runNode(ctx, runID, current, conversation, events)
			if err != nil {
				e.logger.Error("engine.run.failed", "run_id", runID, "node_id", current.ID, "error", err)
				runErr = &core.NodeExecutionError{NodeID: current.ID, Cause: err}
				errCh <- runErr
				return
			}

			conversation = append(conversation, message)

			if err := e.emit(ctx, events, core.NodeOutput{NodeID: current.ID, Message: message}); err != nil {
				runErr = &core.NodeExecutionError{NodeID: current.ID, Cause: err}
				errCh <- runErr
				return
			}

			current, ok = e.graph.Next(current.ID)
		}

		// The conversation is handed off to the caller; copy so later runs
		// or consumers cannot alias each other.
		output := make([]core.Message, len(conversation))
		copy(output, conversation)

		if err := e.emit(ctx, events, core.WorkflowOutput{Messages: output}); err != nil {
			runErr = err
			errCh <- err
			return
		}

		e.logger.Debug("engine.run.complete", "run_id", runID, "nodes", e.graph.Len(), "duration", time.Since(start))
	}()

	return runID, events, errCh
}

// runNode invokes a single node's capability, forwarding each fragment as a
// PartialUpdate, and returns the node's completed assistant message. The
// capability's own final text is authoritative; the fragment concatenation
// is used only when the final text is empty.
func (e *Engine) runNode(
	ctx context.Context,
	runID string,
	node workflow.Node,
	conversation []core.Message,
	events chan<- core.Event,
) (_ core.Message, err error) {
	e.logger.Debug("engine.node.start", "run_id", runID, "node_id", node.ID)

	started := time.Now()
	var fragments int
	defer func() {
		if ml, ok := e.logger.(metricsLogger); ok {
			ml.LogNodeExecution(node.ID, fragments, time.Since(started), err == nil, err)
		}
	}()

	updates, capErrCh := node.Capability.Invoke(ctx, conversation)

	var accumulated strings.Builder
	var finalText string
	var sawFinal bool

	for updates != nil || capErrCh != nil {
		select {
		case <-ctx.Done():
			return core.Message{}, ctx.Err()
		case update, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			if update.Final {
				finalText = update.Text
				sawFinal = true
				continue
			}
			accumulated.WriteString(update.Text)
			fragments++
			if err := e.emit(ctx, events, core.PartialUpdate{NodeID: node.ID, Fragment: update.Text}); err != nil {
				return core.Message{}, err
			}
		case capErr, ok := <-capErrCh:
			if !ok {
				capErrCh = nil
				continue
			}
			if capErr != nil {
				return core.Message{}, capErr
			}
		}
	}

	if !sawFinal && accumulated.Len() == 0 {
		return core.Message{}, fmt.Errorf("capability completed without output")
	}
	if finalText == "" {
		finalText = accumulated.String()
	}

	e.logger.Debug("engine.node.complete", "run_id", runID, "node_id", node.ID)

	return core.NewAssistantMessage(node.ID, finalText), nil
}

// emit delivers an event honoring context cancellation.
func (e *Engine) emit(ctx context.Context, events chan<- core.Event, ev core.Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case events <- ev:
		return nil
	}
}
