// Package seqflow provides a high-level façade over the workflow builder,
// the execution engine and the result aggregator, enabling sequential
// multi-agent pipelines in a few lines. Most applications interact with
// this package by:
//  1. Creating a Workflow via New() from an ordered list of capabilities
//  2. Consuming the event stream via Run (streaming) or RunToText (final
//     text only)
//
// The façade delegates orchestration to engine.Engine while keeping setup
// and usage ergonomics concise. Defaults are safe for local development and
// testing; production callers typically supply a structured logger and a
// result timeout.
package seqflow

import (
	"context"
	"time"

	"github.com/hupe1980/seqflow/agent"
	"github.com/hupe1980/seqflow/core"
	"github.com/hupe1980/seqflow/engine"
	"github.com/hupe1980/seqflow/logging"
	"github.com/hupe1980/seqflow/workflow"
)

// Options configures the Workflow instance.
type Options struct {
	// EventBufferSize sets the channel buffer size for emitted events.
	EventBufferSize int

	// ResultTimeout bounds how long RunToText waits for the final workflow
	// result. Zero means no bound. Expiry surfaces a *core.TimeoutError;
	// the underlying run is not interrupted and should be cancelled via
	// the caller's context.
	ResultTimeout time.Duration

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Workflow is an executable sequential chain of agent capabilities. The
// underlying graph is built once and read-only, so a Workflow is safe for
// concurrent runs as long as its capabilities are stateless.
type Workflow struct {
	graph  *workflow.Graph
	engine *engine.Engine
	opts   Options
}

// New builds a Workflow chaining the capabilities in the given order.
//
// It returns core.ErrEmptyWorkflow for an empty list and a
// *core.DuplicateNodeError when two capabilities share a name.
func New(capabilities []agent.Capability, optFns ...func(o *Options)) (*Workflow, error) {
	opts := Options{
		EventBufferSize: 100,
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	graph, err := workflow.NewSequentialBuilder().Participants(capabilities...).Build()
	if err != nil {
		return nil, err
	}

	eng := engine.New(graph, func(o *engine.Options) {
		o.EventBufferSize = opts.EventBufferSize
		o.Logger = opts.Logger
	})

	return &Workflow{graph: graph, engine: eng, opts: opts}, nil
}

// Graph exposes the underlying chain graph.
func (w *Workflow) Graph() *workflow.Graph { return w.graph }

// Run starts an asynchronous run for the given task returning the run
// identifier plus event & error channels. See engine.Engine.Run for the
// stream contract.
func (w *Workflow) Run(ctx context.Context, task string) (string, <-chan core.Event, <-chan error) {
	return w.engine.Run(ctx, task)
}

// RunToText is a synchronous helper that drains the run's event stream and
// returns the text of the last assistant message in the workflow output.
//
// A node failure is returned as a *core.NodeExecutionError. A stream that
// ends without a workflow output yields core.ErrNoOutput, so an empty final
// text is never conflated with a missing one. When ResultTimeout is set and
// expires first, a *core.TimeoutError is returned instead.
func (w *Workflow) RunToText(ctx context.Context, task string) (string, error) {
	_, events, errCh := w.engine.Run(ctx, task)

	var timeout <-chan time.Time
	if w.opts.ResultTimeout > 0 {
		timer := time.NewTimer(w.opts.ResultTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	agg := engine.NewAggregator()
	var runErr error

	for events != nil || errCh != nil {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timeout:
			return "", &core.TimeoutError{Timeout: w.opts.ResultTimeout}
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			agg.Observe(ev)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				runErr = err
			}
		}
	}

	if runErr != nil {
		return "", runErr
	}

	text, ok := agg.FinalText()
	if !ok {
		return "", core.ErrNoOutput
	}

	return text, nil
}
