package seqflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/seqflow/agent"
	"github.com/hupe1980/seqflow/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, core.ErrEmptyWorkflow)

	_, err = New([]agent.Capability{
		agent.NewScriptedCapability("writer", nil, func(o *agent.ScriptedCapabilityOptions) { o.Final = "a" }),
		agent.NewScriptedCapability("writer", nil, func(o *agent.ScriptedCapabilityOptions) { o.Final = "b" }),
	})

	var dup *core.DuplicateNodeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "writer", dup.NodeID)
}

func TestWorkflow_RunToText(t *testing.T) {
	writer := agent.NewScriptedCapability("writer", nil, func(o *agent.ScriptedCapabilityOptions) {
		o.Final = "Great tagline!"
	})
	reviewer := agent.NewScriptedCapability("reviewer", nil, func(o *agent.ScriptedCapabilityOptions) {
		o.Final = "Looks good."
	})

	wf, err := New([]agent.Capability{writer, reviewer})
	require.NoError(t, err)

	text, err := wf.RunToText(context.Background(), "Write a tagline for a budget-friendly eBike.")
	require.NoError(t, err)
	assert.Equal(t, "Looks good.", text)
}

func TestWorkflow_RunToText_SingleNode(t *testing.T) {
	writer := agent.NewScriptedCapability("writer", []string{"Ride ", "far."})

	wf, err := New([]agent.Capability{writer})
	require.NoError(t, err)

	text, err := wf.RunToText(context.Background(), "task")
	require.NoError(t, err)
	assert.Equal(t, "Ride far.", text)
}

func TestWorkflow_RunToText_NodeFailure(t *testing.T) {
	boom := errors.New("boom")
	writer := agent.NewScriptedCapability("writer", nil, func(o *agent.ScriptedCapabilityOptions) {
		o.Final = "Great tagline!"
	})
	reviewer := agent.NewFailingCapability("reviewer", nil, boom)

	wf, err := New([]agent.Capability{writer, reviewer})
	require.NoError(t, err)

	text, err := wf.RunToText(context.Background(), "task")
	assert.Empty(t, text)

	var nodeErr *core.NodeExecutionError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "reviewer", nodeErr.NodeID)
	assert.ErrorIs(t, err, boom)
}

// blockingCapability never produces output until its context is cancelled.
type blockingCapability struct{ name string }

func (c blockingCapability) Name() string        { return c.name }
func (c blockingCapability) Description() string { return "blocks forever" }

func (c blockingCapability) Invoke(ctx context.Context, _ []core.Message) (<-chan agent.Update, <-chan error) {
	updates := make(chan agent.Update)
	errCh := make(chan error, 1)
	go func() {
		defer close(updates)
		defer close(errCh)
		<-ctx.Done()
		errCh <- ctx.Err()
	}()
	return updates, errCh
}

func TestWorkflow_RunToText_Timeout(t *testing.T) {
	wf, err := New([]agent.Capability{blockingCapability{name: "stuck"}}, func(o *Options) {
		o.ResultTimeout = 20 * time.Millisecond
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	text, err := wf.RunToText(ctx, "task")
	assert.Empty(t, text)

	var timeoutErr *core.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 20*time.Millisecond, timeoutErr.Timeout)
}

func TestWorkflow_Run_Streaming(t *testing.T) {
	writer := agent.NewScriptedCapability("writer", []string{"Ride ", "far."})

	wf, err := New([]agent.Capability{writer})
	require.NoError(t, err)

	runID, events, errCh := wf.Run(context.Background(), "task")
	assert.NotEmpty(t, runID)

	var fragments []string
	var sawWorkflowOutput bool
	for events != nil || errCh != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			switch e := ev.(type) {
			case core.PartialUpdate:
				fragments = append(fragments, e.Fragment)
			case core.WorkflowOutput:
				sawWorkflowOutput = true
			}
		case runErr, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			require.NoError(t, runErr)
		}
	}

	assert.Equal(t, []string{"Ride ", "far."}, fragments)
	assert.True(t, sawWorkflowOutput)
}

func TestWorkflow_Graph(t *testing.T) {
	writer := agent.NewScriptedCapability("writer", nil, func(o *agent.ScriptedCapabilityOptions) { o.Final = "a" })
	reviewer := agent.NewScriptedCapability("reviewer", nil, func(o *agent.ScriptedCapabilityOptions) { o.Final = "b" })

	wf, err := New([]agent.Capability{writer, reviewer})
	require.NoError(t, err)

	assert.Equal(t, 2, wf.Graph().Len())
	start, ok := wf.Graph().Start()
	assert.True(t, ok)
	assert.Equal(t, "writer", start.ID)
}
