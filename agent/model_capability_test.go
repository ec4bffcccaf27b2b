package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/seqflow/core"
	"github.com/hupe1980/seqflow/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelCapability_Defaults(t *testing.T) {
	llm := model.NewMockModel("test-model")
	c := NewModelCapability("writer", llm)

	assert.Equal(t, "writer", c.Name())
	assert.Equal(t, "Model-backed agent writer", c.Description())
	assert.Equal(t, "You are writer, a helpful AI assistant.", c.Instruction())
}

func TestModelCapability_Invoke_Streaming(t *testing.T) {
	llm := model.NewMockModel("test-model")
	llm.AddResponse("task", "Hi!")

	c := NewModelCapability("writer", llm)

	updates, err := drainCapability(t, c, []core.Message{core.NewUserMessage("task")})
	require.NoError(t, err)
	require.Len(t, updates, 4) // one per rune + final

	assert.Equal(t, Update{Text: "H"}, updates[0])
	assert.Equal(t, Update{Text: "i"}, updates[1])
	assert.Equal(t, Update{Text: "!"}, updates[2])
	assert.Equal(t, Update{Text: "Hi!", Final: true}, updates[3])
}

func TestModelCapability_Invoke_NonStreaming(t *testing.T) {
	llm := model.NewMockModel("test-model")
	llm.AddResponse("task", "Hi!")

	c := NewModelCapability("writer", llm, func(o *ModelCapabilityOptions) {
		o.EnableStreaming = false
	})

	updates, err := drainCapability(t, c, []core.Message{core.NewUserMessage("task")})
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, Update{Text: "Hi!", Final: true}, updates[0])
}

// divergingModel streams fragments that do not add up to its final text,
// mimicking providers whose aggregated message is authoritative.
type divergingModel struct{}

func (divergingModel) Info() model.Info { return model.Info{Name: "diverging", Provider: "test"} }

func (divergingModel) Generate(ctx context.Context, req model.Request) (<-chan model.Response, <-chan error) {
	respCh := make(chan model.Response, 4)
	errCh := make(chan error, 1)
	respCh <- model.Response{Partial: true, Text: "draft "}
	respCh <- model.Response{Partial: true, Text: "text"}
	respCh <- model.Response{Text: "Polished text.", FinishReason: "stop"}
	close(respCh)
	close(errCh)
	return respCh, errCh
}

func TestModelCapability_FinalTextAuthoritative(t *testing.T) {
	c := NewModelCapability("writer", divergingModel{})

	updates, err := drainCapability(t, c, []core.Message{core.NewUserMessage("task")})
	require.NoError(t, err)
	require.Len(t, updates, 3)
	assert.Equal(t, Update{Text: "Polished text.", Final: true}, updates[2])
}

// failingModel reports an error instead of completing.
type failingModel struct{ err error }

func (m failingModel) Info() model.Info { return model.Info{Name: "failing", Provider: "test"} }

func (m failingModel) Generate(ctx context.Context, req model.Request) (<-chan model.Response, <-chan error) {
	respCh := make(chan model.Response)
	errCh := make(chan error, 1)
	errCh <- m.err
	close(respCh)
	close(errCh)
	return respCh, errCh
}

func TestModelCapability_Invoke_ModelError(t *testing.T) {
	boom := errors.New("rate limited")
	c := NewModelCapability("writer", failingModel{err: boom})

	updates, err := drainCapability(t, c, []core.Message{core.NewUserMessage("task")})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, updates)
}

// silentModel closes both channels without producing anything.
type silentModel struct{}

func (silentModel) Info() model.Info { return model.Info{Name: "silent", Provider: "test"} }

func (silentModel) Generate(ctx context.Context, req model.Request) (<-chan model.Response, <-chan error) {
	respCh := make(chan model.Response)
	errCh := make(chan error)
	close(respCh)
	close(errCh)
	return respCh, errCh
}

func TestModelCapability_Invoke_NoResponse(t *testing.T) {
	c := NewModelCapability("writer", silentModel{})

	updates, err := drainCapability(t, c, []core.Message{core.NewUserMessage("task")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "produced no response")
	assert.Empty(t, updates)
}
