package model

import (
	"context"
	"testing"

	"github.com/hupe1980/seqflow/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectResponses(t *testing.T, respCh <-chan Response, errCh <-chan error) ([]Response, error) {
	t.Helper()

	var responses []Response
	var firstErr error
	for respCh != nil || errCh != nil {
		select {
		case r, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			responses = append(responses, r)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return responses, firstErr
}

func TestMockModel_Generate(t *testing.T) {
	m := NewMockModel("test-model")
	m.AddResponse("hello", "world")

	assert.Equal(t, "test-model", m.Info().Name)
	assert.Equal(t, "mock", m.Info().Provider)

	respCh, errCh := m.Generate(context.Background(), Request{
		Messages: []core.Message{core.NewUserMessage("hello")},
	})

	responses, err := collectResponses(t, respCh, errCh)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.False(t, responses[0].Partial)
	assert.Equal(t, "world", responses[0].Text)
	assert.Equal(t, "stop", responses[0].FinishReason)
}

func TestMockModel_Generate_Streaming(t *testing.T) {
	m := NewMockModel("test-model")
	m.AddResponse("hello", "abc")

	respCh, errCh := m.Generate(context.Background(), Request{
		Messages: []core.Message{core.NewUserMessage("hello")},
		Stream:   true,
	})

	responses, err := collectResponses(t, respCh, errCh)
	require.NoError(t, err)
	require.Len(t, responses, 4)

	var streamed string
	for _, r := range responses[:3] {
		assert.True(t, r.Partial)
		streamed += r.Text
	}
	assert.Equal(t, "abc", streamed)
	assert.Equal(t, "abc", responses[3].Text)
	assert.False(t, responses[3].Partial)
}

func TestMockModel_Generate_DefaultResponse(t *testing.T) {
	m := NewMockModel("test-model")

	respCh, errCh := m.Generate(context.Background(), Request{
		Messages: []core.Message{core.NewUserMessage("anything")},
	})

	responses, err := collectResponses(t, respCh, errCh)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Mock response to: anything", responses[0].Text)
}

func TestMockModel_Generate_NoMessages(t *testing.T) {
	m := NewMockModel("test-model")

	respCh, errCh := m.Generate(context.Background(), Request{})

	responses, err := collectResponses(t, respCh, errCh)
	assert.Error(t, err)
	assert.Empty(t, responses)
}
