package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/seqflow/core"
	"github.com/hupe1980/seqflow/model"
)

// ModelCapabilityOptions configures a ModelCapability instance.
//
// Use functional options with NewModelCapability to override defaults.
type ModelCapabilityOptions struct {
	// Instruction is the system prompt sent to the model on every
	// invocation.
	Instruction string
	// Description documents the capability's purpose.
	Description string
	// EnableStreaming requests per-fragment model output. When disabled the
	// capability emits no partial updates, only the final one.
	EnableStreaming bool
}

// ModelCapability is a Capability backed by a language model. Each
// invocation sends the instruction plus the running conversation to the
// model and relays the model's partial responses as Updates.
type ModelCapability struct {
	name            string
	description     string
	instruction     string
	llm             model.Model
	enableStreaming bool
}

// NewModelCapability creates a model-backed capability. By default streaming
// is enabled and the instruction is a generic assistant prompt derived from
// the name.
func NewModelCapability(name string, llm model.Model, optFns ...func(o *ModelCapabilityOptions)) *ModelCapability {
	opts := ModelCapabilityOptions{
		Instruction:     fmt.Sprintf("You are %s, a helpful AI assistant.", name),
		Description:     fmt.Sprintf("Model-backed agent %s", name),
		EnableStreaming: true,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ModelCapability{
		name:            name,
		description:     opts.Description,
		instruction:     opts.Instruction,
		llm:             llm,
		enableStreaming: opts.EnableStreaming,
	}
}

// Name implements Capability.
func (c *ModelCapability) Name() string { return c.name }

// Description implements Capability.
func (c *ModelCapability) Description() string { return c.description }

// Instruction returns the system prompt used on each invocation.
func (c *ModelCapability) Instruction() string { return c.instruction }

// Invoke implements Capability by driving one model generation. Partial
// model responses become partial Updates; the model's non-partial response
// supplies the final text. If the model never reports a final text the
// accumulated fragments are used instead.
func (c *ModelCapability) Invoke(ctx context.Context, conversation []core.Message) (<-chan Update, <-chan error) {
	updates := make(chan Update, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(updates)
		defer close(errCh)

		req := model.Request{
			Instructions: c.instruction,
			Messages:     conversation,
			Stream:       c.enableStreaming,
		}

		respCh, modelErrCh := c.llm.Generate(ctx, req)

		var accumulated strings.Builder
		var finalText string
		var sawFinal bool

		for respCh != nil || modelErrCh != nil {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case resp, ok := <-respCh:
				if !ok {
					respCh = nil
					continue
				}
				if resp.Partial {
					accumulated.WriteString(resp.Text)
					select {
					case updates <- Update{Text: resp.Text}:
					case <-ctx.Done():
						errCh <- ctx.Err()
						return
					}
					continue
				}
				finalText = resp.Text
				sawFinal = true
			case err, ok := <-modelErrCh:
				if !ok {
					modelErrCh = nil
					continue
				}
				if err != nil {
					errCh <- fmt.Errorf("model generation failed: %w", err)
					return
				}
			}
		}

		if !sawFinal || finalText == "" {
			finalText = accumulated.String()
		}
		if !sawFinal && finalText == "" {
			errCh <- fmt.Errorf("model %s produced no response", c.llm.Info().Name)
			return
		}

		select {
		case updates <- Update{Text: finalText, Final: true}:
		case <-ctx.Done():
			errCh <- ctx.Err()
		}
	}()

	return updates, errCh
}
