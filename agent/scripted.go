package agent

import (
	"context"
	"strings"

	"github.com/hupe1980/seqflow/core"
)

// ScriptedCapabilityOptions configures a ScriptedCapability instance.
type ScriptedCapabilityOptions struct {
	// Description documents the capability's purpose.
	Description string
	// Final overrides the aggregated final text. When empty the final text
	// is the concatenation of the fragments.
	Final string
	// Err, when set, causes Invoke to fail after emitting the fragments.
	Err error
}

// ScriptedCapability is a deterministic in-memory Capability that replays a
// fixed sequence of fragments followed by a final update. It exists for
// tests and offline demos where model calls are undesirable, and mirrors
// the streaming shape of a real model-backed capability.
type ScriptedCapability struct {
	name        string
	description string
	fragments   []string
	final       string
	err         error
}

// NewScriptedCapability creates a capability that emits the given fragments
// in order, then a final update.
func NewScriptedCapability(name string, fragments []string, optFns ...func(o *ScriptedCapabilityOptions)) *ScriptedCapability {
	opts := ScriptedCapabilityOptions{
		Description: "Scripted agent " + name,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	final := opts.Final
	if final == "" {
		final = strings.Join(fragments, "")
	}

	return &ScriptedCapability{
		name:        name,
		description: opts.Description,
		fragments:   fragments,
		final:       final,
		err:         opts.Err,
	}
}

// NewFailingCapability creates a capability that emits the given fragments
// and then fails with err instead of producing a final update.
func NewFailingCapability(name string, fragments []string, err error) *ScriptedCapability {
	return NewScriptedCapability(name, fragments, func(o *ScriptedCapabilityOptions) {
		o.Err = err
	})
}

// Name implements Capability.
func (c *ScriptedCapability) Name() string { return c.name }

// Description implements Capability.
func (c *ScriptedCapability) Description() string { return c.description }

// Invoke implements Capability by replaying the scripted updates.
func (c *ScriptedCapability) Invoke(ctx context.Context, _ []core.Message) (<-chan Update, <-chan error) {
	updates := make(chan Update, len(c.fragments)+1)
	errCh := make(chan error, 1)

	go func() {
		defer close(updates)
		defer close(errCh)

		for _, fragment := range c.fragments {
			select {
			case updates <- Update{Text: fragment}:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}

		if c.err != nil {
			errCh <- c.err
			return
		}

		select {
		case updates <- Update{Text: c.final, Final: true}:
		case <-ctx.Done():
			errCh <- ctx.Err()
		}
	}()

	return updates, errCh
}
