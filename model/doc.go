// Package model defines the provider-neutral language model interface used
// by model-backed capabilities, normalizing streaming and non-streaming
// generation across vendors. Concrete adapters live in the openai and
// anthropic subpackages; MockModel provides deterministic responses for
// tests and examples.
package model
