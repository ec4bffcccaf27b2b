// Package agent defines the Capability contract consumed by the execution
// engine — an opaque unit that turns a conversation into a stream of
// incremental text updates — plus two implementations: ModelCapability,
// backed by a language model, and ScriptedCapability, a deterministic
// in-memory capability for tests and offline demos.
package agent
