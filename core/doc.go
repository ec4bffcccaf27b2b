// Package core defines the shared vocabulary of the seqflow framework:
// conversation messages, the closed set of workflow events emitted during a
// run, and the error taxonomy surfaced by graph construction and execution.
// Higher level packages (workflow, agent, engine) depend on core; core
// depends on nothing above it.
package core
