// Package workflow builds and represents the execution topology of a run: an
// ordered chain of agent capabilities expressed as nodes connected by
// directed edges. The graph is constructed once via SequentialBuilder,
// validated at build time, and read-only afterwards so it can be shared
// across concurrent runs.
package workflow
