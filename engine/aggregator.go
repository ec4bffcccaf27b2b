package engine

import "github.com/hupe1980/seqflow/core"

// Aggregator is a pure observer of one run's event stream. It tracks the
// last WorkflowOutput seen — replacing any prior one, so a future
// multi-output topology stays compatible — and resolves the final text as
// the last assistant-authored message within it.
type Aggregator struct {
	output *core.WorkflowOutput
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Observe records the event if it is a WorkflowOutput; all other event
// kinds are ignored. Observe never influences the run that produced the
// event.
func (a *Aggregator) Observe(ev core.Event) {
	if out, ok := ev.(core.WorkflowOutput); ok {
		a.output = &out
	}
}

// Output returns the last observed WorkflowOutput.
func (a *Aggregator) Output() (core.WorkflowOutput, bool) {
	if a.output == nil {
		return core.WorkflowOutput{}, false
	}
	return *a.output, true
}

// FinalText returns the text of the last assistant-authored message in the
// last observed WorkflowOutput. The boolean is false when no WorkflowOutput
// arrived or it contained no assistant message, so callers can distinguish
// "no output produced" from a legitimately empty final text.
func (a *Aggregator) FinalText() (string, bool) {
	if a.output == nil {
		return "", false
	}
	msg, ok := core.LastAssistantMessage(a.output.Messages)
	if !ok {
		return "", false
	}
	return msg.Text, true
}

// Collect drains an event stream into the aggregator and returns the final
// text. It is a convenience for callers that do not need to inspect
// individual events; the stream must belong to a single run.
func Collect(events <-chan core.Event) (string, bool) {
	agg := NewAggregator()
	for ev := range events {
		agg.Observe(ev)
	}
	return agg.FinalText()
}
