// Package engine drives a workflow graph to completion. It walks the chain
// strictly in order, feeds each node the accumulated conversation, relays
// every capability fragment as a PartialUpdate event, appends each node's
// completed message before advancing, and terminates the event stream with
// exactly one WorkflowOutput on success or a NodeExecutionError on failure.
package engine
