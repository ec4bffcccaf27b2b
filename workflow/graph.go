package workflow

import "github.com/hupe1980/seqflow/agent"

// Node binds an agent capability to its identity within a graph. Identity is
// the ID; the capability reference is shared with the caller, not owned.
type Node struct {
	ID         string
	Capability agent.Capability
}

// Edge is a directed connection between two nodes. In a sequential graph
// every node has at most one outgoing and at most one incoming edge.
type Edge struct {
	From string
	To   string
}

// Graph is a simple chain of nodes: exactly one start node (no incoming
// edge), exactly one terminal node (no outgoing edge), and following edges
// from the start visits every node exactly once. Graphs are immutable after
// construction and safe for concurrent reads.
type Graph struct {
	nodes map[string]Node
	next  map[string]string
	order []string
}

// newGraph assembles a chain graph from nodes already validated by the
// builder. The order slice defines both the edge set and traversal order.
func newGraph(nodes []Node) *Graph {
	g := &Graph{
		nodes: make(map[string]Node, len(nodes)),
		next:  make(map[string]string, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}
	for i, n := range nodes {
		g.nodes[n.ID] = n
		g.order = append(g.order, n.ID)
		if i > 0 {
			g.next[nodes[i-1].ID] = n.ID
		}
	}
	return g
}

// Start returns the chain's start node. The boolean is false only for the
// zero Graph, which the builder never produces.
func (g *Graph) Start() (Node, bool) {
	if len(g.order) == 0 {
		return Node{}, false
	}
	return g.nodes[g.order[0]], true
}

// Next returns the successor of the named node, or false if the node is
// terminal or unknown.
func (g *Graph) Next(id string) (Node, bool) {
	succ, ok := g.next[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[succ], true
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns the nodes in chain order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns the directed edges in chain order. A single-node graph has
// no edges.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.order))
	for i := 1; i < len(g.order); i++ {
		edges = append(edges, Edge{From: g.order[i-1], To: g.order[i]})
	}
	return edges
}

// Len returns the number of nodes in the chain.
func (g *Graph) Len() int { return len(g.order) }
