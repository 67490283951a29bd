package graph

import (
	"fmt"

	"github.com/cyclesgraph/compiler/registry"
)

// Graph is an ordered list of nodes, a monotonically increasing id counter
// and the two mutation latches of spec 3 (ShaderGraph): simplified and
// finalized.
type Graph struct {
	Registry *registry.Registry

	nodes     []*Node
	nextID    int
	simplified bool
	finalized  bool

	// Diagnostics accumulated by mutation methods (spec 7: local passes
	// never throw upstream, they log and keep the graph valid).
	Diagnostics []string
}

// New creates an empty Graph with a single Output node at index 0, the
// invariant spec 3 requires ("position of the Output node is index 0").
func New(r *registry.Registry) *Graph {
	g := &Graph{Registry: r}
	out := r.Lookup("Output")
	if out == nil {
		panic("graph: registry has no Output node type")
	}
	g.Add(out)
	return g
}

// OutputNode returns the graph's single Output node.
func (g *Graph) OutputNode() *Node { return g.nodes[0] }

// Nodes returns the graph's current node list. Callers must not retain it
// across a mutating call.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Simplified reports whether simplify() has completed without an
// intervening mutation.
func (g *Graph) Simplified() bool { return g.simplified }

// Finalized reports whether finalize() has completed.
func (g *Graph) Finalized() bool { return g.finalized }

// MarkSimplified is called by the optimizer once its pipeline completes.
func (g *Graph) MarkSimplified() { g.simplified = true }

// MarkFinalized is called once the finalize() pipeline completes. After
// this, Add and Connect are rejected; DisconnectInput and DisconnectOutput
// do not check it.
func (g *Graph) MarkFinalized() { g.finalized = true }

func (g *Graph) diag(format string, args ...interface{}) {
	g.Diagnostics = append(g.Diagnostics, fmt.Sprintf(format, args...))
}

// Add assigns an id and appends a new node of type t to the graph. Returns
// nil if the graph is already finalized (spec 4.B: "Fails if finalized").
func (g *Graph) Add(t *registry.NodeType) *Node {
	if g.finalized {
		g.diag("graph: Add(%s) rejected, graph is finalized", t.Name)
		return nil
	}
	n := newNode(g, g.nextID, t)
	g.nextID++
	g.nodes = append(g.nodes, n)
	g.simplified = false
	return n
}

// Remove deletes n from the node list. Callers must have already cleared
// all of n's links (disconnect every input and output) — Remove does not
// do so itself, matching the teacher's cloner/remove split where liveness
// bookkeeping is the caller's responsibility.
func (g *Graph) Remove(n *Node) {
	for i, m := range g.nodes {
		if m == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return
		}
	}
}

// ConnectResult records whether connect() matched directly, bridged through
// an Emission node, or inserted a Convert node — used by tests asserting
// end-to-end scenario 1/2 shapes.
type ConnectResult int

const (
	ConnectedDirect ConnectResult = iota
	ConnectedViaEmission
	ConnectedViaConvert
	ConnectRejected
)

// Connect links output to input, inserting automatic conversions as
// needed (spec 4.B connect). Reconnecting an already-linked input is
// rejected with a diagnostic; the earlier connection is retained.
func (g *Graph) Connect(out *Output, in *Input) ConnectResult {
	if g.finalized {
		g.diag("graph: connect rejected, graph is finalized")
		return ConnectRejected
	}
	if in.Linked() {
		g.diag("graph: input %s.%s already connected, rejecting reconnection",
			in.Node.DiagName(), in.Decl().Name)
		return ConnectRejected
	}

	fromKind, toKind := out.Kind(), in.Kind()
	switch {
	case fromKind == toKind:
		g.link(out, in)
		return ConnectedDirect

	case toKind == registry.Closure && fromKind != registry.Closure:
		em := g.Add(g.Registry.Lookup("Emission"))
		em.Input("Strength").Value = registry.FloatValue(1)
		if fromKind.IsFloat3() {
			g.link(out, em.Input("Color"))
		} else {
			g.link(out, em.Input("Strength"))
		}
		g.link(em.Output("Emission"), in)
		return ConnectedViaEmission

	case fromKind == registry.Closure && toKind != registry.Closure:
		g.diag("graph: cannot connect closure output %s to non-closure input %s.%s",
			out.Node.DiagName(), in.Node.DiagName(), in.Decl().Name)
		return ConnectRejected

	default:
		ct := g.Registry.ConvertType(fromKind, toKind)
		if ct == nil {
			g.diag("graph: no conversion from %s to %s", fromKind, toKind)
			return ConnectRejected
		}
		cv := g.Add(ct)
		cv.Special = registry.SpecialAutoconvert
		g.link(out, cv.SoleInput())
		g.link(cv.SoleOutput(), in)
		return ConnectedViaConvert
	}
}

// link records a direct edge between out and in with no conversion. Both
// sockets must already agree in type.
func (g *Graph) link(out *Output, in *Input) {
	in.Link = out
	out.Consumers = append(out.Consumers, in)
	g.simplified = false
}

// DisconnectOutput removes all downstream links from out.
func (g *Graph) DisconnectOutput(out *Output) {
	for _, in := range out.Consumers {
		in.Link = nil
	}
	out.Consumers = nil
	g.simplified = false
}

// DisconnectInput removes the single incoming link to in, if any.
func (g *Graph) DisconnectInput(in *Input) {
	if in.Link == nil {
		return
	}
	in.Link.removeConsumer(in)
	in.Link = nil
	g.simplified = false
}

// RelinkInputs moves the incoming edge (if any) from "from" to "to", and
// copies from's current default value to to's default (spec 4.B relink).
func (g *Graph) RelinkInputs(from, to *Input) {
	if from.Link != nil {
		link := from.Link
		g.DisconnectInput(from)
		link.Consumers = append(link.Consumers, to)
		to.Link = link
	}
	to.Value = from.Value
}

// RelinkOutput redirects every consumer of from to to, or disconnects them
// if to is nil (spec 4.B relink(from_output, to_output)).
func (g *Graph) RelinkOutput(from, to *Output) {
	consumers := from.Consumers
	from.Consumers = nil
	for _, in := range consumers {
		in.Link = nil
		if to != nil {
			in.Link = to
			to.Consumers = append(to.Consumers, in)
		}
	}
	g.simplified = false
}

// Bypass disconnects every input of node, then redirects from's consumers
// to to (spec 4.B relink(node, from_output, to_output)).
func (g *Graph) Bypass(node *Node, from, to *Output) {
	for _, in := range node.Inputs {
		g.DisconnectInput(in)
	}
	g.RelinkOutput(from, to)
}

// FindDependencies computes the transitive closure of nodes feeding in,
// upstream, set-based to avoid revisiting a node (spec 4.B
// find_dependencies).
func FindDependencies(in *Input) map[*Node]bool {
	set := map[*Node]bool{}
	var walk func(*Input)
	walk = func(i *Input) {
		if i.Link == nil {
			return
		}
		n := i.Link.Node
		if set[n] {
			return
		}
		set[n] = true
		for _, ni := range n.Inputs {
			walk(ni)
		}
	}
	walk(in)
	return set
}
