// Package graph implements the shader graph IR: nodes, directed typed
// edges, multi-output fan-out, ownership and the invariants of spec 3 and
// 4.B. It is grounded on the teacher's semantic-tree node model
// (gapil/semantic/node.go: an owned, named node with typed sockets) and its
// traversal helpers (gapil/semantic/visit.go), generalized from a static
// AST to a mutable, optimizable graph.
package graph

import (
	"fmt"

	"github.com/cyclesgraph/compiler/registry"
)

// BumpTag marks which of three slightly offset sampling positions a node
// belongs to after bump-graph duplication (spec 3, Glossary "Bump tag").
type BumpTag int

const (
	BumpNone BumpTag = iota
	BumpCenter
	BumpDX
	BumpDY
)

func (t BumpTag) String() string {
	switch t {
	case BumpCenter:
		return "center"
	case BumpDX:
		return "dx"
	case BumpDY:
		return "dy"
	default:
		return "none"
	}
}

// Invalid is the reserved stack-offset sentinel (spec 4.G).
const Invalid = -1

// Input is one declared input socket of a Node: its current link (or none),
// its current default value and its assigned stack slot.
type Input struct {
	Node        *Node
	Index       int
	Link        *Output
	Value       registry.Value
	StackOffset int
}

// Decl returns the registry declaration for this input.
func (i *Input) Decl() registry.InputDecl { return i.Node.Type.Inputs[i.Index] }

// Kind returns the socket kind of this input.
func (i *Input) Kind() registry.SocketKind { return i.Decl().Kind }

// Linked reports whether this input currently has an incoming link.
func (i *Input) Linked() bool { return i.Link != nil }

// Output is one declared output socket of a Node: the ordered list of
// inputs it currently drives, and its assigned stack slot.
type Output struct {
	Node        *Node
	Index       int
	Consumers   []*Input
	StackOffset int
}

// Decl returns the registry declaration for this output.
func (o *Output) Decl() registry.OutputDecl { return o.Node.Type.Outputs[o.Index] }

// Kind returns the socket kind of this output.
func (o *Output) Kind() registry.SocketKind { return o.Decl().Kind }

// removeConsumer deletes in from o's consumer list, if present.
func (o *Output) removeConsumer(in *Input) {
	for i, c := range o.Consumers {
		if c == in {
			o.Consumers = append(o.Consumers[:i], o.Consumers[i+1:]...)
			return
		}
	}
}

// Node is an instance of a registered NodeType, owned by exactly one Graph
// (spec 3, ShaderNode).
type Node struct {
	ID      int
	Type    *registry.NodeType
	Bump    BumpTag
	Special registry.SpecialType // defaults to Type.Special; may be overridden (e.g. auto-inserted Convert -> SpecialAutoconvert)
	Inputs  []*Input
	Outputs []*Output

	graph *Graph
}

func newNode(g *Graph, id int, t *registry.NodeType) *Node {
	n := &Node{ID: id, Type: t, Special: t.Special, graph: g}
	n.Inputs = make([]*Input, len(t.Inputs))
	for i, decl := range t.Inputs {
		n.Inputs[i] = &Input{Node: n, Index: i, Value: decl.Default, StackOffset: Invalid}
	}
	n.Outputs = make([]*Output, len(t.Outputs))
	for i := range t.Outputs {
		n.Outputs[i] = &Output{Node: n, Index: i, StackOffset: Invalid}
	}
	return n
}

// DiagName is a stable, non-identity diagnostic label ("<type>-<id>") used
// only in log output (SPEC_FULL "supplemented features").
func (n *Node) DiagName() string { return fmt.Sprintf("%s-%d", n.Type.Name, n.ID) }

// Input looks up an input socket by name. Panics if the name is not
// declared on the node's type: callers are expected to use registry-known
// names, the same contract the teacher's Owner.Member enforces for owned
// named children.
func (n *Node) Input(name string) *Input {
	idx := n.Type.InputIndex(name)
	if idx < 0 {
		panic(fmt.Sprintf("graph: node %s has no input %q", n.DiagName(), name))
	}
	return n.Inputs[idx]
}

// InputOk looks up an input socket by name, returning ok=false if absent.
func (n *Node) InputOk(name string) (*Input, bool) {
	idx := n.Type.InputIndex(name)
	if idx < 0 {
		return nil, false
	}
	return n.Inputs[idx], true
}

// Output looks up an output socket by name. Panics if undeclared.
func (n *Node) Output(name string) *Output {
	idx := n.Type.OutputIndex(name)
	if idx < 0 {
		panic(fmt.Sprintf("graph: node %s has no output %q", n.DiagName(), name))
	}
	return n.Outputs[idx]
}

// SoleInput returns the node's only input. Panics if the node does not
// declare exactly one.
func (n *Node) SoleInput() *Input {
	if len(n.Inputs) != 1 {
		panic(fmt.Sprintf("graph: node %s does not have exactly one input", n.DiagName()))
	}
	return n.Inputs[0]
}

// SoleOutput returns the node's only output. Panics if the node does not
// declare exactly one.
func (n *Node) SoleOutput() *Output {
	if len(n.Outputs) != 1 {
		panic(fmt.Sprintf("graph: node %s does not have exactly one output", n.DiagName()))
	}
	return n.Outputs[0]
}
