// Package fold implements the per-node constant-folding contract of spec
// 4.C. It is grounded on the teacher's resolver-time constant evaluation
// (gapil/resolver/inference.go dispatches per declared type to fold a
// literal into a typed semantic value) and its dead-code elimination
// (gapil/resolver/remove_dead_code.go rewrites a subtree in place once a
// condition is known, exactly the bypass/discard shape used here).
package fold

import (
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// Folder is the per-node facility threaded into a node's fold rule at
// fold-pass time (spec 4.C).
type Folder struct {
	G    *graph.Graph
	Node *graph.Node
}

// AllInputsConstant is true iff no input of the current node has a link.
func (f *Folder) AllInputsConstant() bool {
	for _, in := range f.Node.Inputs {
		if in.Linked() {
			return false
		}
	}
	return true
}

func clampChannel(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MakeConstantOut replaces out: every consumer input's default value is
// set to value and the output is disconnected. Most node types have a
// single output and use MakeConstant instead; VectorMath-shaped nodes
// (two outputs sharing one set of inputs) fold each output independently
// through this form.
func (f *Folder) MakeConstantOut(out *graph.Output, value registry.Value) {
	f.MakeConstantClampOut(out, value, false)
}

// MakeConstantClampOut is MakeConstantOut with an optional saturate-to-[0,1]
// per scalar channel.
func (f *Folder) MakeConstantClampOut(out *graph.Output, value registry.Value, clamp bool) {
	if clamp {
		value.Float = clampChannel(value.Float)
		for i := range value.Float3 {
			value.Float3[i] = clampChannel(value.Float3[i])
		}
	}
	for _, in := range out.Consumers {
		in.Value = value
		in.Link = nil
	}
	out.Consumers = nil
}

// MakeConstant is MakeConstantOut against the node's sole output.
func (f *Folder) MakeConstant(value registry.Value) {
	f.MakeConstantOut(f.Node.SoleOutput(), value)
}

// MakeConstantClamp is MakeConstant with clamping.
func (f *Folder) MakeConstantClamp(value registry.Value, clamp bool) {
	f.MakeConstantClampOut(f.Node.SoleOutput(), value, clamp)
}

// MakeZeroOut folds out to the type-appropriate zero constant. Closure
// outputs must use DiscardOut instead; calling MakeZeroOut on one panics
// (spec 4.C: "closure outputs assert").
func (f *Folder) MakeZeroOut(out *graph.Output) {
	if out.Kind() == registry.Closure {
		panic("fold: MakeZero called on a closure output")
	}
	f.MakeConstantOut(out, registry.Value{})
}

// MakeZero is MakeZeroOut against the node's sole output.
func (f *Folder) MakeZero() { f.MakeZeroOut(f.Node.SoleOutput()) }

// MakeOneOut folds out to the type-appropriate multiplicative identity.
func (f *Folder) MakeOneOut(out *graph.Output) {
	switch k := out.Kind(); {
	case k == registry.Closure:
		panic("fold: MakeOne called on a closure output")
	case k.IsFloat3():
		f.MakeConstantOut(out, registry.Float3Value(1, 1, 1))
	default:
		f.MakeConstantOut(out, registry.FloatValue(1))
	}
}

// MakeOne is MakeOneOut against the node's sole output.
func (f *Folder) MakeOne() { f.MakeOneOut(f.Node.SoleOutput()) }

// BypassOut redirects out's consumers to newOutput, then disconnects out.
// Used for identity elimination.
func (f *Folder) BypassOut(out, newOutput *graph.Output) {
	f.G.RelinkOutput(out, newOutput)
}

// Bypass is BypassOut against the node's sole output.
func (f *Folder) Bypass(newOutput *graph.Output) {
	f.BypassOut(f.Node.SoleOutput(), newOutput)
}

// DiscardOut disconnects out to indicate "nothing here"; valid for
// closure outputs only.
func (f *Folder) DiscardOut(out *graph.Output) {
	f.G.DisconnectOutput(out)
}

// Discard is DiscardOut against the node's sole output.
func (f *Folder) Discard() { f.DiscardOut(f.Node.SoleOutput()) }

// BypassOrDiscard bypasses the node's sole output to the given input's
// link if it has one, else discards.
func (f *Folder) BypassOrDiscard(in *graph.Input) {
	if in.Linked() {
		f.Bypass(in.Link)
	} else {
		f.Discard()
	}
}

// TryBypassOrMakeConstant succeeds when in's type matches the current
// (sole) output's type and either: in is unlinked (folds to in's
// default), or in is linked and clamp is false (bypasses to the link).
// Returns false otherwise, leaving the graph untouched.
func (f *Folder) TryBypassOrMakeConstant(in *graph.Input, clamp bool) bool {
	out := f.Node.SoleOutput()
	if in.Kind() != out.Kind() {
		return false
	}
	if !in.Linked() {
		f.MakeConstantClamp(in.Value, clamp)
		return true
	}
	if !clamp {
		f.Bypass(in.Link)
		return true
	}
	return false
}

// IsZero is true iff in is unlinked and its default equals the type's zero
// value in every relevant channel.
func (f *Folder) IsZero(in *graph.Input) bool {
	return !in.Linked() && in.Value.IsZero(in.Kind())
}

// IsOne is true iff in is unlinked and its default equals the type's
// multiplicative identity in every relevant channel.
func (f *Folder) IsOne(in *graph.Input) bool {
	return !in.Linked() && in.Value.IsOne(in.Kind())
}
