package svm

import "github.com/cyclesgraph/compiler/graph"

// StackSize is the fixed number of scalar stack slots available to a
// single shader pass (spec 4.G, "implementation-defined constant, e.g.
// 255").
const StackSize = 255

// stack is the per-pass virtual-machine stack-slot allocator (spec 4.G).
// It is reset between the Bump/Surface/Volume/Displacement passes of a
// single shader's compilation.
type stack struct {
	used          [StackSize]bool
	users         [StackSize]int
	compileFailed bool
}

func newStack() *stack {
	return &stack{}
}

// findOffset performs a first-fit contiguous scan for size free slots,
// marking them in-use. Returns graph.Invalid and sets compileFailed on
// overflow (spec 4.G: "compilation proceeds but emits an empty program at
// the end, failing closed").
func (s *stack) findOffset(size int) int {
	if size == 0 {
		return graph.Invalid
	}
	run := 0
	for i := 0; i < StackSize; i++ {
		if s.used[i] {
			run = 0
			continue
		}
		run++
		if run == size {
			start := i - size + 1
			for j := start; j <= i; j++ {
				s.used[j] = true
			}
			return start
		}
	}
	s.compileFailed = true
	return graph.Invalid
}

// release frees the size slots starting at offset.
func (s *stack) release(offset, size int) {
	if offset == graph.Invalid {
		return
	}
	for j := offset; j < offset+size; j++ {
		s.used[j] = false
		s.users[j] = 0
	}
}

// assignOutput allocates a slot for out if it does not already have one,
// and seeds its user count from its current consumer count (spec 4.G,
// stack_assign(output)).
func (s *stack) assignOutput(out *graph.Output) int {
	if out.StackOffset != graph.Invalid {
		return out.StackOffset
	}
	width := out.Kind().StackWidth()
	off := s.findOffset(width)
	out.StackOffset = off
	if off != graph.Invalid {
		s.users[off] = len(out.Consumers)
	}
	return off
}

// assignIfLinked allocates a slot only if out currently has at least one
// consumer, else returns Invalid without allocating (spec 4.G,
// stack_assign_if_linked).
func (s *stack) assignIfLinked(out *graph.Output) int {
	if len(out.Consumers) == 0 {
		return graph.Invalid
	}
	return s.assignOutput(out)
}

// assignInput returns in's producing output's slot if linked, else
// allocates a fresh slot for in's own default value (spec 4.G,
// stack_assign(input)). The caller is responsible for emitting the
// ValueF/ValueV load when the returned bool is true.
func (s *stack) assignInput(in *graph.Input) (offset int, needsLoad bool) {
	if in.Linked() {
		return s.assignOutput(in.Link), false
	}
	width := in.Kind().StackWidth()
	off := s.findOffset(width)
	in.StackOffset = off
	return off, true
}

// clearUsers implements stack_clear_users: for each input of n, if every
// other consumer of that input's producing output is either n itself or
// already in done, the producer's slot is released. Conservative: it
// never frees a slot while another not-yet-scheduled consumer remains.
func (s *stack) clearUsers(n *graph.Node, done map[*graph.Node]bool) {
	for _, in := range n.Inputs {
		if !in.Linked() {
			continue
		}
		out := in.Link
		free := true
		for _, c := range out.Consumers {
			if c.Node == n || done[c.Node] {
				continue
			}
			free = false
			break
		}
		if free && out.StackOffset != graph.Invalid {
			s.release(out.StackOffset, out.Kind().StackWidth())
		}
	}
}
