package graph

import "github.com/cyclesgraph/compiler/registry"

// VolumeStackSize bounds the number of simultaneously active volume
// closures a single shading point may accumulate; it is a scene-wide
// constant mirrored from the original implementation's kernel types
// (SPEC_FULL "supplemented features").
const VolumeStackSize = 4

// GetNumClosures returns an upper bound on concurrently live closures by
// summing per-closure-kind costs across every SpecialClosure node in the
// graph (spec 4.B get_num_closures). It is used to size runtime closure
// arrays; overestimating is safe, underestimating is not, so every
// unrecognized closure node type contributes the default cost of 1.
func (g *Graph) GetNumClosures() int {
	total := 0
	for _, n := range g.nodes {
		if n.Special != registry.SpecialClosure {
			continue
		}
		cost := n.Type.ClosureCost
		switch {
		case n.Type.HasVolume:
			cost = VolumeStackSize
		case cost == 0:
			cost = registry.CostDefault
		}
		total += int(cost)
	}
	return total
}
