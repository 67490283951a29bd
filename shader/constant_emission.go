package shader

import "github.com/cyclesgraph/compiler/graph"

// IsConstantEmission implements spec 6's is_constant_emission fast path:
// true iff the graph's Surface output is linked directly to an Emission
// node whose Color and Strength are both unlinked, in which case color is
// that node's Color value scaled by its Strength value. Any other shape
// (a closure tree, a linked Color/Strength, no Surface at all) returns
// false, sending the shader through the ordinary SVM compile path.
func IsConstantEmission(g *graph.Graph) (color [3]float32, ok bool) {
	surface := g.OutputNode().Input("Surface")
	if !surface.Linked() {
		return color, false
	}
	n := surface.Link.Node
	if n.Type.Name != "Emission" {
		return color, false
	}
	c := n.Input("Color")
	s := n.Input("Strength")
	if c.Linked() || s.Linked() {
		return color, false
	}
	strength := s.Value.Float
	rgb := c.Value.Float3
	return [3]float32{rgb[0] * strength, rgb[1] * strength, rgb[2] * strength}, true
}
