package fold

import "github.com/cyclesgraph/compiler/registry"

// foldConvert implements the auto-inserted Convert node's fold rule (spec
// 4.C "Convert"). Proxy (same-type) Converts never reach here: they are
// removed by the optimizer's proxy-removal pass (spec 4.D step 1) before
// the fold pass runs, and graph.Connect never inserts one anyway since
// same-kind connections link directly.
func foldConvert(f *Folder) bool {
	n := f.Node
	in := n.SoleInput()
	out := n.SoleOutput()

	// Chained A->B->A: if this Convert's producer is itself an
	// auto-inserted Convert converting back from out's kind, the pair
	// cancels and this node bypasses straight to the inner link (or its
	// constant default).
	if in.Linked() {
		producer := in.Link.Node
		if producer.Special == registry.SpecialAutoconvert && producer.SoleInput().Kind() == out.Kind() {
			inner := producer.SoleInput()
			return bypassOrFoldOut(f, out, inner)
		}
		return false
	}

	// Constant input: convert its default value across kinds directly.
	value := convertValue(in.Value, in.Kind(), out.Kind())
	f.MakeConstantOut(out, value)
	return true
}

// convertValue converts a constant value between socket kinds: float3-like
// kinds broadcast a scalar to all channels or reduce to a scalar via
// registry.ScalarFromFloat3 depending on direction; same-width float3
// conversions (Color<->Vector<->Point<->Normal) pass the channels through
// unchanged.
func convertValue(v registry.Value, from, to registry.SocketKind) registry.Value {
	switch {
	case from.IsFloat3() && to.IsFloat3():
		return registry.Value{Float3: v.Float3}
	case from.IsFloat3() && !to.IsFloat3():
		return registry.FloatValue(registry.ScalarFromFloat3(from, v.Float3))
	case !from.IsFloat3() && to.IsFloat3():
		return registry.Float3Value(v.Float, v.Float, v.Float)
	default:
		return registry.FloatValue(v.Float)
	}
}
