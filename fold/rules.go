package fold

import (
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// Rule is a per-NodeType fold function. It returns true if it changed the
// graph (folded to a constant, bypassed, or discarded the node's output).
type Rule func(f *Folder) bool

// Rules maps NodeType.Name to its fold rule (spec 4.C's exhaustive list of
// node-level fold rules).
var Rules = map[string]Rule{
	"Mix":                foldMix,
	"Math":                foldMath,
	"VectorMath":          foldVectorMath,
	"Gamma":               foldGamma,
	"RGBToBW":             foldRGBToBW,
	"BrightContrast":      foldBrightContrast,
	"Invert":              foldInvert,
	"CombineXYZ":          foldCombineXYZ,
	"SeparateXYZ":         foldSeparateXYZ,
	"CombineRGB":          foldCombineRGB,
	"SeparateRGB":         foldSeparateRGB,
	"Blackbody":           foldBlackbody,
	"Value":               foldAlwaysConstant,
	"Color":               foldAlwaysConstant,
	"AddClosure":          foldAddClosure,
	"MixClosure":          foldMixClosure,
	"Emission":            foldEmissionOrBackground,
	"Background":          foldEmissionOrBackground,
	"Bump":                foldBump,
	"Displacement":        foldDisplacementLike,
	"VectorDisplacement":  foldDisplacementLike,
}

// Fold dispatches to n's registered rule, if any, and reports whether it
// changed the graph. Convert nodes are handled separately: proxy
// (same-type) Converts never fold here, they are removed by the
// optimizer's proxy-removal pass (spec 4.D step 1) before the fold pass
// ever runs.
func Fold(g *graph.Graph, n *graph.Node) bool {
	if n.Special == registry.SpecialProxy {
		return false
	}
	if n.Special == registry.SpecialAutoconvert {
		return foldConvert(&Folder{G: g, Node: n})
	}
	rule, ok := Rules[n.Type.Name]
	if !ok {
		return false
	}
	return rule(&Folder{G: g, Node: n})
}

// foldAlwaysConstant handles Value/Color: a node with no inputs, so its
// sole output is already a constant by construction. There is nothing to
// fold away — these nodes ARE the constants other rules fold into — but
// the hook exists so the scheduler can mark them done uniformly.
func foldAlwaysConstant(f *Folder) bool { return false }
