package registry

// SpecialType tags a NodeType (and, by inheritance, every ShaderNode
// instance of it) with a role the optimizer and codegen special-case
// (spec 3, ShaderNode.special_type).
type SpecialType int

const (
	SpecialNone SpecialType = iota
	SpecialProxy
	SpecialAutoconvert
	SpecialGeometry
	SpecialImage
	SpecialOutput
	SpecialBump
	SpecialClosureCombine
	SpecialClosure
	SpecialOSL
)

// ClosureCombineKind distinguishes Mix from Add for ClosureCombine nodes,
// consumed by the closure-tree transformer (spec 4.F).
type ClosureCombineKind int

const (
	CombineNone ClosureCombineKind = iota
	CombineMix
	CombineAdd
)

// GlossyDistribution selects a GlossyBSDF node's microfacet model; Sharp is
// the degenerate mirror case the simplify-settings pass folds to and from
// depending on the scene's filter_glossy setting (spec 4.D step 4b).
type GlossyDistribution int32

const (
	GlossySharp GlossyDistribution = iota
	GlossyGGX
	GlossyBeckmann
)

// ClosureCost is the per-closure-kind upper bound on concurrently live
// closures used by get_num_closures (spec 4.B). Costs taken verbatim from
// the original implementation's table (SPEC_FULL "supplemented features").
type ClosureCost int

const (
	CostDefault       ClosureCost = 1
	CostBSSRDF        ClosureCost = 3
	CostGlass         ClosureCost = 2
	CostMultiscatter  ClosureCost = 2
	CostPrincipled    ClosureCost = 8
	CostVolumeStack   ClosureCost = 0 // resolved at runtime to VolumeStackSize
	CostPrincipledHair ClosureCost = 4
)
