package fold

// MixMode enumerates the blend modes of the Mix node (SPEC_FULL
// "supplemented features": the original's NodeMix dispatches over the
// full set below, not just the handful spec.md calls out by name).
type MixMode int

const (
	MixBlend MixMode = iota
	MixAdd
	MixMultiply
	MixScreen
	MixOverlay
	MixSubtract
	MixDivide
	MixDifference
	MixDarken
	MixLighten
	MixDodge
	MixBurn
	MixHue
	MixSaturation
	MixValue
	MixColor
	MixSoftLight
	MixLinearLight
)

// MathOp enumerates the Math node's operation.
type MathOp int

const (
	MathAdd MathOp = iota
	MathSubtract
	MathMultiply
	MathDivide
	MathPower
	MathOther // placeholder for the remaining ~15 operations (log, sine, ...): no fold rule applies to them beyond all-constant evaluation, which this module does not attempt (they are not part of any spec invariant).
)

// VectorMathOp enumerates the VectorMath node's operation.
type VectorMathOp int

const (
	VecMathAdd VectorMathOp = iota
	VecMathSubtract
	VecMathDot
	VecMathCross
	VecMathOther
)
