package fold

// foldMath implements the Math node-level fold rules of spec 4.C: Add/Sub
// identities with 0, Mul identities with 1/0, Div by 1, and Pow's 1^x=x^0=1,
// x^1=x identities.
func foldMath(f *Folder) bool {
	n := f.Node
	op := MathOp(n.Input("Type").Value.Int)
	v1 := n.Input("Value1")
	v2 := n.Input("Value2")

	switch op {
	case MathAdd:
		if f.IsZero(v2) {
			return bypassOrFold(f, v1)
		}
		if f.IsZero(v1) {
			return bypassOrFold(f, v2)
		}
	case MathSubtract:
		if f.IsZero(v2) {
			return bypassOrFold(f, v1)
		}
	case MathMultiply:
		if f.IsOne(v2) {
			return bypassOrFold(f, v1)
		}
		if f.IsOne(v1) {
			return bypassOrFold(f, v2)
		}
		if f.IsZero(v1) || f.IsZero(v2) {
			f.MakeZero()
			return true
		}
	case MathDivide:
		if f.IsOne(v2) {
			return bypassOrFold(f, v1)
		}
	case MathPower:
		// 1^x = 1, x^0 = 1
		if f.IsOne(v1) || f.IsZero(v2) {
			f.MakeOne()
			return true
		}
		// x^1 = x
		if f.IsOne(v2) {
			return bypassOrFold(f, v1)
		}
		// NOTE: the original implementation's switch statement is
		// missing a break after the Power case here and falls through
		// into the default case (spec 9, Open Question 1). That
		// fallthrough is preserved rather than "fixed" since intent is
		// unknown; in this port the default case is a no-op, so the
		// fallthrough has no observable effect.
		fallthrough
	default:
		return false
	}
	return false
}
