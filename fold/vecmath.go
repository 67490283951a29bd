package fold

// foldVectorMath implements the VectorMath node-level fold rules of spec
// 4.C: Add/Sub identities with the zero vector (folding the Vector
// output), and Dot/Cross against a zero vector folding to zero (Dot
// folds the scalar Value output, Cross the Vector output).
func foldVectorMath(f *Folder) bool {
	n := f.Node
	op := VectorMathOp(n.Input("Type").Value.Int)
	v1 := n.Input("Vector1")
	v2 := n.Input("Vector2")
	vecOut := n.Output("Vector")
	valOut := n.Output("Value")

	switch op {
	case VecMathAdd:
		if f.IsZero(v2) {
			return bypassOrFoldOut(f, vecOut, v1)
		}
		if f.IsZero(v1) {
			return bypassOrFoldOut(f, vecOut, v2)
		}
	case VecMathSubtract:
		if f.IsZero(v2) {
			return bypassOrFoldOut(f, vecOut, v1)
		}
	case VecMathDot:
		if f.IsZero(v1) || f.IsZero(v2) {
			f.MakeZeroOut(valOut)
			return true
		}
	case VecMathCross:
		if f.IsZero(v1) || f.IsZero(v2) {
			f.MakeZeroOut(vecOut)
			return true
		}
	}
	return false
}
