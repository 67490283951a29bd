package fold

import "github.com/cyclesgraph/compiler/graph"

// foldMix implements the Mix(color) node-level fold rules of spec 4.C.
func foldMix(f *Folder) bool {
	n := f.Node
	fac := n.Input("Fac")
	mode := MixMode(n.Input("Type").Value.Int)
	color1 := n.Input("Color1")
	color2 := n.Input("Color2")

	if !fac.Linked() {
		// Dodge/Burn/LinearLight are exposure-style operators where
		// fac=0 does not reduce to the identity f(c1,c2,0)=c1, so they
		// are excluded from the fac=0 shortcut (mirrors the original's
		// mode-gated shortcut, spec 4.C "mode not in {Light, Dodge,
		// Burn}").
		if fac.Value.Float == 0 && mode != MixDodge && mode != MixBurn && mode != MixLinearLight {
			return bypassOrFold(f, color1)
		}
		if fac.Value.Float == 1 {
			return bypassOrFold(f, color2)
		}
	}

	switch mode {
	case MixAdd:
		if f.IsZero(color2) {
			return bypassOrFold(f, color1)
		}
		if f.IsZero(color1) {
			return bypassOrFold(f, color2)
		}
	case MixSubtract:
		if f.IsZero(color2) {
			return bypassOrFold(f, color1)
		}
		if !fac.Linked() && fac.Value.Float == 1 && sameSource(color1, color2) {
			f.MakeZero()
			return true
		}
	case MixMultiply:
		if f.IsOne(color2) {
			return bypassOrFold(f, color1)
		}
		if f.IsOne(color1) {
			return bypassOrFold(f, color2)
		}
		if f.IsZero(color1) || f.IsZero(color2) {
			f.MakeZero()
			return true
		}
	case MixDivide:
		if f.IsOne(color2) {
			return bypassOrFold(f, color1)
		}
		if f.IsZero(color1) {
			f.MakeZero()
			return true
		}
	case MixBlend:
		if sameSource(color1, color2) {
			return bypassOrFold(f, color1)
		}
	}
	return false
}

// bypassOrFold bypasses the current node's sole output to in's producer if
// in is linked, else folds to in's constant default. Either way the
// current node's output ends up equivalent to in.
func bypassOrFold(f *Folder, in *graph.Input) bool {
	return bypassOrFoldOut(f, f.Node.SoleOutput(), in)
}

// bypassOrFoldOut is bypassOrFold targeting an explicit output, for
// multi-output node types such as VectorMath.
func bypassOrFoldOut(f *Folder, out *graph.Output, in *graph.Input) bool {
	if in.Linked() {
		f.BypassOut(out, in.Link)
	} else {
		f.MakeConstantOut(out, in.Value)
	}
	return true
}

// sameSource reports whether a and b are both linked to the same output,
// or both unlinked with equal default values (spec 4.C, Mix Blend rule).
func sameSource(a, b *graph.Input) bool {
	if a.Linked() && b.Linked() {
		return a.Link == b.Link
	}
	if !a.Linked() && !b.Linked() {
		return a.Value == b.Value
	}
	return false
}
