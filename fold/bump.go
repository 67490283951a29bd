package fold

import "github.com/cyclesgraph/compiler/registry"

// foldBump: with no height input, bump has nothing to perturb the normal
// with, so it collapses to whatever normal was already feeding it. A
// linked normal bypasses straight through; an unlinked one synthesizes a
// Geometry node and bypasses to its Normal output so the downstream shader
// still receives a surface normal (spec 4.C "Bump").
func foldBump(f *Folder) bool {
	n := f.Node
	height := n.Input("Height")
	if height.Linked() {
		return false
	}
	normal := n.Input("Normal")
	if normal.Linked() {
		f.Bypass(normal.Link)
		return true
	}
	geom := f.G.Add(f.G.Registry.Lookup("Geometry"))
	f.Bypass(geom.Output("Normal"))
	return true
}

// foldDisplacementLike folds Displacement and VectorDisplacement: when
// every input is a constant and the effective offset is zero (Height at
// Midlevel for Displacement, a zero Vector for VectorDisplacement, or
// either with Scale==0), the node contributes no displacement at all
// (spec 4.C "Displacement"/"VectorDisplacement").
func foldDisplacementLike(f *Folder) bool {
	if !f.AllInputsConstant() {
		return false
	}
	n := f.Node
	scale, hasScale := n.InputOk("Scale")
	if hasScale && scale.Value.Float == 0 {
		f.MakeZero()
		return true
	}

	if height, ok := n.InputOk("Height"); ok {
		mid := n.Input("Midlevel").Value.Float
		if height.Value.Float == mid {
			f.MakeZero()
			return true
		}
		return false
	}

	if vec, ok := n.InputOk("Vector"); ok {
		if vec.Value.IsZero(registry.Vector) {
			f.MakeZero()
			return true
		}
	}
	return false
}
