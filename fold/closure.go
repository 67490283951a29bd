package fold

// foldAddClosure: an unconnected closure input contributes nothing, so the
// sum degenerates to the other input (spec 4.C "AddClosure").
func foldAddClosure(f *Folder) bool {
	n := f.Node
	c1 := n.Input("Closure1")
	c2 := n.Input("Closure2")

	if !c1.Linked() && !c2.Linked() {
		f.Discard()
		return true
	}
	if !c2.Linked() {
		f.Bypass(c1.Link)
		return true
	}
	if !c1.Linked() {
		f.Bypass(c2.Link)
		return true
	}
	return false
}

// foldMixClosure: an unlinked Fac of 0 or 1 selects one branch outright,
// same shortcut as foldMix (spec 4.C "MixClosure").
func foldMixClosure(f *Folder) bool {
	n := f.Node
	fac := n.Input("Fac")
	if fac.Linked() {
		return false
	}
	c1 := n.Input("Closure1")
	c2 := n.Input("Closure2")
	switch fac.Value.Float {
	case 0:
		f.BypassOrDiscard(c1)
		return true
	case 1:
		f.BypassOrDiscard(c2)
		return true
	}
	return false
}

// foldEmissionOrBackground: a zero color or zero strength contributes no
// light, so the closure output is discarded entirely rather than folded to
// a constant closure value, since closures have no zero literal (spec 4.C
// "Emission"/"Background").
func foldEmissionOrBackground(f *Folder) bool {
	n := f.Node
	color := n.Input("Color")
	strength := n.Input("Strength")
	if f.IsZero(color) || f.IsZero(strength) {
		f.Discard()
		return true
	}
	return false
}
