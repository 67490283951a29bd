package fold

import "github.com/cyclesgraph/compiler/registry"

// foldGamma: color=1 or gamma=0 -> 1; gamma=1 -> color.
func foldGamma(f *Folder) bool {
	n := f.Node
	color := n.Input("Color")
	gamma := n.Input("Gamma")

	if f.IsOne(color) || f.IsZero(gamma) {
		f.MakeOne()
		return true
	}
	if f.IsOne(gamma) {
		return bypassOrFold(f, color)
	}
	return false
}

// foldRGBToBW: all-constant folds to the luminance scalar.
func foldRGBToBW(f *Folder) bool {
	if !f.AllInputsConstant() {
		return false
	}
	n := f.Node
	color := n.Input("Color")
	lum := registry.ScalarFromFloat3(registry.Color, color.Value.Float3)
	f.MakeConstant(registry.FloatValue(lum))
	return true
}

// foldBrightContrast: all-constant evaluates bright/contrast directly.
// out = (color - 0.5) * (contrast + 1) + 0.5 + bright, per channel.
func foldBrightContrast(f *Folder) bool {
	if !f.AllInputsConstant() {
		return false
	}
	n := f.Node
	color := n.Input("Color").Value.Float3
	bright := n.Input("Bright").Value.Float
	contrast := n.Input("Contrast").Value.Float
	var out [3]float32
	for i, c := range color {
		out[i] = (c-0.5)*(contrast+1) + 0.5 + bright
	}
	f.MakeConstant(registry.Value{Float3: out})
	return true
}

// foldInvert: fac=0 bypasses to color; all-constant evaluates
// lerp(color, 1-color, fac).
func foldInvert(f *Folder) bool {
	n := f.Node
	fac := n.Input("Fac")
	color := n.Input("Color")

	if f.IsZero(fac) {
		return bypassOrFold(f, color)
	}
	if !f.AllInputsConstant() {
		return false
	}
	c := color.Value.Float3
	fv := fac.Value.Float
	var out [3]float32
	for i, v := range c {
		out[i] = v + fv*((1-v)-v)
	}
	f.MakeConstant(registry.Value{Float3: out})
	return true
}

// foldCombineXYZ: all-constant direct evaluation into a Vector.
func foldCombineXYZ(f *Folder) bool {
	if !f.AllInputsConstant() {
		return false
	}
	n := f.Node
	x := n.Input("X").Value.Float
	y := n.Input("Y").Value.Float
	z := n.Input("Z").Value.Float
	f.MakeConstant(registry.Float3Value(x, y, z))
	return true
}

// foldSeparateXYZ: all-constant direct evaluation into three scalars.
func foldSeparateXYZ(f *Folder) bool {
	if !f.AllInputsConstant() {
		return false
	}
	v := f.Node.Input("Vector").Value.Float3
	f.MakeConstantOut(f.Node.Output("X"), registry.FloatValue(v[0]))
	f.MakeConstantOut(f.Node.Output("Y"), registry.FloatValue(v[1]))
	f.MakeConstantOut(f.Node.Output("Z"), registry.FloatValue(v[2]))
	return true
}

// foldCombineRGB: all-constant direct evaluation into a Color.
func foldCombineRGB(f *Folder) bool {
	if !f.AllInputsConstant() {
		return false
	}
	n := f.Node
	r := n.Input("R").Value.Float
	g := n.Input("G").Value.Float
	b := n.Input("B").Value.Float
	f.MakeConstant(registry.Float3Value(r, g, b))
	return true
}

// foldSeparateRGB: all-constant direct evaluation into three scalars.
func foldSeparateRGB(f *Folder) bool {
	if !f.AllInputsConstant() {
		return false
	}
	v := f.Node.Input("Image").Value.Float3
	f.MakeConstantOut(f.Node.Output("R"), registry.FloatValue(v[0]))
	f.MakeConstantOut(f.Node.Output("G"), registry.FloatValue(v[1]))
	f.MakeConstantOut(f.Node.Output("B"), registry.FloatValue(v[2]))
	return true
}

// blackbodyTable is a coarse piecewise-linear approximation of the CIE
// blackbody locus used by foldBlackbody, sufficient for constant-folding
// a literal temperature (the full rational-polynomial fit lives in the
// kernel and is out of scope here, per spec's Non-goal on kernel BSDF/
// colorimetry math).
var blackbodyTable = []struct {
	kelvin float32
	rgb    [3]float32
}{
	{1000, [3]float32{1.000, 0.227, 0.000}},
	{1500, [3]float32{1.000, 0.369, 0.016}},
	{2000, [3]float32{1.000, 0.494, 0.083}},
	{3000, [3]float32{1.000, 0.672, 0.277}},
	{4000, [3]float32{1.000, 0.791, 0.471}},
	{6500, [3]float32{1.000, 0.946, 0.908}},
	{10000, [3]float32{0.734, 0.789, 1.000}},
	{20000, [3]float32{0.623, 0.715, 1.000}},
}

func blackbodyColor(kelvin float32) [3]float32 {
	if kelvin <= blackbodyTable[0].kelvin {
		return blackbodyTable[0].rgb
	}
	last := len(blackbodyTable) - 1
	if kelvin >= blackbodyTable[last].kelvin {
		return blackbodyTable[last].rgb
	}
	for i := 1; i <= last; i++ {
		if kelvin <= blackbodyTable[i].kelvin {
			lo, hi := blackbodyTable[i-1], blackbodyTable[i]
			t := (kelvin - lo.kelvin) / (hi.kelvin - lo.kelvin)
			var out [3]float32
			for c := range out {
				out[c] = lo.rgb[c] + t*(hi.rgb[c]-lo.rgb[c])
			}
			return out
		}
	}
	return blackbodyTable[last].rgb
}

// foldBlackbody: constant temperature folds to a constant color by linear
// interpolation between the entries of blackbodyTable; no rational fit is
// evaluated.
func foldBlackbody(f *Folder) bool {
	if !f.AllInputsConstant() {
		return false
	}
	k := f.Node.Input("Temperature").Value.Float
	rgb := blackbodyColor(k)
	f.MakeConstant(registry.Value{Float3: rgb})
	return true
}
