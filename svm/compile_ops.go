package svm

import "github.com/cyclesgraph/compiler/graph"

// compileValue handles the zero-input Value/Color nodes: the output slot
// is whatever its consumers already load as a constant via loadConstant
// on each consuming input, so there is nothing to emit here beyond
// reserving the slot for callers that reference the output directly
// (e.g. a default-input producer with no other consumers yet assigned).
func compileValue(c *Compiler, n *graph.Node) {
	c.st.assignIfLinked(n.Output(n.Type.Outputs[0].Name))
}

func compileMath(c *Compiler, n *graph.Node) {
	op := n.Input("Type").Value.Int
	v1 := c.slotOf(n.Input("Value1"))
	v2 := c.slotOf(n.Input("Value2"))
	out := c.st.assignIfLinked(n.Output("Value"))
	c.emit(Instruction{
		A: int32(OpMath),
		B: encodeUchar4(byte(op), 0, 0, 0),
		C: encodeUchar4(byte(v1), byte(v2), byte(out), 0),
	})
}

func compileVectorMath(c *Compiler, n *graph.Node) {
	op := n.Input("Type").Value.Int
	v1 := c.slotOf(n.Input("Vector1"))
	v2 := c.slotOf(n.Input("Vector2"))
	outVec := c.st.assignIfLinked(n.Output("Vector"))
	outVal := c.st.assignIfLinked(n.Output("Value"))
	c.emit(Instruction{
		A: int32(OpVectorMath),
		B: encodeUchar4(byte(op), 0, 0, 0),
		C: encodeUchar4(byte(v1), byte(v2), byte(outVec), byte(outVal)),
	})
}

func compileMix(c *Compiler, n *graph.Node) {
	mode := n.Input("Type").Value.Int
	fac := c.slotOf(n.Input("Fac"))
	c1 := c.slotOf(n.Input("Color1"))
	c2 := c.slotOf(n.Input("Color2"))
	out := c.st.assignIfLinked(n.Output("Color"))
	c.emit(Instruction{
		A: int32(OpMix),
		B: encodeUchar4(byte(mode), 0, 0, 0),
		C: encodeUchar4(byte(fac), byte(c1), byte(c2), byte(out)),
	})
}

func compileGamma(c *Compiler, n *graph.Node) {
	col := c.slotOf(n.Input("Color"))
	gam := c.slotOf(n.Input("Gamma"))
	out := c.st.assignIfLinked(n.Output("Color"))
	c.emit(Instruction{A: int32(OpGamma), B: encodeUchar4(byte(col), byte(gam), byte(out), 0)})
}

func compileRGBToBW(c *Compiler, n *graph.Node) {
	col := c.slotOf(n.Input("Color"))
	out := c.st.assignIfLinked(n.Output("Val"))
	// RGBToBW reuses the Convert opcode (a float3->float projection is
	// exactly what Convert<Color,Float> already does).
	c.emit(Instruction{A: int32(OpConvert), B: encodeUchar4(byte(registryColor), byte(registryFloat), byte(col), byte(out))})
}

func compileBrightContrast(c *Compiler, n *graph.Node) {
	col := c.slotOf(n.Input("Color"))
	bright := c.slotOf(n.Input("Bright"))
	contrast := c.slotOf(n.Input("Contrast"))
	out := c.st.assignIfLinked(n.Output("Color"))
	c.emit(Instruction{A: int32(OpBrightContrast), B: encodeUchar4(byte(col), byte(bright), byte(contrast), byte(out))})
}

func compileInvert(c *Compiler, n *graph.Node) {
	fac := c.slotOf(n.Input("Fac"))
	col := c.slotOf(n.Input("Color"))
	out := c.st.assignIfLinked(n.Output("Color"))
	c.emit(Instruction{A: int32(OpInvert), B: encodeUchar4(byte(fac), byte(col), byte(out), 0)})
}

func compileCombineVector(c *Compiler, n *graph.Node) {
	var x, y, z *graph.Input
	var out *graph.Output
	if n.Type.Name == "CombineRGB" {
		x, y, z = n.Input("R"), n.Input("G"), n.Input("B")
		out = n.Output("Image")
	} else {
		x, y, z = n.Input("X"), n.Input("Y"), n.Input("Z")
		out = n.Output("Vector")
	}
	xo, yo, zo := c.slotOf(x), c.slotOf(y), c.slotOf(z)
	oo := c.st.assignIfLinked(out)
	c.emit(Instruction{A: int32(OpCombineVector), B: encodeUchar4(byte(xo), byte(yo), byte(zo), byte(oo))})
}

func compileSeparateVector(c *Compiler, n *graph.Node) {
	var in *graph.Input
	var x, y, z *graph.Output
	if n.Type.Name == "SeparateRGB" {
		in = n.Input("Image")
		x, y, z = n.Output("R"), n.Output("G"), n.Output("B")
	} else {
		in = n.Input("Vector")
		x, y, z = n.Output("X"), n.Output("Y"), n.Output("Z")
	}
	io := c.slotOf(in)
	xo, yo, zo := c.st.assignIfLinked(x), c.st.assignIfLinked(y), c.st.assignIfLinked(z)
	c.emit(Instruction{A: int32(OpSeparateVector), B: encodeUchar4(byte(io), byte(xo), byte(yo), byte(zo))})
}

func compileBlackbody(c *Compiler, n *graph.Node) {
	temp := c.slotOf(n.Input("Temperature"))
	out := c.st.assignIfLinked(n.Output("Color"))
	c.emit(Instruction{A: int32(OpBlackbody), B: encodeUchar4(byte(temp), byte(out), 0, 0)})
}

func compileGeometry(c *Compiler, n *graph.Node) {
	pos := c.st.assignIfLinked(n.Output("Position"))
	nrm := c.st.assignIfLinked(n.Output("Normal"))
	tan := c.st.assignIfLinked(n.Output("Tangent"))
	inc := c.st.assignIfLinked(n.Output("Incoming"))
	c.emit(Instruction{A: int32(OpGeometry), B: encodeUchar4(byte(pos), byte(nrm), byte(tan), byte(inc))})
}

func compileTextureCoordinate(c *Compiler, n *graph.Node) {
	gen := c.st.assignIfLinked(n.Output("Generated"))
	uv := c.st.assignIfLinked(n.Output("UV"))
	nrm := c.st.assignIfLinked(n.Output("Normal"))
	c.emit(Instruction{A: int32(OpTexCoord), B: encodeUchar4(byte(gen), byte(uv), byte(nrm), 0)})
}

// registryColor/registryFloat mirror registry.Color/registry.Float's
// ordinal values for the Convert opcode's from/to sub-bytes, kept as
// local untyped constants so this file needs no registry import beyond
// what graph already re-exports through node/input accessors.
const (
	registryFloat = 0
	registryColor = 2
)
