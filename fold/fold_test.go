package fold_test

import (
	"testing"

	"github.com/cyclesgraph/compiler/core/assert"
	"github.com/cyclesgraph/compiler/fold"
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

func newTestGraph() (*graph.Graph, *registry.Registry) {
	r := registry.NewStandardRegistry()
	return graph.New(r), r
}

func TestFoldRGBToBWConstantLuminance(t *testing.T) {
	g, r := newTestGraph()
	n := g.Add(r.Lookup("RGBToBW"))
	n.Input("Color").Value = registry.Float3Value(1, 1, 1)

	changed := fold.Fold(g, n)
	assert.For(t, "folded").That(changed).Equals(true)
	assert.For(t, "input color left unchanged").
		That(n.Input("Color").Value.Float3).Equals([3]float32{1, 1, 1})
}

func TestFoldMathAddIdentityBypasses(t *testing.T) {
	g, r := newTestGraph()
	v1 := g.Add(r.Lookup("Value"))
	m := g.Add(r.Lookup("Math"))
	m.Input("Type").Value = registry.IntValue(int32(fold.MathAdd))
	g.Connect(v1.Output("Value"), m.Input("Value1"))
	bsdf := g.Add(r.Lookup("DiffuseBSDF"))
	conv := g.Connect(m.Output("Value"), bsdf.Input("Color"))
	_ = conv
	convNode := bsdf.Input("Color").Link.Node

	changed := fold.Fold(g, m)
	assert.For(t, "folded").That(changed).Equals(true)
	assert.For(t, "bypassed to v1").That(convNode.SoleInput().Link).Equals(v1.Output("Value"))
}

func TestFoldMathPowerOneBaseFoldsToOne(t *testing.T) {
	g, r := newTestGraph()
	m := g.Add(r.Lookup("Math"))
	m.Input("Type").Value = registry.IntValue(int32(fold.MathPower))
	m.Input("Value1").Value = registry.FloatValue(1)
	m.Input("Value2").Value = registry.FloatValue(7)
	other := g.Add(r.Lookup("Math"))
	g.Connect(m.Output("Value"), other.Input("Value1"))

	changed := fold.Fold(g, m)
	assert.For(t, "folded").That(changed).Equals(true)
	assert.For(t, "consumer unlinked").That(other.Input("Value1").Linked()).Equals(false)
	assert.For(t, "result is one").That(other.Input("Value1").Value.Float).Equals(float32(1))
}

func TestFoldMixFacZeroBypassesToColor1(t *testing.T) {
	g, r := newTestGraph()
	c1 := g.Add(r.Lookup("Color"))
	mix := g.Add(r.Lookup("Mix"))
	mix.Input("Type").Value = registry.IntValue(int32(fold.MixBlend))
	mix.Input("Fac").Value = registry.FloatValue(0)
	g.Connect(c1.Output("Color"), mix.Input("Color1"))
	bsdf := g.Add(r.Lookup("DiffuseBSDF"))
	g.Connect(mix.Output("Color"), bsdf.Input("Color"))

	changed := fold.Fold(g, mix)
	assert.For(t, "folded").That(changed).Equals(true)
	assert.For(t, "bypassed to color1").That(bsdf.Input("Color").Link).Equals(c1.Output("Color"))
}

func TestFoldEmissionZeroStrengthDiscards(t *testing.T) {
	g, r := newTestGraph()
	em := g.Add(r.Lookup("Emission"))
	em.Input("Strength").Value = registry.FloatValue(0)
	g.Connect(em.Output("Emission"), g.OutputNode().Input("Surface"))

	changed := fold.Fold(g, em)
	assert.For(t, "folded").That(changed).Equals(true)
	assert.For(t, "surface disconnected").That(g.OutputNode().Input("Surface").Linked()).Equals(false)
}

func TestFoldBumpNoHeightSynthesizesGeometry(t *testing.T) {
	g, r := newTestGraph()
	bump := g.Add(r.Lookup("Bump"))
	bsdf := g.Add(r.Lookup("DiffuseBSDF"))
	g.Connect(bump.Output("Normal"), bsdf.Input("Normal"))

	changed := fold.Fold(g, bump)
	assert.For(t, "folded").That(changed).Equals(true)

	link := bsdf.Input("Normal").Link
	assert.For(t, "bridged to geometry normal").That(link.Node.Type.Name).Equals("Geometry")
	assert.For(t, "geometry normal output").That(link.Decl().Name).Equals("Normal")
}

func TestFoldConvertChainCancelsOut(t *testing.T) {
	g, r := newTestGraph()
	col := g.Add(r.Lookup("Color"))
	bsdf := g.Add(r.Lookup("GlossyBSDF"))

	// Color -> Convert<Color,Float> -> Convert<Float,Color> -> bsdf.Color
	inner := g.Add(r.ConvertType(registry.Color, registry.Float))
	inner.Special = registry.SpecialAutoconvert
	back := g.Add(r.ConvertType(registry.Float, registry.Color))
	back.Special = registry.SpecialAutoconvert

	g.Connect(col.Output("Color"), inner.SoleInput())
	g.Connect(inner.SoleOutput(), back.SoleInput())
	g.Connect(back.SoleOutput(), bsdf.Input("Color"))

	changed := fold.Fold(g, back)
	assert.For(t, "folded").That(changed).Equals(true)
	assert.For(t, "cancels back to color").That(bsdf.Input("Color").Link).Equals(col.Output("Color"))
}
