package light

import (
	"context"
	"math"

	"github.com/cyclesgraph/compiler/core/event/task"
	"github.com/cyclesgraph/compiler/core/log"
	"github.com/cyclesgraph/compiler/core/math/f32"
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// Sample is a shaded environment radiance sample, as returned by
// invoking the device SHADER task on the background shader (spec 4.I:
// "shade the environment at resolution (res_x, res_y)"). The device
// shading step itself is the kernel's contract and out of scope here;
// this package only consumes its output.
type Sample = [3]float32

// BackgroundImportance is the 2-D importance map built over a shaded
// environment (spec 4.I Background importance, spec 6 device arrays
// light_background_marginal_cdf / light_background_conditional_cdf).
type BackgroundImportance struct {
	ResX, ResY  int
	Conditional [][]float32 // ResY rows, each ResX+1 entries, CDF in [0,1]
	Marginal    []float32   // ResY+1 entries, CDF in [0,1]
}

// BuildBackgroundImportance shades the environment via shade(x,y) and
// builds the conditional-then-marginal CDF pyramid: per row, a
// luminance*sin(theta)-weighted CDF over columns computed in parallel
// (spec 5: "chunked ranges of rows, each row independent"); then a
// sequential marginal CDF over the row totals (spec 5: "the marginal CDF
// pass is sequential").
func BuildBackgroundImportance(ctx log.Context, resX, resY int, shade func(x, y int) Sample) *BackgroundImportance {
	conditional := make([][]float32, resY)
	rowTotal := make([]float32, resY)

	handles := make([]task.Handle, resY)
	for y := 0; y < resY; y++ {
		y := y
		handles[y] = task.Go(context.Background(), func(context.Context) error {
			row, total := buildConditionalRow(resX, resY, y, shade)
			conditional[y] = row
			rowTotal[y] = total
			return nil
		})
	}
	for y, h := range handles {
		if err := h.Result(context.Background()); err != nil {
			ctx.Error().Logf("light: background row %d shading failed: %v", y, err)
		}
	}

	marginal := make([]float32, resY+1)
	var total float32
	for y := 0; y < resY; y++ {
		total += rowTotal[y]
		marginal[y] = total
	}
	if total != 0 {
		for y := range marginal {
			marginal[y] /= total
		}
	}
	marginal[resY] = 1

	return &BackgroundImportance{ResX: resX, ResY: resY, Conditional: conditional, Marginal: marginal}
}

// buildConditionalRow computes one row's CDF over columns, weighted by
// luminance*sin(theta) (spec 4.I), and returns the row's (unnormalized)
// total density alongside it for the marginal pass.
func buildConditionalRow(resX, resY, y int, shade func(x, y int) Sample) ([]float32, float32) {
	theta := math.Pi * (float64(y) + 0.5) / float64(resY)
	weight := float32(math.Sin(theta))

	row := make([]float32, resX+1)
	var total float32
	for x := 0; x < resX; x++ {
		rgb := shade(x, y)
		lum := registry.ScalarFromFloat3(registry.Color, rgb)
		total += lum * weight
		row[x] = total
	}
	if total != 0 {
		for x := 0; x < resX; x++ {
			row[x] /= total
		}
	}
	row[resX] = 1
	return row, total
}

// SunDisc is a detected sun-disc configuration's direction and angular
// half-size, packed into KernelBackground.sun (spec 4.I).
type SunDisc struct {
	Direction [3]float32
	HalfAngle float32
}

// DetectSunDisc walks bg for a single SkyTexture node whose Vector input
// is unconnected, or connected directly to a TextureCoordinate node's
// Generated output (spec 4.I: "a single SkyTexture with a sun disc
// configuration"). found is false if no candidate exists; multiple
// candidates disables sun sampling entirely (spec 7 MultipleSuns) and
// also reports found=false, distinguishable from the no-candidate case
// only by the caller not needing to distinguish them: in both cases sun
// sampling stays off and the weight stays at its base value.
func DetectSunDisc(bg *graph.Graph) (disc SunDisc, found bool) {
	var candidates []*graph.Node
	for _, n := range bg.Nodes() {
		if n.Type.Name != "SkyTexture" {
			continue
		}
		vec := n.Input("Vector")
		if !vec.Linked() || isGeneratedCoordinate(vec) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) != 1 {
		return SunDisc{}, false
	}

	n := candidates[0]
	dirIn := n.Input("SunDirection")
	sizeIn := n.Input("SunSize")
	return SunDisc{Direction: dirIn.Value.Float3, HalfAngle: sizeIn.Value.Float}, true
}

func isGeneratedCoordinate(vec *graph.Input) bool {
	if !vec.Linked() {
		return false
	}
	out := vec.Link
	return out.Node.Type.Name == "TextureCoordinate" && out.Decl().Name == "Generated"
}

// SunWeight is the fixed weight raised to 4 whenever a sun disc is
// detected (spec 4.I: "raise sun_weight to 4").
const SunWeight = 4

// UseMIS implements spec 4.I's final use_mis rule: true iff the sum of
// the three mutually exclusive environment-sampling strategy weights is
// positive.
func UseMIS(portalWeight, mapWeight, sunWeight float32) bool {
	return f32.MaxOf(0, portalWeight+mapWeight+sunWeight) > 0
}
