package optimize

import (
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// simplifySettings implements spec 4.D step 4b: each node type gets a
// chance to adapt to scene-wide settings. GlossyBSDF is the one example
// the spec names: it clamps to the degenerate Sharp distribution when the
// scene disables glossy filtering and the roughness is already near zero,
// and conversely promotes a Sharp node back to GGX (with roughness
// flattened to 0) once filtering is back on, so the SVM codegen only ever
// sees a distribution consistent with the active filter_glossy setting.
func simplifySettings(g *graph.Graph, cfg Config) {
	const sharpThreshold = 1e-4

	for _, n := range g.Nodes() {
		if n.Type.Name != "GlossyBSDF" {
			continue
		}
		dist := n.Input("Distribution")
		roughness := n.Input("Roughness")

		nearZero := !roughness.Linked() && roughness.Value.Float <= sharpThreshold
		if cfg.FilterGlossy == 0 && nearZero {
			dist.Value = registry.IntValue(int32(registry.GlossySharp))
			continue
		}
		if registry.GlossyDistribution(dist.Value.Int) == registry.GlossySharp {
			dist.Value = registry.IntValue(int32(registry.GlossyGGX))
			if roughness.Linked() {
				g.DisconnectInput(roughness)
			}
			roughness.Value = registry.FloatValue(0)
		}
	}
}
