package optimize

import (
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/registry"
)

// defaultLinkSource names which shared node and output an unlinked input's
// link-flag hint should be wired to (spec 4.D step 3).
type defaultLinkSource struct {
	flag       registry.LinkFlags
	sourceType string
	output     string
}

var defaultLinkSources = []defaultLinkSource{
	{registry.LinkTextureGenerated, "TextureCoordinate", "Generated"},
	{registry.LinkTextureNormal, "TextureCoordinate", "Normal"},
	{registry.LinkTextureUV, "TextureCoordinate", "UV"},
	{registry.LinkIncoming, "Geometry", "Incoming"},
	{registry.LinkNormal, "Geometry", "Normal"},
	{registry.LinkPosition, "Geometry", "Position"},
	{registry.LinkTangent, "Geometry", "Tangent"},
}

// wireDefaultInputs implements spec 4.D step 3: every unlinked input whose
// flags carry a default-link hint is connected to a lazily created,
// graph-wide shared Geometry or TextureCoordinate node.
func wireDefaultInputs(g *graph.Graph) {
	shared := map[string]*graph.Node{}
	sharedSource := func(typeName string) *graph.Node {
		if n, ok := shared[typeName]; ok {
			return n
		}
		n := g.Add(g.Registry.Lookup(typeName))
		shared[typeName] = n
		return n
	}

	for _, n := range g.Nodes() {
		for _, in := range n.Inputs {
			if in.Linked() || !in.Decl().Flags.HasDefaultLink() {
				continue
			}
			for _, src := range defaultLinkSources {
				if in.Decl().Flags&src.flag == 0 {
					continue
				}
				source := sharedSource(src.sourceType)
				g.Connect(source.Output(src.output), in)
				break
			}
		}
	}
}
