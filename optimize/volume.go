package optimize

import (
	"github.com/cyclesgraph/compiler/core/log"
	"github.com/cyclesgraph/compiler/graph"
)

// verifyVolumeOutput implements spec 4.D step 4d and the VolumeOutputNoVolume
// error case of spec 7: a BFS from the Output node's Volume input; if
// nothing reachable declares HasVolume, the Volume connection is silently
// disconnected rather than left pointing at a subgraph with no volume
// closure to evaluate.
func verifyVolumeOutput(ctx log.Context, g *graph.Graph) {
	volume := g.OutputNode().Input("Volume")
	if !volume.Linked() {
		return
	}

	reachable := graph.FindDependencies(volume)
	reachable[volume.Link.Node] = true

	for n := range reachable {
		if n.Type.HasVolume {
			return
		}
	}

	ctx.Warning().Logf("optimize: Volume output reaches no volume-capable node, disconnecting")
	g.DisconnectInput(volume)
}
