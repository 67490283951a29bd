package shader

import (
	"github.com/cyclesgraph/compiler/core/log"
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/optimize"
	"github.com/cyclesgraph/compiler/registry"
	"github.com/cyclesgraph/compiler/svm"
)

// Shader is one named entry in a scene's shader list: a graph plus the
// stable id it will be compiled under (spec 5: "the global id counter,
// which is pre-assigned") and the user-settable fields spec §3 lists
// alongside the codegen-derived ones (`use_mis`, `heterogeneous_volume`,
// `volume_sampling_method`, `volume_interpolation_method`). Fields left
// at their zero value match Cycles' own defaults (MIS and cubic
// interpolation off, distance-based volume sampling).
type Shader struct {
	Name  string
	ID    int
	Graph *graph.Graph

	UseMIS                    bool
	HeterogeneousVolume       bool
	VolumeSamplingMethod      VolumeSamplingMethod
	VolumeInterpolationMethod VolumeInterpolationMethod
}

// configFlags folds this shader's user-settable fields into their
// corresponding Flags bits (spec 4.H's flag word: UseMIS,
// HeterogeneousVolume, VolumeEquiangular, VolumeMIS, VolumeCubic) — the
// half of the flag word DeriveSceneFlags/FromSVM cannot see, since it
// comes from configuration rather than the compiled graph.
func (sh *Shader) configFlags() Flags {
	var f Flags
	if sh.UseMIS {
		f.set(UseMIS)
	}
	if sh.HeterogeneousVolume {
		f.set(HeterogeneousVolume)
	}
	switch sh.VolumeSamplingMethod {
	case VolumeSamplingEquiangular:
		f.set(VolumeEquiangular)
	case VolumeSamplingMIS:
		f.set(VolumeMIS)
	}
	if sh.VolumeInterpolationMethod == VolumeInterpolationCubic {
		f.set(VolumeCubic)
	}
	return f
}

// Default shader names, always present at fixed, well-known ids (spec
// 4.H, "AddDefault ... referenced by the scene even if the user provides
// none").
const (
	DefaultSurfaceName    = "default_surface"
	DefaultLightName      = "default_light"
	DefaultBackgroundName = "default_background"
	DefaultEmptyName      = "default_empty"
)

// AddDefault builds the four built-in shaders every scene carries
// regardless of user content: a gray diffuse surface, a zero-strength
// emission light, and two empty shaders for background and the
// catch-all "no shader assigned" slot. startID is the id the first
// default shader is assigned; the rest follow consecutively.
func AddDefault(r *registry.Registry, startID int) []*Shader {
	surface := graph.New(r)
	diffuse := surface.Add(r.Lookup("DiffuseBSDF"))
	surface.Connect(diffuse.Output("BSDF"), surface.OutputNode().Input("Surface"))

	light := graph.New(r)
	emission := light.Add(r.Lookup("Emission"))
	emission.Input("Strength").Value = registry.FloatValue(0)
	light.Connect(emission.Output("Emission"), light.OutputNode().Input("Surface"))

	background := graph.New(r)
	empty := graph.New(r)

	return []*Shader{
		{Name: DefaultSurfaceName, ID: startID + 0, Graph: surface},
		{Name: DefaultLightName, ID: startID + 1, Graph: light},
		{Name: DefaultBackgroundName, ID: startID + 2, Graph: background},
		{Name: DefaultEmptyName, ID: startID + 3, Graph: empty},
	}
}

// CompileScene finalizes and compiles every shader in shaders, in order,
// appending each into a single Program (spec 5: the global svm_nodes
// append-under-mutex arena) and computing each shader's own 32-bit flag
// word plus constant-emission RGB payload (spec 4.H, spec §3's 5-word
// shader_flag device array). Shaders whose Surface resolves to a
// constant emission (IsConstantEmission) are still compiled normally
// here: the fast path is an integrator-side optimization this package
// only detects and reports, not a reason to skip codegen, since the
// compiled program is still needed for any ray that does not take the
// fast path. The returned slice is parallel to shaders (device[i]
// belongs to shaders[i]); callers that assign ids 0..n-1 in order, as
// AddDefault does, can index it directly by shader id.
func CompileScene(ctx log.Context, shaders []*Shader, cfg optimize.Config) (*svm.Program, []DeviceShaderFlags) {
	prog := svm.NewProgram(len(shaders))
	perShaderSVM := make([]svm.Flags, len(shaders))
	device := make([]DeviceShaderFlags, len(shaders))
	hasSurfaceOrEmission := false

	for i, sh := range shaders {
		optimize.Finalize(ctx, sh.Graph, cfg)
		sp := svm.CompileShader(ctx, sh.Graph, sh.ID, cfg)
		prog.Append(sp)
		perShaderSVM[i] = sp.Flags

		word := FromSVM(sp.Flags) | sh.configFlags()
		if rgb, ok := IsConstantEmission(sh.Graph); ok {
			word.set(HasConstantEmission)
			device[i].EmissionColor = rgb
		}
		device[i].Flags = word

		if sh.Graph.OutputNode().Input("Surface").Linked() {
			hasSurfaceOrEmission = true
		}
	}

	scene := sceneWideBits(perShaderSVM, hasSurfaceOrEmission)
	for i := range device {
		device[i].Flags |= scene
	}

	return prog, device
}
