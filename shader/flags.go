package shader

import "github.com/cyclesgraph/compiler/svm"

// Flags is the scene/shader-level bit word of spec 4.H: the per-shader
// svm.Flags subset folded together with scene-wide derivations (any
// volume present anywhere forces HasTransparentShadow, for instance).
type Flags uint32

const (
	UseMIS Flags = 1 << iota
	HasTransparentShadow
	HasVolume
	HasOnlyVolume
	HeterogeneousVolume
	HasSurfaceBSSRDF
	HasBSSRDFBump
	VolumeEquiangular
	VolumeMIS
	VolumeCubic
	HasBump
	HasDisplacement
	HasConstantEmission
)

func (f *Flags) set(bit Flags)     { *f |= bit }
func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// VolumeSamplingMethod is the per-shader volume_sampling_method of spec
// §3.
type VolumeSamplingMethod int

const (
	VolumeSamplingDistance VolumeSamplingMethod = iota
	VolumeSamplingEquiangular
	VolumeSamplingMIS
)

// VolumeInterpolationMethod is the per-shader volume_interpolation_method
// of spec §3.
type VolumeInterpolationMethod int

const (
	VolumeInterpolationLinear VolumeInterpolationMethod = iota
	VolumeInterpolationCubic
)

// DeviceShaderFlags is one entry of the shader_flag device array (spec
// §3: "5 words per shader: flag bitmask, pass-id, and three RGB floats
// for constant-emission acceleration"). PassID is left to the host
// integrator that assigns render passes; this package only produces the
// flag word and, when IsConstantEmission applies, the RGB payload.
type DeviceShaderFlags struct {
	Flags         Flags
	PassID        int32
	EmissionColor [3]float32
}

// FromSVM folds a single compiled shader's svm.Flags into the
// corresponding Flags bits (spec 4.H: "the Shader Manager folds each
// compiled shader's svm.Flags into the scene-wide word").
func FromSVM(sf svm.Flags) Flags {
	var f Flags
	if sf.Has(svm.FlagSurfaceBSSRDF) {
		f.set(HasSurfaceBSSRDF)
	}
	if sf.Has(svm.FlagBSSRDFBump) {
		f.set(HasBSSRDFBump)
	}
	if sf.Has(svm.FlagBump) {
		f.set(HasBump)
	}
	if sf.Has(svm.FlagDisplacement) {
		f.set(HasDisplacement)
	}
	if sf.Has(svm.FlagVolume) {
		f.set(HasVolume)
	}
	return f
}

// DeriveSceneFlags folds every shader's per-shader flags into the one
// scene-wide word, then applies the cross-shader derivation rules spec
// 4.H names: any volume anywhere forces transparent shadows on (a ray
// crossing a volume boundary must always be able to continue as a shadow
// ray), and a scene with volume shaders but no surface/emission closures
// anywhere is volume-only.
func DeriveSceneFlags(perShader []svm.Flags, hasAnySurfaceOrEmission bool) Flags {
	var out Flags
	for _, sf := range perShader {
		out |= FromSVM(sf)
	}
	out |= sceneWideBits(perShader, hasAnySurfaceOrEmission)
	return out
}

// sceneWideBits computes just the two derivations that apply uniformly
// across every shader in the scene, regardless of that shader's own
// per-shader flags (spec 4.H: "Derive has_transparent_shadow at the
// scene level"). CompileScene ORs this into each shader's own device
// flag word so every per-shader record observes the scene-wide state.
func sceneWideBits(perShader []svm.Flags, hasAnySurfaceOrEmission bool) Flags {
	anyVolume := false
	for _, sf := range perShader {
		if sf.Has(svm.FlagVolume) {
			anyVolume = true
			break
		}
	}
	var out Flags
	if anyVolume {
		out.set(HasTransparentShadow)
		if !hasAnySurfaceOrEmission {
			out.set(HasOnlyVolume)
		}
	}
	return out
}
