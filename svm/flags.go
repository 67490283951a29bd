package svm

// Flags is the subset of shader properties the codegen itself observes
// while walking a closure tree (spec 4.G, "Sets shader flags"). The
// Shader Manager folds these into the full 13-flag shader word
// (shader.Flags, spec 4.H) alongside scene-level derivations it alone has the context for
// (UseMIS, VolumeEquiangular, ...).
type Flags uint32

const (
	FlagSurfaceEmission Flags = 1 << iota
	FlagSurfaceTransparent
	FlagSurfaceBSSRDF
	FlagBSSRDFBump
	FlagBump
	FlagDisplacement
	FlagVolume
)

func (f *Flags) set(bit Flags)     { *f |= bit }
func (f Flags) Has(bit Flags) bool { return f&bit != 0 }
