package svm

import "sync"

// ShaderJump is the small per-shader header that records where each of
// the (up to four) compiled sub-programs begins within the shared
// svm_nodes stream (spec 4.G summary). A pass that was not compiled (the
// Output node has no corresponding linked input) leaves its offset at
// graph.Invalid-equivalent -1, read by the host as "skip".
type ShaderJump struct {
	SurfaceOffset      int32
	VolumeOffset       int32
	DisplacementOffset int32
}

// ShaderProgram is one shader's compiled output: its local instruction
// stream (Bump falls through into Surface, so they share one contiguous
// run) plus the jump table recorded against that local stream's start.
// Instructions[0] is the shader's ShaderJump header (spec 3); its B/C/D
// fields hold this shader's own local offsets until Program.Append
// rewrites them in place as global ones. The fail-soft stack-overflow
// path is the one exception: its stream is the bare [End] the spec names
// for that case, with no header.
type ShaderProgram struct {
	ID           int
	Instructions []Instruction
	Jump         ShaderJump
	Flags        Flags
	CompileFailed bool
}

// Program is the global svm_nodes arena: an append-only instruction
// vector shared by every compiled shader (spec 5: "the global svm_nodes
// array, append-only during compilation, read-only thereafter"). Distinct
// shaders compile independently and race only here, at the final splice;
// a single short-lived mutex protects both the resize and the in-place
// ShaderJump patch, matching spec 5's concurrency note verbatim.
type Program struct {
	mu           sync.Mutex
	Instructions []Instruction
	Jumps        []ShaderJump // indexed by shader id
	ShaderFlags  []Flags      // indexed by shader id
}

// NewProgram returns an empty global program sized for n shaders.
func NewProgram(n int) *Program {
	return &Program{
		Jumps:       make([]ShaderJump, n),
		ShaderFlags: make([]Flags, n),
	}
}

// Append splices sp's local instruction stream onto the end of the shared
// svm_nodes array and patches sp's ShaderJump offsets to be relative to
// that array, then records the patched jump table and flag word at
// sp.ID. Returns the absolute starting offset of sp's stream.
func (p *Program) Append(sp ShaderProgram) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	base := int32(len(p.Instructions))
	p.Instructions = append(p.Instructions, sp.Instructions...)

	jump := sp.Jump
	if jump.SurfaceOffset >= 0 {
		jump.SurfaceOffset += base
	}
	if jump.VolumeOffset >= 0 {
		jump.VolumeOffset += base
	}
	if jump.DisplacementOffset >= 0 {
		jump.DisplacementOffset += base
	}

	// The shader's local ShaderJump header (always its first instruction,
	// unless the shader fail-soft'd to a bare [End] program) carries only
	// placeholder, local offsets until now; patch it in place with the
	// global offsets while still holding the append mutex (spec 7: "the
	// mutex protects both the vector's resize and the in-place patching
	// of the shader's ShaderJump header").
	if len(sp.Instructions) > 0 && Opcode(sp.Instructions[0].A) == OpShaderJump {
		p.Instructions[base].B = jump.SurfaceOffset
		p.Instructions[base].C = jump.VolumeOffset
		p.Instructions[base].D = jump.DisplacementOffset
	}

	for len(p.Jumps) <= sp.ID {
		p.Jumps = append(p.Jumps, ShaderJump{})
		p.ShaderFlags = append(p.ShaderFlags, Flags(0))
	}
	p.Jumps[sp.ID] = jump
	p.ShaderFlags[sp.ID] = sp.Flags

	return int(base)
}
