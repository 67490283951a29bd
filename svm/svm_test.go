package svm_test

import (
	"testing"

	"github.com/cyclesgraph/compiler/core/assert"
	"github.com/cyclesgraph/compiler/core/log"
	"github.com/cyclesgraph/compiler/graph"
	"github.com/cyclesgraph/compiler/optimize"
	"github.com/cyclesgraph/compiler/registry"
	"github.com/cyclesgraph/compiler/svm"
)

func newTestGraph() (*graph.Graph, *registry.Registry) {
	r := registry.NewStandardRegistry()
	return graph.New(r), r
}

func TestCompileShaderEmitsEndForSimpleSurface(t *testing.T) {
	g, r := newTestGraph()
	bsdf := g.Add(r.Lookup("DiffuseBSDF"))
	g.Connect(bsdf.Output("BSDF"), g.OutputNode().Input("Surface"))

	ctx := log.Wrap(log.Testing(t))
	optimize.Finalize(ctx, g, optimize.Config{})

	sp := svm.CompileShader(ctx, g, 0, optimize.Config{})

	assert.For(t, "compiled without overflow").That(sp.CompileFailed).Equals(false)
	assert.For(t, "stream opens with a ShaderJump header").
		That(sp.Instructions[0].A).Equals(int32(svm.OpShaderJump))
	assert.For(t, "surface offset right after the header").That(sp.Jump.SurfaceOffset).Equals(int32(1))
	assert.For(t, "volume not present").That(sp.Jump.VolumeOffset).Equals(int32(-1))
	assert.For(t, "header's own surface field matches the jump table").
		That(sp.Instructions[0].B).Equals(sp.Jump.SurfaceOffset)

	last := sp.Instructions[len(sp.Instructions)-1]
	assert.For(t, "stream ends with End").That(last.A).Equals(int32(svm.OpEnd))
}

func TestCompileShaderMixClosureEmitsBothJumpGuards(t *testing.T) {
	g, r := newTestGraph()
	d1 := g.Add(r.Lookup("DiffuseBSDF"))
	d2 := g.Add(r.Lookup("DiffuseBSDF"))
	fac := g.Add(r.Lookup("Value"))
	fac.Output("Value").Consumers = nil
	mix := g.Add(r.Lookup("MixClosure"))
	g.Connect(fac.Output("Value"), mix.Input("Fac"))
	g.Connect(d1.Output("BSDF"), mix.Input("Closure1"))
	g.Connect(d2.Output("BSDF"), mix.Input("Closure2"))
	g.Connect(mix.Output("Closure"), g.OutputNode().Input("Surface"))

	ctx := log.Wrap(log.Testing(t))
	optimize.Finalize(ctx, g, optimize.Config{})

	sp := svm.CompileShader(ctx, g, 0, optimize.Config{})

	jumpIfZero, jumpIfOne := 0, 0
	for _, inst := range sp.Instructions {
		switch svm.Opcode(inst.A) {
		case svm.OpJumpIfZero:
			jumpIfZero++
			assert.For(t, "jump offset backpatched").That(inst.D >= 0).Equals(true)
		case svm.OpJumpIfOne:
			jumpIfOne++
			assert.For(t, "jump offset backpatched").That(inst.D >= 0).Equals(true)
		}
	}
	assert.For(t, "one JumpIfOne guard for Closure1").That(jumpIfOne).Equals(1)
	assert.For(t, "one JumpIfZero guard for Closure2").That(jumpIfZero).Equals(1)
}

func TestCompileShaderDisplacementEmitsSetDisplacement(t *testing.T) {
	g, r := newTestGraph()
	h := g.Add(r.Lookup("Value"))
	h.Output("Value").Consumers = nil
	disp := g.Add(r.Lookup("Displacement"))
	g.Connect(h.Output("Value"), disp.Input("Height"))
	g.Connect(disp.Output("Displacement"), g.OutputNode().Input("Displacement"))

	ctx := log.Wrap(log.Testing(t))
	optimize.Finalize(ctx, g, optimize.Config{})

	sp := svm.CompileShader(ctx, g, 1, optimize.Config{})
	assert.For(t, "displacement offset recorded").That(sp.Jump.DisplacementOffset >= 0).Equals(true)

	found := false
	for _, inst := range sp.Instructions {
		if svm.Opcode(inst.A) == svm.OpSetDisplacement {
			found = true
		}
	}
	assert.For(t, "SetDisplacement emitted").That(found).Equals(true)
}

func TestProgramAppendPatchesOffsetsAndRecordsFlags(t *testing.T) {
	p := svm.NewProgram(2)
	sp0 := svm.ShaderProgram{
		ID:           0,
		Instructions: []svm.Instruction{{A: int32(svm.OpEnd)}},
		Jump:         svm.ShaderJump{SurfaceOffset: 0, VolumeOffset: -1, DisplacementOffset: -1},
		Flags:        svm.FlagSurfaceEmission,
	}
	sp1 := svm.ShaderProgram{
		ID:           1,
		Instructions: []svm.Instruction{{A: int32(svm.OpMath)}, {A: int32(svm.OpEnd)}},
		Jump:         svm.ShaderJump{SurfaceOffset: 0, VolumeOffset: -1, DisplacementOffset: -1},
	}

	base0 := p.Append(sp0)
	base1 := p.Append(sp1)

	assert.For(t, "first shader at offset 0").That(base0).Equals(0)
	assert.For(t, "second shader appended after first").That(base1).Equals(1)
	assert.For(t, "second shader's jump patched").That(p.Jumps[1].SurfaceOffset).Equals(int32(1))
	assert.For(t, "flag word recorded").That(p.ShaderFlags[0]).Equals(svm.FlagSurfaceEmission)
	assert.For(t, "total stream length").That(len(p.Instructions)).Equals(3)
}

func TestProgramAppendPatchesShaderJumpHeaderInPlace(t *testing.T) {
	g, r := newTestGraph()
	bsdf := g.Add(r.Lookup("DiffuseBSDF"))
	g.Connect(bsdf.Output("BSDF"), g.OutputNode().Input("Surface"))

	ctx := log.Wrap(log.Testing(t))
	optimize.Finalize(ctx, g, optimize.Config{})
	first := svm.CompileShader(ctx, g, 0, optimize.Config{})
	second := svm.CompileShader(ctx, g, 1, optimize.Config{})

	p := svm.NewProgram(2)
	base0 := p.Append(first)
	base1 := p.Append(second)

	assert.For(t, "first shader's header patched with its own base").
		That(p.Instructions[base0].B).Equals(p.Jumps[0].SurfaceOffset)
	assert.For(t, "second shader's header patched with the shifted base").
		That(p.Instructions[base1].B).Equals(p.Jumps[1].SurfaceOffset)
	assert.For(t, "second shader's global surface offset is past the first shader's stream").
		That(p.Jumps[1].SurfaceOffset > p.Jumps[0].SurfaceOffset).Equals(true)
}
