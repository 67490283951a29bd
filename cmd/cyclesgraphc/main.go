// Command cyclesgraphc compiles the built-in default shaders (spec 4.H
// AddDefault) and prints their compiled instruction counts and scene
// flags. The compiler core has no file format or persisted state of its
// own (spec 6: "Persisted state: none... CLI/config surface: none
// directly") — this binary exists to exercise the full Simplify ->
// Finalize -> CompileShader -> CompileScene pipeline end to end the same
// way cmd/shadertool exercises shadertools.ConvertGlsl, one input at a
// time with results printed to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"sync"

	"github.com/cyclesgraph/compiler/core/app/crash"
	"github.com/cyclesgraph/compiler/core/log"
	"github.com/cyclesgraph/compiler/optimize"
	"github.com/cyclesgraph/compiler/registry"
	"github.com/cyclesgraph/compiler/shader"
)

var (
	implicitBump = flag.Bool("implicit-bump", false, "synthesize bump-from-displacement for shaders with a true-displacement output")
	filterGlossy = flag.Float64("filter-glossy", 0, "roughness below which glossy BSDFs are treated as sharp")
)

func main() {
	flag.Parse()

	cfg := optimize.Config{
		FilterGlossy: float32(*filterGlossy),
		ImplicitBump: *implicitBump,
	}

	r := registry.NewStandardRegistry()
	shaders := shader.AddDefault(r, 0)

	var mu sync.Mutex
	var wg sync.WaitGroup
	results := make([]string, len(shaders))

	for i, sh := range shaders {
		i, sh := i, sh
		wg.Add(1)
		crash.Go(func() {
			defer wg.Done()
			ctx := log.Wrap(context.Background())
			optimize.Finalize(ctx, sh.Graph, cfg)
			mu.Lock()
			defer mu.Unlock()
			results[i] = fmt.Sprintf("%-20s id=%-2d nodes=%d", sh.Name, sh.ID, len(sh.Graph.Nodes()))
		})
	}
	wg.Wait()

	ctx := log.Wrap(context.Background())
	prog, device := shader.CompileScene(ctx, shaders, cfg)

	for _, line := range results {
		fmt.Println(line)
	}
	fmt.Printf("total instructions=%d shaders=%d\n", len(prog.Instructions), len(prog.Jumps))
	for i, sh := range shaders {
		fmt.Printf("  %-20s id=%-2d flags=%#x emission=%v\n",
			sh.Name, sh.ID, uint32(device[i].Flags), device[i].EmissionColor)
	}
}
