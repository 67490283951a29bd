// Package light implements the Light/Background Preprocessor of spec
// 4.I: the emissive-triangle/lamp cumulative-area distribution and the
// background importance map, the two consumers of a compiled scene's
// shaders. Grounded on core/math/f32 for the CDF arithmetic and
// core/event/task for the row-chunked parallel build spec 5 describes
// for the background conditional CDF, the same idiom shader/beckmann.go
// uses for its table build.
package light

// Triangle is one emissive mesh triangle contributing area to the light
// distribution (spec 4.I Distribution: "walk all emissive mesh
// triangles").
type Triangle struct {
	Area float32
}

// Lamp is one enabled scene light contributing to the light
// distribution.
type Lamp struct {
	Power float32
}

// DistributionEntry is one row of KernelLightDistribution (spec 6):
// TotalArea is the running cumulative sum (a CDF value once normalized);
// Prim encodes either a triangle's primitive index (>=0) or a lamp's
// bitwise-complemented index (<0).
type DistributionEntry struct {
	TotalArea float32
	Prim      int32
}

// Distribution is the built light-sampling table plus the per-sample
// mix probabilities between triangle and lamp sampling (spec 4.I: "50/50
// if both triangles and lights exist; otherwise the non-empty side gets
// probability 1").
type Distribution struct {
	Entries         []DistributionEntry
	TriangleWeight  float32
	LampWeight      float32
}

// BuildDistribution walks triangles and lamps in order, accumulating a
// running-sum cumulative-area table with a sentinel total entry (spec
// 4.I), normalizing to [0,1] if the grand total is nonzero.
func BuildDistribution(triangles []Triangle, lamps []Lamp) Distribution {
	entries := make([]DistributionEntry, 0, len(triangles)+len(lamps)+1)
	var total float32

	for i, t := range triangles {
		total += t.Area
		entries = append(entries, DistributionEntry{TotalArea: total, Prim: int32(i)})
	}
	for i, l := range lamps {
		total += l.Power
		entries = append(entries, DistributionEntry{TotalArea: total, Prim: int32(^i)})
	}
	entries = append(entries, DistributionEntry{TotalArea: total, Prim: -1})

	if total != 0 {
		for i := range entries {
			entries[i].TotalArea /= total
		}
		entries[len(entries)-1].TotalArea = 1
	}

	var triW, lampW float32
	switch {
	case len(triangles) > 0 && len(lamps) > 0:
		triW, lampW = 0.5, 0.5
	case len(triangles) > 0:
		triW, lampW = 1, 0
	case len(lamps) > 0:
		triW, lampW = 0, 1
	}

	return Distribution{Entries: entries, TriangleWeight: triW, LampWeight: lampW}
}
