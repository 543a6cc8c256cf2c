package forest

import (
	"math"
	"math/rand"
)

// GenerateConfig controls procedural tree placement.
type GenerateConfig struct {
	Boundary    float64 // trees stay inside [-Boundary, Boundary]
	Count       int
	Radius      float64 // collision radius given to every tree
	MinSpacing  float64 // minimum distance between tree centers
	ClearX      float64 // center of the tree-free clearing
	ClearZ      float64
	ClearRadius float64
	Margin      float64 // tree-free band along the world edge
}

// maxAttemptsPerTree bounds rejection sampling for crowded maps.
const maxAttemptsPerTree = 30

// Generate scatters up to cfg.Count trees by rejection sampling.
// Fewer trees are returned when the map cannot fit them.
// IDs are assigned from 1 in placement order.
func Generate(cfg GenerateConfig, rng *rand.Rand) []Tree {
	span := cfg.Boundary - cfg.Margin
	if span <= 0 || cfg.Count <= 0 {
		return nil
	}

	trees := make([]Tree, 0, cfg.Count)
	minSpacing2 := cfg.MinSpacing * cfg.MinSpacing
	clear2 := cfg.ClearRadius * cfg.ClearRadius

	attempts := cfg.Count * maxAttemptsPerTree
	for i := 0; i < attempts && len(trees) < cfg.Count; i++ {
		x := round2((rng.Float64()*2 - 1) * span)
		z := round2((rng.Float64()*2 - 1) * span)

		if sq(x-cfg.ClearX)+sq(z-cfg.ClearZ) < clear2 {
			continue
		}
		if crowded(trees, x, z, minSpacing2) {
			continue
		}

		trees = append(trees, Tree{
			ID:     int64(len(trees) + 1),
			X:      x,
			Z:      z,
			Radius: cfg.Radius,
		})
	}
	return trees
}

func crowded(trees []Tree, x, z, minSpacing2 float64) bool {
	for _, t := range trees {
		if sq(t.X-x)+sq(t.Z-z) < minSpacing2 {
			return true
		}
	}
	return false
}

func sq(v float64) float64 { return v * v }

// round2 keeps two decimals so layouts survive a database round trip unchanged.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
