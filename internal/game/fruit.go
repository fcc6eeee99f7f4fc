package game

import "github.com/quietbit/skyhop/internal/core"

// placeFruit deterministically picks one platform and returns the fruit
// position resting centered on its top surface. The starting platform is
// never a candidate; with no candidates at all, no fruit spawns this level
// (ok = false). That is a degenerate outcome, not an error.
func placeFruit(platforms []Platform, seed uint64) (core.Vec2, bool) {
	var candidates []core.Vec2
	for _, p := range platforms {
		if p.Pos.Y == StartPlatformY {
			continue
		}
		candidates = append(candidates, p.Pos)
	}
	if len(candidates) == 0 {
		return core.Vec2{}, false
	}

	// Second LCG pass, decorrelated from the platform sequence.
	rng := newLCG(seed * 73)
	index := int(rng.next() % uint64(len(candidates)))

	pos := candidates[index]
	return core.Vec2{
		X: pos.X,
		Y: pos.Y + PlatformHeight/2 + FruitSize/2,
	}, true
}
