package game

import (
	"math"

	"github.com/quietbit/skyhop/internal/config"
	"github.com/quietbit/skyhop/internal/core"
)

// Platform is a static rectangle the player can stand on. Platforms are
// immutable after creation; the whole set is destroyed and regenerated on
// level advance or restart.
type Platform struct {
	Pos    core.Vec2
	Width  float64
	Height float64
}

// Box returns the platform's collision box.
func (p Platform) Box() core.AABB {
	return core.AABB{Center: p.Pos, W: p.Width, H: p.Height}
}

// Placement margins around the fixed starting platform and the window edges.
// Candidates inside the start clearance would crowd the spawn point; candidates
// past the edge margins would be partly off-screen or unreachable.
const (
	startClearanceX = 120.0
	startClearanceY = 70.0
	edgeMarginX     = 50.0
	edgeMarginY     = 100.0

	// Slack subtracted from the sampling range so candidates start away
	// from the window edges.
	sampleSlackX = 100.0
	sampleSlackY = 150.0
)

// generatePlatforms deterministically produces the platform set for one level.
// The fixed starting platform always comes first; after it, 6-10 candidates
// are rejection-sampled against the spacing rules. The attempt budget turns a
// potential infinite retry loop into a graceful "fewer platforms than
// requested" outcome, which is accepted and not an error.
func generatePlatforms(seed uint64, gen config.Generation) []Platform {
	platforms := []Platform{{
		Pos:    core.Vec2{X: StartPlatformX, Y: StartPlatformY},
		Width:  StartPlatformWidth,
		Height: PlatformHeight,
	}}

	rng := newLCG(seed)

	countRange := uint64(gen.MaxCount - gen.MinCount + 1)
	target := gen.MinCount + int(rng.next()%countRange)

	attempts := 0
	maxAttempts := target * gen.AttemptsPerPlatform
	widthRange := gen.MaxWidth - gen.MinWidth

	for len(platforms) < target+1 && attempts < maxAttempts {
		attempts++

		width := gen.MinWidth + rng.unit()*widthRange
		x := (rng.unit() - 0.5) * (WindowWidth - width - sampleSlackX)
		y := (rng.unit() - 0.5) * (WindowHeight - sampleSlackY)

		if !placementValid(x, y, width, platforms, gen) {
			continue
		}

		platforms = append(platforms, Platform{
			Pos:    core.Vec2{X: x, Y: y},
			Width:  width,
			Height: PlatformHeight,
		})
	}

	return platforms
}

// placementValid checks a candidate against every already-placed platform.
// Accepted platforms are never moved, so each acceptance tightens the
// constraints on the ones that follow.
func placementValid(x, y, width float64, placed []Platform, gen config.Generation) bool {
	for _, p := range placed {
		dx := math.Abs(x - p.Pos.X)
		dy := math.Abs(y - p.Pos.Y)

		// Horizontally close platforms need vertical clearance for jumping.
		requiredGap := width/2 + p.Width/2 + PlayerSize + gen.PlayerGapMargin
		if dx < requiredGap && dy < gen.MinVerticalGap {
			return false
		}

		// And no two platforms may crowd each other in general.
		if math.Sqrt(dx*dx+dy*dy) < gen.MinPlatformDistance {
			return false
		}
	}

	// Keep the spawn area clear.
	if math.Abs(x) < startClearanceX && math.Abs(y-StartPlatformY) < startClearanceY {
		return false
	}

	// Keep platforms reasonably within window bounds.
	if math.Abs(x) > WindowWidth/2-width/2-edgeMarginX ||
		math.Abs(y) > WindowHeight/2-edgeMarginY {
		return false
	}

	return true
}
