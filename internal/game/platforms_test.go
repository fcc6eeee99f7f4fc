package game

import (
	"math"
	"testing"

	"github.com/quietbit/skyhop/internal/config"
)

func TestGeneratorIncludesStartingPlatform(t *testing.T) {
	gen := config.DefaultGameConfig().Generation

	for seed := uint64(1); seed < 100; seed++ {
		platforms := generatePlatforms(seed, gen)
		if len(platforms) == 0 {
			t.Fatalf("seed %d: no platforms generated", seed)
		}
		start := platforms[0]
		if start.Pos.X != StartPlatformX || start.Pos.Y != StartPlatformY ||
			start.Width != StartPlatformWidth || start.Height != PlatformHeight {
			t.Errorf("seed %d: starting platform = %+v, expected (0,100) width 200", seed, start)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	gen := config.DefaultGameConfig().Generation

	for _, seed := range []uint64{1, 42, 1103515245, 1 << 40, 18446744073709551615} {
		a := generatePlatforms(seed, gen)
		b := generatePlatforms(seed, gen)
		if len(a) != len(b) {
			t.Fatalf("seed %d: lengths differ: %d vs %d", seed, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("seed %d: platform %d differs: %+v vs %+v", seed, i, a[i], b[i])
			}
		}
	}
}

func TestGeneratorCountWithinBudget(t *testing.T) {
	gen := config.DefaultGameConfig().Generation

	for seed := uint64(0); seed < 200; seed++ {
		platforms := generatePlatforms(seed, gen)
		extra := len(platforms) - 1
		// The attempt budget may stop generation short of the target, but
		// never beyond the configured maximum.
		if extra < 0 || extra > gen.MaxCount {
			t.Errorf("seed %d: %d extra platforms, expected at most %d", seed, extra, gen.MaxCount)
		}
	}
}

// TestGeneratorSpacingInvariants property-checks every generated pair:
// horizontally close platforms have vertical clearance, no two centers crowd
// each other, and everything stays within window bounds. Accepted platforms
// are never moved, so the creation-time checks must hold pairwise afterward.
func TestGeneratorSpacingInvariants(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := cfg.Generation

	for seed := uint64(1); seed <= 300; seed++ {
		platforms := generatePlatforms(seed, gen)

		for i := 1; i < len(platforms); i++ {
			p := platforms[i]

			// Window bounds minus margins.
			if math.Abs(p.Pos.X) > WindowWidth/2-p.Width/2-edgeMarginX {
				t.Errorf("seed %d: platform %d at x=%f outside horizontal bounds", seed, i, p.Pos.X)
			}
			if math.Abs(p.Pos.Y) > WindowHeight/2-edgeMarginY {
				t.Errorf("seed %d: platform %d at y=%f outside vertical bounds", seed, i, p.Pos.Y)
			}

			// Starting-area clearance.
			if math.Abs(p.Pos.X) < startClearanceX && math.Abs(p.Pos.Y-StartPlatformY) < startClearanceY {
				t.Errorf("seed %d: platform %d crowds the spawn area: %+v", seed, i, p.Pos)
			}

			// Width range.
			if p.Width < gen.MinWidth || p.Width >= gen.MaxWidth {
				t.Errorf("seed %d: platform %d width %f outside [%f, %f)", seed, i, p.Width, gen.MinWidth, gen.MaxWidth)
			}

			// Pairwise spacing against everything placed before it.
			for j := 0; j < i; j++ {
				q := platforms[j]
				dx := math.Abs(p.Pos.X - q.Pos.X)
				dy := math.Abs(p.Pos.Y - q.Pos.Y)

				requiredGap := p.Width/2 + q.Width/2 + PlayerSize + gen.PlayerGapMargin
				if dx < requiredGap && dy < gen.MinVerticalGap {
					t.Errorf("seed %d: platforms %d/%d lack clearance: dx=%f dy=%f", seed, i, j, dx, dy)
				}
				if math.Sqrt(dx*dx+dy*dy) < gen.MinPlatformDistance {
					t.Errorf("seed %d: platforms %d/%d too close: %f", seed, i, j, math.Sqrt(dx*dx+dy*dy))
				}
			}
		}
	}
}

func TestGeneratorSurvivesAttemptExhaustion(t *testing.T) {
	gen := config.DefaultGameConfig().Generation
	// An absurd spacing requirement rejects almost everything; generation
	// must still terminate and return at least the starting platform.
	gen.MinPlatformDistance = 10000

	platforms := generatePlatforms(9, gen)
	if len(platforms) < 1 {
		t.Fatal("generator must always include the starting platform")
	}
	if len(platforms) > 1+gen.MaxCount {
		t.Errorf("generated %d platforms despite impossible constraints", len(platforms)-1)
	}
}
