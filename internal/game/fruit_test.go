package game

import (
	"testing"

	"github.com/quietbit/skyhop/internal/config"
	"github.com/quietbit/skyhop/internal/core"
)

func TestFruitPlacementEmptyInput(t *testing.T) {
	if _, ok := placeFruit(nil, 42); ok {
		t.Error("placeFruit(nil) should place nothing")
	}
}

func TestFruitPlacementOnlyStartingPlatform(t *testing.T) {
	platforms := []Platform{{
		Pos:    core.Vec2{X: StartPlatformX, Y: StartPlatformY},
		Width:  StartPlatformWidth,
		Height: PlatformHeight,
	}}
	if _, ok := placeFruit(platforms, 42); ok {
		t.Error("the starting platform must never receive the fruit")
	}
}

func TestFruitPlacementRestsOnPlatformTop(t *testing.T) {
	platforms := []Platform{
		{Pos: core.Vec2{X: 0, Y: StartPlatformY}, Width: 200, Height: PlatformHeight},
		{Pos: core.Vec2{X: -300, Y: 250}, Width: 150, Height: PlatformHeight},
	}

	pos, ok := placeFruit(platforms, 7)
	if !ok {
		t.Fatal("expected a fruit position")
	}
	if pos.X != -300 {
		t.Errorf("fruit x = %f, expected centered on the platform at -300", pos.X)
	}
	// Platform top plus half the fruit height: 250 + 10 + 12.5
	if pos.Y != 272.5 {
		t.Errorf("fruit y = %f, expected 272.5", pos.Y)
	}
}

func TestFruitPlacementNeverSelectsStartingPlatform(t *testing.T) {
	gen := config.DefaultGameConfig().Generation

	for seed := uint64(1); seed <= 200; seed++ {
		platforms := generatePlatforms(seed, gen)
		pos, ok := placeFruit(platforms, seed)
		if !ok {
			// Attempt exhaustion can leave only the starting platform.
			continue
		}
		if pos.Y == StartPlatformY+PlatformHeight/2+FruitSize/2 && pos.X == StartPlatformX {
			t.Errorf("seed %d: fruit placed on the starting platform", seed)
		}
	}
}

func TestFruitPlacementDeterministic(t *testing.T) {
	gen := config.DefaultGameConfig().Generation
	platforms := generatePlatforms(99, gen)

	a, okA := placeFruit(platforms, 1234)
	b, okB := placeFruit(platforms, 1234)
	if okA != okB || a != b {
		t.Errorf("placement not deterministic: %v/%v vs %v/%v", a, okA, b, okB)
	}
}
