package game

import (
	"testing"

	"github.com/quietbit/skyhop/internal/core"
)

// newTestGame builds a game with a pinned clock and explicit seed so every
// layout in the test is reproducible.
func newTestGame(seed int64) *Game {
	g := NewWithClock(core.FixedClock(12345))
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)
	return g
}

// stepEmpty advances one tick with no input held.
func stepEmpty(g *Game) core.StepResult {
	return g.Step(core.NewInputFrame(), 0.016)
}

// pressAndStep advances one tick with a single fresh key edge.
func pressAndStep(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Press(a)
	return g.Step(in, 0.016)
}

func countOp(effects []core.Effect, op core.EffectOp) int {
	n := 0
	for _, e := range effects {
		if e.Op == op {
			n++
		}
	}
	return n
}

func findSpawn(effects []core.Effect, kind core.EntityKind) (core.Effect, bool) {
	for _, e := range effects {
		if e.Op == core.OpSpawn && e.Kind == kind {
			return e, true
		}
	}
	return core.Effect{}, false
}

func TestResetEntersMainMenu(t *testing.T) {
	g := newTestGame(7)

	st := g.State()
	if st.State != core.StateMainMenu {
		t.Fatalf("state = %v, expected MainMenu", st.State)
	}
	if st.Lives != 3 || st.Level != 1 {
		t.Errorf("lives/level = %d/%d, expected 3/1", st.Lives, st.Level)
	}

	// The first tick drains the menu overlay spawns queued by Reset.
	res := stepEmpty(g)
	texts := 0
	for _, e := range res.Effects {
		if e.Op == core.OpSpawn && e.Kind == core.KindText {
			texts++
		}
	}
	if texts != 2 {
		t.Errorf("menu overlay spawned %d texts, expected 2", texts)
	}
}

func TestStartSpawnsScene(t *testing.T) {
	g := newTestGame(7)
	stepEmpty(g) // drain the menu overlay

	res := pressAndStep(g, core.ActionStart)
	if res.State.State != core.StateInGame {
		t.Fatalf("state = %v, expected InGame", res.State.State)
	}
	if res.State.Lives != 3 || res.State.Level != 1 {
		t.Errorf("lives/level = %d/%d, expected 3/1", res.State.Lives, res.State.Level)
	}

	player, ok := findSpawn(res.Effects, core.KindPlayer)
	if !ok {
		t.Fatal("no player spawn effect")
	}
	if player.Pos != (core.Vec2{X: SpawnX, Y: SpawnY}) {
		t.Errorf("player spawned at %v, expected spawn anchor", player.Pos)
	}
	if pos, live := g.Transform(player.ID); !live || pos != player.Pos {
		t.Error("player transform not queryable after spawn")
	}

	// The starting platform must be in the scene.
	foundStart := false
	for _, e := range res.Effects {
		if e.Op == core.OpSpawn && e.Kind == core.KindPlatform &&
			e.Pos.X == StartPlatformX && e.Pos.Y == StartPlatformY {
			foundStart = true
		}
	}
	if !foundStart {
		t.Error("no spawn effect for the starting platform")
	}

	if _, ok := findSpawn(res.Effects, core.KindFruit); !ok {
		t.Error("no fruit spawn effect")
	}
}

func TestFruitCollectionAdvancesLevel(t *testing.T) {
	g := newTestGame(7)
	stepEmpty(g)
	pressAndStep(g, core.ActionStart)
	if !g.hasFruit {
		t.Fatal("run started without a fruit")
	}
	oldFruitID := g.fruitID
	oldPlatformCount := len(g.platforms)

	// Drop the player onto the fruit; one tick of drift stays well inside
	// the collect radius.
	g.player.pos = g.fruit
	res := stepEmpty(g)

	if res.State.Level != 2 {
		t.Fatalf("level = %d, expected 2 after collection", res.State.Level)
	}
	if g.player.pos != (core.Vec2{X: SpawnX, Y: SpawnY}) {
		t.Errorf("player at %v, expected the spawn anchor after collection", g.player.pos)
	}

	// Tear-down and rebuild both show up in the same tick's effects.
	if got := countOp(res.Effects, core.OpDespawn); got != oldPlatformCount+1 {
		t.Errorf("despawns = %d, expected %d (old platforms + fruit)", got, oldPlatformCount+1)
	}
	if _, ok := findSpawn(res.Effects, core.KindFruit); !ok {
		t.Error("no spawn effect for the new fruit")
	}

	// Commit order: the collected fruit goes first, then the collect cue.
	if len(res.Effects) < 2 {
		t.Fatal("too few effects")
	}
	if res.Effects[0].Op != core.OpDespawn || res.Effects[0].ID != oldFruitID {
		t.Errorf("first effect = %+v, expected despawn of the collected fruit", res.Effects[0])
	}
	if res.Effects[1].Op != core.OpSound || res.Effects[1].Cue != core.SoundCollect {
		t.Errorf("second effect = %+v, expected collect cue", res.Effects[1])
	}

	foundLevelText := false
	for _, e := range res.Effects {
		if e.Op == core.OpSetText && e.Text == "Level: 2" {
			foundLevelText = true
		}
	}
	if !foundLevelText {
		t.Error("no HUD update for the new level")
	}
}

func TestDeathLosesLifeAndRespawns(t *testing.T) {
	g := newTestGame(7)
	stepEmpty(g)
	pressAndStep(g, core.ActionStart)

	g.player.pos = core.Vec2{X: 0, Y: -WindowHeight/2 - 50}
	res := stepEmpty(g)

	if res.State.State != core.StateInGame {
		t.Fatalf("state = %v, one death should not end the run", res.State.State)
	}
	if res.State.Lives != 2 {
		t.Errorf("lives = %d, expected 2", res.State.Lives)
	}
	if g.player.pos != (core.Vec2{X: SpawnX, Y: SpawnY}) {
		t.Errorf("player at %v, expected respawn at the anchor", g.player.pos)
	}
	if g.player.vel != (core.Vec2{}) {
		t.Errorf("velocity = %v, expected zero after respawn", g.player.vel)
	}

	foundCue, foundText := false, false
	for _, e := range res.Effects {
		if e.Op == core.OpSound && e.Cue == core.SoundDeath {
			foundCue = true
		}
		if e.Op == core.OpSetText && e.Text == "Lives: 2" {
			foundText = true
		}
	}
	if !foundCue {
		t.Error("no death cue")
	}
	if !foundText {
		t.Error("no HUD update for the lost life")
	}
}

func TestThirdDeathEndsRun(t *testing.T) {
	g := newTestGame(7)
	stepEmpty(g)
	pressAndStep(g, core.ActionStart)

	var last core.StepResult
	for i := 0; i < 3; i++ {
		g.player.pos = core.Vec2{X: 0, Y: -WindowHeight/2 - 50}
		last = stepEmpty(g)
	}

	if last.State.State != core.StateGameOver {
		t.Fatalf("state = %v, expected GameOver after three deaths", last.State.State)
	}
	if last.State.Lives != 0 {
		t.Errorf("lives = %d, expected 0", last.State.Lives)
	}
	// The scene stays up behind the overlay; only the fruit is removed.
	if len(g.platforms) == 0 {
		t.Error("platforms should survive into the game-over screen")
	}
	if g.hasFruit {
		t.Error("fruit should be gone on game over")
	}

	// A fourth fall must not drive lives negative.
	g.state = core.StateInGame
	g.player.pos = core.Vec2{X: 0, Y: -WindowHeight/2 - 50}
	res := stepEmpty(g)
	if res.State.Lives < 0 {
		t.Errorf("lives = %d, must not go negative", res.State.Lives)
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newTestGame(7)
	stepEmpty(g)
	pressAndStep(g, core.ActionStart)
	for i := 0; i < 3; i++ {
		g.player.pos = core.Vec2{X: 0, Y: -WindowHeight/2 - 50}
		stepEmpty(g)
	}

	res := pressAndStep(g, core.ActionRestart)
	if res.State.State != core.StateInGame {
		t.Fatalf("state = %v, expected InGame after restart", res.State.State)
	}
	if res.State.Lives != 3 || res.State.Level != 1 {
		t.Errorf("lives/level = %d/%d, expected 3/1 after restart", res.State.Lives, res.State.Level)
	}
	if _, ok := findSpawn(res.Effects, core.KindPlayer); !ok {
		t.Error("restart should spawn a fresh player")
	}
}

func TestGameOverMenuKeepsScene(t *testing.T) {
	g := newTestGame(7)
	stepEmpty(g)
	pressAndStep(g, core.ActionStart)
	for i := 0; i < 3; i++ {
		g.player.pos = core.Vec2{X: 0, Y: -WindowHeight/2 - 50}
		stepEmpty(g)
	}
	platformCount := len(g.platforms)

	res := pressAndStep(g, core.ActionMenu)
	if res.State.State != core.StateMainMenu {
		t.Fatalf("state = %v, expected MainMenu", res.State.State)
	}
	if len(g.platforms) != platformCount {
		t.Error("returning to the menu must not tear down the scene")
	}
	// Two overlay texts out, two menu texts in.
	if got := countOp(res.Effects, core.OpDespawn); got != 2 {
		t.Errorf("despawns = %d, expected 2 (the game-over overlay)", got)
	}
	if got := countOp(res.Effects, core.OpSpawn); got != 2 {
		t.Errorf("spawns = %d, expected 2 (the menu overlay)", got)
	}
}

func TestExplicitSeedIsDeterministic(t *testing.T) {
	a := newTestGame(99)
	b := newTestGame(99)
	stepEmpty(a)
	stepEmpty(b)
	pressAndStep(a, core.ActionStart)
	pressAndStep(b, core.ActionStart)

	if len(a.platforms) != len(b.platforms) {
		t.Fatalf("platform counts differ: %d vs %d", len(a.platforms), len(b.platforms))
	}
	for i := range a.platforms {
		if a.platforms[i] != b.platforms[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, a.platforms[i], b.platforms[i])
		}
	}
	if a.hasFruit != b.hasFruit || a.fruit != b.fruit {
		t.Error("fruit placement differs between identically seeded runs")
	}
}

func TestJumpEmitsCue(t *testing.T) {
	g := newTestGame(7)
	stepEmpty(g)
	pressAndStep(g, core.ActionStart)

	// Settle onto the starting platform so the player is grounded.
	for i := 0; i < 120; i++ {
		stepEmpty(g)
		if g.player.grounded {
			break
		}
	}
	if !g.player.grounded {
		t.Fatal("player never settled onto the starting platform")
	}

	res := pressAndStep(g, core.ActionJump)
	found := false
	for _, e := range res.Effects {
		if e.Op == core.OpSound && e.Cue == core.SoundJump {
			found = true
		}
	}
	if !found {
		t.Error("no jump cue on a grounded jump edge")
	}
	if g.player.vel.Y <= 0 {
		t.Errorf("vel.Y = %f, expected upward after jump", g.player.vel.Y)
	}
}

// Replays start -> game over -> menu -> start while folding the effect
// stream into a live-entity set. Every entity from the first run, HUD
// included, must be despawned by the restart; nothing may leak across.
func TestMenuDetourRestartLeavesNoStaleEntities(t *testing.T) {
	g := newTestGame(7)

	live := make(map[core.EntityID]bool)
	track := func(res core.StepResult) {
		for _, e := range res.Effects {
			switch e.Op {
			case core.OpSpawn:
				live[e.ID] = true
			case core.OpDespawn:
				delete(live, e.ID)
			}
		}
	}

	track(stepEmpty(g))
	track(pressAndStep(g, core.ActionStart))
	for i := 0; i < 3; i++ {
		g.player.pos = core.Vec2{X: 0, Y: -WindowHeight/2 - 50}
		track(stepEmpty(g))
	}
	track(pressAndStep(g, core.ActionMenu))

	firstRun := make([]core.EntityID, 0, len(live))
	for id := range live {
		firstRun = append(firstRun, id)
	}

	track(pressAndStep(g, core.ActionStart))
	for _, id := range firstRun {
		if live[id] {
			pos, _ := g.Transform(id)
			t.Errorf("entity %d at %+v survived the restart", id, pos)
		}
	}

	// The live set must exactly mirror what the simulation still tracks.
	for id := range live {
		if _, ok := g.Transform(id); !ok {
			t.Errorf("live entity %d has no transform", id)
		}
	}
	want := 1 + len(g.platforms) + 3 // player, platforms, HUD texts
	if g.hasFruit {
		want++
	}
	if len(live) != want {
		t.Errorf("live entities = %d, expected %d", len(live), want)
	}
}
