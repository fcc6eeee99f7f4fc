// Package game implements the platformer simulation: procedural platform
// generation, fruit placement, player physics with AABB collision resolution,
// and the main-menu/in-game/game-over state machine. It is pure and
// tick-driven; all presentation changes leave through the effect buffer.
package game

import (
	"fmt"

	"github.com/quietbit/skyhop/internal/config"
	"github.com/quietbit/skyhop/internal/core"
)

// World and entity dimensions. The window is static configuration, not
// runtime-tunable.
const (
	WindowWidth  = 1200.0
	WindowHeight = 800.0

	PlayerSize     = 50.0
	PlatformHeight = 20.0
	FruitSize      = 25.0

	// Player spawn anchor and the fixed starting platform under it.
	SpawnX = 0.0
	SpawnY = 200.0

	StartPlatformX     = 0.0
	StartPlatformY     = 100.0
	StartPlatformWidth = 200.0
)

// Seed offsets keep consecutive regeneration events decorrelated while
// staying reproducible per seed.
const (
	levelSeedStride = 1000
	fruitSeedOffset = 42
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the platformer logic.
type Game struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	clock   core.Clock

	state core.AppState
	lives int
	level int

	player      playerState
	playerAlive bool
	platforms   []Platform
	platformIDs []core.EntityID
	fruit       core.Vec2
	hasFruit    bool

	// Entity bookkeeping across the core/presentation boundary.
	nextID     core.EntityID
	playerID   core.EntityID
	fruitID    core.EntityID
	staticPos  map[core.EntityID]core.Vec2
	livesText  core.EntityID
	levelText  core.EntityID
	titleText  core.EntityID
	menuTitle  core.EntityID
	promptText core.EntityID
	overText   core.EntityID
	hintText   core.EntityID

	// Effects queued during the current tick, drained by Step.
	effects []core.Effect
}

// New creates a new game instance using the system clock.
func New() *Game {
	return NewWithClock(core.SystemClock{})
}

// NewWithClock creates a game with an injected clock, for deterministic tests.
func NewWithClock(clock core.Clock) *Game {
	return &Game{clock: clock}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyhop"
}

// Reset initializes or restarts the whole session at the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	g.cfg = cfg
	g.runtime = runtime

	g.despawnAll()
	g.lives = cfg.Gameplay.Lives
	g.level = 1
	g.enterMainMenu()
}

// Step advances the simulation by one tick of dt seconds and returns the
// status plus the effects committed this tick.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	switch g.state {
	case core.StateMainMenu:
		if in.Pressed(core.ActionStart) {
			g.startRun()
		}

	case core.StateInGame:
		g.stepInGame(in, dt)

	case core.StateGameOver:
		if in.Pressed(core.ActionRestart) {
			g.startRun()
		} else if in.Pressed(core.ActionMenu) {
			// Only the game-over overlay goes away; the final scene
			// stays frozen behind the menu.
			g.despawnText(&g.overText)
			g.despawnText(&g.hintText)
			g.state = core.StateMainMenu
			g.spawnMenuUI()
		}
	}

	return core.StepResult{State: g.State(), Effects: g.drain()}
}

// State returns the externally visible game status.
func (g *Game) State() core.Status {
	return core.Status{State: g.state, Lives: g.lives, Level: g.level}
}

// Transform returns the current world position of a live entity.
// Presentation code queries this when drawing; unknown IDs report false.
func (g *Game) Transform(id core.EntityID) (core.Vec2, bool) {
	if g.playerAlive && id == g.playerID {
		return g.player.pos, true
	}
	pos, ok := g.staticPos[id]
	return pos, ok
}

// stepInGame runs one tick of the in-game systems in fixed order: input,
// gravity, integration, collision resolution, fruit collection, death.
func (g *Game) stepInGame(in core.InputFrame, dt float64) {
	if applyInput(&g.player, in, g.cfg.Physics) {
		g.emit(core.Sound(core.SoundJump))
	}
	applyGravity(&g.player, dt, g.cfg.Physics.Gravity)
	integrate(&g.player, dt)
	resolveCollisions(&g.player, g.platforms)

	g.checkFruitCollection()
	g.checkDeath()
}

// checkFruitCollection advances the level when the player reaches the fruit:
// the old layout is torn down wholesale and a fresh one generated from a new
// seed offset by the level.
func (g *Game) checkFruitCollection() {
	if !g.hasFruit {
		return
	}
	if g.player.pos.Dist(g.fruit) >= g.cfg.Gameplay.CollectRadius {
		return
	}

	g.despawnFruit()
	g.emit(core.Sound(core.SoundCollect))

	g.level++
	g.emit(core.SetText(g.levelText, fmt.Sprintf("Level: %d", g.level)))

	g.despawnPlatforms()
	g.respawnPlayer()

	seed := g.regenSeed()
	g.spawnPlatforms(seed)
	g.spawnFruit(seed + fruitSeedOffset)
}

// checkDeath handles falling off-screen: lose a life and respawn in place,
// or transition to game over when no lives remain. Lives and level are reset
// at restart time, not here, so the game-over screen shows the final run.
func (g *Game) checkDeath() {
	if g.player.pos.Y >= -WindowHeight/2 {
		return
	}

	if g.lives > 0 {
		g.lives--
	}
	g.emit(core.Sound(core.SoundDeath))
	g.emit(core.SetText(g.livesText, fmt.Sprintf("Lives: %d", g.lives)))
	g.respawnPlayer()

	if g.lives == 0 {
		g.state = core.StateGameOver
		g.despawnFruit()
		g.spawnGameOverUI()
	}
}

// startRun begins a fresh run from either the main menu or a game-over
// restart: full teardown, counters reset, new layout from a new seed.
func (g *Game) startRun() {
	g.despawnAll()

	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.state = core.StateInGame

	g.spawnPlayer()
	seed := g.regenSeed()
	g.spawnPlatforms(seed)
	g.spawnFruit(seed + fruitSeedOffset)
	g.spawnHUD()
}

// enterMainMenu shows the menu overlay.
func (g *Game) enterMainMenu() {
	g.state = core.StateMainMenu
	g.spawnMenuUI()
}

// regenSeed derives the seed for the next generation event. With an explicit
// runtime seed the sequence is fully reproducible; otherwise the wall clock
// makes each run unique while each individual event stays replayable.
func (g *Game) regenSeed() uint64 {
	base := uint64(g.runtime.Seed)
	if g.runtime.Seed == 0 {
		base = uint64(g.clock.Now())
	}
	return base + uint64(g.level)*levelSeedStride
}

// --- entity lifecycle -------------------------------------------------------

func (g *Game) allocID() core.EntityID {
	g.nextID++
	return g.nextID
}

func (g *Game) emit(e core.Effect) {
	g.effects = append(g.effects, e)
}

func (g *Game) drain() []core.Effect {
	out := g.effects
	g.effects = nil
	return out
}

func (g *Game) spawnPlayer() {
	g.player = playerState{pos: core.Vec2{X: SpawnX, Y: SpawnY}}
	g.playerAlive = true
	g.playerID = g.allocID()
	g.emit(core.Spawn(g.playerID, core.KindPlayer,
		g.player.pos, core.Vec2{X: PlayerSize, Y: PlayerSize}, core.ColorBlue))
}

// respawnPlayer teleports the existing player entity back to the anchor with
// zero velocity. No despawn/spawn pair is emitted; the sprite stays live and
// the presentation re-queries its transform.
func (g *Game) respawnPlayer() {
	g.player.pos = core.Vec2{X: SpawnX, Y: SpawnY}
	g.player.vel = core.Vec2{}
}

func (g *Game) spawnPlatforms(seed uint64) {
	g.platforms = generatePlatforms(seed, g.cfg.Generation)
	g.platformIDs = g.platformIDs[:0]
	for _, p := range g.platforms {
		id := g.allocID()
		g.platformIDs = append(g.platformIDs, id)
		g.static(id, p.Pos)
		g.emit(core.Spawn(id, core.KindPlatform,
			p.Pos, core.Vec2{X: p.Width, Y: p.Height}, core.ColorGray))
	}
}

func (g *Game) despawnPlatforms() {
	for _, id := range g.platformIDs {
		delete(g.staticPos, id)
		g.emit(core.Despawn(id))
	}
	g.platformIDs = g.platformIDs[:0]
	g.platforms = nil
}

func (g *Game) spawnFruit(seed uint64) {
	pos, ok := placeFruit(g.platforms, seed)
	if !ok {
		// No candidate platform this level; play on without a fruit.
		g.hasFruit = false
		return
	}
	g.fruit = pos
	g.hasFruit = true
	g.fruitID = g.allocID()
	g.static(g.fruitID, pos)
	g.emit(core.Spawn(g.fruitID, core.KindFruit,
		pos, core.Vec2{X: FruitSize, Y: FruitSize}, core.ColorOrange))
}

func (g *Game) despawnFruit() {
	if !g.hasFruit {
		return
	}
	delete(g.staticPos, g.fruitID)
	g.emit(core.Despawn(g.fruitID))
	g.hasFruit = false
}

func (g *Game) spawnHUD() {
	g.livesText = g.spawnText(
		core.Vec2{X: -WindowWidth/2 + 150, Y: WindowHeight/2 - 50},
		core.ColorBrightYellow, fmt.Sprintf("Lives: %d", g.lives))
	g.levelText = g.spawnText(
		core.Vec2{X: WindowWidth/2 - 150, Y: WindowHeight/2 - 50},
		core.ColorBrightCyan, fmt.Sprintf("Level: %d", g.level))
	g.titleText = g.spawnText(
		core.Vec2{X: 0, Y: WindowHeight/2 - 50},
		core.ColorOrange, "SKYHOP")
}

// spawnMenuUI shows the menu overlay. The overlay has its own entity IDs:
// on the game-over detour the in-game HUD title is still live behind the
// menu and must keep its ID until the next full teardown.
func (g *Game) spawnMenuUI() {
	g.menuTitle = g.spawnText(core.Vec2{X: 0, Y: 60}, core.ColorOrange, "SKYHOP")
	g.promptText = g.spawnText(core.Vec2{X: 0, Y: -20}, core.ColorWhite, "Press Enter to start")
}

func (g *Game) spawnGameOverUI() {
	g.overText = g.spawnText(core.Vec2{X: 0, Y: 60}, core.ColorRed, "GAME OVER")
	g.hintText = g.spawnText(core.Vec2{X: 0, Y: -20}, core.ColorWhite,
		fmt.Sprintf("Reached level %d  |  R to restart, Esc for menu", g.level))
}

func (g *Game) spawnText(pos core.Vec2, color core.Color, text string) core.EntityID {
	id := g.allocID()
	g.static(id, pos)
	g.emit(core.SpawnText(id, pos, color, text))
	return id
}

func (g *Game) despawnText(id *core.EntityID) {
	if *id == 0 {
		return
	}
	delete(g.staticPos, *id)
	g.emit(core.Despawn(*id))
	*id = 0
}

func (g *Game) static(id core.EntityID, pos core.Vec2) {
	if g.staticPos == nil {
		g.staticPos = make(map[core.EntityID]core.Vec2)
	}
	g.staticPos[id] = pos
}

// despawnAll tears down every live entity. Used on reset and run start so
// both entry paths (menu start, game-over restart) begin from a blank scene.
func (g *Game) despawnAll() {
	g.despawnFruit()
	g.despawnPlatforms()
	if g.playerAlive {
		g.emit(core.Despawn(g.playerID))
		g.playerAlive = false
	}
	for _, id := range []*core.EntityID{
		&g.livesText, &g.levelText, &g.titleText,
		&g.menuTitle, &g.promptText, &g.overText, &g.hintText,
	} {
		g.despawnText(id)
	}
}
