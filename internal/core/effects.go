package core

// EntityID identifies a spawned entity across the core/presentation boundary.
// IDs are allocated monotonically by the simulation and never reused within
// a session.
type EntityID uint64

// EntityKind classifies what a spawned entity represents, so the presentation
// layer can pick a visual for it.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindPlatform
	KindFruit
	KindText
)

// SoundCue is a logical sound identifier. Playback is entirely the
// presentation layer's concern.
type SoundCue int

const (
	SoundJump SoundCue = iota
	SoundCollect
	SoundDeath
)

// EffectOp discriminates the effect variants.
type EffectOp int

const (
	OpSpawn EffectOp = iota
	OpDespawn
	OpSetText
	OpSound
)

// Effect is one entry of the per-tick command buffer. The simulation emits
// effects in commit order; the presentation layer applies them at the tick
// boundary. Fields beyond Op/ID are populated per variant: Spawn carries
// kind, position, size, color and optional text; SetText carries new text;
// Sound carries only the cue.
type Effect struct {
	Op    EffectOp
	ID    EntityID
	Kind  EntityKind
	Pos   Vec2
	Size  Vec2
	Color Color
	Text  string
	Cue   SoundCue
}

// Spawn builds a spawn effect for a sized entity.
func Spawn(id EntityID, kind EntityKind, pos, size Vec2, color Color) Effect {
	return Effect{Op: OpSpawn, ID: id, Kind: kind, Pos: pos, Size: size, Color: color}
}

// SpawnText builds a spawn effect for a HUD text overlay.
func SpawnText(id EntityID, pos Vec2, color Color, text string) Effect {
	return Effect{Op: OpSpawn, ID: id, Kind: KindText, Pos: pos, Color: color, Text: text}
}

// Despawn builds a despawn effect.
func Despawn(id EntityID) Effect {
	return Effect{Op: OpDespawn, ID: id}
}

// SetText builds a text-content update effect.
func SetText(id EntityID, text string) Effect {
	return Effect{Op: OpSetText, ID: id, Text: text}
}

// Sound builds a sound-cue effect.
func Sound(cue SoundCue) Effect {
	return Effect{Op: OpSound, Cue: cue}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   Status
	Effects []Effect
}
