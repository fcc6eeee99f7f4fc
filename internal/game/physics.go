package game

import (
	"math"

	"github.com/quietbit/skyhop/internal/config"
	"github.com/quietbit/skyhop/internal/core"
)

// playerState holds the player's simulation state. Exactly one player exists
// while in-game; death with lives remaining teleports it back to the spawn
// anchor rather than replacing the entity.
type playerState struct {
	pos      core.Vec2
	vel      core.Vec2
	grounded bool
}

// box returns the player's collision box.
func (p *playerState) box() core.AABB {
	return core.AABB{Center: p.pos, W: PlayerSize, H: PlayerSize}
}

// applyInput sets horizontal velocity from held movement keys and fires the
// jump impulse on a fresh jump edge while grounded. Returns whether a jump
// fired this tick. Holding the jump key without a new edge never re-jumps.
func applyInput(p *playerState, in core.InputFrame, phys config.Physics) bool {
	horizontal := 0.0
	if in.Held(core.ActionMoveLeft) {
		horizontal -= 1.0
	}
	if in.Held(core.ActionMoveRight) {
		horizontal += 1.0
	}

	multiplier := phys.AirControl
	if p.grounded {
		multiplier = 1.0
	}
	p.vel.X = horizontal * phys.PlayerSpeed * multiplier

	if in.Pressed(core.ActionJump) && p.grounded {
		p.vel.Y = phys.JumpSpeed
		return true
	}
	return false
}

// applyGravity accelerates the player downward. Unconditional: collision
// resolution afterwards zeroes the velocity again when standing.
func applyGravity(p *playerState, dt float64, gravity float64) {
	p.vel.Y -= gravity * dt
}

// integrate advances the player position by one tick of velocity.
func integrate(p *playerState, dt float64) {
	p.pos = p.pos.Add(p.vel.Scale(dt))
}

// groundedTolerance is the band below/above a platform top within which the
// player still counts as standing. It compensates for discretization at
// landing frames, where the integrated position rarely rests exactly on the
// surface.
const groundedTolerance = 5.0

// resolveCollisions separates the player from every overlapping platform and
// recomputes the grounded flag. Grounded is never sticky: it is cleared here
// and re-derived against all platforms each tick.
//
// Overlaps resolve along the smaller-overlap axis. Horizontal resolution
// clamps to the platform edge and kills horizontal velocity. Vertical
// resolution pushes down when hit from below (killing the upward motion), or
// up onto the surface when landing, where only downward velocity is zeroed so
// an upward bounce survives the same tick it starts.
func resolveCollisions(p *playerState, platforms []Platform) {
	p.grounded = false
	half := PlayerSize / 2

	for _, plat := range platforms {
		// Re-read the player box each iteration: earlier platforms in the
		// slice may already have moved the player.
		pb := p.box()
		box := plat.Box()

		playerLeft, playerRight := pb.Left(), pb.Right()
		playerBottom, playerTop := pb.Bottom(), pb.Top()
		platLeft, platRight := box.Left(), box.Right()
		platBottom, platTop := box.Bottom(), box.Top()

		if pb.Overlaps(box) {
			overlapX := math.Min(playerRight-platLeft, platRight-playerLeft)
			overlapY := math.Min(playerTop-platBottom, platTop-playerBottom)

			if overlapX < overlapY {
				if p.pos.X < plat.Pos.X {
					p.pos.X = platLeft - half
				} else {
					p.pos.X = platRight + half
				}
				p.vel.X = 0
			} else {
				if p.pos.Y < plat.Pos.Y {
					// Hit from below.
					p.pos.Y = platBottom - half
					p.vel.Y = 0
				} else {
					// Landed on top.
					p.pos.Y = platTop + half
					if p.vel.Y <= 0 {
						p.vel.Y = 0
					}
					p.grounded = true
				}
			}
		}

		// Lenient standing check, separate from full overlap. Uses the
		// bounds read before this platform's resolution.
		if playerRight > platLeft && playerLeft < platRight &&
			playerBottom <= platTop+groundedTolerance &&
			playerBottom >= platTop-groundedTolerance &&
			p.vel.Y <= 0 {
			p.grounded = true
		}
	}

	// Keep the player within the window horizontally. No vertical ceiling.
	halfWindow := WindowWidth / 2
	p.pos.X = core.ClampF(p.pos.X, -halfWindow+half, halfWindow-half)
}
