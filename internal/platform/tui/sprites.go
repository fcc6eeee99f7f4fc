package tui

import (
	"math"
	"sort"

	"github.com/quietbit/skyhop/internal/core"
	"github.com/quietbit/skyhop/internal/game"
)

// sprite is the presentation-side record of a spawned entity. Position is
// the last value the simulation reported; dynamic entities are re-queried
// through Game.Transform on every draw.
type sprite struct {
	kind  core.EntityKind
	pos   core.Vec2
	size  core.Vec2
	color core.Color
	text  string
}

// spriteStore applies the simulation's effect stream and keeps the set of
// live sprites for drawing.
type spriteStore struct {
	sprites map[core.EntityID]*sprite
}

func newSpriteStore() *spriteStore {
	return &spriteStore{
		sprites: make(map[core.EntityID]*sprite),
	}
}

// Apply folds one tick's effects into the store. Sound effects are skipped;
// the model routes those to the audio layer.
func (st *spriteStore) Apply(effects []core.Effect) {
	for _, e := range effects {
		switch e.Op {
		case core.OpSpawn:
			st.sprites[e.ID] = &sprite{
				kind:  e.Kind,
				pos:   e.Pos,
				size:  e.Size,
				color: e.Color,
				text:  e.Text,
			}
		case core.OpDespawn:
			delete(st.sprites, e.ID)
		case core.OpSetText:
			if sp, ok := st.sprites[e.ID]; ok {
				sp.text = e.Text
			}
		}
	}
}

// Clear drops every sprite.
func (st *spriteStore) Clear() {
	st.sprites = make(map[core.EntityID]*sprite)
}

// drawOrder controls layering: platforms under fruit under player, text
// always on top.
func drawOrder(k core.EntityKind) int {
	switch k {
	case core.KindPlatform:
		return 0
	case core.KindFruit:
		return 1
	case core.KindPlayer:
		return 2
	default:
		return 3
	}
}

// Fill runes per entity kind.
const (
	playerRune   = '█'
	platformRune = '▒'
	fruitRune    = '●'
)

// worldToCell maps a world position (centered origin, +Y up) onto the screen
// buffer (top-left origin, +Y down).
func worldToCell(pos core.Vec2, screenW, screenH int) (int, int) {
	cx := (pos.X + game.WindowWidth/2) / game.WindowWidth * float64(screenW)
	cy := (game.WindowHeight/2 - pos.Y) / game.WindowHeight * float64(screenH)
	return int(cx), int(cy)
}

// cellSpan converts a world extent to a cell count, never below one cell so
// thin entities stay visible.
func cellSpan(worldSize float64, worldTotal float64, cells int) int {
	return core.Max(int(math.Round(worldSize/worldTotal*float64(cells))), 1)
}

// Draw renders every live sprite onto the screen buffer. Dynamic positions
// come from the simulation's transform query; sprites the simulation no
// longer tracks keep their last known position.
func (st *spriteStore) Draw(s *core.Screen, g Game) {
	ids := make([]core.EntityID, 0, len(st.sprites))
	for id := range st.sprites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		oi, oj := drawOrder(st.sprites[ids[i]].kind), drawOrder(st.sprites[ids[j]].kind)
		if oi != oj {
			return oi < oj
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		sp := st.sprites[id]
		pos := sp.pos
		if live, ok := g.Transform(id); ok {
			pos = live
		}

		if sp.kind == core.KindText {
			x, y := worldToCell(pos, s.Width(), s.Height())
			// Center on the anchor, then keep the text on-screen.
			x = core.Clamp(x-len(sp.text)/2, 0, core.Max(s.Width()-len(sp.text), 0))
			s.DrawText(x, y, sp.text, sp.color)
			continue
		}

		w := cellSpan(sp.size.X, game.WindowWidth, s.Width())
		h := cellSpan(sp.size.Y, game.WindowHeight, s.Height())
		// Top-left corner of the entity's box.
		x, y := worldToCell(core.Vec2{X: pos.X - sp.size.X/2, Y: pos.Y + sp.size.Y/2}, s.Width(), s.Height())

		var fill rune
		switch sp.kind {
		case core.KindPlayer:
			fill = playerRune
		case core.KindPlatform:
			fill = platformRune
		case core.KindFruit:
			fill = fruitRune
		default:
			fill = '?'
		}
		s.DrawRect(core.NewRect(x, y, w, h), fill, sp.color)
	}
}
