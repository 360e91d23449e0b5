package entity

import (
	"image/color"
	"math/rand"

	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
	"github.com/Kassicus/colorsurvivor/internal/ecs"
)

// Particle is a short-lived cosmetic square with no gameplay effect
type Particle struct {
	Body

	Life  int // remaining ticks
	owner *Emitter
}

// Update integrates motion and burns one tick of life.
// It returns false once the particle has expired.
func (p *Particle) Update(dt float64) bool {
	p.Integrate(dt)
	p.Life--
	return p.Life > 0
}

// Owner returns the emitter that spawned p, or nil
func (p *Particle) Owner() *Emitter {
	return p.owner
}

// ColorPolicy picks particle colors for an emitter variant
type ColorPolicy int

const (
	ColorGray ColorPolicy = iota // one gray per batch, channel >= floor
	ColorRed                     // red channel only, per particle
)

// EmitterSpec holds the randomization ranges for an emitter
type EmitterSpec struct {
	Max              int
	MinSize, MaxSize int
	Offset           int // spawn jitter around the anchor on both axes
	MinLife, MaxLife int
	MinVel, MaxVel   float64
	Policy           ColorPolicy
	ColorFloor       uint8
}

// Emitter keeps a capped set of live particles around an anchor,
// replacing expired ones on every refill.
type Emitter struct {
	Spec EmitterSpec
	live *ecs.Set[*Particle]
}

// NewEmitter creates an emitter with no live particles
func NewEmitter(spec EmitterSpec) *Emitter {
	return &Emitter{
		Spec: spec,
		live: ecs.NewSet[*Particle]("emitter"),
	}
}

// Len returns the number of live particles
func (e *Emitter) Len() int {
	return e.live.Len()
}

// Has reports whether p is one of this emitter's live particles
func (e *Emitter) Has(p *Particle) bool {
	return e.live.Has(p)
}

// Detach removes p from the live set so the next refill replaces it
func (e *Emitter) Detach(v any) bool {
	return e.live.Detach(v)
}

// Refill tops the live set back up to Max around anchor and returns the
// newly created particles so the caller can place them in the world.
func (e *Emitter) Refill(anchor geom.Vec2, rng *rand.Rand) []*Particle {
	count := e.Spec.Max - e.live.Len()
	if count <= 0 {
		return nil
	}

	batch := e.batchColor(rng)
	out := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		size := float64(randInt(rng, e.Spec.MinSize, e.Spec.MaxSize))
		pos := geom.V(
			anchor.X+float64(randInt(rng, -e.Spec.Offset, e.Spec.Offset)),
			anchor.Y+float64(randInt(rng, -e.Spec.Offset, e.Spec.Offset)),
		)
		fill := batch
		if e.Spec.Policy == ColorRed {
			fill = randomRed(rng, e.Spec.ColorFloor)
		}

		p := &Particle{
			Body:  NewBody(pos, size, Look{Fill: fill}),
			Life:  randInt(rng, e.Spec.MinLife, e.Spec.MaxLife),
			owner: e,
		}
		p.Vel = geom.V(
			randFloat(rng, e.Spec.MinVel, e.Spec.MaxVel),
			randFloat(rng, e.Spec.MinVel, e.Spec.MaxVel),
		)

		e.live.Add(p)
		out = append(out, p)
	}
	return out
}

func (e *Emitter) batchColor(rng *rand.Rand) color.RGBA {
	if e.Spec.Policy != ColorGray {
		return color.RGBA{}
	}
	v := uint8(randInt(rng, int(e.Spec.ColorFloor), 255))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

func randomRed(rng *rand.Rand, floor uint8) color.RGBA {
	return color.RGBA{R: uint8(randInt(rng, int(floor), 255)), A: 255}
}

// randInt returns a value in [lo, hi] inclusive
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
