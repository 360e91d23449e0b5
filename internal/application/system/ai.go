package system

import (
	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
	"github.com/Kassicus/colorsurvivor/internal/domain/geom"
)

// Chase points every following enemy at target. Velocity set here is
// applied on the next tick's integration. It returns how many enemies
// were steered.
func Chase(enemies []*entity.Enemy, target geom.Vec2) int {
	n := 0
	for _, e := range enemies {
		if !e.Kind.Behavior().Follows {
			continue
		}
		e.Chase(target)
		n++
	}
	return n
}
