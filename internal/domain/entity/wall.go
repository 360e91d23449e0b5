package entity

import "github.com/Kassicus/colorsurvivor/internal/domain/geom"

// CellSize is the default wall grid cell in world units
const CellSize = 50

// Wall is a static obstacle occupying whole grid cells
type Wall struct {
	Body
}

// NewWall creates a wall whose top-left cell is (gx, gy), spanning
// w by h cells of the given size.
func NewWall(gx, gy, w, h int, cell float64, look Look) *Wall {
	width := float64(w) * cell
	height := float64(h) * cell
	return &Wall{
		Body: Body{
			Pos:   geom.V(float64(gx)*cell+width/2, float64(gy)*cell+height/2),
			HalfW: width / 2,
			HalfH: height / 2,
			Look:  look,
		},
	}
}
