package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	assert.Equal(t, V(4, 2), a.Add(b))
	assert.Equal(t, V(2, 6), a.Sub(b))
	assert.Equal(t, V(6, 8), a.Scale(2))
	assert.Equal(t, 5.0, a.Length())
	assert.True(t, Vec2{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(V(0, 0), V(3, 4)))
	assert.Equal(t, 0.0, Distance(V(7, 7), V(7, 7)))
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec2
		speed    float64
		want     Vec2
	}{
		{"east", V(0, 0), V(10, 0), 1, V(1, 0)},
		{"north scaled", V(5, 5), V(5, -20), 100, V(0, -100)},
		{"toward origin", V(100, 100), V(0, 0), 1, V(-math.Sqrt2/2, -math.Sqrt2/2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Direction(tt.from, tt.to, tt.speed)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestDirection_UnitLength(t *testing.T) {
	points := []Vec2{V(1, 2), V(-300, 7), V(0.001, 0), V(1e6, -1e6)}
	for _, p := range points {
		d := Direction(V(0, 0), p, 1)
		assert.InDelta(t, 1.0, d.Length(), 1e-9, "direction to %v", p)
	}
}

func TestDirection_SamePointIsZero(t *testing.T) {
	d := Direction(V(42, 42), V(42, 42), 250)

	assert.Equal(t, Vec2{}, d)
	assert.False(t, math.IsNaN(d.X))
	assert.False(t, math.IsNaN(d.Y))
}

func TestRect_FromCenter(t *testing.T) {
	r := RectFromCenter(V(100, 50), 20, 10)

	assert.Equal(t, 80.0, r.Left())
	assert.Equal(t, 120.0, r.Right())
	assert.Equal(t, 40.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, V(100, 50), r.Center())
}

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}
