package sim

import (
	"testing"

	"github.com/vovakirdan/destroyer/internal/core"
)

func playerGeometry() []core.Point {
	return DefaultRules().PlayerGeometry
}

func TestUpdateBoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		center   core.Point
		compat   Compat
		expected core.FRect
	}{
		{
			name:     "corrected",
			center:   core.Point{X: 10, Y: 30},
			expected: core.NewFRect(5, 25, 15, 35),
		},
		{
			name:     "legacy y from x",
			center:   core.Point{X: 10, Y: 30},
			compat:   Compat{BBoxYFromX: true},
			expected: core.NewFRect(5, 5, 15, 15),
		},
		{
			name:     "square center agrees in both modes",
			center:   core.Point{X: 10, Y: 10},
			compat:   Compat{BBoxYFromX: true},
			expected: core.NewFRect(5, 5, 15, 15),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &Entity{Kind: KindPlayer, Center: tc.center, Geometry: playerGeometry()}
			e.UpdateBoundingBox(tc.compat)
			if e.BoundingBox != tc.expected {
				t.Errorf("BoundingBox = %+v, expected %+v", e.BoundingBox, tc.expected)
			}
		})
	}
}

func TestUpdateBoundingBoxDeterministic(t *testing.T) {
	e := &Entity{Kind: KindPlayer, Center: core.Point{X: 10, Y: 10}, Geometry: playerGeometry()}

	e.UpdateBoundingBox(Compat{})
	first := e.BoundingBox
	for i := 0; i < 10; i++ {
		e.UpdateBoundingBox(Compat{})
		if e.BoundingBox != first {
			t.Fatalf("BoundingBox changed on call %d: %+v vs %+v", i, e.BoundingBox, first)
		}
	}
}

func TestUpdateBoundingBoxEmptyGeometry(t *testing.T) {
	o := NewObstacle(7, core.Point{X: 3, Y: 4}, nil)
	o.UpdateBoundingBox(Compat{})

	expected := core.NewFRect(3, 4, 3, 4)
	if o.BoundingBox != expected {
		t.Errorf("BoundingBox = %+v, expected zero-area box at center %+v", o.BoundingBox, expected)
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		motile bool
	}{
		{KindObstacle, "Obstacle", false},
		{KindPlayer, "Player", true},
		{KindProjectile, "Projectile", true},
	}

	for _, tc := range tests {
		if tc.kind.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.kind.String(), tc.name)
		}
		if tc.kind.Motile() != tc.motile {
			t.Errorf("%s.Motile() = %v, expected %v", tc.name, tc.kind.Motile(), tc.motile)
		}
	}
}

func TestNewObstacleCopiesGeometry(t *testing.T) {
	g := []core.Point{{X: -1, Y: -1}, {X: 1, Y: 1}}
	o := NewObstacle(1, core.Point{}, g)
	g[0].X = 99

	if o.Geometry[0].X != -1 {
		t.Errorf("obstacle geometry shares caller slice")
	}
	if o.Status != StatusImmobile {
		t.Errorf("Status = %v, expected Immobile", o.Status)
	}
}
