package collision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/foxfield/shared/gamemath"
)

var unitBox = gamemath.BoxShape(1, 1)

func body(x, z, heading float64, shape gamemath.Shape) Body {
	return Body{Position: gamemath.Point{X: x, Z: z}, Heading: heading, Shape: shape}
}

func TestIsBlocked(t *testing.T) {
	wall := Obstacle{Kind: "house", Body: body(0, -2, 0, gamemath.BoxShape(4, 1))}
	tree := Obstacle{Kind: "tree", Body: body(5, 5, math.Pi/4, unitBox)}
	world := []Obstacle{wall, tree}

	tests := []struct {
		name      string
		candidate Body
		want      bool
	}{
		{"open ground", body(0, 2, 0, unitBox), false},
		{"inside wall", body(0, -2, 0, unitBox), true},
		{"overlapping wall edge", body(1.5, -1.2, 0, unitBox), true},
		{"resting against wall", body(0, -1, 0, unitBox), false},
		{"rotated tree corner", body(5.9, 5, 0, unitBox), true},
		{"beside rotated tree", body(6.3, 5, 0, unitBox), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlocked(tt.candidate, world); got != tt.want {
				t.Errorf("IsBlocked = %v, want %v", got, tt.want)
			}
		})
	}

	if IsBlocked(body(0, -2, 0, unitBox), nil) {
		t.Error("empty world should never block")
	}
}

func TestObstaclesIsBlocked(t *testing.T) {
	list := Obstacles{{Kind: "tree", Body: body(0, 0, 0, unitBox)}}
	if !list.IsBlocked(body(0.5, 0, 0, unitBox)) {
		t.Error("expected overlapping candidate to be blocked")
	}
	if list.IsBlocked(body(3, 0, 0, unitBox)) {
		t.Error("expected distant candidate to be free")
	}
}

func TestEngineMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	obstacles := make([]Obstacle, 0, 40)
	for i := 0; i < 40; i++ {
		shape := gamemath.BoxShape(0.5+r.Float64()*3, 0.5+r.Float64()*3)
		obstacles = append(obstacles, Obstacle{
			Kind: "tree",
			Body: body(r.Float64()*40-20, r.Float64()*40-20, r.Float64()*2*math.Pi, shape),
		})
	}
	engine := NewEngine(obstacles)

	for i := 0; i < 3000; i++ {
		// Sample past the obstacle area too so the out-of-area path is hit.
		candidate := body(r.Float64()*60-30, r.Float64()*60-30, r.Float64()*2*math.Pi, unitBox)
		want := IsBlocked(candidate, obstacles)
		if got := engine.IsBlocked(candidate); got != want {
			t.Fatalf("engine=%v brute=%v for candidate %+v", got, want, candidate)
		}
	}
}

func TestEngineEmpty(t *testing.T) {
	engine := NewEngine(nil)
	if engine.IsBlocked(body(0, 0, 0, unitBox)) {
		t.Error("empty engine should never block")
	}
	if n := engine.Candidates(body(0, 0, 0, unitBox)); n != 0 {
		t.Errorf("Candidates = %d, want 0", n)
	}
}

func TestEngineCandidates(t *testing.T) {
	obstacles := []Obstacle{
		{Kind: "tree", Body: body(0, 0, 0, unitBox)},
		{Kind: "tree", Body: body(30, 30, 0, unitBox)},
	}
	engine := NewEngine(obstacles)

	if n := engine.Candidates(body(0.5, 0, 0, unitBox)); n < 1 {
		t.Errorf("expected the nearby tree as a candidate, got %d", n)
	}
	if n := engine.Candidates(body(0.5, 0, 0, unitBox)); n == len(obstacles) {
		t.Error("broad phase should not hand over the far tree")
	}
	if len(engine.Obstacles()) != len(obstacles) {
		t.Errorf("Obstacles() len = %d, want %d", len(engine.Obstacles()), len(obstacles))
	}
}
