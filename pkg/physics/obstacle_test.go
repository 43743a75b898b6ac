// pkg/physics/obstacle_test.go
package physics

import (
	"testing"
)

func TestObstacle_SpansX(t *testing.T) {
	obstacle := NewObstacle(100, 50, 200) // left 100, right 300

	tests := []struct {
		name     string
		x        float64
		expected bool
	}{
		{name: "inside", x: 200, expected: true},
		{name: "at_left_edge", x: 100, expected: false}, // strict inequality
		{name: "at_right_edge", x: 300, expected: false},
		{name: "left_of_obstacle", x: 50, expected: false},
		{name: "right_of_obstacle", x: 350, expected: false},
		{name: "just_inside_left", x: 100.001, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := obstacle.SpansX(tt.x); got != tt.expected {
				t.Errorf("SpansX(%v) = %v, expected %v", tt.x, got, tt.expected)
			}
		})
	}
}

func TestObstacle_LandingY(t *testing.T) {
	obstacle := NewObstacle(0, 100, 50)

	// Landing line sits half a flake above the top edge, shifted down by the
	// per-flake stack offset.
	if got := obstacle.LandingY(4, 0); got != 98 {
		t.Errorf("LandingY(4, 0) = %v, expected 98", got)
	}
	if got := obstacle.LandingY(4, 3); got != 101 {
		t.Errorf("LandingY(4, 3) = %v, expected 101", got)
	}
}

func TestObstacle_InLandingWindow(t *testing.T) {
	obstacle := NewObstacle(0, 100, 50)
	// size 4, offset 0: landY = 98, window [98, 108].

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{name: "at_landing_line", y: 98, expected: true},
		{name: "middle_of_window", y: 103, expected: true},
		{name: "bottom_of_window", y: 108, expected: true},
		{name: "above_window", y: 97.9, expected: false},
		{name: "below_window", y: 108.1, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := obstacle.InLandingWindow(tt.y, 4, 0); got != tt.expected {
				t.Errorf("InLandingWindow(%v) = %v, expected %v", tt.y, got, tt.expected)
			}
		})
	}
}

func TestNewObstacle(t *testing.T) {
	obstacle := NewObstacle(10, 20, 30)
	if obstacle.Left != 10 || obstacle.Right != 40 || obstacle.Top != 20 || obstacle.Width != 30 {
		t.Errorf("NewObstacle(10, 20, 30) = %+v", obstacle)
	}
}
