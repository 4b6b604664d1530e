package types

import "testing"

func TestWrapEdges(t *testing.T) {
	grid := Grid{Width: 50, Height: 40}

	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{"left from x=0", Point{0, 7}, Left, Point{49, 7}},
		{"right from x=w-1", Point{49, 7}, Right, Point{0, 7}},
		{"up from y=0", Point{12, 0}, Up, Point{12, 39}},
		{"down from y=h-1", Point{12, 39}, Down, Point{12, 0}},
		{"interior", Point{10, 10}, Right, Point{11, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grid.Wrap(tt.from.Add(tt.dir))
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("Expected opposite of %v to be %v, got %v", d, want, d.Opposite())
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
	}
}

func TestTurnsAreInverse(t *testing.T) {
	for _, d := range Directions {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("TurnLeft/TurnRight do not cancel for %v", d)
		}
	}
}

func TestSafeZone(t *testing.T) {
	grid := Grid{Width: 50, Height: 40}

	if !grid.InSafeZone(grid.Center()) {
		t.Fatal("Expected center to be inside the safe zone")
	}
	if !grid.InSafeZone(Point{X: 20, Y: 15}) {
		t.Error("Expected (20,15) to be inside the safe zone")
	}
	if grid.InSafeZone(Point{X: 19, Y: 20}) {
		t.Error("Expected (19,20) to be outside the safe zone")
	}
	if grid.InSafeZone(Point{X: 25, Y: 26}) {
		t.Error("Expected (25,26) to be outside the safe zone")
	}
}

func TestDistanceWraps(t *testing.T) {
	grid := Grid{Width: 50, Height: 40}
	if d := grid.Distance(Point{0, 0}, Point{49, 39}); d != 2 {
		t.Errorf("Expected toroidal distance 2, got %d", d)
	}
}

func TestDifficultyCodes(t *testing.T) {
	for i, d := range Difficulties {
		if d.Code() != i+1 {
			t.Errorf("Expected code %d for %v, got %d", i+1, d, d.Code())
		}
		back, ok := DifficultyFromCode(d.Code())
		if !ok || back != d {
			t.Errorf("Code %d did not decode back to %v", d.Code(), d)
		}
		parsed, ok := ParseDifficulty(d.String())
		if !ok || parsed != d {
			t.Errorf("Name %q did not parse back to %v", d.String(), d)
		}
	}

	if _, ok := DifficultyFromCode(5); ok {
		t.Error("Expected code 5 to be rejected")
	}
}

func TestBaseTickRates(t *testing.T) {
	want := map[Difficulty]int{Easy: 6, Medium: 7, Hard: 9, SuperHard: 10}
	for d, rate := range want {
		if d.BaseTickRate() != rate {
			t.Errorf("Expected base rate %d for %v, got %d", rate, d, d.BaseTickRate())
		}
	}
}
