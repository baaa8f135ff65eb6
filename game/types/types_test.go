package types

import "testing"

func TestGridContains(t *testing.T) {
	g := Square(20)
	for _, p := range []Point{{0, 0}, {19, 19}, {0, 19}, {19, 0}} {
		if !g.Contains(p) {
			t.Errorf("%v should be inside", p)
		}
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {20, 0}, {0, 20}} {
		if g.Contains(p) {
			t.Errorf("%v should be outside", p)
		}
	}
	if g.Cells() != 400 {
		t.Errorf("cells %d", g.Cells())
	}
}

func TestDirections(t *testing.T) {
	for _, d := range []Point{Up, Down, Left, Right} {
		if d.Add(d.Neg()) != Still {
			t.Errorf("%v and its negation do not cancel", d)
		}
	}
	if (Point{X: 3, Y: 4}).Add(Up) != (Point{X: 3, Y: 3}) {
		t.Error("Up should decrease y")
	}
}
