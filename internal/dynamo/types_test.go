package dynamo

import (
	"math"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()

	c[0] = 99
	if s[0] != 1 {
		t.Error("clone aliases the original backing array")
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{1, 2}).IsValid() {
		t.Error("finite state reported invalid")
	}
	if (State{1, math.NaN()}).IsValid() {
		t.Error("NaN state reported valid")
	}
	if (State{math.Inf(1), 0}).IsValid() {
		t.Error("Inf state reported valid")
	}
}

func TestStateArithmetic(t *testing.T) {
	a := State{1, 2}
	b := State{3, 4}

	sum := a.Add(b)
	if sum[0] != 4 || sum[1] != 6 {
		t.Errorf("Add: got %v", sum)
	}

	diff := b.Sub(a)
	if diff[0] != 2 || diff[1] != 2 {
		t.Errorf("Sub: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled[0] != 2 || scaled[1] != 4 {
		t.Errorf("Scale: got %v", scaled)
	}

	if math.Abs((State{3, 4}).Norm()-5) > 1e-12 {
		t.Error("Norm of {3,4} should be 5")
	}
}

func TestConfigGridSpacing(t *testing.T) {
	cfg := Config{WMin: 0, WMax: 3000, Points: 3000}
	want := 3000.0 / 2999.0
	if math.Abs(cfg.GridSpacing()-want) > 1e-12 {
		t.Errorf("spacing: got %f, want %f", cfg.GridSpacing(), want)
	}
}

func TestSimErrorMessage(t *testing.T) {
	err := SimError{Mass: 12.5, Point: 3, Message: "boom"}
	want := "point 3 (w=12.5000 kg): boom"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
