package core

import (
	"math"
	"testing"
)

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		deg      float64
		expected Vec
	}{
		{"zero angle", V(3, 4), 0, V(3, 4)},
		{"quarter turn", V(1, 0), 90, V(0, 1)},
		{"half turn", V(1, 2), 180, V(-1, -2)},
		{"full turn", V(5, -2), 360, V(5, -2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.deg)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.deg, got, tc.expected)
			}
		})
	}
}

func TestDist(t *testing.T) {
	if d := Dist(V(0, 0), V(3, 4)); d != 5 {
		t.Errorf("Dist = %f, expected 5", d)
	}
	if Dist(V(1, 2), V(7, -3)) != Dist(V(7, -3), V(1, 2)) {
		t.Error("Dist should be symmetric")
	}
}

func TestVecArithmetic(t *testing.T) {
	v := V(1, 2).Add(V(3, 4)).Sub(V(1, 1)).Scale(2)
	if v != V(6, 10) {
		t.Errorf("expected (6, 10), got %v", v)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should drop the sign")
	}
}
