package ranged

import "testing"

// TestNew_ClampsOutOfBoundsValue tests that construction clamps instead of
// panicking or erroring on an out-of-range initial value.
func TestNew_ClampsOutOfBoundsValue(t *testing.T) {
	r := New(100, 0, 10)
	if r.Value() != 10 {
		t.Errorf("New(100, 0, 10).Value() = %d, want 10", r.Value())
	}

	r = New(-100, 0, 10)
	if r.Value() != 0 {
		t.Errorf("New(-100, 0, 10).Value() = %d, want 0", r.Value())
	}
}

// TestSub_SaturatesAtMin mirrors the spec's boundary example:
// Ranged(min, [min,max]) - 1 == Ranged(min, ...).
func TestSub_SaturatesAtMin(t *testing.T) {
	r := NewMin(0, 10)
	r = r.Sub(1)
	if r.Value() != 0 {
		t.Errorf("Sub(1) at min = %d, want 0 (saturated)", r.Value())
	}
}

// TestAdd_SaturatesAtMax tests the symmetric saturation case.
func TestAdd_SaturatesAtMax(t *testing.T) {
	r := NewMax(0, 10)
	r = r.Add(1)
	if r.Value() != 10 {
		t.Errorf("Add(1) at max = %d, want 10 (saturated)", r.Value())
	}
}

// TestMiddle tests the documented (max-min)/2 formula, including integer
// truncation.
func TestMiddle(t *testing.T) {
	tests := []struct {
		min, max, want int
	}{
		{0, 10, 5},
		{0, 9, 4},
		{5, 5, 0},
	}
	for _, tt := range tests {
		r := New(tt.min, tt.min, tt.max)
		if got := r.Middle(); got != tt.want {
			t.Errorf("Middle() for [%d,%d] = %d, want %d", tt.min, tt.max, got, tt.want)
		}
	}
}

// TestPercent tests the normalized position formula across the range,
// including the endpoints.
func TestPercent(t *testing.T) {
	tests := []struct {
		value, min, max int
		want            float64
	}{
		{0, 0, 10, 0.0},
		{10, 0, 10, 1.0},
		{5, 0, 10, 0.5},
	}
	for _, tt := range tests {
		r := New(tt.value, tt.min, tt.max)
		if got := r.Percent(); got != tt.want {
			t.Errorf("Percent() for %d in [%d,%d] = %f, want %f", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

// TestIsMinIsMax tests the boundary predicates directly.
func TestIsMinIsMax(t *testing.T) {
	r := NewMin(0, 10)
	if !r.IsMin() {
		t.Error("NewMin().IsMin() = false, want true")
	}
	if r.IsMax() {
		t.Error("NewMin().IsMax() = true, want false")
	}

	r = r.SetToMax()
	if !r.IsMax() {
		t.Error("SetToMax().IsMax() = false, want true")
	}
}
