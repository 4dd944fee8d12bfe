// Package ranged implements a bounded integer scalar that saturates at its
// limits instead of wrapping or erroring. It backs every sub-state of the
// player's Mind machine, Will, the anxiety and sobriety counters, and
// panic/stun timers.
package ranged

// Ranged is an integer value clamped to [Min, Max].
type Ranged struct {
	value int
	min   int
	max   int
}

// New constructs a Ranged with the given value, clamped to [min, max].
// min must not exceed max.
func New(value, min, max int) Ranged {
	if min > max {
		panic("ranged: min must not exceed max")
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return Ranged{value: value, min: min, max: max}
}

// NewMin constructs a Ranged set to its minimum.
func NewMin(min, max int) Ranged {
	return New(min, min, max)
}

// NewMax constructs a Ranged set to its maximum.
func NewMax(min, max int) Ranged {
	return New(max, min, max)
}

// Value returns the current value.
func (r Ranged) Value() int { return r.value }

// Min returns the lower bound.
func (r Ranged) Min() int { return r.min }

// Max returns the upper bound.
func (r Ranged) Max() int { return r.max }

// IsMin reports whether the value is at its lower bound.
func (r Ranged) IsMin() bool { return r.value == r.min }

// IsMax reports whether the value is at its upper bound.
func (r Ranged) IsMax() bool { return r.value == r.max }

// SetToMin returns a copy pinned to the lower bound.
func (r Ranged) SetToMin() Ranged {
	r.value = r.min
	return r
}

// SetToMax returns a copy pinned to the upper bound.
func (r Ranged) SetToMax() Ranged {
	r.value = r.max
	return r
}

// Middle is the bound midpoint: (max-min)/2, integer division.
func (r Ranged) Middle() int {
	return (r.max - r.min) / 2
}

// Percent is the value's position within the range, in [0, 1]. A
// zero-width range (min == max) reports 1.0.
func (r Ranged) Percent() float64 {
	span := r.max - r.min
	if span == 0 {
		return 1.0
	}
	return float64(r.value-r.min) / float64(span)
}

// Add returns a copy with n added to the value, saturating at Max.
func (r Ranged) Add(n int) Ranged {
	return r.set(r.value + n)
}

// Sub returns a copy with n subtracted from the value, saturating at Min.
func (r Ranged) Sub(n int) Ranged {
	return r.set(r.value - n)
}

// WithValue returns a copy with the value replaced, clamped to bounds.
func (r Ranged) WithValue(value int) Ranged {
	return r.set(value)
}

func (r Ranged) set(value int) Ranged {
	if value < r.min {
		value = r.min
	}
	if value > r.max {
		value = r.max
	}
	r.value = value
	return r
}
