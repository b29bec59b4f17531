// Package stones counts the stones produced by repeatedly blinking at a row
// of engraved stones (Advent of Code 2024, day 11).
//
// Every blink replaces each stone independently: a 0 becomes a 1, a stone with
// an even number of decimal digits splits into its left and right halves, and
// any other stone is multiplied by 2024. The row grows exponentially, so a
// Counter never materializes it; it only counts.
package stones

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrOverflow is returned when multiplying a stone by 2024 would exceed the
// range of a uint64.
var ErrOverflow = errors.New("stone value overflows uint64")

// Multiplier is the factor applied to stones that neither are 0 nor split.
const Multiplier = 2024

var pow10 [20]uint64

func init() {
	pow10[0] = 1
	for i := 1; i < len(pow10); i++ {
		pow10[i] = pow10[i-1] * 10
	}
}

// Transition returns the one or two stones that v becomes after one blink,
// in order.
func Transition(v uint64) ([]uint64, error) {
	if v == 0 {
		return []uint64{1}, nil
	}
	if d := numDigits(v); d%2 == 0 {
		half := pow10[d/2]
		return []uint64{v / half, v % half}, nil
	}
	hi, lo := bits.Mul64(v, Multiplier)
	if hi != 0 {
		return nil, fmt.Errorf("%d * %d: %w", v, Multiplier, ErrOverflow)
	}
	return []uint64{lo}, nil
}

func numDigits(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
