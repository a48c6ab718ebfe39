// Package sequence generates the periodic orbit of a base under repeated
// multiplication modulo a fixed modulus.
package sequence

import (
	"errors"

	"github.com/san-kum/modharm/internal/modmath"
)

// DefaultMaxLen bounds orbit length for pathological inputs. The value is a
// safety cap, not derived from modulus size.
const DefaultMaxLen = 5000

// ErrZeroModulus indicates a modulus of zero, for which no orbit exists.
var ErrZeroModulus = errors.New("sequence: modulus must be greater than zero")

// A Sequence holds one full period of base^i mod m for i = 1, 2, 3, ...
// No value appears twice; generation stops just before the first repeat.
// Consumers treat it as immutable and replace it wholesale on regeneration.
type Sequence []uint64

// Generate computes the orbit of base modulo modulus, starting at exponent 1
// and stopping at the first repeated value (excluded) or after maxLen terms.
// maxLen <= 0 selects DefaultMaxLen. Identical inputs yield identical
// sequences.
func Generate(base, modulus uint64, maxLen int) (Sequence, error) {
	if modulus == 0 {
		return nil, ErrZeroModulus
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	seq := make(Sequence, 0, 16)
	seen := make(map[uint64]struct{}, 16)
	for i := uint64(1); len(seq) < maxLen; i++ {
		v := modmath.ModExp(base, i, modulus)
		if _, dup := seen[v]; dup {
			break
		}
		seen[v] = struct{}{}
		seq = append(seq, v)
	}
	return seq, nil
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}
