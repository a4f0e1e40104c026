// arity.go - value-count constraints.
// SPDX-License-Identifier: GPL-3.0-or-later

package spec

import "fmt"

// Unbounded is the sentinel [Arity].Max value meaning "no upper bound".
const Unbounded = -1

// Arity is a (min, max) value-count constraint on an option or a
// positional. Max is either a non-negative integer greater than or
// equal to Min, or [Unbounded].
type Arity struct {
	Min int
	Max int
}

// Named constants covering the common cases.
var (
	// ZERO accepts no values. Only valid for [Flag] options.
	ZERO = Arity{Min: 0, Max: 0}

	// EXACTLY_ONE requires exactly one value.
	EXACTLY_ONE = Arity{Min: 1, Max: 1}

	// ONE_OR_MORE requires at least one value, with no upper bound.
	ONE_OR_MORE = Arity{Min: 1, Max: Unbounded}

	// ZERO_OR_MORE accepts any number of values, including none.
	ZERO_OR_MORE = Arity{Min: 0, Max: Unbounded}
)

// Bounded reports whether the arity has a finite maximum.
func (a Arity) Bounded() bool {
	return a.Max != Unbounded
}

// Accepts reports whether n values satisfy this arity.
func (a Arity) Accepts(n int) bool {
	if n < a.Min {
		return false
	}
	return !a.Bounded() || n <= a.Max
}

// Validate checks the arity's own invariants: Min must be non-negative,
// and Max must be either [Unbounded] or >= Min.
func (a Arity) Validate() error {
	if a.Min < 0 {
		return fmt.Errorf("arity: min must be non-negative, got %d", a.Min)
	}
	if a.Bounded() && a.Max < a.Min {
		return fmt.Errorf("arity: max (%d) must be >= min (%d)", a.Max, a.Min)
	}
	return nil
}

// String implements [fmt.Stringer].
func (a Arity) String() string {
	if !a.Bounded() {
		return fmt.Sprintf("(%d, unbounded)", a.Min)
	}
	return fmt.Sprintf("(%d, %d)", a.Min, a.Max)
}
