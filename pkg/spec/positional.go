// positional.go - positional argument specification.
// SPDX-License-Identifier: GPL-3.0-or-later

package spec

// PositionalSpecification is the immutable description of one positional
// slot at a command level. Order within [CommandSpecification].Positionals
// matters: it is the order in which the positional queue is distributed
// (spec §4.7).
type PositionalSpecification struct {
	// CanonicalName is the name recorded in [ParseResult.Positionals].
	CanonicalName string

	// Arity constrains how many queue entries this positional may claim.
	Arity Arity

	// Greedy, when true, claims every remaining queued value at its turn,
	// overriding the normal reservation arithmetic of §4.7.
	Greedy bool
}

// NewPositional constructs a [PositionalSpecification].
func NewPositional(canonical string, arity Arity) *PositionalSpecification {
	return &PositionalSpecification{CanonicalName: canonical, Arity: arity}
}
