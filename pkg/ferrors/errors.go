// errors.go - error taxonomy root.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package ferrors implements the flagrant error taxonomy: a single
discriminated hierarchy of concrete error structs, one per failure
condition, each carrying a [Context] map plus statically-typed per-kind
fields instead of a bag of untyped values.

Propagation is fail-fast: the first error terminates parsing,
there is no multi-error accumulation, and the package never formats
user-facing messages beyond the Go [error] interface's Error() string --
rendering is the caller's responsibility.
*/
package ferrors

// Context is the structured, caller-inspectable payload shared by every
// flagrant error (spec §3 "ErrorContext"). Values are strings, numbers,
// bools, nil, or nested maps/slices of the same.
type Context map[string]any

// FlagrantError is the root marker every flagrant error implements.
// Callers branch on taxonomy level with errors.As against the narrower
// marker interfaces below ([SpecificationError], [ParseError], ...).
type FlagrantError interface {
	error

	// ErrorContext returns this error's structured payload.
	ErrorContext() Context
}

// ConfigurationError marks an invalid parser or completer configuration
// value. Flagrant's core currently has no configuration values that
// require validation beyond what [SpecificationError] already covers, so
// this marker exists for completeness with spec §7 and for hosts that
// layer additional configuration (e.g. a completer) on top of flagrant.
type ConfigurationError interface {
	FlagrantError
	isConfigurationError()
}

// SpecificationError marks a construction-time invariant violation,
// raised by [*spec.CommandSpecification] validation rather than by
// parsing.
type SpecificationError interface {
	FlagrantError
	isSpecificationError()
}

// ParseError marks an error raised while parsing a concrete argv. Every
// ParseError carries the command path, the full argument tuple being
// parsed at that level, and the position within it.
type ParseError interface {
	FlagrantError
	isParseError()

	// Path returns the command-name tuple from the root command to the
	// command level where the error occurred.
	Path() []string

	// Args returns the full argument tuple being parsed at that level.
	Args() []string

	// Position returns the index into Args() where the error occurred.
	Position() int
}

// base is embedded by every concrete [ParseError] to supply the common
// path/args/position/context fields without repeating them.
type base struct {
	path     []string
	args     []string
	position int
	ctx      Context
}

func (b base) isParseError() {}

// Path implements [ParseError].
func (b base) Path() []string { return b.path }

// Args implements [ParseError].
func (b base) Args() []string { return b.args }

// Position implements [ParseError].
func (b base) Position() int { return b.position }

// ErrorContext implements [FlagrantError].
func (b base) ErrorContext() Context {
	ctx := Context{
		"path":     b.path,
		"args":     b.args,
		"position": b.position,
	}
	for k, v := range b.ctx {
		ctx[k] = v
	}
	return ctx
}

// NewBase builds the embeddable [base] for a concrete [ParseError],
// given the command path, the argument tuple, the offending position, and
// any kind-specific context entries to merge in.
func NewBase(path, args []string, position int, extra Context) base {
	return base{path: path, args: args, position: position, ctx: extra}
}
