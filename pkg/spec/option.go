// option.go - option specification.
// SPDX-License-Identifier: GPL-3.0-or-later

package spec

// AccumulationMode is the strategy used to merge repeated occurrences
// of the same option into the result slot (spec §4.6).
type AccumulationMode int

const (
	// First keeps the value recorded at the first occurrence.
	First AccumulationMode = iota

	// Last keeps the value recorded at the most recent occurrence.
	Last

	// Count records the number of occurrences. Only valid for [Flag].
	Count

	// Append appends each occurrence's value tuple as one element of a
	// nested sequence. Only valid for [Value].
	Append

	// Extend flattens each occurrence's value tuple into one running
	// sequence. Only valid for [Value].
	Extend

	// Merge structurally merges each occurrence's tree into a running
	// tree, with later keys winning. Only valid for [Dict].
	Merge

	// Error raises [OptionNotRepeatable] on any occurrence past the first.
	Error
)

// String implements [fmt.Stringer].
func (m AccumulationMode) String() string {
	switch m {
	case First:
		return "first"
	case Last:
		return "last"
	case Count:
		return "count"
	case Append:
		return "append"
	case Extend:
		return "extend"
	case Merge:
		return "merge"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// OptionKind distinguishes the three [OptionSpecification] variants.
type OptionKind int

const (
	// KindFlag is a no-argument boolean-presence option.
	KindFlag OptionKind = iota

	// KindValue is an option that accepts one or more string values.
	KindValue

	// KindDict is an option that accepts one or more key=value tokens.
	KindDict
)

// OptionSpecification is the immutable description of a single option at
// a command level. Construct instances with [NewFlag], [NewValue], or
// [NewDict]; the zero value is not meaningful.
type OptionSpecification struct {
	// Kind identifies which variant this is.
	Kind OptionKind

	// CanonicalName is the name recorded in [ParseResult.Options].
	CanonicalName string

	// LongNames is the set of long (--foo) names, each at least one
	// character, beginning with a letter.
	LongNames []string

	// ShortNames is the set of short (-f) names, each exactly one letter.
	ShortNames []string

	// Arity constrains the number of values a single occurrence accepts.
	// Flag options must use [ZERO].
	Arity Arity

	// Accumulation is the merge strategy applied across repeated
	// occurrences (spec §4.6).
	Accumulation AccumulationMode

	// Greedy, when true, overrides normal value-consumption stopping
	// conditions: consumption continues until "--" or end-of-input.
	Greedy bool

	// Repeatable, when false, forces Accumulation effectively to [Error]
	// regardless of the declared mode. Most specifications leave this
	// true and rely on Accumulation instead.
	Repeatable bool

	// --- Flag-only fields ---

	// NegationPrefixes is the set of words (e.g. "no") that combine with
	// a flag's long name via "-" to negate it (--no-color). Flag only.
	NegationPrefixes []string

	// NegationShortNames is the set of short names that negate this flag
	// directly (as opposed to via a long-name negation prefix).
	NegationShortNames []string

	// --- Dict-only fields ---

	// JSONFallback, if non-empty, enables a JSON fallback for this
	// option: when structural parsing of a single-token occurrence fails,
	// that token is parsed as one JSON document instead. The value must
	// name an option defined at the same command level; the parser does
	// not read from or write to the named option.
	JSONFallback string

	// StrictStructure, when true, rejects key paths that would require
	// implicitly creating intermediate containers of a conflicting shape
	// (e.g. treating a.b both as a scalar and as a nested map).
	StrictStructure bool

	// FlattenOverride is the option-level entry of the three-level
	// flattening precedence (spec §4.6): option override -> command
	// override -> parser default. [FlattenUnset] defers to the command
	// level.
	FlattenOverride FlattenMode
}

// NewFlag constructs a [Flag]-kind [OptionSpecification].
func NewFlag(canonical string, long, short []string) *OptionSpecification {
	return &OptionSpecification{
		Kind:          KindFlag,
		CanonicalName: canonical,
		LongNames:     long,
		ShortNames:    short,
		Arity:         ZERO,
		Accumulation:  Last,
		Repeatable:    true,
	}
}

// NewValue constructs a [Value]-kind [OptionSpecification].
func NewValue(canonical string, long, short []string, arity Arity) *OptionSpecification {
	return &OptionSpecification{
		Kind:          KindValue,
		CanonicalName: canonical,
		LongNames:     long,
		ShortNames:    short,
		Arity:         arity,
		Accumulation:  Last,
		Repeatable:    true,
	}
}

// NewDict constructs a [Dict]-kind [OptionSpecification].
func NewDict(canonical string, long, short []string, arity Arity) *OptionSpecification {
	return &OptionSpecification{
		Kind:          KindDict,
		CanonicalName: canonical,
		LongNames:     long,
		ShortNames:    short,
		Arity:         arity,
		Accumulation:  Merge,
		Repeatable:    true,
	}
}

// IsFlag reports whether this option is the [Flag] variant.
func (o *OptionSpecification) IsFlag() bool { return o.Kind == KindFlag }

// IsValue reports whether this option is the [Value] variant.
func (o *OptionSpecification) IsValue() bool { return o.Kind == KindValue }

// IsDict reports whether this option is the [Dict] variant.
func (o *OptionSpecification) IsDict() bool { return o.Kind == KindDict }

// Names returns every long and short name this option is known by.
func (o *OptionSpecification) Names() []string {
	out := make([]string, 0, len(o.LongNames)+len(o.ShortNames))
	out = append(out, o.LongNames...)
	out = append(out, o.ShortNames...)
	return out
}
