// parse_errors.go - runtime parse-time errors.
// SPDX-License-Identifier: GPL-3.0-or-later

package ferrors

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// ArityRange is a minimal, dependency-free restatement of [spec.Arity]
// used only to describe a required value count inside error payloads.
// ferrors cannot import pkg/spec (spec imports ferrors for
// [SpecificationError]), so this is a small, deliberately duplicated
// value type rather than a cyclic import.
type ArityRange struct {
	Min int
	Max int
}

// String implements [fmt.Stringer].
func (a ArityRange) String() string {
	if a.Max < 0 {
		return fmt.Sprintf("(%d, unbounded)", a.Min)
	}
	return fmt.Sprintf("(%d, %d)", a.Min, a.Max)
}

// joinArgs renders a tuple of argument strings for embedding inside an
// Error() string, shell-quoting each one so the rendered argv can be
// pasted back into a shell unambiguously.
func joinArgs(args []string) string {
	if len(args) == 0 {
		return "<none>"
	}
	return shellquote.Join(args...)
}

// --- Option parse errors ---

// OptionParseError marks errors attached to a specific option.
type OptionParseError interface {
	ParseError
	isOptionParseError()

	// OptionName returns the offending option's canonical name.
	OptionName() string
}

type optionBase struct {
	base
	option string
}

func (optionBase) isOptionParseError() {}
func (o optionBase) OptionName() string { return o.option }

// OptionMissingValue is raised when an option occurrence collects fewer
// values than its arity's minimum requires.
type OptionMissingValue struct {
	optionBase
	Required ArityRange
	Received []string
}

var (
	_ error            = OptionMissingValue{}
	_ ParseError       = OptionMissingValue{}
	_ OptionParseError = OptionMissingValue{}
)

// Error implements [error].
func (e OptionMissingValue) Error() string {
	return fmt.Sprintf("option %q requires %s values, received %s at position %d",
		e.option, e.Required, joinArgs(e.Received), e.position)
}

// NewOptionMissingValue constructs an [OptionMissingValue].
func NewOptionMissingValue(path, args []string, position int, option string, required ArityRange, received []string) OptionMissingValue {
	return OptionMissingValue{
		optionBase: optionBase{base: NewBase(path, args, position, Context{
			"required": required, "received": received,
		}), option: option},
		Required: required,
		Received: received,
	}
}

// OptionValueNotAllowed is raised when a value is attached to an option
// that takes none (a non-negated flag).
type OptionValueNotAllowed struct {
	optionBase
	Received string
}

var (
	_ error            = OptionValueNotAllowed{}
	_ ParseError       = OptionValueNotAllowed{}
	_ OptionParseError = OptionValueNotAllowed{}
)

// Error implements [error].
func (e OptionValueNotAllowed) Error() string {
	return fmt.Sprintf("option %q takes no value, received %q at position %d", e.option, e.Received, e.position)
}

// NewOptionValueNotAllowed constructs an [OptionValueNotAllowed].
func NewOptionValueNotAllowed(path, args []string, position int, option, received string) OptionValueNotAllowed {
	return OptionValueNotAllowed{
		optionBase: optionBase{base: NewBase(path, args, position, Context{"received": received}), option: option},
		Received:   received,
	}
}

// OptionNotRepeatable is raised on the second occurrence of an option
// whose accumulation mode is [Error] (or that is marked non-repeatable).
type OptionNotRepeatable struct {
	optionBase
	Received string
}

var (
	_ error            = OptionNotRepeatable{}
	_ ParseError       = OptionNotRepeatable{}
	_ OptionParseError = OptionNotRepeatable{}
)

// Error implements [error].
func (e OptionNotRepeatable) Error() string {
	return fmt.Sprintf("option %q cannot be repeated, saw it again as %q at position %d", e.option, e.Received, e.position)
}

// NewOptionNotRepeatable constructs an [OptionNotRepeatable].
func NewOptionNotRepeatable(path, args []string, position int, option, received string) OptionNotRepeatable {
	return OptionNotRepeatable{
		optionBase: optionBase{base: NewBase(path, args, position, Context{"received": received}), option: option},
		Received:   received,
	}
}

// UnknownOption is raised when a token looks like an option but does not
// resolve to any declared option at the current command level.
type UnknownOption struct {
	optionBase
}

var (
	_ error            = UnknownOption{}
	_ ParseError       = UnknownOption{}
	_ OptionParseError = UnknownOption{}
)

// Error implements [error].
func (e UnknownOption) Error() string {
	return fmt.Sprintf("unknown option %q at position %d", e.option, e.position)
}

// NewUnknownOption constructs an [UnknownOption]. option is the raw name
// as typed (including any leading "-"/"--" the caller wants to surface).
func NewUnknownOption(path, args []string, position int, option string) UnknownOption {
	return UnknownOption{optionBase{base: NewBase(path, args, position, nil), option: option}}
}

// AmbiguousOption is raised when an abbreviated long-option name matches
// more than one declared option.
type AmbiguousOption struct {
	optionBase
	Matched []string
}

var (
	_ error            = AmbiguousOption{}
	_ ParseError       = AmbiguousOption{}
	_ OptionParseError = AmbiguousOption{}
)

// Error implements [error].
func (e AmbiguousOption) Error() string {
	return fmt.Sprintf("ambiguous option %q at position %d, matches %s", e.option, e.position, joinArgs(e.Matched))
}

// NewAmbiguousOption constructs an [AmbiguousOption].
func NewAmbiguousOption(path, args []string, position int, option string, matched []string) AmbiguousOption {
	return AmbiguousOption{
		optionBase: optionBase{base: NewBase(path, args, position, Context{"matched": matched}), option: option},
		Matched:    matched,
	}
}

// FlagWithValue is raised when a value is attached to a negated flag
// (e.g. --no-color=bright), which is never permitted.
type FlagWithValue struct {
	optionBase
	Received string
}

var (
	_ error            = FlagWithValue{}
	_ ParseError       = FlagWithValue{}
	_ OptionParseError = FlagWithValue{}
)

// Error implements [error].
func (e FlagWithValue) Error() string {
	return fmt.Sprintf("flag %q takes no value, received %q at position %d", e.option, e.Received, e.position)
}

// NewFlagWithValue constructs a [FlagWithValue].
func NewFlagWithValue(path, args []string, position int, option, received string) FlagWithValue {
	return FlagWithValue{
		optionBase: optionBase{base: NewBase(path, args, position, Context{"received": received}), option: option},
		Received:   received,
	}
}

// --- Positional parse errors ---

// PositionalParseError marks errors attached to a specific positional.
type PositionalParseError interface {
	ParseError
	isPositionalParseError()

	// PositionalName returns the offending positional's canonical name.
	PositionalName() string
}

type positionalBase struct {
	base
	positional string
}

func (positionalBase) isPositionalParseError() {}
func (p positionalBase) PositionalName() string { return p.positional }

// PositionalMissingValue is raised when positional grouping cannot meet
// a positional's minimum arity from the remaining queue.
type PositionalMissingValue struct {
	positionalBase
	Required ArityRange
	Received []string
}

var (
	_ error               = PositionalMissingValue{}
	_ ParseError          = PositionalMissingValue{}
	_ PositionalParseError = PositionalMissingValue{}
)

// Error implements [error].
func (e PositionalMissingValue) Error() string {
	return fmt.Sprintf("positional %q requires %s values, received %s", e.positional, e.Required, joinArgs(e.Received))
}

// NewPositionalMissingValue constructs a [PositionalMissingValue].
func NewPositionalMissingValue(path, args []string, position int, positional string, required ArityRange, received []string) PositionalMissingValue {
	return PositionalMissingValue{
		positionalBase: positionalBase{base: NewBase(path, args, position, Context{
			"required": required, "received": received,
		}), positional: positional},
		Required: required,
		Received: received,
	}
}

// PositionalUnexpectedValue is raised when, after distributing the
// positional queue across every declared positional, surplus values
// remain.
type PositionalUnexpectedValue struct {
	positionalBase
	Received []string
}

var (
	_ error               = PositionalUnexpectedValue{}
	_ ParseError          = PositionalUnexpectedValue{}
	_ PositionalParseError = PositionalUnexpectedValue{}
)

// Error implements [error].
func (e PositionalUnexpectedValue) Error() string {
	return fmt.Sprintf("unexpected positional values after %q: %s", e.positional, joinArgs(e.Received))
}

// NewPositionalUnexpectedValue constructs a [PositionalUnexpectedValue].
func NewPositionalUnexpectedValue(path, args []string, position int, positional string, received []string) PositionalUnexpectedValue {
	return PositionalUnexpectedValue{
		positionalBase: positionalBase{base: NewBase(path, args, position, Context{"received": received}), positional: positional},
		Received:       received,
	}
}

// --- Subcommand parse errors ---

// SubcommandParseError marks errors attached to subcommand resolution.
type SubcommandParseError interface {
	ParseError
	isSubcommandParseError()

	// SubcommandName returns the offending subcommand name as typed.
	SubcommandName() string
}

// UnknownSubcommand is raised when a token does not resolve to exactly
// one declared subcommand. The classifier raises it for an abbreviation
// that matches several subcommands; a token that matches none is treated
// as a positional instead.
type UnknownSubcommand struct {
	base
	Subcommand string
}

var (
	_ error                = UnknownSubcommand{}
	_ ParseError           = UnknownSubcommand{}
	_ SubcommandParseError = UnknownSubcommand{}
)

func (UnknownSubcommand) isSubcommandParseError() {}

// SubcommandName implements [SubcommandParseError].
func (e UnknownSubcommand) SubcommandName() string { return e.Subcommand }

// Error implements [error].
func (e UnknownSubcommand) Error() string {
	return fmt.Sprintf("unknown subcommand %q at position %d", e.Subcommand, e.position)
}

// NewUnknownSubcommand constructs an [UnknownSubcommand].
func NewUnknownSubcommand(path, args []string, position int, subcommand string) UnknownSubcommand {
	return UnknownSubcommand{base: NewBase(path, args, position, nil), Subcommand: subcommand}
}

// --- Argument-file errors ---

// ArgFileError marks errors raised while expanding @file references.
type ArgFileError interface {
	ParseError
	isArgFileError()

	// Token returns the offending @-prefixed token.
	Token() string
}

type argFileBase struct {
	base
	token string
}

func (argFileBase) isArgFileError() {}
func (a argFileBase) Token() string  { return a.token }

// ArgFileNotFound is raised when an @file reference names a file that
// does not exist.
type ArgFileNotFound struct {
	argFileBase
}

var (
	_ error        = ArgFileNotFound{}
	_ ParseError   = ArgFileNotFound{}
	_ ArgFileError = ArgFileNotFound{}
)

// Error implements [error].
func (e ArgFileNotFound) Error() string {
	return fmt.Sprintf("argument file not found: %s at position %d", e.token, e.position)
}

// NewArgFileNotFound constructs an [ArgFileNotFound].
func NewArgFileNotFound(path, args []string, position int, token string) ArgFileNotFound {
	return ArgFileNotFound{argFileBase{base: NewBase(path, args, position, nil), token: token}}
}

// ArgFileReadError is raised when an @file reference names a file that
// exists but cannot be read.
type ArgFileReadError struct {
	argFileBase
	Cause error
}

var (
	_ error        = ArgFileReadError{}
	_ ParseError   = ArgFileReadError{}
	_ ArgFileError = ArgFileReadError{}
)

// Error implements [error].
func (e ArgFileReadError) Error() string {
	return fmt.Sprintf("cannot read argument file %s at position %d: %v", e.token, e.position, e.Cause)
}

// Unwrap allows errors.Is/As to reach the underlying I/O error.
func (e ArgFileReadError) Unwrap() error { return e.Cause }

// NewArgFileReadError constructs an [ArgFileReadError].
func NewArgFileReadError(path, args []string, position int, token string, cause error) ArgFileReadError {
	return ArgFileReadError{argFileBase: argFileBase{base: NewBase(path, args, position, nil), token: token}, Cause: cause}
}

// ArgFileCycle is raised when recursive @file expansion exceeds the
// configured depth limit.
type ArgFileCycle struct {
	argFileBase
	Limit int
}

var (
	_ error        = ArgFileCycle{}
	_ ParseError   = ArgFileCycle{}
	_ ArgFileError = ArgFileCycle{}
)

// Error implements [error].
func (e ArgFileCycle) Error() string {
	return fmt.Sprintf("argument file expansion exceeded depth %d at %s (position %d)", e.Limit, e.token, e.position)
}

// NewArgFileCycle constructs an [ArgFileCycle].
func NewArgFileCycle(path, args []string, position int, token string, limit int) ArgFileCycle {
	return ArgFileCycle{argFileBase: argFileBase{base: NewBase(path, args, position, nil), token: token}, Limit: limit}
}

// --- Dict parse errors ---

// DictParseErrorKind enumerates the structural-failure subkinds named in
// spec §4.5/§7.
type DictParseErrorKind int

const (
	// DictUnescapedBracket marks a bracket-index token with a literal,
	// un-escaped '[' or ']' where a key character was expected. It also
	// covers a token with no unescaped '=' separator, a non-numeric
	// bracket index, and an empty key.
	DictUnescapedBracket DictParseErrorKind = iota

	// DictIndexOutOfBoundsPolicy marks a bracket index that violates the
	// option's array-growth policy (e.g. a sparse index under
	// strict_structure).
	DictIndexOutOfBoundsPolicy

	// DictStrictStructureConflict marks a key path that would require a
	// node to be simultaneously a scalar and a container while
	// strict_structure is enabled.
	DictStrictStructureConflict

	// DictJSONFallbackParseFailure marks a value that failed both
	// structural parsing and the option's configured JSON-fallback
	// parse.
	DictJSONFallbackParseFailure
)

// String implements [fmt.Stringer].
func (k DictParseErrorKind) String() string {
	switch k {
	case DictUnescapedBracket:
		return "unescaped-bracket"
	case DictIndexOutOfBoundsPolicy:
		return "index-out-of-bounds-policy-violation"
	case DictStrictStructureConflict:
		return "strict-structure-conflict"
	case DictJSONFallbackParseFailure:
		return "json-fallback-parse-failure"
	default:
		return "unknown"
	}
}

// DictParseError marks a malformed key=value token handed to the dict
// structural parser.
type DictParseError struct {
	optionBase
	SubKind DictParseErrorKind
	Token   string
	Detail  string
}

var (
	_ error            = DictParseError{}
	_ ParseError       = DictParseError{}
	_ OptionParseError = DictParseError{}
)

// Error implements [error].
func (e DictParseError) Error() string {
	return fmt.Sprintf("option %q: %s in %q: %s (position %d)", e.option, e.SubKind, e.Token, e.Detail, e.position)
}

// NewDictParseError constructs a [DictParseError].
func NewDictParseError(path, args []string, position int, option string, kind DictParseErrorKind, token, detail string) DictParseError {
	return DictParseError{
		optionBase: optionBase{base: NewBase(path, args, position, Context{
			"subkind": kind.String(), "token": token, "detail": detail,
		}), option: option},
		SubKind: kind,
		Token:   token,
		Detail:  detail,
	}
}
