// parse.go - public entry point.
// SPDX-License-Identifier: GPL-3.0-or-later

package flagrant

import (
	"github.com/aclaf/flagrant/internal/engine"
	"github.com/aclaf/flagrant/pkg/spec"
)

// Re-exported specification types, so a caller who only imports the root
// package can build and inspect specifications without a second import
// of pkg/spec.
type (
	Arity                   = spec.Arity
	OptionSpecification     = spec.OptionSpecification
	PositionalSpecification = spec.PositionalSpecification
	CommandSpecification    = spec.CommandSpecification
	ParserConfiguration     = spec.ParserConfiguration
	ParseResult             = spec.ParseResult
	OptionValue             = spec.OptionValue
	OptionValueKind         = spec.OptionValueKind
	DictNode                = spec.DictNode
	AccumulationMode        = spec.AccumulationMode
	FlattenMode             = spec.FlattenMode
)

// Named arity/accumulation/flatten constants, re-exported for callers who
// build specifications against the root package alone.
var (
	ZERO         = spec.ZERO
	EXACTLY_ONE  = spec.EXACTLY_ONE
	ONE_OR_MORE  = spec.ONE_OR_MORE
	ZERO_OR_MORE = spec.ZERO_OR_MORE
)

const (
	First  = spec.First
	Last   = spec.Last
	Count  = spec.Count
	Append = spec.Append
	Extend = spec.Extend
	Merge  = spec.Merge
	Error  = spec.Error

	FlattenUnset  = spec.FlattenUnset
	FlattenNever  = spec.FlattenNever
	FlattenAlways = spec.FlattenAlways

	FlagPresent    = spec.FlagPresent
	FlagNegated    = spec.FlagNegated
	FlagCount      = spec.FlagCount
	Single         = spec.Single
	Sequence       = spec.Sequence
	NestedSequence = spec.NestedSequence
	Tree           = spec.Tree
)

// Re-exported constructors.
var (
	NewCommand    = spec.NewCommand
	NewFlag       = spec.NewFlag
	NewValue      = spec.NewValue
	NewDict       = spec.NewDict
	NewPositional = spec.NewPositional
)

// Parse is flagrant's sole entry point (spec §6): given a validated root
// [CommandSpecification], the raw argument vector, and an optional
// configuration override, it returns the structured [ParseResult] or a
// [FlagrantError] from the taxonomy in package ferrors.
//
// cmd must already have passed [*CommandSpecification.Validate]; Parse
// does not re-validate it. cfg may be nil, in which case cmd's own
// Config (and its defaults) apply.
func Parse(cmd *CommandSpecification, argv []string, cfg *ParserConfiguration) (*ParseResult, error) {
	return engine.Parse(cmd, argv, cfg)
}
