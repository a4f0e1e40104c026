// config.go - parser configuration.
// SPDX-License-Identifier: GPL-3.0-or-later

package spec

// FlattenMode controls whether [Append]-mode accumulation nests or
// flattens a single occurrence's multi-value tuple when the option's
// arity allows more than one value per occurrence.
type FlattenMode int

const (
	// FlattenUnset means "use whatever the next level in the precedence
	// chain decides" (option override -> command override -> parser
	// default, per spec §4.6).
	FlattenUnset FlattenMode = iota

	// FlattenNever keeps each occurrence as its own nested sequence.
	FlattenNever

	// FlattenAlways flattens every occurrence into one running sequence,
	// behaving like [Extend] even under [Append].
	FlattenAlways
)

// ParserConfiguration holds the parser-behavior switches named in spec §3.
// The zero value is a reasonable GNU-style default (case-sensitive, no
// abbreviation, no underscore folding, "--" end-of-options recognized
// implicitly by the classifier, negative numbers rejected as options).
type ParserConfiguration struct {
	// FoldOptionCase, when true, compares option names after lower-case
	// folding (the spec's "case_sensitive_options=false"). The zero value
	// keeps names case-sensitive, matching common CLI convention.
	FoldOptionCase bool

	// ConvertUnderscores, when true, treats '_' and '-' as equal in
	// names during comparison.
	ConvertUnderscores bool

	// AllowAbbreviatedOptions enables unique-prefix matching for long
	// option names.
	AllowAbbreviatedOptions bool

	// MinimumAbbreviationLength is the minimum prefix length eligible for
	// abbreviation matching. Zero means the package default of 3.
	MinimumAbbreviationLength int

	// AllowAbbreviatedSubcommands enables the same unique-prefix matching
	// for subcommand names.
	AllowAbbreviatedSubcommands bool

	// StrictOptionsBeforePositionals, once the first positional has been
	// seen, forces every later token to be treated as positional.
	StrictOptionsBeforePositionals bool

	// AllowNegativeNumbers classifies tokens matching -?\d+(\.\d+)? as
	// positional rather than as a short option, provided at least one
	// positional spec is defined at this command level.
	AllowNegativeNumbers bool

	// ArgFilePrefix is the character introducing argument-file
	// references. Empty means the package default of '@'.
	ArgFilePrefix string

	// FlattenAccumulatedValues is the parser-level default for the
	// three-level flattening precedence described in spec §4.6.
	FlattenAccumulatedValues FlattenMode
}

// EffectiveFlatten resolves the three-level flattening precedence of
// spec §4.6 for opt at cmd's level: opt.FlattenOverride, then
// cmd.FlattenOverride, then c.FlattenAccumulatedValues, defaulting to
// "do not flatten" if every level is left at [FlattenUnset].
func (c *ParserConfiguration) EffectiveFlatten(opt *OptionSpecification, cmd *CommandSpecification) bool {
	if opt != nil && opt.FlattenOverride != FlattenUnset {
		return opt.FlattenOverride == FlattenAlways
	}
	if cmd != nil && cmd.FlattenOverride != FlattenUnset {
		return cmd.FlattenOverride == FlattenAlways
	}
	if c != nil {
		return c.FlattenAccumulatedValues == FlattenAlways
	}
	return false
}

// DefaultMinimumAbbreviationLength is used when
// MinimumAbbreviationLength is left at zero.
const DefaultMinimumAbbreviationLength = 3

// DefaultArgFilePrefix is used when ArgFilePrefix is left empty.
const DefaultArgFilePrefix = "@"

// DefaultArgFileCycleLimit bounds recursive argument-file expansion.
const DefaultArgFileCycleLimit = 8

// EffectiveMinimumAbbreviationLength returns the configured minimum
// abbreviation length, substituting the package default when unset.
func (c *ParserConfiguration) EffectiveMinimumAbbreviationLength() int {
	if c == nil || c.MinimumAbbreviationLength <= 0 {
		return DefaultMinimumAbbreviationLength
	}
	return c.MinimumAbbreviationLength
}

// EffectiveArgFilePrefix returns the configured argument-file prefix,
// substituting the package default when unset.
func (c *ParserConfiguration) EffectiveArgFilePrefix() string {
	if c == nil || c.ArgFilePrefix == "" {
		return DefaultArgFilePrefix
	}
	return c.ArgFilePrefix
}

// Merge returns a new [ParserConfiguration] that is a copy of c with every
// non-zero-valued field of override replacing c's. Used when a
// [CommandSpecification] overrides its parent's configuration for a
// nested subcommand.
func (c *ParserConfiguration) Merge(override *ParserConfiguration) *ParserConfiguration {
	if c == nil {
		c = &ParserConfiguration{}
	}
	if override == nil {
		cp := *c
		return &cp
	}
	merged := *c
	if override.FoldOptionCase {
		merged.FoldOptionCase = true
	}
	if override.ConvertUnderscores {
		merged.ConvertUnderscores = true
	}
	if override.AllowAbbreviatedOptions {
		merged.AllowAbbreviatedOptions = true
	}
	if override.MinimumAbbreviationLength > 0 {
		merged.MinimumAbbreviationLength = override.MinimumAbbreviationLength
	}
	if override.AllowAbbreviatedSubcommands {
		merged.AllowAbbreviatedSubcommands = true
	}
	if override.StrictOptionsBeforePositionals {
		merged.StrictOptionsBeforePositionals = true
	}
	if override.AllowNegativeNumbers {
		merged.AllowNegativeNumbers = true
	}
	if override.ArgFilePrefix != "" {
		merged.ArgFilePrefix = override.ArgFilePrefix
	}
	if override.FlattenAccumulatedValues != FlattenUnset {
		merged.FlattenAccumulatedValues = override.FlattenAccumulatedValues
	}
	return &merged
}
