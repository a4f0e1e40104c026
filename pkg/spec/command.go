// command.go - command specification.
// SPDX-License-Identifier: GPL-3.0-or-later

package spec

import (
	"fmt"

	"github.com/bassosimone/textwrap"
)

// CommandSpecification is the immutable description of one command level:
// its options, its positionals, and its nested subcommands. Build one with
// [NewCommand] followed by [*CommandSpecification.Validate]; once validated
// a specification is treated as a constant and is safe to share across
// goroutines (spec §5).
type CommandSpecification struct {
	// CanonicalName is this command's name.
	CanonicalName string

	// Summary is an optional one-line description. It is diagnostic
	// metadata only: flagrant never renders help text from it, but
	// [*CommandSpecification.Describe] exposes it, wrapped, for
	// diagnostics and example programs.
	Summary string

	// Options is the ordered option table for this command level.
	Options []*OptionSpecification

	// Positionals is the ordered positional table for this command
	// level. Order matters: it drives the distribution algorithm of
	// spec §4.7.
	Positionals []*PositionalSpecification

	// Subcommands is the ordered table of nested command specifications.
	// Per spec §8 ("properties for fuzz/generative testing"), the
	// *order* of this table must never affect parse results when names
	// are distinct; only lookup-by-name does.
	Subcommands []*CommandSpecification

	// Config optionally overrides the parser configuration inherited
	// from the parent command (or the configuration passed to [Parse]
	// for the root command).
	Config *ParserConfiguration

	// FlattenOverride is the command-level entry of the three-level
	// flattening precedence (spec §4.6), consulted when an option at
	// this level leaves its own FlattenOverride at [FlattenUnset].
	FlattenOverride FlattenMode
}

// NewCommand constructs a [CommandSpecification] with no options,
// positionals, or subcommands. Populate the slice fields directly, then
// call [*CommandSpecification.Validate].
func NewCommand(canonical string) *CommandSpecification {
	return &CommandSpecification{CanonicalName: canonical}
}

// SubcommandNames returns the canonical names of every nested subcommand.
func (c *CommandSpecification) SubcommandNames() []string {
	names := make([]string, 0, len(c.Subcommands))
	for _, sub := range c.Subcommands {
		names = append(names, sub.CanonicalName)
	}
	return names
}

// Describe renders a short, wrapped, human-diagnostic summary of this
// command: its name and Summary, word-wrapped at 72 columns. This is not
// help-text rendering -- it exists to make diagnostics and example output
// readable; no flagrant error embeds it.
func (c *CommandSpecification) Describe() string {
	if c.Summary == "" {
		return c.CanonicalName
	}
	wrapped := textwrap.Do(c.Summary, 72, "  ")
	return fmt.Sprintf("%s:\n%s", c.CanonicalName, wrapped)
}
