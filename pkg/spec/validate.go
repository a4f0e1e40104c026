// validate.go - construction-time specification validation (spec §4.1).
// SPDX-License-Identifier: GPL-3.0-or-later

package spec

import (
	"strings"
	"unicode"

	"github.com/aclaf/flagrant/pkg/ferrors"
)

// Validate checks every invariant required of this command level --
// well-formed arities, no duplicate or colliding names, no negation on a
// non-flag, dict fallback names that resolve to a real sibling option --
// and recurses into every nested subcommand.
func (c *CommandSpecification) Validate() error {
	if err := c.validateOptions(); err != nil {
		return err
	}
	if err := c.validatePositionals(); err != nil {
		return err
	}
	if err := c.validateNoCollisionWithSubcommands(); err != nil {
		return err
	}
	if err := c.validateSubcommandAbbreviationSafety(); err != nil {
		return err
	}
	for _, sub := range c.Subcommands {
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CommandSpecification) normalize(name string) string {
	cfg := c.Config
	if cfg == nil {
		cfg = &ParserConfiguration{}
	}
	if cfg.FoldOptionCase {
		name = strings.ToLower(name)
	}
	if cfg.ConvertUnderscores {
		name = strings.ReplaceAll(name, "_", "-")
	}
	return name
}

func (c *CommandSpecification) validateOptions() error {
	seen := map[string]string{} // normalized name -> canonical owner
	for _, opt := range c.Options {
		if opt.IsFlag() {
			if opt.Arity != ZERO {
				return ferrors.NewOptionSpecificationError(opt.CanonicalName,
					"flag options must declare arity (0,0)", nil)
			}
		} else if opt.Arity == ZERO {
			return ferrors.NewOptionSpecificationError(opt.CanonicalName,
				"non-flag options cannot declare arity (0,0)", nil)
		}
		if err := opt.Arity.Validate(); err != nil {
			return ferrors.NewOptionSpecificationError(opt.CanonicalName, err.Error(), nil)
		}
		if len(opt.LongNames) == 0 && len(opt.ShortNames) == 0 {
			return ferrors.NewOptionSpecificationError(opt.CanonicalName,
				"must declare at least one long or short name", nil)
		}
		if len(opt.NegationPrefixes) > 0 && !opt.IsFlag() {
			return ferrors.NewOptionSpecificationError(opt.CanonicalName,
				"negation prefixes are only valid on flag options", nil)
		}
		for _, long := range opt.LongNames {
			if len(long) < 1 {
				return ferrors.NewOptionSpecificationError(opt.CanonicalName,
					"long names must be at least one character", nil)
			}
			r := []rune(long)[0]
			if !unicode.IsLetter(r) {
				return ferrors.NewOptionSpecificationError(opt.CanonicalName,
					"long names must begin with a letter", nil)
			}
			for _, r := range long {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
					return ferrors.NewOptionSpecificationError(opt.CanonicalName,
						"long names must be alphanumeric, '-', or '_'", nil)
				}
			}
			key := c.normalize(long)
			if owner, dup := seen[key]; dup {
				return ferrors.NewOptionSpecificationError(opt.CanonicalName,
					"name collides with option "+owner, nil)
			}
			seen[key] = opt.CanonicalName
		}
		for _, short := range opt.ShortNames {
			if len([]rune(short)) != 1 {
				return ferrors.NewOptionSpecificationError(opt.CanonicalName,
					"short names must be exactly one letter", nil)
			}
			r := []rune(short)[0]
			if !unicode.IsLetter(r) {
				return ferrors.NewOptionSpecificationError(opt.CanonicalName,
					"short names must be letters", nil)
			}
			key := "-" + c.normalize(short)
			if owner, dup := seen[key]; dup {
				return ferrors.NewOptionSpecificationError(opt.CanonicalName,
					"name collides with option "+owner, nil)
			}
			seen[key] = opt.CanonicalName
		}
		if opt.IsDict() && opt.JSONFallback != "" {
			if !c.hasOption(opt.JSONFallback) {
				return ferrors.NewOptionSpecificationError(opt.CanonicalName,
					"json_fallback references undefined option "+opt.JSONFallback, nil)
			}
		}
	}
	return nil
}

func (c *CommandSpecification) hasOption(canonical string) bool {
	for _, opt := range c.Options {
		if opt.CanonicalName == canonical {
			return true
		}
	}
	return false
}

func (c *CommandSpecification) validatePositionals() error {
	seen := map[string]bool{}
	for _, p := range c.Positionals {
		if err := p.Arity.Validate(); err != nil {
			return ferrors.NewCommandSpecificationError(c.CanonicalName, err.Error(), nil)
		}
		if seen[p.CanonicalName] {
			return ferrors.NewCommandSpecificationError(c.CanonicalName,
				"duplicate positional name "+p.CanonicalName, nil)
		}
		seen[p.CanonicalName] = true
	}
	return nil
}

func (c *CommandSpecification) validateNoCollisionWithSubcommands() error {
	subNames := map[string]bool{}
	for _, sub := range c.Subcommands {
		subNames[c.normalize(sub.CanonicalName)] = true
	}
	for _, opt := range c.Options {
		for _, long := range opt.LongNames {
			if subNames[c.normalize(long)] {
				return ferrors.NewCommandSpecificationError(c.CanonicalName,
					"option name "+long+" collides with a subcommand name", nil)
			}
		}
	}
	return nil
}

// validateSubcommandAbbreviationSafety rejects abbreviated subcommand
// matching combined with a non-empty positional table at the same
// command level. Once abbreviation is on, a token that looks like a
// positional value could equally be a prefix of a subcommand name, and
// no static check over the two tables can tell which the user meant --
// so the combination is refused up front rather than left to resolve
// unpredictably at parse time.
func (c *CommandSpecification) validateSubcommandAbbreviationSafety() error {
	cfg := c.Config
	if cfg == nil {
		return nil
	}
	if cfg.AllowAbbreviatedSubcommands && len(c.Subcommands) > 0 && len(c.Positionals) > 0 {
		return ferrors.NewCommandSpecificationError(c.CanonicalName,
			"allow_abbreviated_subcommands cannot be combined with positionals at the same command level", nil)
	}
	return nil
}
