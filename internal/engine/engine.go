// engine.go - parse orchestration: preprocess, classify, group, recurse.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package engine implements flagrant's parsing core: the classifier, value
consumer, accumulator, positional grouper, and subcommand dispatcher,
wired together into one recursive entry point.

Classification and dispatch are a single context-sensitive grammar here,
not two independent passes: whether a token is an option, a positional,
or a subcommand name can depend on what command level the scan is
currently at, so the classifier and the subcommand resolution it
triggers live in the same package and share the same left-to-right scan
over a deque of tokens (see deque.go and trace.go's debug-trace writer).
*/
package engine

import (
	"github.com/aclaf/flagrant/pkg/argfile"
	"github.com/aclaf/flagrant/pkg/spec"
)

// Parse is the engine's entry point: cmd is the root command
// specification, argv is the raw argument vector (before @file
// expansion), and cfg is the caller-supplied base configuration (may be
// nil).
//
// Errors raised before a matched subcommand token report [ferrors.ParseError.Args]
// as the full tail handed to that command level, rather than the
// narrower argv[0:i+1] slice [spec.ParseResult.Args] uses once a
// subcommand match is confirmed -- the match (and therefore the
// truncation point) isn't known until the classifier reaches it.
func Parse(cmd *spec.CommandSpecification, argv []string, cfg *spec.ParserConfiguration) (*spec.ParseResult, error) {
	effectiveCfg := cfg.Merge(cmd.Config)
	prefix := effectiveCfg.EffectiveArgFilePrefix()
	path := []string{cmd.CanonicalName}

	expanded, err := argfile.Expand(argv, prefix, spec.DefaultArgFileCycleLimit, path, argv)
	if err != nil {
		return nil, err
	}
	return parseLevel(path, cmd, expanded, effectiveCfg)
}

// parseLevel classifies args against cmd, groups positionals, and
// recurses into a matched subcommand (if any) over the unconsumed tail.
func parseLevel(path []string, cmd *spec.CommandSpecification, args []string, cfg *spec.ParserConfiguration) (*spec.ParseResult, error) {
	scan, err := scanLevel(path, args, cmd, cfg)
	if err != nil {
		return nil, err
	}

	levelArgs := args
	if scan.subcommandAt >= 0 {
		levelArgs = args[:scan.subcommandAt+1]
	}

	positionals, err := groupPositionals(path, levelArgs, cmd.Positionals, scan.positionals)
	if err != nil {
		return nil, err
	}

	options := make(map[string]spec.OptionValue, len(scan.slotOrder))
	for _, name := range scan.slotOrder {
		s := scan.slots[name]
		flatten := cfg.EffectiveFlatten(s.opt, cmd)
		options[name] = s.finalize(flatten)
	}

	result := &spec.ParseResult{
		Command:     cmd.CanonicalName,
		Args:        levelArgs,
		Options:     options,
		Positionals: positionals,
		Trailing:    scan.trailing,
	}

	if scan.subcommandAt >= 0 {
		childPath := append(append([]string(nil), path...), scan.subcommand.CanonicalName)
		childCfg := cfg.Merge(scan.subcommand.Config)
		tail := args[scan.subcommandAt+1:]
		child, err := parseLevel(childPath, scan.subcommand, tail, childCfg)
		if err != nil {
			return nil, err
		}
		result.Subcommand = child
	}

	return result, nil
}
