// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package flagrant implements a specification-driven command-line argument
parser. It accepts an immutable [CommandSpecification] and an argument
vector and returns a structured, immutable [ParseResult] describing what
the user typed: classified options, resolved names, grouped positionals,
and nested subcommand results.

Flagrant performs syntactic analysis only -- it does no type conversion,
no default-value assignment, no help-text rendering, and no command
dispatch. Hosts build those concerns on top of the structured
[ParseResult] it returns.

To use this package:

 1. Build a [*CommandSpecification] with [NewCommand], populating its
    Options, Positionals, and Subcommands with [NewFlag], [NewValue],
    [NewDict], and [NewPositional].

 2. Call [*CommandSpecification.Validate] once, at startup; a validated
    specification is a constant, safe to share across goroutines.

 3. Call [Parse] with the specification and an argument vector to obtain
    a [ParseResult], or a structured error from package
    [github.com/aclaf/flagrant/pkg/ferrors].

# Options

An option is one of three variants: a [Flag] (no value, optionally
negatable), a [Value] (one or more strings), or a [Dict] (structural
key=value tokens, see package
[github.com/aclaf/flagrant/pkg/dictparse]). Repeated occurrences merge
according to the option's [AccumulationMode]: [First], [Last], [Count],
[Append], [Extend], [Merge], or [Error].

# Positionals

Positional values are collected in order and distributed across the
command's [PositionalSpecification] table after the scan completes,
honoring each spec's arity and reserving room for later specs' minima.

# Subcommands

A [*CommandSpecification] may declare nested subcommands. On a match,
the current level finalizes and the remaining argument tail is parsed
recursively against the child specification, producing a chain of
[ParseResult] values linked through [ParseResult.Subcommand].

# Argument files

A token prefixed with the configured argument-file prefix (`@` by
default) is replaced, before classification, by the lines of the
referenced file -- see package
[github.com/aclaf/flagrant/pkg/argfile].

# Errors

Every error flagrant raises implements
[github.com/aclaf/flagrant/pkg/ferrors.FlagrantError]; parse-time errors
additionally implement
[github.com/aclaf/flagrant/pkg/ferrors.ParseError], carrying the command
path, the argument tuple, and the offending position. Parsing is
fail-fast: the first error stops the scan.
*/
package flagrant
