// main.go - Main for the flagrant-demo example
// SPDX-License-Identifier: GPL-3.0-or-later

// The flagrant-demo command shows how to build a [flagrant] specification
// with nested subcommands, parse a concrete argv against it, and print
// the resulting tree. It performs no dispatch or execution of its own:
// type conversion and command execution are left to the downstream
// framework that embeds flagrant.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aclaf/flagrant"
	"github.com/aclaf/flagrant/pkg/ferrors"
	"github.com/kballard/go-shellquote"
)

// buildSpecification constructs the "build" root command used by
// boundary scenario 1: an --output/-o value option, a -v/--verbose flag,
// one or more source positionals, and a nested "deploy" subcommand.
func buildSpecification() *flagrant.CommandSpecification {
	root := flagrant.NewCommand("build")
	root.Summary = "Compile one or more sources into an output artifact."

	output := flagrant.NewValue("output", []string{"output"}, []string{"o"}, flagrant.EXACTLY_ONE)
	verbose := flagrant.NewFlag("verbose", []string{"verbose"}, []string{"v"})
	verbose.NegationPrefixes = []string{"no"}

	root.Options = []*flagrant.OptionSpecification{output, verbose}
	root.Positionals = []*flagrant.PositionalSpecification{
		flagrant.NewPositional("sources", flagrant.ONE_OR_MORE),
	}

	deploy := flagrant.NewCommand("deploy")
	deploy.Summary = "Deploy the artifact produced by a previous build to a target environment."
	target := flagrant.NewValue("target", []string{"target"}, []string{"t"}, flagrant.EXACTLY_ONE)
	dryRun := flagrant.NewFlag("dry-run", []string{"dry-run"}, nil)
	deploy.Options = []*flagrant.OptionSpecification{target, dryRun}
	deploy.Positionals = []*flagrant.PositionalSpecification{
		flagrant.NewPositional("artifact", flagrant.EXACTLY_ONE),
	}

	root.Subcommands = []*flagrant.CommandSpecification{deploy}
	return root
}

func main() {
	root := buildSpecification()
	if err := root.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "flagrant-demo: invalid specification: %s\n", err)
		os.Exit(1)
	}

	fmt.Println(root.Describe())

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"--output", "out/app", "--verbose", "src/a.go", "src/b.go"}
	}

	fmt.Printf("$ build %s\n", shellquote.Join(argv...))

	result, err := flagrant.Parse(root, argv, nil)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	printResult(result, 0)
}

// printError renders a flagrant error the way a host diagnostic would:
// the Go error string, followed by its structured context and, for a
// [ferrors.ParseError], the command path and offending position.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "flagrant-demo: %s\n", err)

	var fe ferrors.FlagrantError
	if !errors.As(err, &fe) {
		return
	}
	for k, v := range fe.ErrorContext() {
		fmt.Fprintf(os.Stderr, "  %s: %v\n", k, v)
	}

	var pe ferrors.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(os.Stderr, "  path: %s\n", shellquote.Join(pe.Path()...))
		fmt.Fprintf(os.Stderr, "  position: %d of %s\n", pe.Position(), shellquote.Join(pe.Args()...))
	}
}

// printResult prints one level of a [flagrant.ParseResult] tree,
// indenting each nested subcommand result by two more spaces.
func printResult(result *flagrant.ParseResult, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	fmt.Printf("%scommand: %s\n", indent, result.Command)
	fmt.Printf("%sargs: %s\n", indent, shellquote.Join(result.Args...))

	for name, val := range result.Options {
		fmt.Printf("%s  option %s: %s\n", indent, name, renderValue(val))
	}
	for name, values := range result.Positionals {
		fmt.Printf("%s  positional %s: %s\n", indent, name, shellquote.Join(values...))
	}
	if len(result.Trailing) > 0 {
		fmt.Printf("%s  trailing: %s\n", indent, shellquote.Join(result.Trailing...))
	}

	if result.Subcommand != nil {
		printResult(result.Subcommand, depth+1)
	}
}

// renderValue renders one [flagrant.OptionValue] for display, covering
// every [flagrant.OptionValueKind] the accumulator can produce.
func renderValue(v flagrant.OptionValue) string {
	switch v.Kind {
	case flagrant.FlagPresent:
		return "present"
	case flagrant.FlagNegated:
		return "negated"
	case flagrant.FlagCount:
		return fmt.Sprintf("count=%d", v.Count)
	case flagrant.Single:
		return v.Text
	case flagrant.Sequence:
		return shellquote.Join(v.Texts...)
	case flagrant.NestedSequence:
		groups := make([]string, len(v.Groups))
		for i, g := range v.Groups {
			groups[i] = shellquote.Join(g...)
		}
		return fmt.Sprintf("%v", groups)
	case flagrant.Tree:
		return fmt.Sprintf("%+v", v.Tree)
	default:
		return "?"
	}
}
