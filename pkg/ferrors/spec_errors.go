// spec_errors.go - construction-time specification errors.
// SPDX-License-Identifier: GPL-3.0-or-later

package ferrors

import "fmt"

// OptionSpecificationError is raised when an [OptionSpecification]
// violates one of the invariants of spec §4.1.
type OptionSpecificationError struct {
	// Option is the offending option's canonical name.
	Option string

	// Reason is a short machine-stable description of which invariant
	// was violated.
	Reason string

	ctx Context
}

var (
	_ error             = OptionSpecificationError{}
	_ FlagrantError      = OptionSpecificationError{}
	_ SpecificationError = OptionSpecificationError{}
)

func (OptionSpecificationError) isSpecificationError() {}

// Error implements [error].
func (e OptionSpecificationError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Option, e.Reason)
}

// ErrorContext implements [FlagrantError].
func (e OptionSpecificationError) ErrorContext() Context {
	ctx := Context{"option": e.Option, "reason": e.Reason}
	for k, v := range e.ctx {
		ctx[k] = v
	}
	return ctx
}

// NewOptionSpecificationError constructs an [OptionSpecificationError].
func NewOptionSpecificationError(option, reason string, extra Context) OptionSpecificationError {
	return OptionSpecificationError{Option: option, Reason: reason, ctx: extra}
}

// CommandSpecificationError is raised when a [CommandSpecification]
// violates one of the invariants of spec §4.1.
type CommandSpecificationError struct {
	// Command is the offending command's canonical name.
	Command string

	// Reason is a short machine-stable description of which invariant
	// was violated.
	Reason string

	ctx Context
}

var (
	_ error             = CommandSpecificationError{}
	_ FlagrantError      = CommandSpecificationError{}
	_ SpecificationError = CommandSpecificationError{}
)

func (CommandSpecificationError) isSpecificationError() {}

// Error implements [error].
func (e CommandSpecificationError) Error() string {
	return fmt.Sprintf("invalid command %q: %s", e.Command, e.Reason)
}

// ErrorContext implements [FlagrantError].
func (e CommandSpecificationError) ErrorContext() Context {
	ctx := Context{"command": e.Command, "reason": e.Reason}
	for k, v := range e.ctx {
		ctx[k] = v
	}
	return ctx
}

// NewCommandSpecificationError constructs a [CommandSpecificationError].
func NewCommandSpecificationError(command, reason string, extra Context) CommandSpecificationError {
	return CommandSpecificationError{Command: command, Reason: reason, ctx: extra}
}
