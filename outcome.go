// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
)

// Outcome is the result of one match attempt.
// Right carries the remaining cursor of a success; Left carries the
// failure with its remaining cursor and diagnostic.
type Outcome = kont.Either[*Failure, Cursor]

// FailureKind classifies a failed outcome.
type FailureKind uint8

const (
	// Mismatch means a literal or capture did not match at the cursor.
	Mismatch FailureKind = iota + 1
	// Unassigned means a rule was attempted before it was given a body.
	Unassigned
	// Incomplete means the grammar matched a proper prefix of the input.
	Incomplete
)

// Sentinel errors matched by errors.Is against a *Failure.
var (
	ErrMismatch   = errors.New("gll: structural mismatch")
	ErrUnassigned = errors.New("gll: unassigned rule")
	ErrIncomplete = errors.New("gll: incomplete parse")
)

func (k FailureKind) String() string {
	switch k {
	case Mismatch:
		return "mismatch"
	case Unassigned:
		return "unassigned rule"
	case Incomplete:
		return "incomplete parse"
	}
	return fmt.Sprintf("FailureKind(%d)", uint8(k))
}

// Failure describes why a branch did not match.
type Failure struct {
	Kind       FailureKind
	Node       string
	Remaining  Cursor
	Diagnostic string
}

// Error implements error.
func (f *Failure) Error() string {
	if f.Node != "" {
		return fmt.Sprintf("gll: %s at offset %d in %s: %s", f.Kind, f.Remaining.Offset(), f.Node, f.Diagnostic)
	}
	return fmt.Sprintf("gll: %s at offset %d: %s", f.Kind, f.Remaining.Offset(), f.Diagnostic)
}

// Unwrap returns the sentinel error for the failure's kind.
func (f *Failure) Unwrap() error {
	switch f.Kind {
	case Mismatch:
		return ErrMismatch
	case Unassigned:
		return ErrUnassigned
	case Incomplete:
		return ErrIncomplete
	}
	return nil
}

// Succeed returns a successful outcome leaving c unconsumed.
func Succeed(c Cursor) Outcome {
	return kont.Right[*Failure, Cursor](c)
}

// Fail returns a failed outcome leaving c unconsumed.
func Fail(kind FailureKind, node string, c Cursor, format string, args ...any) Outcome {
	return kont.Left[*Failure, Cursor](&Failure{
		Kind:       kind,
		Node:       node,
		Remaining:  c,
		Diagnostic: fmt.Sprintf(format, args...),
	})
}

// Remaining returns the cursor left by o, whether it succeeded or not.
func Remaining(o Outcome) Cursor {
	if f, ok := o.GetLeft(); ok {
		return f.Remaining
	}
	c, _ := o.GetRight()
	return c
}

// Complete reports whether o is a success that consumed all input.
func Complete(o Outcome) bool {
	c, ok := o.GetRight()
	return ok && c.AtEnd()
}

// Diagnostic returns the failure reason of o, or "" for a success.
func Diagnostic(o Outcome) string {
	if f, ok := o.GetLeft(); ok {
		return f.Diagnostic
	}
	return ""
}
