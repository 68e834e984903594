// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import "strconv"

// EmptyParser always succeeds without consuming input.
type EmptyParser struct {
	name string
}

// Empty returns a parser that matches the empty string.
func Empty() Parser {
	return EmptyParser{name: "<empty>"}
}

func (p EmptyParser) Name() string { return p.name }

func (p EmptyParser) rename(name string) Parser {
	p.name = name
	return p
}

func (p EmptyParser) Attempt(t *Trampoline, _ ByteSet, c Cursor, k Continuation) {
	k, prev := t.open(p.name, c, k)
	k(t, Succeed(c))
	t.scope = prev
}

// Terminal matches a literal lexeme.
type Terminal struct {
	lexeme string
	name   string
}

// Lit returns a parser that matches lexeme exactly.
func Lit(lexeme string) Parser {
	return Terminal{lexeme: lexeme, name: strconv.Quote(lexeme)}
}

func (p Terminal) Name() string { return p.name }

func (p Terminal) rename(name string) Parser {
	p.name = name
	return p
}

func (p Terminal) Attempt(t *Trampoline, layout ByteSet, c Cursor, k Continuation) {
	k, prev := t.open(p.name, c, k)
	at := c.Skip(layout)
	if at.HasPrefix(p.lexeme) {
		k(t, Succeed(at.Advance(len(p.lexeme))))
	} else {
		k(t, Fail(Mismatch, p.name, c, "expected %q, found %s", p.lexeme, at))
	}
	t.scope = prev
}

// CaptureParser scans a non-empty token up to a delimiter.
type CaptureParser struct {
	delims ByteSet
	name   string
}

// Capture returns a parser that consumes one or more bytes up to the
// first byte in delims or the end of input.
func Capture(delims string) Parser {
	return CaptureParser{delims: Bytes(delims), name: "capture"}
}

func (p CaptureParser) Name() string { return p.name }

func (p CaptureParser) rename(name string) Parser {
	p.name = name
	return p
}

func (p CaptureParser) Attempt(t *Trampoline, layout ByteSet, c Cursor, k Continuation) {
	k, prev := t.open(p.name, c, k)
	at := c.Skip(layout)
	if n := at.ScanUntil(p.delims); n > 0 {
		k(t, Succeed(at.Advance(n)))
	} else {
		k(t, Fail(Mismatch, p.name, c, "expected a token ending before one of %s, found %s", p.delims, at))
	}
	t.scope = prev
}
