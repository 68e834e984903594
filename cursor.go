// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import (
	"fmt"
	"strings"
)

// snippetLen bounds the input excerpt quoted in diagnostics.
const snippetLen = 16

// Cursor is an immutable view into the input of one parse call.
// The view covers input[Offset():]; matching only ever moves it forward.
type Cursor struct {
	input string
	off   int
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// Offset returns the position of the cursor within the input.
func (c Cursor) Offset() int {
	return c.off
}

// Len returns the number of bytes remaining in the view.
func (c Cursor) Len() int {
	return len(c.input) - c.off
}

// Rest returns the remaining bytes of the view.
func (c Cursor) Rest() string {
	return c.input[c.off:]
}

// AtEnd reports whether the view is empty.
func (c Cursor) AtEnd() bool {
	return c.off >= len(c.input)
}

// HasPrefix reports whether the view begins with lexeme.
func (c Cursor) HasPrefix(lexeme string) bool {
	return strings.HasPrefix(c.input[c.off:], lexeme)
}

// Advance returns the cursor moved forward by n bytes, clamped to the end.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}
	c.off = min(c.off+n, len(c.input))
	return c
}

// Skip returns the cursor moved past every leading byte in set.
func (c Cursor) Skip(set ByteSet) Cursor {
	if set.IsEmpty() {
		return c
	}
	for c.off < len(c.input) && set.Has(c.input[c.off]) {
		c.off++
	}
	return c
}

// ScanUntil returns the number of bytes before the first byte in set,
// or the remaining length when no such byte exists.
func (c Cursor) ScanUntil(set ByteSet) int {
	n := 0
	for c.off+n < len(c.input) && !set.Has(c.input[c.off+n]) {
		n++
	}
	return n
}

// String quotes a short excerpt of the view for diagnostics.
func (c Cursor) String() string {
	if c.AtEnd() {
		return "end of input"
	}
	rest := c.Rest()
	if len(rest) > snippetLen {
		return fmt.Sprintf("%q...", rest[:snippetLen])
	}
	return fmt.Sprintf("%q", rest)
}

// ByteSet is a set of byte values, used for layout and delimiter sets.
type ByteSet [4]uint64

// Bytes returns the set of bytes occurring in s.
func Bytes(s string) ByteSet {
	var set ByteSet
	for i := 0; i < len(s); i++ {
		b := s[i]
		set[b>>6] |= 1 << (b & 63)
	}
	return set
}

// Has reports whether b is in the set.
func (s ByteSet) Has(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// IsEmpty reports whether the set has no members.
func (s ByteSet) IsEmpty() bool {
	return s == ByteSet{}
}

// String lists the members of the set as a quoted string.
func (s ByteSet) String() string {
	var sb strings.Builder
	for i := 0; i < 256; i++ {
		if s.Has(byte(i)) {
			sb.WriteByte(byte(i))
		}
	}
	return fmt.Sprintf("%q", sb.String())
}
