// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

// Option configures a parse call.
type Option func(*options)

type options struct {
	tracer Tracer
	layout ByteSet
}

// WithTracer reports every attempt of a named parser to tr.
func WithTracer(tr Tracer) Option {
	return func(o *options) {
		o.tracer = tr
	}
}

// WithLayout sets the layout in effect outside any Layout scope.
// The default layout skips nothing.
func WithLayout(skip string) Option {
	return func(o *options) {
		o.layout = Bytes(skip)
	}
}

// begin creates the trampoline for one parse call and runs the
// synchronous part of the grammar's attempt.
func begin(g Parser, input string, opts []Option) *Trampoline {
	mustParser(g)
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	t := newTrampoline(input, o.tracer)
	g.Attempt(t, o.layout, NewCursor(input), t.complete)
	return t
}
