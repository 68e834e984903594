// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import (
	"code.hybscloud.com/kont"
)

// Run is a parse call driven one work item at a time.
type Run struct {
	t     *Trampoline
	susp  *kont.Suspension[int]
	steps int
}

// Start runs the synchronous part of g's attempt on input and returns
// the parse suspended before its first deferred work item.
// The drain protocol is reified so that each Bounce is a suspension.
func Start(g Parser, input string, opts ...Option) *Run {
	t := begin(g, input, opts)
	steps, susp := kont.StepExpr(kont.Reify(drain()))
	return &Run{t: t, susp: susp, steps: steps}
}

// Advance executes the next deferred work item.
// DispatchTrampoline is non-blocking: it returns iox.ErrWouldBlock when
// an asynchronous tracer is full, leaving the run unchanged so the call
// can be retried.
func (r *Run) Advance() error {
	if r.susp == nil {
		return nil
	}
	top, ok := r.susp.Op().(trampolineDispatcher)
	if !ok {
		panic("gll: unhandled effect in Advance")
	}
	v, err := top.DispatchTrampoline(r.t)
	if err != nil {
		return err
	}
	r.steps, r.susp = r.susp.Resume(v)
	return nil
}

// Done reports whether every deferred work item has run.
func (r *Run) Done() bool {
	return r.susp == nil
}

// Steps returns the number of work items executed once the run is done.
func (r *Run) Steps() int {
	return r.steps
}

// Pending returns the number of deferred work items not yet executed.
func (r *Run) Pending() int {
	return r.t.Pending()
}

// Serial returns the serial number of the parse call.
func (r *Run) Serial() Serial {
	return r.t.serial
}

// Successes returns the complete successes reported so far.
func (r *Run) Successes() []Outcome {
	return r.t.successes
}

// Failures returns the failures reported so far.
func (r *Run) Failures() []Outcome {
	return r.t.failures
}

// Results returns what Parse would return for the outcomes reported so far.
func (r *Run) Results() []Outcome {
	return r.t.results()
}
