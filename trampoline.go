// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

// guard identifies a memoized outcome being delivered: the entry, the
// end offset and whether the outcome failed. An entry recording the same
// guard again while a delivery of it is causally in progress has looped
// without consuming input.
type guard struct {
	entry  *memoEntry
	end    int
	failed bool
}

// activeGuard is a delivery whose work item has started and whose
// descendants are not yet exhausted. base is the work stack height
// below the delivery's descendants.
type activeGuard struct {
	guard
	base int
}

// scope is the dynamic context captured by deferred work items.
// node is the innermost traced combinator, 0 at the root.
type scope struct {
	node int
}

// work is a deferred action together with the scope it was created in.
// guard is set for the delivery of a memoized outcome.
type work struct {
	fn    func()
	scope scope
	guard guard
}

// Trampoline owns the deferred work of one top-level parse call.
// Work items are executed last-in first-out until none remain.
// A Trampoline must not be shared between parse calls.
type Trampoline struct {
	input  string
	serial Serial
	work   []work
	scope  scope
	memo   map[memoKey]*memoEntry
	tracer Tracer

	// Work items run depth-first, so the deliveries in active are exactly
	// the causal ancestors of the running item. guards counts them.
	active []activeGuard
	guards map[guard]int
	nodes  int

	successes []Outcome
	failures  []Outcome
}

func newTrampoline(input string, tracer Tracer) *Trampoline {
	return &Trampoline{
		input:  input,
		serial: nextSerial(),
		memo:   make(map[memoKey]*memoEntry),
		tracer: tracer,
		guards: make(map[guard]int),
	}
}

// Input returns the input bound to the trampoline.
func (t *Trampoline) Input() string {
	return t.input
}

// Serial returns the serial number of the parse call.
func (t *Trampoline) Serial() Serial {
	return t.serial
}

// Pending returns the number of deferred work items not yet executed.
func (t *Trampoline) Pending() int {
	return len(t.work)
}

// Push defers fn until the driver loop pops it.
func (t *Trampoline) Push(fn func()) {
	t.work = append(t.work, work{fn: fn, scope: t.scope})
}

// pushGuarded defers fn as the delivery identified by g.
func (t *Trampoline) pushGuarded(g guard, fn func()) {
	t.work = append(t.work, work{fn: fn, scope: t.scope, guard: g})
}

// guarded reports whether a delivery of g is a causal ancestor of the
// running work item.
func (t *Trampoline) guarded(g guard) bool {
	return t.guards[g] > 0
}

// release closes the open deliveries whose descendants all ran, given
// a work stack of height n.
func (t *Trampoline) release(n int) {
	for i := len(t.active) - 1; i >= 0 && t.active[i].base >= n; i-- {
		g := t.active[i].guard
		if t.guards[g]--; t.guards[g] == 0 {
			delete(t.guards, g)
		}
		t.active = t.active[:i]
	}
}

// bounce pops and executes the most recently pushed work item.
// It reports false when there was nothing to run.
func (t *Trampoline) bounce() bool {
	n := len(t.work)
	t.release(n)
	if n == 0 {
		return false
	}
	w := t.work[n-1]
	t.work[n-1] = work{}
	t.work = t.work[:n-1]
	if w.guard.entry != nil {
		t.guards[w.guard]++
		t.active = append(t.active, activeGuard{guard: w.guard, base: n - 1})
	}

	prev := t.scope
	t.scope = w.scope
	w.fn()
	t.scope = prev
	return true
}

// open starts a trace node for name at c.
// It returns k wrapped to report each outcome on the node, and the scope
// the caller restores once its synchronous attempt returns.
func (t *Trampoline) open(name string, c Cursor, k Continuation) (Continuation, scope) {
	prev := t.scope
	if t.tracer == nil || name == "" {
		return k, prev
	}
	t.nodes++
	id := t.nodes
	t.tracer.Trace(Event{
		Serial: t.serial,
		ID:     id,
		Parent: prev.node,
		Name:   name,
		Offset: c.Offset(),
		Status: Entered,
	})
	t.scope.node = id
	return func(t *Trampoline, o Outcome) {
		status := Succeeded
		if o.IsLeft() {
			status = Failed
		}
		t.tracer.Trace(Event{
			Serial: t.serial,
			ID:     id,
			Parent: prev.node,
			Name:   name,
			Offset: c.Offset(),
			Status: status,
		})
		k(t, o)
	}, prev
}

// complete is the top-level continuation. It classifies every outcome
// that reaches the driver as a full success or a failure.
func (t *Trampoline) complete(_ *Trampoline, o Outcome) {
	if c, ok := o.GetRight(); ok {
		if c.AtEnd() {
			t.mark("SUCCESS", c, Succeeded)
			t.successes = append(t.successes, o)
			return
		}
		o = Fail(Incomplete, "", c, "unconsumed input at %s", c)
	}
	t.mark("FAILURE", Remaining(o), Failed)
	t.failures = append(t.failures, o)
}

// mark emits a terminal trace node below the current scope.
func (t *Trampoline) mark(name string, c Cursor, status Status) {
	if t.tracer == nil {
		return
	}
	t.nodes++
	t.tracer.Trace(Event{
		Serial: t.serial,
		ID:     t.nodes,
		Parent: t.scope.node,
		Name:   name,
		Offset: c.Offset(),
		Status: status,
	})
}

// results returns the successes if any were reported, else the failures.
func (t *Trampoline) results() []Outcome {
	if len(t.successes) > 0 {
		return t.successes
	}
	return t.failures
}
