// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gll provides ambiguity-preserving parser combinators with
// self-referential rules, evaluated by continuation passing on an explicit
// trampoline.
//
// Grammars are ordinary Go values composed from a few combinators. A
// grammar may admit several complete derivations of one input; Parse
// reports every one of them rather than the first found.
//
// # Architecture
//
//   - Protocol: every [Parser] implements Attempt(trampoline, layout, cursor, continuation)
//     and reports each outcome to the continuation instead of returning it.
//   - Outcomes: [Outcome] is a [code.hybscloud.com/kont.Either], Right for a success with the
//     remaining [Cursor], Left for a [*Failure] with a diagnostic.
//   - Scheduling: [Alt] never runs an alternative directly; it pushes one work item per
//     alternative onto the [Trampoline], which the driver pops last-in first-out.
//   - Driver: the drain loop is a kont protocol performing one [Bounce] effect per work
//     item, run to completion by [Parse] or one item at a time by [Start] and [Run.Advance].
//   - Recursion: a [Rule] is a shared slot that can be referenced before it is assigned.
//     Rule attempts are memoized per position, so left-recursive rules terminate.
//
// # API Topologies
//
//   - Leaves: [Empty], [Lit], [Capture].
//   - Composites: [Seq], [Alt], [Optional], [Layout].
//   - Rules and names: [NewRule], [RuleOf], [Rule.Assign], [Named].
//   - Driving: [Parse], [Accept], [Start], [Run.Advance].
//   - Tracing: [WithTracer], [GraphWriter], [AsyncTracer], [TraceFunc].
//
// # Example
//
//	e := gll.NewRule("E")
//	e.Assign(gll.Seq(gll.Optional(e), gll.Lit("n")))
//	for _, o := range gll.Parse(e, "nnn") {
//		fmt.Println(gll.Complete(o))
//	}
package gll
