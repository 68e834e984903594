// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import (
	"code.hybscloud.com/kont"
)

// loop runs a recursive driver protocol.
// step returns Left(nextState) to continue or Right(result) to finish.
func loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}

// drain bounces until the trampoline is empty and returns the number of
// work items executed.
func drain() kont.Eff[int] {
	return loop(0, func(steps int) kont.Eff[kont.Either[int, int]] {
		return kont.Bind(kont.Perform(Bounce{}), func(more bool) kont.Eff[kont.Either[int, int]] {
			if more {
				return kont.Pure(kont.Left[int, int](steps + 1))
			}
			return kont.Pure(kont.Right[int, int](steps))
		})
	})
}
