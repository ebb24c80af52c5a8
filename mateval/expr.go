// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mateval

import (
	"fmt"

	"github.com/ajroetker/go-lightmat/funmap"
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
)

// node is implemented by every expression type of this package. Leaves
// that are plain views are handled by the evaluator builders directly.
type node[T matrix.Element] interface {
	matrix.Expression[T]

	linear(cfg evalConfig) linearEval[T]
	perColumn(cfg evalConfig, col int) columnEval[T]
	linearCost() int
	perColumnCost() int
	vectorizable(level simd.DispatchLevel) bool
	validate() error
}

// checkOperand panics unless e can be evaluated, and reports whether it is
// a composite held by value rather than a referenced view.
func checkOperand[T matrix.Element](e matrix.Expression[T]) (embedded bool) {
	switch e.(type) {
	case nil:
		panic("mateval: nil operand")
	case node[T]:
		return true
	case matrix.View[T]:
		return false
	}
	panic(fmt.Sprintf("mateval: operand %T is neither a view nor an element-wise expression", e))
}

// UnaryExpr applies a one-operand functor to every element of its operand.
type UnaryExpr[T, R matrix.Element] struct {
	fn       funmap.UnaryFunc[T, R]
	arg      matrix.Expression[T]
	embedded bool
}

// Map returns the lazy application of fn to every element of arg.
func Map[T, R matrix.Element](fn funmap.UnaryFunc[T, R], arg matrix.Expression[T]) UnaryExpr[T, R] {
	if fn == nil {
		panic("mateval: nil functor")
	}
	return UnaryExpr[T, R]{fn: fn, arg: arg, embedded: checkOperand(arg)}
}

func (u UnaryExpr[T, R]) NRows() int                { return u.arg.NRows() }
func (u UnaryExpr[T, R]) NCols() int                { return u.arg.NCols() }
func (u UnaryExpr[T, R]) NElems() int               { return u.arg.NElems() }
func (u UnaryExpr[T, R]) StaticShape() matrix.Shape { return u.arg.StaticShape() }

func (u UnaryExpr[T, R]) ValueType() R {
	var zero R
	return zero
}

// Func returns the resolved functor.
func (u UnaryExpr[T, R]) Func() funmap.UnaryFunc[T, R] { return u.fn }

// Arg returns the operand.
func (u UnaryExpr[T, R]) Arg() matrix.Expression[T] { return u.arg }

// ArgEmbedded reports whether the operand is a composite held by value.
// A view operand is referenced and must outlive the expression.
func (u UnaryExpr[T, R]) ArgEmbedded() bool { return u.embedded }

func (u UnaryExpr[T, R]) validate() error {
	return validate(u.arg)
}

func (u UnaryExpr[T, R]) vectorizable(level simd.DispatchLevel) bool {
	return funmap.HasNativeFor[T](u.fn.Op(), level) && Vectorizable(u.arg, level)
}

func (u UnaryExpr[T, R]) linearCost() int    { return linearCostOf(u.arg) }
func (u UnaryExpr[T, R]) perColumnCost() int { return perColumnCostOf(u.arg) }

// BinaryExpr applies a two-operand functor element by element.
type BinaryExpr[T matrix.Element] struct {
	fn          funmap.BinaryFunc[T]
	a, b        matrix.Expression[T]
	aEmb, bEmb  bool
	staticShape matrix.Shape
}

// Map2 returns the lazy element-wise application of fn to a and b. It
// panics when the static shapes of a and b can never agree.
func Map2[T matrix.Element](fn funmap.BinaryFunc[T], a, b matrix.Expression[T]) BinaryExpr[T] {
	if fn == nil {
		panic("mateval: nil functor")
	}
	aEmb, bEmb := checkOperand(a), checkOperand(b)
	s, ok := matrix.CombineShapes(a.StaticShape(), b.StaticShape())
	if !ok {
		panic(fmt.Sprintf("mateval: %s of %v and %v operands", fn.Op(), a.StaticShape(), b.StaticShape()))
	}
	return BinaryExpr[T]{fn: fn, a: a, b: b, aEmb: aEmb, bEmb: bEmb, staticShape: s}
}

func (e BinaryExpr[T]) NRows() int                { return e.a.NRows() }
func (e BinaryExpr[T]) NCols() int                { return e.a.NCols() }
func (e BinaryExpr[T]) NElems() int               { return e.a.NElems() }
func (e BinaryExpr[T]) StaticShape() matrix.Shape { return e.staticShape }

func (e BinaryExpr[T]) ValueType() T {
	var zero T
	return zero
}

// Func returns the resolved functor.
func (e BinaryExpr[T]) Func() funmap.BinaryFunc[T] { return e.fn }

// First and Second return the operands.
func (e BinaryExpr[T]) First() matrix.Expression[T]  { return e.a }
func (e BinaryExpr[T]) Second() matrix.Expression[T] { return e.b }

// FirstEmbedded and SecondEmbedded report which operands are held by value.
func (e BinaryExpr[T]) FirstEmbedded() bool  { return e.aEmb }
func (e BinaryExpr[T]) SecondEmbedded() bool { return e.bEmb }

func (e BinaryExpr[T]) validate() error {
	if err := validate(e.a); err != nil {
		return err
	}
	if err := validate(e.b); err != nil {
		return err
	}
	if !matrix.SameShape(e.a, e.b) {
		return fmt.Errorf("%s of %dx%d and %dx%d: %w", e.fn.Op(),
			e.a.NRows(), e.a.NCols(), e.b.NRows(), e.b.NCols(), matrix.ErrShapeMismatch)
	}
	return nil
}

func (e BinaryExpr[T]) vectorizable(level simd.DispatchLevel) bool {
	return funmap.HasNativeFor[T](e.fn.Op(), level) && Vectorizable(e.a, level) && Vectorizable(e.b, level)
}

func (e BinaryExpr[T]) linearCost() int { return linearCostOf(e.a) + linearCostOf(e.b) }

func (e BinaryExpr[T]) perColumnCost() int {
	return perColumnCostOf(e.a) + perColumnCostOf(e.b)
}

// validate checks the run-time dimensions of every node below e against
// each other and against their static shapes.
func validate[T matrix.Element](e matrix.Expression[T]) error {
	if !e.StaticShape().Matches(e.NRows(), e.NCols()) {
		return fmt.Errorf("%dx%d value with static shape %v: %w",
			e.NRows(), e.NCols(), e.StaticShape(), matrix.ErrShapeMismatch)
	}
	if n, ok := e.(node[T]); ok {
		return n.validate()
	}
	return nil
}

// Vectorizable reports whether every operator of e has a native register
// kernel at level for its element type.
func Vectorizable[T matrix.Element](e matrix.Expression[T], level simd.DispatchLevel) bool {
	if n, ok := e.(node[T]); ok {
		return n.vectorizable(level)
	}
	return level.IsVector()
}
