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

	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
)

// TransposeView is the transpose of a view. It reads the operand in place.
type TransposeView[T matrix.Element] struct {
	arg matrix.View[T]
}

// TransposeExpr is the transpose of a composite expression. The operand is
// evaluated into a temporary once per pass, then read transposed.
type TransposeExpr[T matrix.Element] struct {
	arg node[T]
}

// Trans returns the lazy transpose of e: a TransposeView for views, a
// TransposeExpr for composites. The transpose of a transpose view is the
// original view, and a transposed fill is a fill.
func Trans[T matrix.Element](e matrix.Expression[T]) matrix.Expression[T] {
	if checkOperand(e) {
		switch x := e.(type) {
		case TransposeView[T]:
			return x.arg
		case FillExpr[T]:
			x.rows, x.cols, x.shape = x.cols, x.rows, x.shape.Transposed()
			return x
		}
		return TransposeExpr[T]{arg: e.(node[T])}
	}
	return TransposeView[T]{arg: e.(matrix.View[T])}
}

func (t TransposeView[T]) NRows() int                { return t.arg.NCols() }
func (t TransposeView[T]) NCols() int                { return t.arg.NRows() }
func (t TransposeView[T]) NElems() int               { return t.arg.NElems() }
func (t TransposeView[T]) StaticShape() matrix.Shape { return t.arg.StaticShape().Transposed() }
func (t TransposeView[T]) Elem(i, j int) T           { return t.arg.Elem(j, i) }

func (t TransposeView[T]) ValueType() T {
	var zero T
	return zero
}

// Arg returns the view being transposed.
func (t TransposeView[T]) Arg() matrix.View[T] { return t.arg }

func (t TransposeView[T]) validate() error { return validate[T](t.arg) }

func (t TransposeView[T]) vectorizable(level simd.DispatchLevel) bool { return level.IsVector() }

func (t TransposeView[T]) linearCost() int    { return costLinearView }
func (t TransposeView[T]) perColumnCost() int { return costPerColumnView }

func (t TransposeView[T]) linear(evalConfig) linearEval[T] {
	if d, ok := t.arg.(matrix.DenseBlock[T]); ok {
		return &transDenseLinear[T]{data: d.Data(), rows: t.NRows(), ld: d.LeadDim()}
	}
	return &viewLinear[T]{v: t, rows: t.NRows()}
}

func (t TransposeView[T]) perColumn(_ evalConfig, col int) columnEval[T] {
	if d, ok := t.arg.(matrix.DenseBlock[T]); ok {
		return &transDenseColumn[T]{data: d.Data(), ld: d.LeadDim(), off: col}
	}
	return &viewColumn[T]{v: t, col: col}
}

func (t TransposeExpr[T]) NRows() int                { return t.arg.NCols() }
func (t TransposeExpr[T]) NCols() int                { return t.arg.NRows() }
func (t TransposeExpr[T]) NElems() int               { return t.arg.NElems() }
func (t TransposeExpr[T]) StaticShape() matrix.Shape { return t.arg.StaticShape().Transposed() }

func (t TransposeExpr[T]) ValueType() T {
	var zero T
	return zero
}

// Arg returns the expression being transposed.
func (t TransposeExpr[T]) Arg() matrix.Expression[T] { return t.arg }

func (t TransposeExpr[T]) validate() error { return validate[T](t.arg) }

func (t TransposeExpr[T]) vectorizable(level simd.DispatchLevel) bool {
	return t.arg.vectorizable(level)
}

// The operand is evaluated once into a temporary, then read back through a
// transposed view; both passes count.
func (t TransposeExpr[T]) linearCost() int    { return costLinearView + t.arg.linearCost() }
func (t TransposeExpr[T]) perColumnCost() int { return costPerColumnView + t.arg.perColumnCost() }

// materialize evaluates the operand into a contiguous temporary and
// returns its transpose as a view.
func (t TransposeExpr[T]) materialize(cfg evalConfig) TransposeView[T] {
	tmp := matrix.NewDense[T](t.arg.NRows(), t.arg.NCols())
	run[T](t.arg, tmp, cfg, ChooseKind[T](t.arg, tmp))
	return TransposeView[T]{arg: tmp}
}

func (t TransposeExpr[T]) linear(cfg evalConfig) linearEval[T] {
	return t.materialize(cfg).linear(cfg)
}

func (t TransposeExpr[T]) perColumn(cfg evalConfig, col int) columnEval[T] {
	return t.materialize(cfg).perColumn(cfg, col)
}

// FillExpr is a rows x cols matrix with every element equal to one value.
type FillExpr[T matrix.Element] struct {
	v     T
	rows  int
	cols  int
	shape matrix.Shape
}

// Fill returns a dynamic-shape constant matrix. It panics on negative
// dimensions.
func Fill[T matrix.Element](v T, rows, cols int) FillExpr[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("mateval: Fill(%dx%d): negative dimension", rows, cols))
	}
	return FillExpr[T]{v: v, rows: rows, cols: cols, shape: matrix.DynamicShape()}
}

// FillLike returns a constant matrix with the dimensions and static shape
// of e.
func FillLike[T matrix.Element](v T, e matrix.Expression[T]) FillExpr[T] {
	return FillExpr[T]{v: v, rows: e.NRows(), cols: e.NCols(), shape: e.StaticShape()}
}

func (f FillExpr[T]) NRows() int                { return f.rows }
func (f FillExpr[T]) NCols() int                { return f.cols }
func (f FillExpr[T]) NElems() int               { return f.rows * f.cols }
func (f FillExpr[T]) StaticShape() matrix.Shape { return f.shape }
func (f FillExpr[T]) Elem(i, j int) T           { return f.v }

func (f FillExpr[T]) ValueType() T {
	var zero T
	return zero
}

// Value returns the fill value.
func (f FillExpr[T]) Value() T { return f.v }

func (f FillExpr[T]) validate() error                            { return nil }
func (f FillExpr[T]) vectorizable(level simd.DispatchLevel) bool { return level.IsVector() }
func (f FillExpr[T]) linearCost() int                            { return costFill }
func (f FillExpr[T]) perColumnCost() int                         { return costFill }

func (f FillExpr[T]) linear(evalConfig) linearEval[T]         { return fillEval[T]{v: f.v} }
func (f FillExpr[T]) perColumn(evalConfig, int) columnEval[T] { return fillEval[T]{v: f.v} }
