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
	"github.com/ajroetker/go-lightmat/funmap"
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
)

// Element-wise evaluators compose the evaluators of their operands, always
// of the same kind.
//
// Block calls write out only after every operand has been read for the
// block: the second operand of a binary node goes to scratch first, and
// the first operand is evaluated directly into out. This keeps
// d = f(a, d) correct when out aliases a leaf.

// unaryCore holds what the linear and per-column forms share.
type unaryCore[T, R matrix.Element] struct {
	fn      funmap.UnaryFunc[T, R]
	level   simd.DispatchLevel
	scratch []T // nil when T and R are the same type
}

func newUnaryCore[T, R matrix.Element](fn funmap.UnaryFunc[T, R], cfg evalConfig) unaryCore[T, R] {
	c := unaryCore[T, R]{fn: fn, level: cfg.level}
	if _, same := any([]R(nil)).([]T); !same && cfg.block {
		c.scratch = make([]T, blockLen)
	}
	return c
}

// buffer returns where the operand block for out is staged.
func (c *unaryCore[T, R]) buffer(out []R) []T {
	if in, ok := any(out).([]T); ok {
		return in
	}
	return c.scratch[:len(out)]
}

type unaryLinear[T, R matrix.Element] struct {
	unaryCore[T, R]
	arg linearEval[T]
}

func (e *unaryLinear[T, R]) value(i int) R {
	return e.fn.Apply(e.arg.value(i))
}

func (e *unaryLinear[T, R]) block(i int, out []R) {
	in := e.buffer(out)
	e.arg.block(i, in)
	e.fn.ApplySlice(e.level, out, in)
}

type unaryColumn[T, R matrix.Element] struct {
	unaryCore[T, R]
	arg columnEval[T]
}

func (e *unaryColumn[T, R]) value(i int) R {
	return e.fn.Apply(e.arg.value(i))
}

func (e *unaryColumn[T, R]) block(i int, out []R) {
	in := e.buffer(out)
	e.arg.block(i, in)
	e.fn.ApplySlice(e.level, out, in)
}

func (e *unaryColumn[T, R]) nextColumn() { e.arg.nextColumn() }

func (u UnaryExpr[T, R]) linear(cfg evalConfig) linearEval[R] {
	return &unaryLinear[T, R]{unaryCore: newUnaryCore(u.fn, cfg), arg: newLinear(u.arg, cfg)}
}

func (u UnaryExpr[T, R]) perColumn(cfg evalConfig, col int) columnEval[R] {
	return &unaryColumn[T, R]{unaryCore: newUnaryCore(u.fn, cfg), arg: newColumn(u.arg, cfg, col)}
}

type binaryCore[T matrix.Element] struct {
	fn      funmap.BinaryFunc[T]
	level   simd.DispatchLevel
	scratch []T
}

func newBinaryCore[T matrix.Element](fn funmap.BinaryFunc[T], cfg evalConfig) binaryCore[T] {
	c := binaryCore[T]{fn: fn, level: cfg.level}
	if cfg.block {
		c.scratch = make([]T, blockLen)
	}
	return c
}

type binaryLinear[T matrix.Element] struct {
	binaryCore[T]
	a, b linearEval[T]
}

func (e *binaryLinear[T]) value(i int) T {
	return e.fn.Apply(e.a.value(i), e.b.value(i))
}

func (e *binaryLinear[T]) block(i int, out []T) {
	y := e.scratch[:len(out)]
	e.b.block(i, y)
	e.a.block(i, out)
	e.fn.ApplySlice(e.level, out, out, y)
}

type binaryColumn[T matrix.Element] struct {
	binaryCore[T]
	a, b columnEval[T]
}

func (e *binaryColumn[T]) value(i int) T {
	return e.fn.Apply(e.a.value(i), e.b.value(i))
}

func (e *binaryColumn[T]) block(i int, out []T) {
	y := e.scratch[:len(out)]
	e.b.block(i, y)
	e.a.block(i, out)
	e.fn.ApplySlice(e.level, out, out, y)
}

func (e *binaryColumn[T]) nextColumn() {
	e.a.nextColumn()
	e.b.nextColumn()
}

func (e BinaryExpr[T]) linear(cfg evalConfig) linearEval[T] {
	return &binaryLinear[T]{binaryCore: newBinaryCore(e.fn, cfg), a: newLinear(e.a, cfg), b: newLinear(e.b, cfg)}
}

func (e BinaryExpr[T]) perColumn(cfg evalConfig, col int) columnEval[T] {
	return &binaryColumn[T]{
		binaryCore: newBinaryCore(e.fn, cfg),
		a:          newColumn(e.a, cfg, col),
		b:          newColumn(e.b, cfg, col),
	}
}
