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

package funmap

import (
	"math"

	"github.com/ajroetker/go-lightmat/simd"
)

// UnaryFunc is a resolved one-operand operator from T to R.
//
// ApplySlice computes dst[i] = Apply(src[i]) for i < len(dst); src must be
// at least as long as dst and may alias dst exactly. It uses the native
// kernel for level when one exists.
type UnaryFunc[T, R any] interface {
	Op() Op
	Apply(x T) R
	ApplySlice(level simd.DispatchLevel, dst []R, src []T)
}

// BinaryFunc is a resolved two-operand operator on T.
//
// ApplySlice computes dst[i] = Apply(x[i], y[i]) for i < len(dst); either
// operand may alias dst exactly.
type BinaryFunc[T any] interface {
	Op() Op
	Apply(x, y T) T
	ApplySlice(level simd.DispatchLevel, dst, x, y []T)
}

func mapUnary[T simd.Lanes](op Op, level simd.DispatchLevel, dst, src []T, f func(T) T) {
	if applyNativeUnary(op, level, dst, src) {
		return
	}
	src = src[:len(dst)]
	for i, x := range src {
		dst[i] = f(x)
	}
}

func mapBinary[T simd.Lanes](op Op, level simd.DispatchLevel, dst, x, y []T, f func(T, T) T) {
	if applyNativeBinary(op, level, dst, x, y) {
		return
	}
	x, y = x[:len(dst)], y[:len(dst)]
	for i := range dst {
		dst[i] = f(x[i], y[i])
	}
}

// Add resolves x + y.
type Add[T simd.Lanes] struct{}

func (Add[T]) Op() Op         { return OpAdd }
func (Add[T]) Apply(x, y T) T { return x + y }
func (f Add[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	mapBinary(OpAdd, level, dst, x, y, f.Apply)
}

// Sub resolves x - y.
type Sub[T simd.Lanes] struct{}

func (Sub[T]) Op() Op         { return OpSub }
func (Sub[T]) Apply(x, y T) T { return x - y }
func (f Sub[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	mapBinary(OpSub, level, dst, x, y, f.Apply)
}

// Mul resolves x * y.
type Mul[T simd.Lanes] struct{}

func (Mul[T]) Op() Op         { return OpMul }
func (Mul[T]) Apply(x, y T) T { return x * y }
func (f Mul[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	mapBinary(OpMul, level, dst, x, y, f.Apply)
}

// Div resolves x / y. Integer division by zero panics as in Go.
type Div[T simd.Lanes] struct{}

func (Div[T]) Op() Op         { return OpDiv }
func (Div[T]) Apply(x, y T) T { return x / y }
func (f Div[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	mapBinary(OpDiv, level, dst, x, y, f.Apply)
}

// Max resolves the larger of x and y; x wins unless y compares strictly larger.
type Max[T simd.Lanes] struct{}

func (Max[T]) Op() Op { return OpMax }
func (Max[T]) Apply(x, y T) T {
	if y > x {
		return y
	}
	return x
}
func (f Max[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	mapBinary(OpMax, level, dst, x, y, f.Apply)
}

// Min resolves the smaller of x and y; x wins unless y compares strictly smaller.
type Min[T simd.Lanes] struct{}

func (Min[T]) Op() Op { return OpMin }
func (Min[T]) Apply(x, y T) T {
	if y < x {
		return y
	}
	return x
}
func (f Min[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	mapBinary(OpMin, level, dst, x, y, f.Apply)
}

// Neg resolves -x. Unsigned elements wrap.
type Neg[T simd.Lanes] struct{}

func (Neg[T]) Op() Op      { return OpNeg }
func (Neg[T]) Apply(x T) T { return -x }
func (f Neg[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	mapUnary(OpNeg, level, dst, src, f.Apply)
}

// Abs resolves |x|. For floats the sign bit is cleared, so Abs(-0) is +0.
type Abs[T simd.Lanes] struct{}

func (Abs[T]) Op() Op { return OpAbs }
func (Abs[T]) Apply(x T) T {
	switch v := any(x).(type) {
	case float64:
		return T(math.Abs(v))
	case float32:
		return T(math.Float32frombits(math.Float32bits(v) &^ (1 << 31)))
	}
	if x < 0 {
		return -x
	}
	return x
}
func (f Abs[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	mapUnary(OpAbs, level, dst, src, f.Apply)
}

// Sqr resolves x*x.
type Sqr[T simd.Lanes] struct{}

func (Sqr[T]) Op() Op      { return OpSqr }
func (Sqr[T]) Apply(x T) T { return x * x }
func (f Sqr[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	mapUnary(OpSqr, level, dst, src, f.Apply)
}

// Cube resolves x*x*x.
type Cube[T simd.Lanes] struct{}

func (Cube[T]) Op() Op      { return OpCube }
func (Cube[T]) Apply(x T) T { return x * x * x }
func (f Cube[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	mapUnary(OpCube, level, dst, src, f.Apply)
}
