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

// Floor resolves rounding toward negative infinity.
type Floor[T simd.Floats] struct{}

func (Floor[T]) Op() Op      { return OpFloor }
func (Floor[T]) Apply(x T) T { return T(math.Floor(float64(x))) }
func (Floor[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpFloor, level, dst, src, math.Floor)
}

// Ceil resolves rounding toward positive infinity.
type Ceil[T simd.Floats] struct{}

func (Ceil[T]) Op() Op      { return OpCeil }
func (Ceil[T]) Apply(x T) T { return T(math.Ceil(float64(x))) }
func (Ceil[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpCeil, level, dst, src, math.Ceil)
}

// Exp resolves e**x.
type Exp[T simd.Floats] struct{}

func (Exp[T]) Op() Op      { return OpExp }
func (Exp[T]) Apply(x T) T { return T(math.Exp(float64(x))) }
func (Exp[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpExp, level, dst, src, math.Exp)
}

// Log resolves the natural logarithm.
type Log[T simd.Floats] struct{}

func (Log[T]) Op() Op      { return OpLog }
func (Log[T]) Apply(x T) T { return T(math.Log(float64(x))) }
func (Log[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpLog, level, dst, src, math.Log)
}

// Log10 resolves the decimal logarithm.
type Log10[T simd.Floats] struct{}

func (Log10[T]) Op() Op      { return OpLog10 }
func (Log10[T]) Apply(x T) T { return T(math.Log10(float64(x))) }
func (Log10[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpLog10, level, dst, src, math.Log10)
}

// Sin resolves the sine of x radians.
type Sin[T simd.Floats] struct{}

func (Sin[T]) Op() Op      { return OpSin }
func (Sin[T]) Apply(x T) T { return T(math.Sin(float64(x))) }
func (Sin[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpSin, level, dst, src, math.Sin)
}

// Cos resolves the cosine of x radians.
type Cos[T simd.Floats] struct{}

func (Cos[T]) Op() Op      { return OpCos }
func (Cos[T]) Apply(x T) T { return T(math.Cos(float64(x))) }
func (Cos[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpCos, level, dst, src, math.Cos)
}

// Tan resolves the tangent of x radians.
type Tan[T simd.Floats] struct{}

func (Tan[T]) Op() Op      { return OpTan }
func (Tan[T]) Apply(x T) T { return T(math.Tan(float64(x))) }
func (Tan[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpTan, level, dst, src, math.Tan)
}

// Asin resolves the arcsine.
type Asin[T simd.Floats] struct{}

func (Asin[T]) Op() Op      { return OpAsin }
func (Asin[T]) Apply(x T) T { return T(math.Asin(float64(x))) }
func (Asin[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpAsin, level, dst, src, math.Asin)
}

// Acos resolves the arccosine.
type Acos[T simd.Floats] struct{}

func (Acos[T]) Op() Op      { return OpAcos }
func (Acos[T]) Apply(x T) T { return T(math.Acos(float64(x))) }
func (Acos[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpAcos, level, dst, src, math.Acos)
}

// Atan resolves the arctangent.
type Atan[T simd.Floats] struct{}

func (Atan[T]) Op() Op      { return OpAtan }
func (Atan[T]) Apply(x T) T { return T(math.Atan(float64(x))) }
func (Atan[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpAtan, level, dst, src, math.Atan)
}

// Sinh resolves the hyperbolic sine.
type Sinh[T simd.Floats] struct{}

func (Sinh[T]) Op() Op      { return OpSinh }
func (Sinh[T]) Apply(x T) T { return T(math.Sinh(float64(x))) }
func (Sinh[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpSinh, level, dst, src, math.Sinh)
}

// Cosh resolves the hyperbolic cosine.
type Cosh[T simd.Floats] struct{}

func (Cosh[T]) Op() Op      { return OpCosh }
func (Cosh[T]) Apply(x T) T { return T(math.Cosh(float64(x))) }
func (Cosh[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpCosh, level, dst, src, math.Cosh)
}

// Tanh resolves the hyperbolic tangent.
type Tanh[T simd.Floats] struct{}

func (Tanh[T]) Op() Op      { return OpTanh }
func (Tanh[T]) Apply(x T) T { return T(math.Tanh(float64(x))) }
func (Tanh[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpTanh, level, dst, src, math.Tanh)
}
