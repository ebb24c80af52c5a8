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

// Real-valued functors evaluate through float64; for float32 this is exact
// for the correctly rounded operations and matches the register kernels.

func realUnary[T simd.Floats](op Op, level simd.DispatchLevel, dst, src []T, f func(float64) float64) {
	if applyNativeUnary(op, level, dst, src) {
		return
	}
	src = src[:len(dst)]
	for i, x := range src {
		dst[i] = T(f(float64(x)))
	}
}

func realBinary[T simd.Floats](op Op, level simd.DispatchLevel, dst, x, y []T, f func(float64, float64) float64) {
	if applyNativeBinary(op, level, dst, x, y) {
		return
	}
	x, y = x[:len(dst)], y[:len(dst)]
	for i := range dst {
		dst[i] = T(f(float64(x[i]), float64(y[i])))
	}
}

// Rcp resolves 1/x.
type Rcp[T simd.Floats] struct{}

func (Rcp[T]) Op() Op      { return OpRcp }
func (Rcp[T]) Apply(x T) T { return 1 / x }
func (f Rcp[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	mapUnary(OpRcp, level, dst, src, f.Apply)
}

// Sqrt resolves the correctly rounded square root.
type Sqrt[T simd.Floats] struct{}

func (Sqrt[T]) Op() Op      { return OpSqrt }
func (Sqrt[T]) Apply(x T) T { return T(math.Sqrt(float64(x))) }
func (Sqrt[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpSqrt, level, dst, src, math.Sqrt)
}

// Rsqrt resolves 1/sqrt(x), rounding the square root first.
type Rsqrt[T simd.Floats] struct{}

func (Rsqrt[T]) Op() Op      { return OpRsqrt }
func (Rsqrt[T]) Apply(x T) T { return 1 / T(math.Sqrt(float64(x))) }
func (f Rsqrt[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	mapUnary(OpRsqrt, level, dst, src, f.Apply)
}

// Pow resolves x**y.
type Pow[T simd.Floats] struct{}

func (Pow[T]) Op() Op         { return OpPow }
func (Pow[T]) Apply(x, y T) T { return T(math.Pow(float64(x), float64(y))) }
func (Pow[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	realBinary(OpPow, level, dst, x, y, math.Pow)
}

// Atan2 resolves the angle of the point (y, x), with x as the first operand.
type Atan2[T simd.Floats] struct{}

func (Atan2[T]) Op() Op         { return OpAtan2 }
func (Atan2[T]) Apply(x, y T) T { return T(math.Atan2(float64(x), float64(y))) }
func (Atan2[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	realBinary(OpAtan2, level, dst, x, y, math.Atan2)
}
