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

//go:build !lmat_noextmath

package funmap

import (
	"math"

	"github.com/ajroetker/go-lightmat/simd"
)

// Cbrt resolves the cube root.
type Cbrt[T simd.Floats] struct{}

func (Cbrt[T]) Op() Op      { return OpCbrt }
func (Cbrt[T]) Apply(x T) T { return T(math.Cbrt(float64(x))) }
func (Cbrt[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpCbrt, level, dst, src, math.Cbrt)
}

// Round resolves rounding to nearest with halves away from zero.
type Round[T simd.Floats] struct{}

func (Round[T]) Op() Op      { return OpRound }
func (Round[T]) Apply(x T) T { return T(math.Round(float64(x))) }
func (Round[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpRound, level, dst, src, math.Round)
}

// Trunc resolves rounding toward zero.
type Trunc[T simd.Floats] struct{}

func (Trunc[T]) Op() Op      { return OpTrunc }
func (Trunc[T]) Apply(x T) T { return T(math.Trunc(float64(x))) }
func (Trunc[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpTrunc, level, dst, src, math.Trunc)
}

// Exp2 resolves 2**x.
type Exp2[T simd.Floats] struct{}

func (Exp2[T]) Op() Op      { return OpExp2 }
func (Exp2[T]) Apply(x T) T { return T(math.Exp2(float64(x))) }
func (Exp2[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpExp2, level, dst, src, math.Exp2)
}

// Log2 resolves the binary logarithm.
type Log2[T simd.Floats] struct{}

func (Log2[T]) Op() Op      { return OpLog2 }
func (Log2[T]) Apply(x T) T { return T(math.Log2(float64(x))) }
func (Log2[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpLog2, level, dst, src, math.Log2)
}

// Expm1 resolves e**x - 1, accurate near zero.
type Expm1[T simd.Floats] struct{}

func (Expm1[T]) Op() Op      { return OpExpm1 }
func (Expm1[T]) Apply(x T) T { return T(math.Expm1(float64(x))) }
func (Expm1[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpExpm1, level, dst, src, math.Expm1)
}

// Log1p resolves log(1 + x), accurate near zero.
type Log1p[T simd.Floats] struct{}

func (Log1p[T]) Op() Op      { return OpLog1p }
func (Log1p[T]) Apply(x T) T { return T(math.Log1p(float64(x))) }
func (Log1p[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpLog1p, level, dst, src, math.Log1p)
}

// Asinh resolves the inverse hyperbolic sine.
type Asinh[T simd.Floats] struct{}

func (Asinh[T]) Op() Op      { return OpAsinh }
func (Asinh[T]) Apply(x T) T { return T(math.Asinh(float64(x))) }
func (Asinh[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpAsinh, level, dst, src, math.Asinh)
}

// Acosh resolves the inverse hyperbolic cosine.
type Acosh[T simd.Floats] struct{}

func (Acosh[T]) Op() Op      { return OpAcosh }
func (Acosh[T]) Apply(x T) T { return T(math.Acosh(float64(x))) }
func (Acosh[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpAcosh, level, dst, src, math.Acosh)
}

// Atanh resolves the inverse hyperbolic tangent.
type Atanh[T simd.Floats] struct{}

func (Atanh[T]) Op() Op      { return OpAtanh }
func (Atanh[T]) Apply(x T) T { return T(math.Atanh(float64(x))) }
func (Atanh[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpAtanh, level, dst, src, math.Atanh)
}

// Erf resolves the error function.
type Erf[T simd.Floats] struct{}

func (Erf[T]) Op() Op      { return OpErf }
func (Erf[T]) Apply(x T) T { return T(math.Erf(float64(x))) }
func (Erf[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpErf, level, dst, src, math.Erf)
}

// Erfc resolves the complementary error function.
type Erfc[T simd.Floats] struct{}

func (Erfc[T]) Op() Op      { return OpErfc }
func (Erfc[T]) Apply(x T) T { return T(math.Erfc(float64(x))) }
func (Erfc[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpErfc, level, dst, src, math.Erfc)
}

// Tgamma resolves the gamma function.
type Tgamma[T simd.Floats] struct{}

func (Tgamma[T]) Op() Op      { return OpTgamma }
func (Tgamma[T]) Apply(x T) T { return T(math.Gamma(float64(x))) }
func (Tgamma[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpTgamma, level, dst, src, math.Gamma)
}

// HasExtendedMath reports whether the extended math functors are compiled in.
// Build with the lmat_noextmath tag to leave them out.
const HasExtendedMath = true

// Lgamma resolves the natural logarithm of |Gamma(x)|.
type Lgamma[T simd.Floats] struct{}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

func (Lgamma[T]) Op() Op      { return OpLgamma }
func (Lgamma[T]) Apply(x T) T { return T(lgamma(float64(x))) }
func (Lgamma[T]) ApplySlice(level simd.DispatchLevel, dst, src []T) {
	realUnary(OpLgamma, level, dst, src, lgamma)
}

// Hypot resolves sqrt(x*x + y*y) without undue overflow.
type Hypot[T simd.Floats] struct{}

func (Hypot[T]) Op() Op         { return OpHypot }
func (Hypot[T]) Apply(x, y T) T { return T(math.Hypot(float64(x), float64(y))) }
func (Hypot[T]) ApplySlice(level simd.DispatchLevel, dst, x, y []T) {
	realBinary(OpHypot, level, dst, x, y, math.Hypot)
}
