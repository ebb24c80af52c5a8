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

package mateval

import (
	"github.com/ajroetker/go-lightmat/funmap"
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
)

// Cbrt returns the cube root of every element of a.
func Cbrt[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Cbrt[T]{}), a)
}

// Round returns the nearest integer, halves away from zero, of every element of a.
func Round[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Round[T]{}), a)
}

// Trunc returns the integer part of every element of a.
func Trunc[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Trunc[T]{}), a)
}

// Exp2 returns 2 raised to the power of every element of a.
func Exp2[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Exp2[T]{}), a)
}

// Log2 returns the binary logarithm of every element of a.
func Log2[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Log2[T]{}), a)
}

// Expm1 returns e**x - 1 of every element of a.
func Expm1[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Expm1[T]{}), a)
}

// Log1p returns log(1 + x) of every element of a.
func Log1p[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Log1p[T]{}), a)
}

// Asinh returns the inverse hyperbolic sine of every element of a.
func Asinh[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Asinh[T]{}), a)
}

// Acosh returns the inverse hyperbolic cosine of every element of a.
func Acosh[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Acosh[T]{}), a)
}

// Atanh returns the inverse hyperbolic tangent of every element of a.
func Atanh[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Atanh[T]{}), a)
}

// Erf returns the error function of every element of a.
func Erf[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Erf[T]{}), a)
}

// Erfc returns the complementary error function of every element of a.
func Erfc[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Erfc[T]{}), a)
}

// Lgamma returns the log of the absolute gamma function of every element of a.
func Lgamma[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Lgamma[T]{}), a)
}

// Tgamma returns the gamma function of every element of a.
func Tgamma[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Tgamma[T]{}), a)
}

// Hypot returns the element-wise sqrt(a*a + b*b).
func Hypot[T simd.Floats](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Hypot[T]{}), a, b)
}
