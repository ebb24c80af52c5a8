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

// Add returns the element-wise sum a + b.
func Add[T simd.Lanes](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Add[T]{}), a, b)
}

// Sub returns the element-wise difference a - b.
func Sub[T simd.Lanes](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Sub[T]{}), a, b)
}

// Mul returns the element-wise product a * b.
func Mul[T simd.Lanes](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Mul[T]{}), a, b)
}

// Div returns the element-wise quotient a / b.
func Div[T simd.Lanes](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Div[T]{}), a, b)
}

// Max returns the element-wise maximum of a and b; a wins unless b is strictly larger.
func Max[T simd.Lanes](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Max[T]{}), a, b)
}

// Min returns the element-wise minimum of a and b; a wins unless b is strictly smaller.
func Min[T simd.Lanes](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Min[T]{}), a, b)
}

// Neg returns the negation of every element of a.
func Neg[T simd.Lanes](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Neg[T]{}), a)
}

// Abs returns the absolute value of every element of a.
func Abs[T simd.Lanes](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Abs[T]{}), a)
}

// Sqr returns the square of every element of a.
func Sqr[T simd.Lanes](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Sqr[T]{}), a)
}

// Cube returns the cube of every element of a.
func Cube[T simd.Lanes](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Cube[T]{}), a)
}

// Rcp returns the reciprocal of every element of a.
func Rcp[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Rcp[T]{}), a)
}

// Sqrt returns the square root of every element of a.
func Sqrt[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Sqrt[T]{}), a)
}

// Rsqrt returns the reciprocal square root of every element of a.
func Rsqrt[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Rsqrt[T]{}), a)
}

// Floor returns the floor of every element of a.
func Floor[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Floor[T]{}), a)
}

// Ceil returns the ceiling of every element of a.
func Ceil[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Ceil[T]{}), a)
}

// Exp returns e raised to the power of every element of a.
func Exp[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Exp[T]{}), a)
}

// Log returns the natural logarithm of every element of a.
func Log[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Log[T]{}), a)
}

// Log10 returns the decimal logarithm of every element of a.
func Log10[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Log10[T]{}), a)
}

// Sin returns the sine of every element of a.
func Sin[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Sin[T]{}), a)
}

// Cos returns the cosine of every element of a.
func Cos[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Cos[T]{}), a)
}

// Tan returns the tangent of every element of a.
func Tan[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Tan[T]{}), a)
}

// Asin returns the arcsine of every element of a.
func Asin[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Asin[T]{}), a)
}

// Acos returns the arccosine of every element of a.
func Acos[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Acos[T]{}), a)
}

// Atan returns the arctangent of every element of a.
func Atan[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Atan[T]{}), a)
}

// Sinh returns the hyperbolic sine of every element of a.
func Sinh[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Sinh[T]{}), a)
}

// Cosh returns the hyperbolic cosine of every element of a.
func Cosh[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Cosh[T]{}), a)
}

// Tanh returns the hyperbolic tangent of every element of a.
func Tanh[T simd.Floats](a matrix.Expression[T]) UnaryExpr[T, T] {
	return Map(funmap.UnaryFunc[T, T](funmap.Tanh[T]{}), a)
}

// Pow returns the element-wise power a**b.
func Pow[T simd.Floats](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Pow[T]{}), a, b)
}

// Atan2 returns the element-wise arctangent of a/b using the signs of both to pick the quadrant.
func Atan2[T simd.Floats](a, b matrix.Expression[T]) BinaryExpr[T] {
	return Map2(funmap.BinaryFunc[T](funmap.Atan2[T]{}), a, b)
}

// Cast converts every element of a to R. Use it as Cast[float32](a).
func Cast[R, T matrix.Element](a matrix.Expression[T]) UnaryExpr[T, R] {
	return Map(funmap.UnaryFunc[T, R](funmap.Cast[T, R]{}), a)
}

// AddScalar adds v to every element of a.
func AddScalar[T simd.Lanes](a matrix.Expression[T], v T) BinaryExpr[T] {
	return Add(a, matrix.Expression[T](FillLike(v, a)))
}

// MulScalar multiplies every element of a by v.
func MulScalar[T simd.Lanes](a matrix.Expression[T], v T) BinaryExpr[T] {
	return Mul(a, matrix.Expression[T](FillLike(v, a)))
}
