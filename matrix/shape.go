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

package matrix

import (
	"fmt"
	"strconv"
)

// Dynamic marks a dimension that is only known at run time.
const Dynamic = -1

// Shape is the static shape of an expression: each dimension is either a
// fixed non-negative count or Dynamic.
type Shape struct {
	Rows, Cols int
}

// Fixed returns a fully static shape.
func Fixed(rows, cols int) Shape {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: invalid fixed shape %dx%d", rows, cols))
	}
	return Shape{rows, cols}
}

// DynamicShape returns a shape with both dimensions dynamic.
func DynamicShape() Shape {
	return Shape{Dynamic, Dynamic}
}

// IsFixed reports whether both dimensions are static.
func (s Shape) IsFixed() bool {
	return s.Rows >= 0 && s.Cols >= 0
}

// Matches reports whether a run-time rows x cols agrees with the static
// dimensions of s.
func (s Shape) Matches(rows, cols int) bool {
	return (s.Rows < 0 || s.Rows == rows) && (s.Cols < 0 || s.Cols == cols)
}

// Transposed swaps rows and columns.
func (s Shape) Transposed() Shape {
	return Shape{s.Cols, s.Rows}
}

func (s Shape) String() string {
	return dimString(s.Rows) + "x" + dimString(s.Cols)
}

func dimString(d int) string {
	if d < 0 {
		return "?"
	}
	return strconv.Itoa(d)
}

// CombineShapes merges the static shapes of two operands that must agree.
// A fixed dimension wins over a dynamic one. It reports false when both
// dimensions are fixed and differ, which can never agree at run time.
func CombineShapes(a, b Shape) (Shape, bool) {
	rows, ok1 := combineDim(a.Rows, b.Rows)
	cols, ok2 := combineDim(a.Cols, b.Cols)
	return Shape{rows, cols}, ok1 && ok2
}

func combineDim(a, b int) (int, bool) {
	switch {
	case a < 0:
		return b, true
	case b < 0:
		return a, true
	default:
		return a, a == b
	}
}

// Access is the capability level of an expression.
type Access int

const (
	// AccessExpr values can only be evaluated as a whole.
	AccessExpr Access = iota
	// AccessView values support element reads.
	AccessView
	// AccessDense values expose column-major storage.
	AccessDense
)

func (a Access) String() string {
	switch a {
	case AccessExpr:
		return "expr"
	case AccessView:
		return "view"
	case AccessDense:
		return "dense"
	}
	return "Access(" + strconv.Itoa(int(a)) + ")"
}

// Traits is the metadata the evaluators key on.
type Traits struct {
	Shape  Shape
	Access Access
}

// TraitsOf returns the static shape and capability level of e.
func TraitsOf[T Element](e Expression[T]) Traits {
	t := Traits{Shape: e.StaticShape()}
	switch e.(type) {
	case DenseBlock[T]:
		t.Access = AccessDense
	case View[T]:
		t.Access = AccessView
	}
	return t
}
