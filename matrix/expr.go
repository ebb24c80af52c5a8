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

	"github.com/ajroetker/go-lightmat/simd"
)

// Element is the set of element types a matrix may hold.
type Element = simd.Lanes

// Expression is a matrix-shaped value of element type T. NElems must equal
// NRows*NCols, and the run-time dimensions always satisfy StaticShape.
type Expression[T Element] interface {
	NRows() int
	NCols() int
	NElems() int
	StaticShape() Shape

	// ValueType returns the zero T. It carries the element type so that
	// generic constructors can infer T from any expression.
	ValueType() T
}

// View is an Expression with element reads. Elem(i, j) with an index
// outside the matrix is a contract violation.
type View[T Element] interface {
	Expression[T]
	Elem(i, j int) T
}

// DenseBlock is a View over column-major storage. Column j occupies
// Data()[j*LeadDim() : j*LeadDim()+NRows()], and LeadDim() >= NRows().
type DenseBlock[T Element] interface {
	View[T]
	LeadDim() int
	Data() []T
	Col(j int) []T
	SetElem(i, j int, v T)
}

// InRange reports whether (i, j) addresses an element of e.
func InRange[T Element](e Expression[T], i, j int) bool {
	return i >= 0 && i < e.NRows() && j >= 0 && j < e.NCols()
}

// CheckInRange is InRange returning a wrapped ErrOutOfRange.
func CheckInRange[T Element](e Expression[T], i, j int) error {
	if !InRange(e, i, j) {
		return fmt.Errorf("(%d, %d) in %dx%d: %w", i, j, e.NRows(), e.NCols(), ErrOutOfRange)
	}
	return nil
}

// IsContiguous reports whether d's elements form one unbroken run, which
// lets it be addressed with a single linear index.
func IsContiguous[T Element](d DenseBlock[T]) bool {
	return d.LeadDim() == d.NRows() || d.NCols() <= 1
}

// SameShape reports whether a and b have equal run-time dimensions.
func SameShape[S, T Element](a Expression[S], b Expression[T]) bool {
	return a.NRows() == b.NRows() && a.NCols() == b.NCols()
}

// CheckShape returns a wrapped ErrShapeMismatch unless src and dst have
// the same dimensions.
func CheckShape[S, T Element](src Expression[S], dst Expression[T]) error {
	if !SameShape(src, dst) {
		return fmt.Errorf("source %dx%d, destination %dx%d: %w",
			src.NRows(), src.NCols(), dst.NRows(), dst.NCols(), ErrShapeMismatch)
	}
	return nil
}
