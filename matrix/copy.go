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

import "fmt"

// CopyStrategy is the copy routine picked from the static shape.
type CopyStrategy int

const (
	// CopyGeneral is the stride-aware column loop.
	CopyGeneral CopyStrategy = iota
	// CopyVector handles a statically single row or single column.
	CopyVector
	// CopySmall is an unrolled copy for small fully fixed shapes.
	CopySmall
)

func (s CopyStrategy) String() string {
	switch s {
	case CopyGeneral:
		return "general"
	case CopyVector:
		return "vector"
	case CopySmall:
		return "small"
	}
	return fmt.Sprintf("CopyStrategy(%d)", int(s))
}

// Fixed shapes up to 4 rows and 16 elements take the unrolled path.
const (
	smallCopyRows  = 4
	smallCopyElems = 16
)

// Copier is the decision made for one copy: the strategy from the static
// shape and the layout case from the lead dimensions.
type Copier struct {
	Strategy      CopyStrategy
	SrcContiguous bool
	DstContiguous bool
}

func strategyFor(s Shape) CopyStrategy {
	switch {
	case s.IsFixed() && s.Rows <= smallCopyRows && s.Rows*s.Cols <= smallCopyElems:
		return CopySmall
	case s.Rows == 1 || s.Cols == 1:
		return CopyVector
	}
	return CopyGeneral
}

// CopierFor returns the copier Copy uses for src and dst.
func CopierFor[T Element](src, dst DenseBlock[T]) Copier {
	s, _ := CombineShapes(src.StaticShape(), dst.StaticShape())
	return Copier{
		Strategy:      strategyFor(s),
		SrcContiguous: IsContiguous(src),
		DstContiguous: IsContiguous(dst),
	}
}

// runCopy copies a rows x cols matrix from src (lead dimension sld) into
// dst (lead dimension dld) with strategy s.
func runCopy[T Element](s CopyStrategy, dst []T, dld int, src []T, sld, rows, cols int) {
	if rows == 0 || cols == 0 {
		return
	}
	switch {
	case s == CopySmall:
		copySmall(dst, dld, src, sld, rows, cols)
	case s == CopyVector && rows == 1:
		for j := range cols {
			dst[j*dld] = src[j*sld]
		}
	case s == CopyVector && cols == 1:
		copy(dst[:rows], src[:rows])
	default:
		copyColumns(dst, dld, src, sld, rows, cols)
	}
}

func copySmall[T Element](dst []T, dld int, src []T, sld, rows, cols int) {
	for j := range cols {
		d := dst[j*dld : j*dld+rows]
		s := src[j*sld : j*sld+rows]
		switch rows {
		case 1:
			d[0] = s[0]
		case 2:
			d[0], d[1] = s[0], s[1]
		case 3:
			d[0], d[1], d[2] = s[0], s[1], s[2]
		case 4:
			d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
		default:
			copy(d, s)
		}
	}
}

// copyColumns covers the four layout cases. When both sides are contiguous
// the matrix is one run; otherwise each column is copied on its own.
func copyColumns[T Element](dst []T, dld int, src []T, sld, rows, cols int) {
	if rows == 0 || cols == 0 {
		return
	}
	srcContig := sld == rows || cols == 1
	dstContig := dld == rows || cols == 1
	switch {
	case srcContig && dstContig:
		n := rows * cols
		copy(dst[:n], src[:n])
	case srcContig:
		for j, so := 0, 0; j < cols; j, so = j+1, so+rows {
			copy(dst[j*dld:j*dld+rows], src[so:so+rows])
		}
	case dstContig:
		for j, do := 0, 0; j < cols; j, do = j+1, do+rows {
			copy(dst[do:do+rows], src[j*sld:j*sld+rows])
		}
	default:
		for j := range cols {
			copy(dst[j*dld:j*dld+rows], src[j*sld:j*sld+rows])
		}
	}
}

// CopyFromSlice copies the contiguous column-major src into dst. src must
// hold exactly dst.NElems() elements.
func CopyFromSlice[T Element](src []T, dst DenseBlock[T]) error {
	if len(src) != dst.NElems() {
		return fmt.Errorf("%d source elements into %dx%d: %w",
			len(src), dst.NRows(), dst.NCols(), ErrShapeMismatch)
	}
	rows, cols := dst.NRows(), dst.NCols()
	runCopy(strategyFor(dst.StaticShape()), dst.Data(), dst.LeadDim(), src, rows, rows, cols)
	return nil
}

// CopyToSlice copies src into dst in contiguous column-major order. dst
// must hold exactly src.NElems() elements.
func CopyToSlice[T Element](src DenseBlock[T], dst []T) error {
	if len(dst) != src.NElems() {
		return fmt.Errorf("%dx%d into %d destination elements: %w",
			src.NRows(), src.NCols(), len(dst), ErrShapeMismatch)
	}
	rows, cols := src.NRows(), src.NCols()
	runCopy(strategyFor(src.StaticShape()), dst, rows, src.Data(), src.LeadDim(), rows, cols)
	return nil
}

// Copy copies src into dst. Both must have the same dimensions.
func Copy[T Element](src, dst DenseBlock[T]) error {
	if err := CheckShape[T, T](src, dst); err != nil {
		return err
	}
	c := CopierFor(src, dst)
	runCopy(c.Strategy, dst.Data(), dst.LeadDim(), src.Data(), src.LeadDim(), src.NRows(), src.NCols())
	return nil
}
