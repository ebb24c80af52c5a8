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

// Range selects rows or columns for a sub-range view.
type Range struct {
	Begin, End int
	all        bool
}

// All selects every row or column.
func All() Range { return Range{all: true} }

// Span selects the half-open interval [begin, end).
func Span(begin, end int) Range { return Range{Begin: begin, End: end} }

// IsAll reports whether r selects the whole dimension.
func (r Range) IsAll() bool { return r.all }

func (r Range) resolve(n int) (begin, end int, err error) {
	if r.all {
		return 0, n, nil
	}
	if r.Begin < 0 || r.End < r.Begin || r.End > n {
		return 0, 0, fmt.Errorf("range [%d, %d) of %d: %w", r.Begin, r.End, n, ErrBadShape)
	}
	return r.Begin, r.End, nil
}

// narrowDim is the static size of a dimension after applying r.
func narrowDim(static int, r Range) int {
	if r.all {
		return static
	}
	return Dynamic
}

// Column returns column j as a contiguous rows x 1 view.
func (b *Block[T]) Column(j int) *Block[T] {
	return &Block[T]{
		data:  b.Col(j),
		rows:  b.rows,
		cols:  1,
		ld:    b.rows,
		shape: Shape{b.shape.Rows, 1},
	}
}

// Row returns row i as a 1 x cols view that strides by the lead dimension.
func (b *Block[T]) Row(i int) *Block[T] {
	if i < 0 || i >= b.rows {
		panic(fmt.Sprintf("matrix: row %d out of range [0, %d)", i, b.rows))
	}
	if b.cols == 0 {
		return &Block[T]{data: b.data[:0:0], rows: 1, ld: b.ld, shape: Shape{1, b.shape.Cols}}
	}
	n := extent(1, b.cols, b.ld)
	return &Block[T]{
		data:  b.data[i : i+n : i+n],
		rows:  1,
		cols:  b.cols,
		ld:    b.ld,
		shape: Shape{1, b.shape.Cols},
	}
}

// Sub returns the view of rows rr and columns cr. Selecting All in both
// dimensions returns b itself.
func (b *Block[T]) Sub(rr, cr Range) (*Block[T], error) {
	if rr.all && cr.all {
		return b, nil
	}
	r0, r1, err := rr.resolve(b.rows)
	if err != nil {
		return nil, err
	}
	c0, c1, err := cr.resolve(b.cols)
	if err != nil {
		return nil, err
	}
	rows, cols := r1-r0, c1-c0
	n := extent(rows, cols, b.ld)
	off := 0
	if n > 0 {
		off = r0 + c0*b.ld
	}
	return &Block[T]{
		data:  b.data[off : off+n : off+n],
		rows:  rows,
		cols:  cols,
		ld:    b.ld,
		shape: Shape{narrowDim(b.shape.Rows, rr), narrowDim(b.shape.Cols, cr)},
	}, nil
}

// ColumnRange returns the view of the columns in r.
func (b *Block[T]) ColumnRange(r Range) (*Block[T], error) {
	return b.Sub(All(), r)
}

// RowRange returns the view of the rows in r.
func (b *Block[T]) RowRange(r Range) (*Block[T], error) {
	return b.Sub(r, All())
}
