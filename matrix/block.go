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

// Block is a dense column-major matrix: element (i, j) lives at
// data[i+j*ld]. A Block either owns its storage (NewDense, NewFixed,
// FromColumns, Clone) or views storage owned elsewhere (NewBlock and every
// sub-range view); in both cases writes go straight to the backing slice.
type Block[T Element] struct {
	data  []T
	rows  int
	cols  int
	ld    int
	shape Shape
}

var _ DenseBlock[float64] = (*Block[float64])(nil)

// extent is the number of backing elements a rows x cols block with lead
// dimension ld spans.
func extent(rows, cols, ld int) int {
	if rows == 0 || cols == 0 {
		return 0
	}
	return (cols-1)*ld + rows
}

func checkLayout(n, rows, cols, ld int) error {
	switch {
	case rows < 0 || cols < 0:
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	case ld < rows:
		return fmt.Errorf("lead dimension %d for %d rows: %w", ld, rows, ErrBadShape)
	case n < extent(rows, cols, ld):
		return fmt.Errorf("backing slice of %d elements for %dx%d (ld %d): %w",
			n, rows, cols, ld, ErrBadShape)
	}
	return nil
}

// NewBlock views data as a rows x cols column-major matrix with lead
// dimension ld. The block does not copy data; its static shape is dynamic.
func NewBlock[T Element](data []T, rows, cols, ld int) (*Block[T], error) {
	if err := checkLayout(len(data), rows, cols, ld); err != nil {
		return nil, err
	}
	n := extent(rows, cols, ld)
	return &Block[T]{data: data[:n:n], rows: rows, cols: cols, ld: ld, shape: DynamicShape()}, nil
}

// NewDense allocates a zeroed contiguous rows x cols block with a dynamic
// static shape. It panics on negative dimensions.
func NewDense[T Element](rows, cols int) *Block[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: NewDense(%d, %d): negative dimension", rows, cols))
	}
	return &Block[T]{data: make([]T, rows*cols), rows: rows, cols: cols, ld: rows, shape: DynamicShape()}
}

// NewFixed is NewDense with a fully static shape. Expressions built from
// fixed blocks check operand shapes at construction.
func NewFixed[T Element](rows, cols int) *Block[T] {
	b := NewDense[T](rows, cols)
	b.shape = Fixed(rows, cols)
	return b
}

// FromColumns builds an owning block from equally long columns.
func FromColumns[T Element](cols ...[]T) (*Block[T], error) {
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}
	b := NewDense[T](rows, len(cols))
	for j, c := range cols {
		if len(c) != rows {
			return nil, fmt.Errorf("column %d has %d rows, want %d: %w", j, len(c), rows, ErrBadShape)
		}
		copy(b.Col(j), c)
	}
	return b, nil
}

func (b *Block[T]) NRows() int         { return b.rows }
func (b *Block[T]) NCols() int         { return b.cols }
func (b *Block[T]) NElems() int        { return b.rows * b.cols }
func (b *Block[T]) StaticShape() Shape { return b.shape }
func (b *Block[T]) LeadDim() int       { return b.ld }

// ValueType returns the zero T.
func (b *Block[T]) ValueType() T {
	var zero T
	return zero
}

// Data returns the backing storage starting at element (0, 0).
func (b *Block[T]) Data() []T { return b.data }

// Col returns column j as a slice aliasing the block. A block with no rows
// has no storage behind its columns, so every column is empty.
func (b *Block[T]) Col(j int) []T {
	if j < 0 || j >= b.cols {
		panic(fmt.Sprintf("matrix: column %d out of range [0, %d)", j, b.cols))
	}
	if b.rows == 0 {
		return b.data[:0:0]
	}
	off := j * b.ld
	return b.data[off : off+b.rows : off+b.rows]
}

func (b *Block[T]) checkIndex(i, j int) {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d", i, j, b.rows, b.cols))
	}
}

// At returns element (i, j). Out-of-range indices panic under the
// lmatdebug build tag and are otherwise undefined.
func (b *Block[T]) At(i, j int) T {
	if debugChecks {
		b.checkIndex(i, j)
	}
	return b.data[i+j*b.ld]
}

// Elem is At.
func (b *Block[T]) Elem(i, j int) T {
	return b.At(i, j)
}

// Get is the always-checked form of At.
func (b *Block[T]) Get(i, j int) (T, error) {
	if err := CheckInRange[T](b, i, j); err != nil {
		var zero T
		return zero, err
	}
	return b.data[i+j*b.ld], nil
}

// Set writes element (i, j), checked like At.
func (b *Block[T]) Set(i, j int, v T) {
	if debugChecks {
		b.checkIndex(i, j)
	}
	b.data[i+j*b.ld] = v
}

// SetElem is Set.
func (b *Block[T]) SetElem(i, j int, v T) {
	b.Set(i, j, v)
}

// Ref returns a pointer to element (i, j), checked like At.
func (b *Block[T]) Ref(i, j int) *T {
	if debugChecks {
		b.checkIndex(i, j)
	}
	return &b.data[i+j*b.ld]
}

// Fill sets every element to v.
func (b *Block[T]) Fill(v T) {
	if IsContiguous[T](b) {
		for i := range b.data {
			b.data[i] = v
		}
		return
	}
	for j := range b.cols {
		col := b.Col(j)
		for i := range col {
			col[i] = v
		}
	}
}

// Clone returns an owning contiguous copy with the same static shape.
func (b *Block[T]) Clone() *Block[T] {
	c := NewDense[T](b.rows, b.cols)
	c.shape = b.shape
	copyColumns(c.data, c.ld, b.data, b.ld, b.rows, b.cols)
	return c
}

func (b *Block[T]) String() string {
	return fmt.Sprintf("Block[%T](%dx%d, ld %d)", b.ValueType(), b.rows, b.cols, b.ld)
}
