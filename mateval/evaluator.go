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
	"fmt"

	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
)

// blockLen is the number of elements one block call produces at most.
// Scratch buffers are sized to it.
const blockLen = 256

// evalConfig is fixed for one evaluation pass.
type evalConfig struct {
	level simd.DispatchLevel
	block bool
}

// linearEval addresses the matrix with one column-major index.
type linearEval[T any] interface {
	value(i int) T
	// block writes elements i, i+1, ... i+len(out)-1 to out.
	block(i int, out []T)
}

// columnEval addresses rows of a current column. nextColumn moves every
// operand to the following column.
type columnEval[T any] interface {
	value(i int) T
	block(i int, out []T)
	nextColumn()
}

// newLinear builds the linear evaluator of e for one pass.
func newLinear[T matrix.Element](e matrix.Expression[T], cfg evalConfig) linearEval[T] {
	switch x := e.(type) {
	case node[T]:
		return x.linear(cfg)
	case matrix.DenseBlock[T]:
		if matrix.IsContiguous(x) {
			return denseLinear[T]{data: x.Data()}
		}
		return &stridedLinear[T]{data: x.Data(), rows: x.NRows(), ld: x.LeadDim()}
	case matrix.View[T]:
		return &viewLinear[T]{v: x, rows: x.NRows()}
	}
	panic(fmt.Sprintf("mateval: cannot evaluate %T", e))
}

// newColumn builds the per-column evaluator of e positioned on column col.
func newColumn[T matrix.Element](e matrix.Expression[T], cfg evalConfig, col int) columnEval[T] {
	switch x := e.(type) {
	case node[T]:
		return x.perColumn(cfg, col)
	case matrix.DenseBlock[T]:
		return &denseColumn[T]{data: x.Data(), ld: x.LeadDim(), off: col * x.LeadDim()}
	case matrix.View[T]:
		return &viewColumn[T]{v: x, col: col}
	}
	panic(fmt.Sprintf("mateval: cannot evaluate %T", e))
}

// Leaf evaluators.

type denseLinear[T matrix.Element] struct {
	data []T
}

func (e denseLinear[T]) value(i int) T        { return e.data[i] }
func (e denseLinear[T]) block(i int, out []T) { copy(out, e.data[i:i+len(out)]) }

type stridedLinear[T matrix.Element] struct {
	data     []T
	rows, ld int
}

func (e *stridedLinear[T]) value(i int) T {
	return e.data[i%e.rows+(i/e.rows)*e.ld]
}

func (e *stridedLinear[T]) block(i int, out []T) {
	r, off := i%e.rows, (i/e.rows)*e.ld
	for k := range out {
		out[k] = e.data[off+r]
		if r++; r == e.rows {
			r, off = 0, off+e.ld
		}
	}
}

// transDenseLinear reads a dense block transposed: element i of the
// transpose, which has rows rows, is (i/rows, i%rows) of the block.
type transDenseLinear[T matrix.Element] struct {
	data     []T
	rows, ld int
}

func (e *transDenseLinear[T]) value(i int) T {
	return e.data[i/e.rows+(i%e.rows)*e.ld]
}

func (e *transDenseLinear[T]) block(i int, out []T) {
	r, c := i%e.rows, i/e.rows
	for k := range out {
		out[k] = e.data[c+r*e.ld]
		if r++; r == e.rows {
			r, c = 0, c+1
		}
	}
}

type viewLinear[T matrix.Element] struct {
	v    matrix.View[T]
	rows int
}

func (e *viewLinear[T]) value(i int) T {
	return e.v.Elem(i%e.rows, i/e.rows)
}

func (e *viewLinear[T]) block(i int, out []T) {
	r, c := i%e.rows, i/e.rows
	for k := range out {
		out[k] = e.v.Elem(r, c)
		if r++; r == e.rows {
			r, c = 0, c+1
		}
	}
}

type denseColumn[T matrix.Element] struct {
	data []T
	ld   int
	off  int
}

func (e *denseColumn[T]) value(i int) T        { return e.data[e.off+i] }
func (e *denseColumn[T]) block(i int, out []T) { copy(out, e.data[e.off+i:e.off+i+len(out)]) }
func (e *denseColumn[T]) nextColumn()          { e.off += e.ld }

// transDenseColumn walks column off of a transpose, which is row off of
// the underlying block.
type transDenseColumn[T matrix.Element] struct {
	data []T
	ld   int
	off  int
}

func (e *transDenseColumn[T]) value(i int) T { return e.data[e.off+i*e.ld] }

func (e *transDenseColumn[T]) block(i int, out []T) {
	p := e.off + i*e.ld
	for k := range out {
		out[k] = e.data[p]
		p += e.ld
	}
}

func (e *transDenseColumn[T]) nextColumn() { e.off++ }

type viewColumn[T matrix.Element] struct {
	v   matrix.View[T]
	col int
}

func (e *viewColumn[T]) value(i int) T { return e.v.Elem(i, e.col) }

func (e *viewColumn[T]) block(i int, out []T) {
	for k := range out {
		out[k] = e.v.Elem(i+k, e.col)
	}
}

func (e *viewColumn[T]) nextColumn() { e.col++ }

type fillEval[T matrix.Element] struct {
	v T
}

func (e fillEval[T]) value(int) T { return e.v }

func (e fillEval[T]) block(_ int, out []T) {
	for k := range out {
		out[k] = e.v
	}
}

func (e fillEval[T]) nextColumn() {}
