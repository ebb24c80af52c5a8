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

// Mode selects between element-at-a-time and block evaluation.
type Mode int

const (
	// ModeAuto uses blocks when the whole tree is Vectorizable.
	ModeAuto Mode = iota
	// ModeScalar evaluates one element at a time.
	ModeScalar
	// ModeBlock always evaluates in blocks; operators without a native
	// kernel run their scalar loop over each block.
	ModeBlock
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeScalar:
		return "scalar"
	case ModeBlock:
		return "block"
	}
	return "Mode(?)"
}

// Options overrides the choices Evaluate makes. The zero Options lets the
// cost model pick the kind and evaluates at the scalar dispatch level.
type Options struct {
	Kind  Kind
	Mode  Mode
	Level simd.DispatchLevel
}

// DefaultOptions returns the options Evaluate uses: automatic kind and
// mode at the detected dispatch level.
func DefaultOptions() Options {
	return Options{Level: simd.CurrentLevel()}
}

// Plan describes how an evaluation runs.
type Plan struct {
	// Copy is set when the source is a dense block; the copy engine runs
	// with Copier and the remaining fields are informational.
	Copy   bool
	Copier matrix.Copier

	Kind          Kind
	Block         bool
	Level         simd.DispatchLevel
	LinearCost    int
	PerColumnCost int
}

func (p Plan) String() string {
	if p.Copy {
		return fmt.Sprintf("copy(%s, src contiguous=%t, dst contiguous=%t)",
			p.Copier.Strategy, p.Copier.SrcContiguous, p.Copier.DstContiguous)
	}
	mode := ModeScalar
	if p.Block {
		mode = ModeBlock
	}
	return fmt.Sprintf("%s/%s@%s (linear %d, per-column %d)",
		p.Kind, mode, p.Level, p.LinearCost, p.PerColumnCost)
}

// Evaluate writes every element of src into dst with DefaultOptions.
func Evaluate[T matrix.Element](src matrix.Expression[T], dst matrix.DenseBlock[T]) error {
	return EvaluateWith(src, dst, DefaultOptions())
}

// EvaluateWith writes every element of src into dst. Shapes are checked
// across the whole tree first; on a mismatch it returns an error wrapping
// matrix.ErrShapeMismatch and dst is untouched.
//
// dst may appear as a leaf of src only where it is read at the element
// being written, as in d = Abs(d) or d = Add(a, d).
func EvaluateWith[T matrix.Element](src matrix.Expression[T], dst matrix.DenseBlock[T], opts Options) error {
	p, err := Explain(src, dst, opts)
	if err != nil {
		return err
	}
	if p.Copy {
		return matrix.Copy(src.(matrix.DenseBlock[T]), dst)
	}
	run(src, dst, evalConfig{level: p.Level, block: p.Block}, p.Kind)
	return nil
}

func check[T matrix.Element](src matrix.Expression[T], dst matrix.DenseBlock[T]) error {
	if dst == nil {
		panic("mateval: nil destination")
	}
	checkOperand(src)
	if err := validate(src); err != nil {
		return err
	}
	if err := validate[T](dst); err != nil {
		return err
	}
	return matrix.CheckShape[T, T](src, dst)
}

// Explain returns the plan EvaluateWith would follow, after the same shape
// checks. It does not touch dst.
func Explain[T matrix.Element](src matrix.Expression[T], dst matrix.DenseBlock[T], opts Options) (Plan, error) {
	if err := check(src, dst); err != nil {
		return Plan{}, err
	}
	p := Plan{
		Level:         opts.Level,
		LinearCost:    LinearCost(src, dst),
		PerColumnCost: PerColumnCost(src, dst),
	}
	if d, ok := src.(matrix.DenseBlock[T]); ok {
		p.Copy = true
		p.Copier = matrix.CopierFor(d, dst)
		return p, nil
	}

	p.Kind = opts.Kind
	if p.Kind == KindAuto {
		p.Kind = ChooseKind(src, dst)
	}
	switch opts.Mode {
	case ModeScalar:
		p.Block = false
	case ModeBlock:
		p.Block = true
	default:
		p.Block = Vectorizable(src, opts.Level)
	}
	return p, nil
}

func run[T matrix.Element](src matrix.Expression[T], dst matrix.DenseBlock[T], cfg evalConfig, kind Kind) {
	if dst.NElems() == 0 {
		return
	}
	if kind == KindPerColumn {
		runColumns(newColumn(src, cfg, 0), dst, 0, dst.NCols(), cfg.block)
		return
	}
	runLinear(newLinear(src, cfg), dst, cfg.block)
}

func runLinear[T matrix.Element](ev linearEval[T], dst matrix.DenseBlock[T], block bool) {
	n := dst.NElems()
	if n == 0 {
		return
	}
	if matrix.IsContiguous(dst) {
		data := dst.Data()[:n]
		if block {
			for i := 0; i < n; i += blockLen {
				ev.block(i, data[i:min(i+blockLen, n)])
			}
			return
		}
		for i := range data {
			data[i] = ev.value(i)
		}
		return
	}

	// Strided destination: walk (r, off) alongside the linear index.
	data, rows, ld := dst.Data(), dst.NRows(), dst.LeadDim()
	r, off := 0, 0
	if !block {
		for i := range n {
			data[off+r] = ev.value(i)
			if r++; r == rows {
				r, off = 0, off+ld
			}
		}
		return
	}
	buf := make([]T, min(blockLen, n))
	for i := 0; i < n; i += blockLen {
		chunk := buf[:min(blockLen, n-i)]
		ev.block(i, chunk)
		for _, v := range chunk {
			data[off+r] = v
			if r++; r == rows {
				r, off = 0, off+ld
			}
		}
	}
}

// runColumns evaluates columns [c0, c1) of dst; ev must be positioned on
// column c0.
func runColumns[T matrix.Element](ev columnEval[T], dst matrix.DenseBlock[T], c0, c1 int, block bool) {
	for j := c0; j < c1; j++ {
		col := dst.Col(j)
		if block {
			for i := 0; i < len(col); i += blockLen {
				ev.block(i, col[i:min(i+blockLen, len(col))])
			}
		} else {
			for i := range col {
				col[i] = ev.value(i)
			}
		}
		ev.nextColumn()
	}
}
