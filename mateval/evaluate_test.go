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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightmat/funmap"
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
	"github.com/ajroetker/go-lightmat/workerpool"
)

// funcView is a View that is not a dense block.
type funcView struct {
	rows, cols int
	f          func(i, j int) float64
}

func (v funcView) NRows() int                { return v.rows }
func (v funcView) NCols() int                { return v.cols }
func (v funcView) NElems() int               { return v.rows * v.cols }
func (v funcView) StaticShape() matrix.Shape { return matrix.DynamicShape() }
func (v funcView) ValueType() float64        { return 0 }
func (v funcView) Elem(i, j int) float64     { return v.f(i, j) }

// opaque is an Expression that is neither a view nor a composite.
type opaque struct{}

func (opaque) NRows() int                { return 1 }
func (opaque) NCols() int                { return 1 }
func (opaque) NElems() int               { return 1 }
func (opaque) StaticShape() matrix.Shape { return matrix.DynamicShape() }
func (opaque) ValueType() float64        { return 0 }

func seq(rows, cols int, f func(i, j int) float64) *matrix.Block[float64] {
	b := matrix.NewDense[float64](rows, cols)
	for j := range cols {
		for i := range rows {
			b.Set(i, j, f(i, j))
		}
	}
	return b
}

// padded returns a rows x cols view of f inside a larger block, so its lead
// dimension exceeds its row count.
func padded(rows, cols int, f func(i, j int) float64) *matrix.Block[float64] {
	outer := seq(rows+3, cols+1, func(i, j int) float64 { return -1000 })
	sub, err := outer.Sub(matrix.Span(1, rows+1), matrix.Span(1, cols+1))
	if err != nil {
		panic(err)
	}
	for j := range cols {
		for i := range rows {
			sub.Set(i, j, f(i, j))
		}
	}
	return sub
}

func wave(i, j int) float64 { return float64(i)*0.7 - float64(j)*1.3 + 0.25 }

func toSlice(t *testing.T, d matrix.DenseBlock[float64]) []float64 {
	t.Helper()
	out := make([]float64, d.NElems())
	require.NoError(t, matrix.CopyToSlice(d, out))
	return out
}

type config struct {
	name string
	opts Options
}

// configs enumerates every kind, mode and level combination.
func configs() []config {
	var out []config
	for _, kind := range []Kind{KindLinear, KindPerColumn} {
		for _, mode := range []Mode{ModeScalar, ModeBlock} {
			for _, level := range simd.Levels() {
				out = append(out, config{
					name: fmt.Sprintf("%s/%s/%s", kind, mode, level),
					opts: Options{Kind: kind, Mode: mode, Level: level},
				})
			}
		}
	}
	return out
}

func TestNegScenario(t *testing.T) {
	a := seq(3, 4, func(i, j int) float64 { return float64(i*4 + j) })
	for _, c := range configs() {
		t.Run(c.name, func(t *testing.T) {
			d := matrix.NewDense[float64](3, 4)
			require.NoError(t, EvaluateWith[float64](Neg[float64](a), d, c.opts))
			for i := range 3 {
				for j := range 4 {
					assert.Equal(t, -float64(i*4+j), d.At(i, j), "(%d, %d)", i, j)
				}
			}
		})
	}
}

// leaves returns 5x7 views of wave with different layouts.
func leaves() map[string]matrix.View[float64] {
	tr := seq(7, 5, func(i, j int) float64 { return wave(j, i) })
	return map[string]matrix.View[float64]{
		"contiguous": seq(5, 7, wave),
		"strided":    padded(5, 7, wave),
		"func":       funcView{5, 7, wave},
		"transposed": Trans[float64](tr).(matrix.View[float64]),
	}
}

func TestUnaryKindsAgree(t *testing.T) {
	funcs := []funmap.UnaryFunc[float64, float64]{
		funmap.Neg[float64]{}, funmap.Abs[float64]{}, funmap.Sqr[float64]{},
		funmap.Floor[float64]{}, funmap.Exp[float64]{}, funmap.Tanh[float64]{},
	}
	for leafName, leaf := range leaves() {
		for _, fn := range funcs {
			want := make([]float64, 0, 35)
			for j := range 7 {
				for i := range 5 {
					want = append(want, fn.Apply(leaf.Elem(i, j)))
				}
			}
			for _, c := range configs() {
				for dstName, dst := range map[string]*matrix.Block[float64]{
					"dense":  matrix.NewDense[float64](5, 7),
					"padded": padded(5, 7, func(int, int) float64 { return 0 }),
				} {
					name := fmt.Sprintf("%s/%s/%s/%s", leafName, fn.Op(), dstName, c.name)
					t.Run(name, func(t *testing.T) {
						require.NoError(t, EvaluateWith[float64](Map(fn, matrix.Expression[float64](leaf)), dst, c.opts))
						if diff := cmp.Diff(want, toSlice(t, dst), cmpopts.EquateNaNs()); diff != "" {
							t.Errorf("(-want +got):\n%s", diff)
						}
					})
				}
			}
		}
	}
}

func TestBinaryKindsAgree(t *testing.T) {
	a := padded(6, 5, wave)
	b := seq(6, 5, func(i, j int) float64 { return float64(j-i) + 0.5 })
	funcs := []funmap.BinaryFunc[float64]{
		funmap.Add[float64]{}, funmap.Sub[float64]{}, funmap.Mul[float64]{},
		funmap.Div[float64]{}, funmap.Min[float64]{}, funmap.Max[float64]{},
		funmap.Pow[float64]{}, funmap.Atan2[float64]{},
	}
	for _, fn := range funcs {
		want := make([]float64, 0, 30)
		for j := range 5 {
			for i := range 6 {
				want = append(want, fn.Apply(a.At(i, j), b.At(i, j)))
			}
		}
		for _, c := range configs() {
			t.Run(fmt.Sprintf("%s/%s", fn.Op(), c.name), func(t *testing.T) {
				d := matrix.NewDense[float64](6, 5)
				require.NoError(t, EvaluateWith[float64](Map2[float64](fn, a, b), d, c.opts))
				if diff := cmp.Diff(want, toSlice(t, d), cmpopts.EquateNaNs()); diff != "" {
					t.Errorf("(-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestNestedExpression(t *testing.T) {
	a := seq(40, 9, wave)
	b := padded(40, 9, func(i, j int) float64 { return float64(i + j) })
	// |a - b| * sqrt(b + 1)
	expr := Mul[float64](Abs[float64](Sub[float64](a, b)), Sqrt[float64](AddScalar[float64](b, 1)))
	for _, c := range configs() {
		t.Run(c.name, func(t *testing.T) {
			d := matrix.NewDense[float64](40, 9)
			require.NoError(t, EvaluateWith[float64](expr, d, c.opts))
			for j := range 9 {
				for i := range 40 {
					x, y := a.At(i, j), b.At(i, j)
					want := funmap.Abs[float64]{}.Apply(x-y) * funmap.Sqrt[float64]{}.Apply(y+1)
					require.Equal(t, want, d.At(i, j), "(%d, %d)", i, j)
				}
			}
		})
	}
}

func TestTransposeOfComposite(t *testing.T) {
	a := seq(3, 5, wave)
	expr := Trans[float64](Neg[float64](a))
	assert.IsType(t, TransposeExpr[float64]{}, expr)
	assert.Equal(t, 5, expr.NRows())
	assert.Equal(t, 3, expr.NCols())

	for _, c := range configs() {
		t.Run(c.name, func(t *testing.T) {
			d := matrix.NewDense[float64](5, 3)
			require.NoError(t, EvaluateWith(expr, d, c.opts))
			for i := range 5 {
				for j := range 3 {
					assert.Equal(t, -a.At(j, i), d.At(i, j))
				}
			}
		})
	}
}

func TestTransSimplifies(t *testing.T) {
	a := seq(2, 3, wave)
	assert.Same(t, a, Trans[float64](Trans[float64](a)))

	f := Trans[float64](Fill(2.0, 2, 3))
	require.IsType(t, FillExpr[float64]{}, f)
	assert.Equal(t, 3, f.NRows())
}

func TestCastExpression(t *testing.T) {
	a := seq(4, 3, func(i, j int) float64 { return float64(i) - float64(j)*2.5 })
	d := matrix.NewDense[int32](4, 3)
	require.NoError(t, Evaluate[int32](Cast[int32](a), d))
	for i := range 4 {
		for j := range 3 {
			assert.Equal(t, int32(a.At(i, j)), d.At(i, j))
		}
	}

	f := matrix.NewDense[float32](4, 3)
	require.NoError(t, EvaluateWith[float32](Sqr[float32](Cast[float32](a)), f, Options{Mode: ModeBlock, Level: simd.DispatchAVX2}))
	assert.Equal(t, float32(a.At(3, 2)*a.At(3, 2)), f.At(3, 2))
}

func TestIntegerExpression(t *testing.T) {
	a := matrix.NewDense[int64](3, 3)
	for j := range 3 {
		for i := range 3 {
			a.Set(i, j, int64(i*3+j-4))
		}
	}
	d := matrix.NewDense[int64](3, 3)
	require.NoError(t, Evaluate[int64](Max[int64](Cube[int64](a), Fill[int64](2, 3, 3)), d))
	assert.Equal(t, int64(2), d.At(0, 0))
	assert.Equal(t, int64(64), d.At(2, 2))
}

func TestInPlaceEvaluation(t *testing.T) {
	for _, c := range configs() {
		t.Run(c.name, func(t *testing.T) {
			a := seq(4, 300, wave)
			d := seq(4, 300, func(i, j int) float64 { return float64(i + j) })
			want := make([]float64, 0, d.NElems())
			for j := range 300 {
				for i := range 4 {
					want = append(want, a.At(i, j)-float64(i+j))
				}
			}
			require.NoError(t, EvaluateWith[float64](Sub[float64](a, d), d, c.opts))
			assert.Equal(t, want, d.Data())

			require.NoError(t, EvaluateWith[float64](Neg[float64](d), d, c.opts))
			for k := range want {
				require.Equal(t, -want[k], d.Data()[k])
			}
		})
	}
}

func TestShapeMismatch(t *testing.T) {
	a := seq(3, 4, wave)
	b := seq(4, 3, wave)

	d := matrix.NewDense[float64](4, 3)
	d.Fill(9)
	err := Evaluate[float64](Neg[float64](a), d)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	// Mismatch buried inside the tree.
	err = Evaluate[float64](Abs[float64](Add[float64](b, Trans[float64](b))), d)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	// Plain copy.
	err = Evaluate[float64](a, d)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = Explain[float64](a, d, DefaultOptions())
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	for _, v := range d.Data() {
		require.Equal(t, 9.0, v)
	}
}

func TestStaticShapeMismatchPanics(t *testing.T) {
	a := matrix.NewFixed[float64](2, 3)
	b := matrix.NewFixed[float64](3, 2)
	assert.Panics(t, func() { Add[float64](a, b) })
	assert.NotPanics(t, func() { Add[float64](a, Trans[float64](b)) })
	assert.NotPanics(t, func() { Add[float64](a, matrix.NewDense[float64](3, 2)) })
}

func TestOperandChecks(t *testing.T) {
	assert.Panics(t, func() { Neg[float64](opaque{}) })
	assert.Panics(t, func() { Neg[float64](nil) })
	assert.Panics(t, func() { Map[float64, float64](nil, seq(1, 1, wave)) })

	a := seq(2, 2, wave)
	u := Neg[float64](a)
	assert.False(t, u.ArgEmbedded())
	b := Add[float64](u, a)
	assert.True(t, b.FirstEmbedded())
	assert.False(t, b.SecondEmbedded())
	assert.Equal(t, funmap.OpAdd, b.Func().Op())
	assert.Equal(t, matrix.AccessExpr, matrix.TraitsOf[float64](b).Access)
	assert.Equal(t, matrix.AccessView, matrix.TraitsOf[float64](Fill(1.0, 2, 2)).Access)
}

func TestExplain(t *testing.T) {
	contig := seq(8, 8, wave)
	strided := padded(8, 8, wave)
	dst := matrix.NewDense[float64](8, 8)

	tests := []struct {
		name      string
		src       matrix.Expression[float64]
		opts      Options
		wantKind  Kind
		wantBlock bool
		wantCopy  bool
	}{
		{"copy", contig, DefaultOptions(), KindAuto, false, true},
		{"contiguous", Neg[float64](contig), Options{Level: simd.DispatchAVX2}, KindLinear, true, false},
		{"strided", Neg[float64](strided), Options{Level: simd.DispatchAVX2}, KindPerColumn, true, false},
		{"view", Sqrt[float64](funcView{8, 8, wave}), Options{Level: simd.DispatchNEON}, KindPerColumn, true, false},
		{"not native", Exp[float64](contig), Options{Level: simd.DispatchAVX512}, KindLinear, false, false},
		{"rounding on sse2", Floor[float64](contig), Options{Level: simd.DispatchSSE2}, KindLinear, false, false},
		{"scalar level", Neg[float64](contig), Options{}, KindLinear, false, false},
		{"forced", Exp[float64](contig), Options{Kind: KindPerColumn, Mode: ModeBlock}, KindPerColumn, true, false},
		{"fill", Add[float64](Fill(1.0, 8, 8), contig), Options{Level: simd.DispatchAVX2}, KindLinear, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Explain(tt.src, dst, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCopy, p.Copy, p.String())
			if !tt.wantCopy {
				assert.Equal(t, tt.wantKind, p.Kind, p.String())
				assert.Equal(t, tt.wantBlock, p.Block, p.String())
			}
		})
	}
}

func TestCostModel(t *testing.T) {
	contig := seq(4, 4, wave)
	strided := padded(4, 4, wave)
	dst := matrix.NewDense[float64](4, 4)
	pdst := padded(4, 4, wave)

	assert.Equal(t, 2, LinearCost[float64](Neg[float64](contig), dst))
	assert.Equal(t, 4, PerColumnCost[float64](Neg[float64](contig), dst))
	assert.Equal(t, 6, LinearCost[float64](Neg[float64](strided), dst))
	assert.Equal(t, 7, LinearCost[float64](Add[float64](contig, strided), dst))
	assert.Equal(t, 6, PerColumnCost[float64](Add[float64](contig, strided), dst))
	assert.Equal(t, KindPerColumn, ChooseKind[float64](Add[float64](contig, strided), dst))
	assert.Equal(t, KindPerColumn, ChooseKind[float64](Neg[float64](contig), pdst))

	// Three contiguous leaves into a padded destination cost 3+5 linear and
	// 6+2 per column; ties go to linear.
	tie := Add[float64](Add[float64](contig, contig), contig)
	require.Equal(t, LinearCost[float64](tie, pdst), PerColumnCost[float64](tie, pdst))
	assert.Equal(t, KindLinear, ChooseKind[float64](tie, pdst))

	// A transposed composite adds its operand's cost to the view cost.
	deep := Trans[float64](Add[float64](Sqrt[float64](strided), contig))
	assert.Equal(t, costLinearView+costLinearStrided+costLinearContiguous+costLinearContiguous,
		LinearCost[float64](deep, dst))
	assert.Equal(t, costPerColumnView+costPerColumnDense+costPerColumnDense+costPerColumnDense,
		PerColumnCost[float64](deep, dst))

	// The choice is a pure function of shape and layout.
	expr := Mul[float64](Sqrt[float64](strided), Trans[float64](contig))
	first := ChooseKind[float64](expr, dst)
	for range 100 {
		require.Equal(t, first, ChooseKind[float64](expr, dst))
	}
}

func TestVectorizable(t *testing.T) {
	a := seq(2, 2, wave)
	assert.True(t, Vectorizable[float64](Add[float64](Sqrt[float64](a), a), simd.DispatchSSE2))
	assert.False(t, Vectorizable[float64](Add[float64](Sqrt[float64](a), a), simd.DispatchScalar))
	assert.False(t, Vectorizable[float64](Add[float64](Exp[float64](a), a), simd.DispatchAVX512))
	assert.False(t, Vectorizable[float32](Cast[float32](a), simd.DispatchAVX2))
	assert.True(t, Vectorizable[float64](Trans[float64](Neg[float64](a)), simd.DispatchNEON))

	i := matrix.NewDense[int32](2, 2)
	assert.False(t, Vectorizable[int32](Neg[int32](i), simd.DispatchAVX2))
}

func TestEmptyMatrices(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		a := matrix.NewDense[float64](shape[0], shape[1])
		d := matrix.NewDense[float64](shape[0], shape[1])
		for _, c := range configs() {
			require.NoError(t, EvaluateWith[float64](Neg[float64](a), d, c.opts))
		}
	}
}

func TestEmptyPaddedDestination(t *testing.T) {
	parent := matrix.NewDense[float64](4, 3)
	noRows, err := parent.Sub(matrix.Span(2, 2), matrix.All())
	require.NoError(t, err)
	noCols, err := parent.Sub(matrix.All(), matrix.Span(1, 1))
	require.NoError(t, err)

	src := matrix.NewDense[float64](0, 3)
	p, err := Explain[float64](Neg[float64](src), noRows, Options{})
	require.NoError(t, err)
	assert.Equal(t, KindPerColumn, p.Kind)

	pool := workerpool.New(2)
	defer pool.Close()
	for _, c := range configs() {
		require.NoError(t, EvaluateWith[float64](Neg[float64](src), noRows, c.opts), c.name)
		require.NoError(t, EvaluateWith[float64](Neg[float64](matrix.NewDense[float64](4, 0)), noCols, c.opts), c.name)
	}
	require.NoError(t, EvaluateParallel[float64](pool, Neg[float64](src), noRows))
	require.NoError(t, EvaluateParallel[float64](pool, src, noRows))
	assert.Equal(t, make([]float64, 12), parent.Data())
}

func BenchmarkEvaluate(b *testing.B) {
	const n = 256
	a := seq(n, n, wave)
	s := padded(n, n, wave)
	d := matrix.NewDense[float64](n, n)
	exprs := map[string]matrix.Expression[float64]{
		"sqrt-contiguous": Sqrt[float64](Abs[float64](a)),
		"add-strided":     Add[float64](a, s),
		"exp":             Exp[float64](a),
	}
	for name, e := range exprs {
		for _, mode := range []Mode{ModeScalar, ModeAuto} {
			b.Run(name+"/"+mode.String(), func(b *testing.B) {
				opts := DefaultOptions()
				opts.Mode = mode
				b.SetBytes(int64(8 * n * n))
				for b.Loop() {
					if err := EvaluateWith(e, d, opts); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
