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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestCopyFromSliceIntoStridedColumn(t *testing.T) {
	buf := filled(8, -1)
	dst, err := NewBlock(buf, 5, 1, 8)
	require.NoError(t, err)

	require.NoError(t, CopyFromSlice([]float64{1, 2, 3, 4, 5}, dst))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, -1, -1, -1}, buf)
}

func TestCopyFromSliceIntoPaddedBlock(t *testing.T) {
	buf := filled(16, -1)
	dst, err := NewBlock(buf, 5, 2, 8)
	require.NoError(t, err)

	require.NoError(t, CopyFromSlice([]float64{1, 2, 3, 4, 5}, dst.Column(0)))
	want := []float64{1, 2, 3, 4, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("buffer (-want +got):\n%s", diff)
	}

	require.NoError(t, CopyFromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, dst))
	want = []float64{1, 2, 3, 4, 5, -1, -1, -1, 6, 7, 8, 9, 10, -1, -1, -1}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("buffer (-want +got):\n%s", diff)
	}
}

func TestCopyShapeMismatchWritesNothing(t *testing.T) {
	src := grid(2, 3)
	dst := NewDense[float64](3, 2)
	dst.Fill(7)

	err := Copy[float64](src, dst)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, filled(6, 7), dst.Data())

	err = CopyFromSlice(make([]float64, 5), dst)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, filled(6, 7), dst.Data())

	out := filled(7, 3)
	err = CopyToSlice[float64](dst, out)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, filled(7, 3), out)
}

func TestCopierFor(t *testing.T) {
	fixed := NewFixed[float64](3, 3)
	dyn := NewDense[float64](3, 3)
	big := NewFixed[float64](5, 5)
	padded, err := NewBlock(make([]float64, 3*8), 3, 3, 8)
	require.NoError(t, err)

	tests := []struct {
		name     string
		src, dst DenseBlock[float64]
		want     Copier
	}{
		{"small fixed", fixed, fixed.Clone(), Copier{CopySmall, true, true}},
		{"fixed meets dynamic", fixed, dyn, Copier{CopySmall, true, true}},
		{"dynamic", dyn, dyn.Clone(), Copier{CopyGeneral, true, true}},
		{"too big to unroll", big, big.Clone(), Copier{CopyGeneral, true, true}},
		{"column vector", big.Column(1), NewDense[float64](5, 1), Copier{CopyVector, true, true}},
		{"row vector", grid(3, 20).Row(1), NewDense[float64](1, 20), Copier{CopyVector, false, true}},
		{"small row", big.Row(1), NewDense[float64](1, 5), Copier{CopySmall, false, true}},
		{"strided dst", dyn, padded, Copier{CopyGeneral, true, false}},
		{"strided src", padded, dyn, Copier{CopyGeneral, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CopierFor(tt.src, tt.dst))
		})
	}
}

// Every strategy and layout case must produce the same elements.
func TestCopyStrategiesAgree(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 7}, {3, 1}, {2, 4}, {4, 4}, {5, 3}, {7, 6}} {
		rows, cols := shape[0], shape[1]
		for _, sld := range []int{rows, rows + 3} {
			for _, dld := range []int{rows, rows + 2} {
				for _, strat := range []CopyStrategy{CopyGeneral, CopyVector, CopySmall} {
					if strat == CopyVector && rows != 1 && cols != 1 {
						continue
					}
					if strat == CopySmall && (rows > smallCopyRows || rows*cols > smallCopyElems) {
						continue
					}
					name := fmt.Sprintf("%dx%d/sld=%d/dld=%d/%s", rows, cols, sld, dld, strat)
					t.Run(name, func(t *testing.T) {
						srcBuf := make([]float64, extent(rows, cols, sld))
						for i := range srcBuf {
							srcBuf[i] = float64(i + 1)
						}
						src, err := NewBlock(srcBuf, rows, cols, sld)
						require.NoError(t, err)
						dstBuf := filled(extent(rows, cols, dld), -1)
						dst, err := NewBlock(dstBuf, rows, cols, dld)
						require.NoError(t, err)

						runCopy(strat, dst.Data(), dld, src.Data(), sld, rows, cols)
						for j := range cols {
							for i := range rows {
								require.Equal(t, src.At(i, j), dst.At(i, j), "(%d, %d)", i, j)
							}
							for i := rows; i < dld && j < cols-1; i++ {
								require.Equal(t, -1.0, dstBuf[i+j*dld], "padding (%d, %d)", i, j)
							}
						}
					})
				}
			}
		}
	}
}

func TestCopyRoundTrip(t *testing.T) {
	src := grid(4, 3)
	view, err := src.Sub(Span(1, 4), Span(0, 2))
	require.NoError(t, err)

	out := make([]float64, view.NElems())
	require.NoError(t, CopyToSlice[float64](view, out))
	assert.Equal(t, []float64{10, 20, 30, 11, 21, 31}, out)

	dst := NewDense[float64](3, 2)
	require.NoError(t, Copy[float64](view, dst))
	for j := range 2 {
		for i := range 3 {
			assert.Equal(t, view.At(i, j), dst.At(i, j))
		}
	}
}

func BenchmarkCopy(b *testing.B) {
	for _, n := range []int{4, 64, 512} {
		src := grid(n, n)
		padded, _ := NewBlock(make([]float64, extent(n, n, n+8)), n, n, n+8)
		b.Run(fmt.Sprintf("contiguous/%d", n), func(b *testing.B) {
			dst := NewDense[float64](n, n)
			for b.Loop() {
				_ = Copy[float64](src, dst)
			}
		})
		b.Run(fmt.Sprintf("strided/%d", n), func(b *testing.B) {
			for b.Loop() {
				_ = Copy[float64](src, padded)
			}
		})
	}
}
