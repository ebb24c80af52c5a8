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

//go:build amd64 && goexperiment.simd

package funmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightmat/simd"
)

func TestHardwareKernelsInstalled(t *testing.T) {
	level := simd.CurrentLevel()
	if level != simd.DispatchAVX2 && level != simd.DispatchAVX512 {
		t.Skipf("no AVX2 on this CPU (level %s)", level)
	}
	assert.True(t, HardwareKernels(simd.DispatchAVX2))
	assert.True(t, kernels32[simd.Tag256{}].hardware)
	assert.Equal(t, level == simd.DispatchAVX512, HardwareKernels(simd.DispatchAVX512))
	assert.False(t, HardwareKernels(simd.DispatchSSE2))
}

// The hardware loops must agree bit for bit with Apply, including the
// operand order of Min and Max on NaN and signed zeros, across lengths that
// leave a tail.
func TestHardwareKernelsMatchApply(t *testing.T) {
	level := simd.CurrentLevel()
	if !HardwareKernels(level) {
		t.Skipf("no hardware kernels at %s", level)
	}
	nan, negZero := math.NaN(), math.Copysign(0, -1)
	special := []float64{nan, 1, negZero, 0, math.Inf(-1), 2, nan, 3.5}
	other := []float64{2, nan, 0, negZero, 1, math.Inf(1), nan, -3.5}

	for _, n := range []int{0, 3, 8, 17, 37} {
		x := make([]float64, n)
		y := make([]float64, n)
		for i := range n {
			x[i] = special[i%len(special)] * float64(1+i/len(special))
			y[i] = other[(i*3)%len(other)]
		}
		for _, f := range []BinaryFunc[float64]{Add[float64]{}, Sub[float64]{}, Mul[float64]{}, Div[float64]{}, Min[float64]{}, Max[float64]{}} {
			got := make([]float64, n)
			f.ApplySlice(level, got, x, y)
			for i := range n {
				require.Equalf(t, math.Float64bits(f.Apply(x[i], y[i])), math.Float64bits(got[i]),
					"%s n=%d i=%d (%v, %v)", f.Op(), n, i, x[i], y[i])
			}
		}

		x32 := make([]float32, n)
		for i := range n {
			x32[i] = float32(math.Abs(y[i]))
		}
		for _, f := range []UnaryFunc[float32, float32]{Sqrt[float32]{}, Sqr[float32]{}, Cube[float32]{}} {
			got := make([]float32, n)
			f.ApplySlice(level, got, x32)
			for i := range n {
				require.Equalf(t, math.Float32bits(f.Apply(x32[i])), math.Float32bits(got[i]),
					"%s n=%d i=%d", f.Op(), n, i)
			}
		}
	}
}
