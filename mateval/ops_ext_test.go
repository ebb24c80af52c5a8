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

//go:build !lmat_noextmath

package mateval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
)

func TestExtendedOps(t *testing.T) {
	a := seq(3, 3, func(i, j int) float64 { return float64(i+j) + 0.5 })
	b := seq(3, 3, func(i, j int) float64 { return float64(j) + 1 })
	d := matrix.NewDense[float64](3, 3)

	require.NoError(t, EvaluateWith[float64](Round[float64](a), d, Options{Level: simd.DispatchAVX2}))
	assert.Equal(t, 1.0, d.At(0, 0))
	assert.Equal(t, 5.0, d.At(2, 2))

	require.NoError(t, Evaluate[float64](Hypot[float64](a, b), d))
	assert.Equal(t, math.Hypot(3.5, 3), d.At(1, 2))

	require.NoError(t, Evaluate[float64](Lgamma[float64](Tgamma[float64](b)), d))
	assert.InDelta(t, math.Log(2), d.At(0, 2), 1e-12)

	assert.True(t, Vectorizable[float64](Trunc[float64](a), simd.DispatchAVX512))
	assert.False(t, Vectorizable[float64](Erf[float64](a), simd.DispatchAVX512))
}
