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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lightmat/funmap"
	"github.com/ajroetker/go-lightmat/simd"
)

func TestSelectOps(t *testing.T) {
	all, err := selectOps("all")
	require.NoError(t, err)
	assert.Equal(t, funmap.Ops(), all)

	ops, err := selectOps("sqrt, add,sqrt")
	require.NoError(t, err)
	assert.Equal(t, []funmap.Op{funmap.OpSqrt, funmap.OpAdd}, ops)

	_, err = selectOps("sqrt,bogus")
	assert.Error(t, err)
}

func TestBuildReport(t *testing.T) {
	r := buildReport(simd.DispatchSSE2, []funmap.Op{funmap.OpAdd, funmap.OpFloor, funmap.OpExp})
	assert.Equal(t, "sse2", r.Level)
	assert.Equal(t, 16, r.WidthBytes)
	assert.Equal(t, "128bit", r.Register)
	assert.False(t, r.HardwareKernels)
	assert.Equal(t, 4, r.Float32Lanes)
	assert.Equal(t, 2, r.Float64Lanes)
	assert.Equal(t, 1, r.NativeAtLevel)
	assert.Equal(t, 2, r.FallbackAtLevel)
	require.Len(t, r.Ops, 3)
	assert.Equal(t, []string{"avx2", "avx512", "neon"}, r.Ops[1].Native)
	assert.Empty(t, r.Ops[2].Native)
}
