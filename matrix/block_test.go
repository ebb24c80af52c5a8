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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want Shape
		ok   bool
	}{
		{"both dynamic", DynamicShape(), DynamicShape(), DynamicShape(), true},
		{"fixed wins", Fixed(3, 4), DynamicShape(), Fixed(3, 4), true},
		{"mixed", Shape{3, Dynamic}, Shape{Dynamic, 4}, Fixed(3, 4), true},
		{"equal", Fixed(2, 2), Fixed(2, 2), Fixed(2, 2), true},
		{"rows differ", Fixed(2, 3), Fixed(3, 3), Fixed(2, 3), false},
		{"cols differ", Shape{Dynamic, 1}, Shape{Dynamic, 2}, Shape{Dynamic, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CombineShapes(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestShapeHelpers(t *testing.T) {
	s := Shape{3, Dynamic}
	assert.False(t, s.IsFixed())
	assert.True(t, s.Matches(3, 10))
	assert.False(t, s.Matches(2, 10))
	assert.Equal(t, "3x?", s.String())
	assert.Equal(t, Shape{Dynamic, 3}, s.Transposed())
	assert.Panics(t, func() { Fixed(-1, 2) })
}

func TestTraitsOf(t *testing.T) {
	b := NewFixed[float64](2, 3)
	tr := TraitsOf[float64](b)
	assert.Equal(t, AccessDense, tr.Access)
	assert.Equal(t, Fixed(2, 3), tr.Shape)
	assert.Equal(t, "dense", tr.Access.String())
}

func TestNewBlockValidation(t *testing.T) {
	data := make([]float32, 10)
	_, err := NewBlock(data, 3, 3, 3)
	require.NoError(t, err)

	_, err = NewBlock(data, 3, 3, 4) // needs 11
	assert.ErrorIs(t, err, ErrBadShape)
	_, err = NewBlock(data, 4, 2, 3)
	assert.ErrorIs(t, err, ErrBadShape)
	_, err = NewBlock(data, -1, 2, 3)
	assert.ErrorIs(t, err, ErrBadShape)

	b, err := NewBlock(data, 0, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.NElems())
}

func TestBlockAccess(t *testing.T) {
	data := []int32{
		0, 1, 2, -1,
		10, 11, 12, -1,
	}
	b, err := NewBlock(data, 3, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, b.NRows())
	assert.Equal(t, 2, b.NCols())
	assert.Equal(t, 6, b.NElems())
	assert.Equal(t, 4, b.LeadDim())
	assert.False(t, IsContiguous[int32](b))
	assert.Equal(t, int32(12), b.At(2, 1))
	assert.Equal(t, []int32{10, 11, 12}, b.Col(1))

	b.Set(0, 1, 99)
	assert.Equal(t, int32(99), data[4])
	*b.Ref(1, 0) = 7
	assert.Equal(t, int32(7), data[1])

	v, err := b.Get(2, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
	_, err = b.Get(3, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = b.Get(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAtDebugChecks(t *testing.T) {
	b := NewDense[float64](2, 2)
	// (2, 0) aliases (0, 1) in a 2x2 contiguous block.
	if debugChecks {
		assert.Panics(t, func() { b.At(2, 0) })
	} else {
		b.Set(0, 1, 5)
		assert.Equal(t, 5.0, b.At(2, 0))
	}
}

func TestFromColumnsAndClone(t *testing.T) {
	b, err := FromColumns([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, b.Data())

	_, err = FromColumns([]float64{1, 2}, []float64{3})
	assert.ErrorIs(t, err, ErrBadShape)

	sub, err := b.Sub(Span(1, 2), Span(0, 3))
	require.NoError(t, err)
	c := sub.Clone()
	assert.Equal(t, []float64{2, 4, 6}, c.Data())
	assert.Equal(t, 1, c.LeadDim())
	c.Set(0, 0, -1)
	assert.Equal(t, 2.0, b.At(1, 0))
}

func TestFill(t *testing.T) {
	data := make([]float32, 8)
	b, err := NewBlock(data, 3, 2, 4)
	require.NoError(t, err)
	b.Fill(2)
	assert.Equal(t, []float32{2, 2, 2, 0, 2, 2, 2, 0}, data)
}
