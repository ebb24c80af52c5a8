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

package simd

import (
	"math"
	"testing"
)

func TestFloat64x4Arithmetic(t *testing.T) {
	a := LoadFloat64x4Slice([]float64{1, -2, 9, 16})
	b := BroadcastFloat64x4(2)

	tests := []struct {
		name string
		got  Float64x4
		want []float64
	}{
		{"add", a.Add(b), []float64{3, 0, 11, 18}},
		{"sub", a.Sub(b), []float64{-1, -4, 7, 14}},
		{"mul", a.Mul(b), []float64{2, -4, 18, 32}},
		{"div", a.Div(b), []float64{0.5, -1, 4.5, 8}},
		{"min", a.Min(b), []float64{1, -2, 2, 2}},
		{"max", a.Max(b), []float64{2, 2, 9, 16}},
		{"neg", a.Neg(), []float64{-1, 2, -9, -16}},
		{"abs", a.Abs(), []float64{1, 2, 9, 16}},
		{"rcp", b.Reciprocal(), []float64{0.5, 0.5, 0.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, 4)
			tt.got.StoreSlice(out)
			for i := range out {
				if out[i] != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, out[i], tt.want[i])
				}
			}
		})
	}
}

func TestFloat32x8Rounding(t *testing.T) {
	in := []float32{-2.5, -1.5, -0.5, 0.5, 1.5, 2.5, 2.7, -2.7}
	v := LoadFloat32x8Slice(in)

	floor, ceil, round, trunc := v.Floor(), v.Ceil(), v.Round(), v.Trunc()
	for i, x := range in {
		if got, want := floor.GetElem(i), float32(math.Floor(float64(x))); got != want {
			t.Errorf("Floor lane %d: got %v, want %v", i, got, want)
		}
		if got, want := ceil.GetElem(i), float32(math.Ceil(float64(x))); got != want {
			t.Errorf("Ceil lane %d: got %v, want %v", i, got, want)
		}
		if got, want := round.GetElem(i), float32(math.Round(float64(x))); got != want {
			t.Errorf("Round lane %d: got %v, want %v", i, got, want)
		}
		if got, want := trunc.GetElem(i), float32(math.Trunc(float64(x))); got != want {
			t.Errorf("Trunc lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSqrtMatchesScalar(t *testing.T) {
	in := []float32{0, 1, 2, 3, 1e-8, 1e8, 0.25, 7}
	v := LoadFloat32x8Slice(in).Sqrt()
	for i, x := range in {
		want := float32(math.Sqrt(float64(x)))
		if got := v.GetElem(i); got != want {
			t.Errorf("lane %d: got %v, want %v", i, got, want)
		}
	}
	if got := BroadcastFloat64x2(-1).Sqrt().GetElem(0); !math.IsNaN(got) {
		t.Errorf("Sqrt(-1) = %v, want NaN", got)
	}
}

func TestAbsClearsNegativeZero(t *testing.T) {
	v := BroadcastFloat64x2(math.Copysign(0, -1)).Abs()
	if math.Signbit(v.GetElem(0)) {
		t.Error("Abs(-0) kept the sign bit")
	}
}

func TestSlicePart(t *testing.T) {
	v := LoadFloat64x4SlicePart([]float64{1, 2})
	want := []float64{1, 2, 0, 0}
	for i := range want {
		if v.GetElem(i) != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, v.GetElem(i), want[i])
		}
	}

	dst := []float64{9, 9, 9}
	BroadcastFloat64x4(5).StoreSlicePart(dst)
	for i := range dst {
		if dst[i] != 5 {
			t.Errorf("dst[%d] = %v, want 5", i, dst[i])
		}
	}
}

func TestSetElem(t *testing.T) {
	v := BroadcastFloat32x4(1)
	w := v.SetElem(2, 7)
	if v.GetElem(2) != 1 {
		t.Error("SetElem modified the receiver")
	}
	if w.GetElem(2) != 7 || w.GetElem(1) != 1 {
		t.Errorf("SetElem: got %v, %v", w.GetElem(2), w.GetElem(1))
	}
	if w.Len() != 4 {
		t.Errorf("Len() = %d, want 4", w.Len())
	}
}

func TestHalves(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	v := LoadFloat64x8Slice(in)
	lo, hi := v.GetLo(), v.GetHi()
	for i := range 4 {
		if lo.GetElem(i) != in[i] {
			t.Errorf("lo lane %d: got %v, want %v", i, lo.GetElem(i), in[i])
		}
		if hi.GetElem(i) != in[i+4] {
			t.Errorf("hi lane %d: got %v, want %v", i, hi.GetElem(i), in[i+4])
		}
	}

	// Decompose a 256-bit add onto 128-bit halves and join the results.
	a := LoadFloat64x4Slice(in)
	b := LoadFloat64x4Slice(in[4:])
	joined := Float64x4FromHalves(a.GetLo().Add(b.GetLo()), a.GetHi().Add(b.GetHi()))
	direct := a.Add(b)
	for i := range 4 {
		if joined.GetElem(i) != direct.GetElem(i) {
			t.Errorf("lane %d: halves %v, direct %v", i, joined.GetElem(i), direct.GetElem(i))
		}
	}

	w := LoadFloat32x16Slice(make([]float32, 16)).SetElem(15, 3)
	if got := w.GetHi().GetHi().GetElem(3); got != 3 {
		t.Errorf("GetHi().GetHi() lane 3 = %v, want 3", got)
	}
}

func TestCompareAndBlend(t *testing.T) {
	a := LoadFloat32x4Slice([]float32{1, 5, 3, 7})
	b := LoadFloat32x4Slice([]float32{4, 2, 3, 8})

	lt := a.Less(b)
	want := []bool{true, false, false, true}
	for i, w := range want {
		if lt.Extract(i) != w {
			t.Errorf("Less lane %d: got %v, want %v", i, lt.Extract(i), w)
		}
	}
	if eq := a.Equal(b); eq.CountTrue() != 1 || !eq.Extract(2) {
		t.Errorf("Equal: count %d", eq.CountTrue())
	}
	if le := a.LessEqual(b); le.CountTrue() != 3 {
		t.Errorf("LessEqual: count %d, want 3", le.CountTrue())
	}
	if gt := a.Greater(b); gt.CountTrue() != 1 || !gt.Extract(1) {
		t.Errorf("Greater: count %d", gt.CountTrue())
	}

	// Lanes where a < b take b, giving the lane-wise maximum.
	r := a.Blend(b, lt)
	wantMax := []float32{4, 5, 3, 8}
	for i := range wantMax {
		if r.GetElem(i) != wantMax[i] {
			t.Errorf("Blend lane %d: got %v, want %v", i, r.GetElem(i), wantMax[i])
		}
	}
}

func TestBlendIsBitwise(t *testing.T) {
	nan := math.NaN()
	a := LoadFloat64x2Slice([]float64{nan, 1})
	b := LoadFloat64x2Slice([]float64{2, nan})
	r := a.Blend(b, NewMask64x2(true, false))
	if r.GetElem(0) != 2 || !math.IsNaN(r.GetElem(1)) {
		t.Errorf("Blend: got %v, %v", r.GetElem(0), r.GetElem(1))
	}
}
