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

func TestLevelWidths(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		width int
		f32   int
		f64   int
	}{
		{DispatchScalar, 16, 4, 2},
		{DispatchSSE2, 16, 4, 2},
		{DispatchAVX2, 32, 8, 4},
		{DispatchAVX512, 64, 16, 8},
		{DispatchNEON, 16, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.Width(); got != tt.width {
				t.Errorf("Width() = %d, want %d", got, tt.width)
			}
			if got := LanesAt[float32](tt.level); got != tt.f32 {
				t.Errorf("LanesAt[float32] = %d, want %d", got, tt.f32)
			}
			if got := LanesAt[float64](tt.level); got != tt.f64 {
				t.Errorf("LanesAt[float64] = %d, want %d", got, tt.f64)
			}
			if got := LanesFor[float64](TagFor(tt.level)); got != tt.f64 {
				t.Errorf("LanesFor(TagFor) = %d, want %d", got, tt.f64)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		got, ok := ParseLevel(l.String())
		if !ok || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, ok)
		}
	}
	if _, ok := ParseLevel("mmx"); ok {
		t.Error("ParseLevel accepted an unknown name")
	}
	if DispatchScalar.IsVector() {
		t.Error("scalar level reported a vector unit")
	}
	if !DispatchAVX2.IsVector() {
		t.Error("avx2 level reported no vector unit")
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
	if CurrentWidth() != CurrentLevel().Width() {
		t.Errorf("CurrentWidth() = %d, want %d", CurrentWidth(), CurrentLevel().Width())
	}
	if MaxLanes[float64]()*8 != CurrentWidth() {
		t.Errorf("MaxLanes[float64]() = %d for width %d", MaxLanes[float64](), CurrentWidth())
	}
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("LMAT_NO_SIMD set but level is %s", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("LMAT_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestMinMaxLaneNaN(t *testing.T) {
	nan := math.NaN()
	if got := minLane(1.0, nan); got != 1.0 {
		t.Errorf("minLane(1, NaN) = %v, want 1", got)
	}
	if got := maxLane(1.0, nan); got != 1.0 {
		t.Errorf("maxLane(1, NaN) = %v, want 1", got)
	}
	if got := minLane(nan, 1.0); !math.IsNaN(got) {
		t.Errorf("minLane(NaN, 1) = %v, want NaN", got)
	}
}
