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

package funmap

import "github.com/ajroetker/go-lightmat/simd"

// levelSet is a bit set of dispatch levels.
type levelSet uint8

func levels(ls ...simd.DispatchLevel) levelSet {
	var s levelSet
	for _, l := range ls {
		s |= 1 << l
	}
	return s
}

func (s levelSet) has(l simd.DispatchLevel) bool {
	return l >= 0 && l < 8 && s&(1<<l) != 0
}

var (
	vectorLevels   = levels(simd.DispatchSSE2, simd.DispatchAVX2, simd.DispatchAVX512, simd.DispatchNEON)
	roundingLevels = levels(simd.DispatchAVX2, simd.DispatchAVX512, simd.DispatchNEON)
)

// nativeSupport lists, per operator, the levels where a register kernel
// exists. SSE2 has no packed rounding instructions, so floor/ceil/round/trunc
// start at AVX2. Transcendental operators are never native.
var nativeSupport = [numOps]levelSet{
	OpAdd:   vectorLevels,
	OpSub:   vectorLevels,
	OpMul:   vectorLevels,
	OpDiv:   vectorLevels,
	OpNeg:   vectorLevels,
	OpAbs:   vectorLevels,
	OpSqr:   vectorLevels,
	OpCube:  vectorLevels,
	OpMax:   vectorLevels,
	OpMin:   vectorLevels,
	OpRcp:   vectorLevels,
	OpSqrt:  vectorLevels,
	OpRsqrt: vectorLevels,
	OpFloor: roundingLevels,
	OpCeil:  roundingLevels,
	OpRound: roundingLevels,
	OpTrunc: roundingLevels,
}

// HasNative reports whether op has a register kernel for elements of
// elemBits bits at level. Only float32 and float64 elements are vectorized.
func HasNative(op Op, level simd.DispatchLevel, elemBits int) bool {
	if !op.Available() || !level.IsVector() {
		return false
	}
	if elemBits != 32 && elemBits != 64 {
		return false
	}
	return nativeSupport[op].has(level)
}

// HasNativeFor is HasNative for the element type T.
func HasNativeFor[T simd.Lanes](op Op, level simd.DispatchLevel) bool {
	switch any(*new(T)).(type) {
	case float32:
		return HasNative(op, level, 32)
	case float64:
		return HasNative(op, level, 64)
	}
	return false
}

// NativeLevels returns the levels, in ascending order, where op has a
// register kernel for float elements.
func NativeLevels(op Op) []simd.DispatchLevel {
	var out []simd.DispatchLevel
	for _, l := range simd.Levels() {
		if HasNative(op, l, 64) {
			out = append(out, l)
		}
	}
	return out
}
