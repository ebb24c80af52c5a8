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
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set a register width is modeled on.
type DispatchLevel int

const (
	// DispatchScalar indicates no vector unit; every operator runs its scalar form.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit x86 vectors (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit x86 vectors.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit x86 vectors.
	DispatchAVX512

	// DispatchNEON indicates 128-bit ARM vectors.
	DispatchNEON
)

// Levels lists every dispatch level, narrowest first.
func Levels() []DispatchLevel {
	return []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchAVX512, DispatchNEON}
}

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseLevel is the inverse of DispatchLevel.String.
func ParseLevel(name string) (DispatchLevel, bool) {
	for _, l := range Levels() {
		if l.String() == name {
			return l, true
		}
	}
	return DispatchScalar, false
}

// Width returns the register width in bytes for the level.
// Scalar reports 16 so lane counts stay consistent with the narrowest unit.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// IsVector reports whether the level has a vector unit.
func (d DispatchLevel) IsVector() bool {
	return d > DispatchScalar && d <= DispatchNEON
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected instruction-set level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes for the detected level.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns the name of the detected level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the LMAT_NO_SIMD environment variable is set.
// When set, detection reports DispatchScalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("LMAT_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of T lanes in a register of the detected level.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	return LanesAt[T](currentLevel)
}

// LanesAt returns the number of T lanes in a register of the given level.
func LanesAt[T Lanes](level DispatchLevel) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return level.Width() / elementSize
}
