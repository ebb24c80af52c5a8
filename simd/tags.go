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

// Tag represents a register size tag that determines how many lanes
// a register of that width holds.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("128bit", ...).
	Name() string
}

// Tag128 selects 128-bit registers (SSE2, NEON).
type Tag128 struct{}

// Width returns 16 bytes (128 bits).
func (Tag128) Width() int { return 16 }

// Name returns "128bit".
func (Tag128) Name() string { return "128bit" }

// Tag256 selects 256-bit registers (AVX2).
type Tag256 struct{}

// Width returns 32 bytes (256 bits).
func (Tag256) Width() int { return 32 }

// Name returns "256bit".
func (Tag256) Name() string { return "256bit" }

// Tag512 selects 512-bit registers (AVX-512).
type Tag512 struct{}

// Width returns 64 bytes (512 bits).
func (Tag512) Width() int { return 64 }

// Name returns "512bit".
func (Tag512) Name() string { return "512bit" }

// TagFor returns the width tag matching a dispatch level.
func TagFor(level DispatchLevel) Tag {
	switch level.Width() {
	case 64:
		return Tag512{}
	case 32:
		return Tag256{}
	default:
		return Tag128{}
	}
}

// LanesFor returns the number of T lanes a register tagged t holds.
func LanesFor[T Lanes](t Tag) int {
	switch t.Width() {
	case 64:
		return LanesAt[T](DispatchAVX512)
	case 32:
		return LanesAt[T](DispatchAVX2)
	default:
		return LanesAt[T](DispatchSSE2)
	}
}
