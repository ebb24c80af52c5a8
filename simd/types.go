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

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in register lanes.
// Matrix element types are drawn from this set.
type Lanes interface {
	Floats | Integers
}

// laneBits32 returns the pack representation of b for a 32-bit lane.
func laneBits32(b bool) uint32 {
	if b {
		return ^uint32(0)
	}
	return 0
}

// laneBits64 returns the pack representation of b for a 64-bit lane.
func laneBits64(b bool) uint64 {
	if b {
		return ^uint64(0)
	}
	return 0
}

// minLane and maxLane are the lane rules shared by registers and the scalar
// functors: the first operand wins unless the second compares strictly
// smaller (larger). NaN in the second operand therefore never propagates.
func minLane[T Floats](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxLane[T Floats](a, b T) T {
	if b > a {
		return b
	}
	return a
}
