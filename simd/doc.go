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

// Package simd provides fixed-width vector registers and boolean packs for
// the element-wise evaluators of go-lightmat, together with runtime
// detection of the instruction-set level they model.
//
// Registers are value types holding N lanes of float32 or float64:
//
//	Float32x4, Float32x8, Float32x16 (128, 256 and 512 bits)
//	Float64x2, Float64x4, Float64x8
//
// Every register has a boolean pack counterpart (Mask32x8 for Float32x8,
// and so on). A pack lane is either all bits clear (false) or all bits set
// (true), so a pack can be reinterpreted as its register and used directly
// as a bitwise select operand:
//
//	a := simd.LoadFloat64x4Slice(xs)
//	b := simd.LoadFloat64x4Slice(ys)
//	m := a.Less(b)
//	r := a.Blend(b, m) // lanes where a < b take b
//	r.StoreSlice(out)
//
// Wide registers expose their low and high halves (GetLo, GetHi), which is
// how a 256-bit operation is decomposed onto a 128-bit instruction set.
//
// The register files (*.gen.go) are produced by cmd/lmatgen.
//
// Set LMAT_NO_SIMD=1 to force DispatchScalar regardless of CPU support.
package simd

//go:generate go run ../cmd/lmatgen -output .
