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

// vec is the method set shared by the float register types.
type vec[E simd.Floats, R any] interface {
	Len() int
	StoreSlice(s []E)
	StoreSlicePart(s []E)

	Add(R) R
	Sub(R) R
	Mul(R) R
	Div(R) R
	Min(R) R
	Max(R) R

	Neg() R
	Abs() R
	Sqrt() R
	Reciprocal() R
	Floor() R
	Ceil() R
	Round() R
	Trunc() R
}

type (
	unaryKernel[E simd.Floats]  func(dst, src []E)
	binaryKernel[E simd.Floats] func(dst, x, y []E)
)

// kernelSet holds the register kernels for one element type and width.
// hardware is set once some of them have been replaced by instruction-level
// forms for the running CPU.
type kernelSet[E simd.Floats] struct {
	lanes    int
	hardware bool
	unary    [numOps]unaryKernel[E]
	binary   [numOps]binaryKernel[E]
}

func newKernelSet[E simd.Floats, R vec[E, R]](load, loadPart func([]E) R) *kernelSet[E] {
	var zero R
	ks := &kernelSet[E]{lanes: zero.Len()}

	unary := map[Op]func(R) R{
		OpNeg:   func(v R) R { return v.Neg() },
		OpAbs:   func(v R) R { return v.Abs() },
		OpSqr:   func(v R) R { return v.Mul(v) },
		OpCube:  func(v R) R { return v.Mul(v).Mul(v) },
		OpRcp:   func(v R) R { return v.Reciprocal() },
		OpSqrt:  func(v R) R { return v.Sqrt() },
		OpRsqrt: func(v R) R { return v.Sqrt().Reciprocal() },
		OpFloor: func(v R) R { return v.Floor() },
		OpCeil:  func(v R) R { return v.Ceil() },
		OpRound: func(v R) R { return v.Round() },
		OpTrunc: func(v R) R { return v.Trunc() },
	}
	for op, f := range unary {
		ks.unary[op] = func(dst, src []E) {
			n := len(dst)
			i := 0
			for ; i+ks.lanes <= n; i += ks.lanes {
				f(load(src[i:])).StoreSlice(dst[i:])
			}
			if i < n {
				f(loadPart(src[i:n])).StoreSlicePart(dst[i:n])
			}
		}
	}

	binary := map[Op]func(R, R) R{
		OpAdd: func(a, b R) R { return a.Add(b) },
		OpSub: func(a, b R) R { return a.Sub(b) },
		OpMul: func(a, b R) R { return a.Mul(b) },
		OpDiv: func(a, b R) R { return a.Div(b) },
		OpMax: func(a, b R) R { return a.Max(b) },
		OpMin: func(a, b R) R { return a.Min(b) },
	}
	for op, f := range binary {
		ks.binary[op] = func(dst, x, y []E) {
			n := len(dst)
			i := 0
			for ; i+ks.lanes <= n; i += ks.lanes {
				f(load(x[i:]), load(y[i:])).StoreSlice(dst[i:])
			}
			if i < n {
				f(loadPart(x[i:n]), loadPart(y[i:n])).StoreSlicePart(dst[i:n])
			}
		}
	}
	return ks
}

// Kernels indexed by register tag; a level runs the register of its tag.
var (
	kernels32 = map[simd.Tag]*kernelSet[float32]{
		simd.Tag128{}: newKernelSet(simd.LoadFloat32x4Slice, simd.LoadFloat32x4SlicePart),
		simd.Tag256{}: newKernelSet(simd.LoadFloat32x8Slice, simd.LoadFloat32x8SlicePart),
		simd.Tag512{}: newKernelSet(simd.LoadFloat32x16Slice, simd.LoadFloat32x16SlicePart),
	}
	kernels64 = map[simd.Tag]*kernelSet[float64]{
		simd.Tag128{}: newKernelSet(simd.LoadFloat64x2Slice, simd.LoadFloat64x2SlicePart),
		simd.Tag256{}: newKernelSet(simd.LoadFloat64x4Slice, simd.LoadFloat64x4SlicePart),
		simd.Tag512{}: newKernelSet(simd.LoadFloat64x8Slice, simd.LoadFloat64x8SlicePart),
	}
)

// HardwareKernels reports whether the kernels run at level use hardware
// vector instructions rather than the portable register types. It is only
// ever true in builds with GOEXPERIMENT=simd on amd64.
func HardwareKernels(level simd.DispatchLevel) bool {
	if !level.IsVector() {
		return false
	}
	return kernels64[simd.TagFor(level)].hardware
}

func lookupUnary[E simd.Floats](table map[simd.Tag]*kernelSet[E], op Op, level simd.DispatchLevel) unaryKernel[E] {
	if ks := table[simd.TagFor(level)]; ks != nil {
		return ks.unary[op]
	}
	return nil
}

func lookupBinary[E simd.Floats](table map[simd.Tag]*kernelSet[E], op Op, level simd.DispatchLevel) binaryKernel[E] {
	if ks := table[simd.TagFor(level)]; ks != nil {
		return ks.binary[op]
	}
	return nil
}

// applyNativeUnary runs the register kernel for op when one exists for
// level and the element types match; it reports whether it did.
func applyNativeUnary[S, D any](op Op, level simd.DispatchLevel, dst []D, src []S) bool {
	if len(src) < len(dst) {
		panic("funmap: source shorter than destination")
	}
	switch d := any(dst).(type) {
	case []float32:
		s, ok := any(src).([]float32)
		if !ok || !HasNative(op, level, 32) {
			return false
		}
		if k := lookupUnary(kernels32, op, level); k != nil {
			k(d, s)
			return true
		}
	case []float64:
		s, ok := any(src).([]float64)
		if !ok || !HasNative(op, level, 64) {
			return false
		}
		if k := lookupUnary(kernels64, op, level); k != nil {
			k(d, s)
			return true
		}
	}
	return false
}

func applyNativeBinary[T any](op Op, level simd.DispatchLevel, dst, x, y []T) bool {
	if len(x) < len(dst) || len(y) < len(dst) {
		panic("funmap: operand shorter than destination")
	}
	switch d := any(dst).(type) {
	case []float32:
		if !HasNative(op, level, 32) {
			return false
		}
		if k := lookupBinary(kernels32, op, level); k != nil {
			k(d, any(x).([]float32), any(y).([]float32))
			return true
		}
	case []float64:
		if !HasNative(op, level, 64) {
			return false
		}
		if k := lookupBinary(kernels64, op, level); k != nil {
			k(d, any(x).([]float64), any(y).([]float64))
			return true
		}
	}
	return false
}
