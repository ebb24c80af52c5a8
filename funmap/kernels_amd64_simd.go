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

//go:build amd64 && goexperiment.simd

package funmap

import (
	"simd/archsimd"

	"github.com/ajroetker/go-lightmat/simd"
)

func init() {
	switch simd.CurrentLevel() {
	case simd.DispatchAVX512:
		hw32x16.install(kernels32[simd.Tag512{}])
		hw64x8.install(kernels64[simd.Tag512{}])
		fallthrough
	case simd.DispatchAVX2:
		hw32x8.install(kernels32[simd.Tag256{}])
		hw64x4.install(kernels64[simd.Tag256{}])
	}
}

// hwVec is the archsimd method set the hardware kernels need.
type hwVec[E simd.Floats, R any] interface {
	Add(R) R
	Sub(R) R
	Mul(R) R
	Div(R) R
	Sqrt() R
	StoreSlice(s []E)
}

// hwOps describes one archsimd register type. min and max keep x unless
// y compares strictly smaller (larger), which a blend on the comparison
// mask gives exactly; VMINPS would return y on NaN.
type hwOps[E simd.Floats, R hwVec[E, R]] struct {
	lanes    int
	load     func([]E) R
	min, max func(x, y R) R
}

var (
	hw32x8 = hwOps[float32, archsimd.Float32x8]{
		lanes: 8,
		load:  archsimd.LoadFloat32x8Slice,
		min: func(x, y archsimd.Float32x8) archsimd.Float32x8 {
			return y.AsInt32x8().Merge(x.AsInt32x8(), y.Less(x)).AsFloat32x8()
		},
		max: func(x, y archsimd.Float32x8) archsimd.Float32x8 {
			return y.AsInt32x8().Merge(x.AsInt32x8(), y.Greater(x)).AsFloat32x8()
		},
	}
	hw64x4 = hwOps[float64, archsimd.Float64x4]{
		lanes: 4,
		load:  archsimd.LoadFloat64x4Slice,
		min: func(x, y archsimd.Float64x4) archsimd.Float64x4 {
			return y.AsInt64x4().Merge(x.AsInt64x4(), y.Less(x)).AsFloat64x4()
		},
		max: func(x, y archsimd.Float64x4) archsimd.Float64x4 {
			return y.AsInt64x4().Merge(x.AsInt64x4(), y.Greater(x)).AsFloat64x4()
		},
	}
	hw32x16 = hwOps[float32, archsimd.Float32x16]{
		lanes: 16,
		load:  archsimd.LoadFloat32x16Slice,
		min: func(x, y archsimd.Float32x16) archsimd.Float32x16 {
			return y.AsInt32x16().Merge(x.AsInt32x16(), y.Less(x)).AsFloat32x16()
		},
		max: func(x, y archsimd.Float32x16) archsimd.Float32x16 {
			return y.AsInt32x16().Merge(x.AsInt32x16(), y.Greater(x)).AsFloat32x16()
		},
	}
	hw64x8 = hwOps[float64, archsimd.Float64x8]{
		lanes: 8,
		load:  archsimd.LoadFloat64x8Slice,
		min: func(x, y archsimd.Float64x8) archsimd.Float64x8 {
			return y.AsInt64x8().Merge(x.AsInt64x8(), y.Less(x)).AsFloat64x8()
		},
		max: func(x, y archsimd.Float64x8) archsimd.Float64x8 {
			return y.AsInt64x8().Merge(x.AsInt64x8(), y.Greater(x)).AsFloat64x8()
		},
	}
)

// install replaces the IEEE-exact kernels of ks with archsimd loops. The
// tail shorter than one register goes to the portable kernel it replaces.
func (h hwOps[E, R]) install(ks *kernelSet[E]) {
	binary := map[Op]func(R, R) R{
		OpAdd: func(a, b R) R { return a.Add(b) },
		OpSub: func(a, b R) R { return a.Sub(b) },
		OpMul: func(a, b R) R { return a.Mul(b) },
		OpDiv: func(a, b R) R { return a.Div(b) },
		OpMin: h.min,
		OpMax: h.max,
	}
	for op, f := range binary {
		tail := ks.binary[op]
		ks.binary[op] = func(dst, x, y []E) {
			n := len(dst)
			i := 0
			for ; i+h.lanes <= n; i += h.lanes {
				f(h.load(x[i:]), h.load(y[i:])).StoreSlice(dst[i:])
			}
			if i < n {
				tail(dst[i:], x[i:], y[i:])
			}
		}
	}

	unary := map[Op]func(R) R{
		OpSqrt: func(v R) R { return v.Sqrt() },
		OpSqr:  func(v R) R { return v.Mul(v) },
		OpCube: func(v R) R { return v.Mul(v).Mul(v) },
	}
	for op, f := range unary {
		tail := ks.unary[op]
		ks.unary[op] = func(dst, src []E) {
			n := len(dst)
			i := 0
			for ; i+h.lanes <= n; i += h.lanes {
				f(h.load(src[i:])).StoreSlice(dst[i:])
			}
			if i < n {
				tail(dst[i:], src[i:])
			}
		}
	}
	ks.hardware = true
}
