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

// Package funmap resolves element-wise operators to callable functors.
//
// Every operator has a functor type, generic over its element type:
//
//	funmap.Add[float64]{}.Apply(1, 2)   // 3
//	funmap.Sqrt[float32]{}.Apply(4)     // 2
//
// Arithmetic functors accept any lane type; real-math functors only accept
// float32 and float64, so an unsupported combination such as Sqrt[int32]
// does not compile. There is no runtime registry to fall back to.
//
// Independently of resolution, HasNative reports for each (operator,
// instruction-set level, element width) whether a vectorized form exists.
// When it does, a functor's ApplySlice runs the register kernel for that
// level; otherwise it runs the scalar form. Both produce identical results.
//
// The extended operator set (cbrt, hypot, round, trunc, exp2, log2, expm1,
// log1p, inverse hyperbolics, erf, erfc, lgamma, tgamma) is compiled out by
// the lmat_noextmath build tag; HasExtendedMath reports which build is in use.
package funmap
