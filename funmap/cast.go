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

// Cast converts each element from S to T with Go conversion rules.
// Float to integer conversion of out-of-range values is implementation
// defined, as in Go.
type Cast[S, T simd.Lanes] struct{}

func (Cast[S, T]) Op() Op      { return OpCast }
func (Cast[S, T]) Apply(x S) T { return T(x) }
func (Cast[S, T]) ApplySlice(_ simd.DispatchLevel, dst []T, src []S) {
	src = src[:len(dst)]
	for i, x := range src {
		dst[i] = T(x)
	}
}
