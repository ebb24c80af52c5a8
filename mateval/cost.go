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

package mateval

import "github.com/ajroetker/go-lightmat/matrix"

// Per-leaf traversal costs. Linear costs follow the access pattern: a
// contiguous block is one run, a strided block needs a division per
// element, a generic view an interface call and a division. Per-column
// costs do not depend on layout.
const (
	costLinearContiguous = 1
	costLinearStrided    = 5
	costLinearView       = 6
	costPerColumnDense   = 2
	costPerColumnView    = 4
	costFill             = 0
)

// Kind is an evaluator traversal strategy.
type Kind int

const (
	// KindAuto lets the cost model choose.
	KindAuto Kind = iota
	// KindLinear addresses the matrix with one column-major index.
	KindLinear
	// KindPerColumn walks column by column.
	KindPerColumn
)

func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindLinear:
		return "linear"
	case KindPerColumn:
		return "per-column"
	}
	return "Kind(?)"
}

func linearCostOf[T matrix.Element](e matrix.Expression[T]) int {
	switch x := e.(type) {
	case node[T]:
		return x.linearCost()
	case matrix.DenseBlock[T]:
		if matrix.IsContiguous(x) {
			return costLinearContiguous
		}
		return costLinearStrided
	}
	return costLinearView
}

func perColumnCostOf[T matrix.Element](e matrix.Expression[T]) int {
	switch x := e.(type) {
	case node[T]:
		return x.perColumnCost()
	case matrix.DenseBlock[T]:
		return costPerColumnDense
	}
	return costPerColumnView
}

// LinearCost is the estimated cost of evaluating src into dst with the
// linear evaluator: the sum over the leaves of src plus the destination.
func LinearCost[T matrix.Element](src matrix.Expression[T], dst matrix.DenseBlock[T]) int {
	return linearCostOf(src) + linearCostOf[T](dst)
}

// PerColumnCost is LinearCost for the per-column evaluator.
func PerColumnCost[T matrix.Element](src matrix.Expression[T], dst matrix.DenseBlock[T]) int {
	return perColumnCostOf(src) + perColumnCostOf[T](dst)
}

// ChooseKind returns the cheaper evaluator kind for src and dst. Ties go
// to linear.
func ChooseKind[T matrix.Element](src matrix.Expression[T], dst matrix.DenseBlock[T]) Kind {
	if LinearCost(src, dst) <= PerColumnCost(src, dst) {
		return KindLinear
	}
	return KindPerColumn
}
