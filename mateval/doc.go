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

// Package mateval builds element-wise matrix expressions and evaluates them
// into dense blocks.
//
// Expressions are lazy values: Neg(a), Add(a, Sqrt(b)) or Trans(a) only
// record the operator and the operands. Evaluate walks the tree once,
// picks the cheaper of two traversals with a static cost model and writes
// every element of the destination:
//
//   - linear: the matrix is addressed as one column-major vector;
//   - per-column: each column is addressed separately and every operand
//     advances to the next column in lock-step.
//
// When every operator of the tree has a native register kernel at the
// chosen dispatch level, evaluation runs in blocks through those kernels.
// Otherwise it evaluates one element at a time. The result is the same
// either way.
//
//	a := matrix.NewDense[float64](3, 4)
//	d := matrix.NewDense[float64](3, 4)
//	if err := mateval.Evaluate(mateval.Abs(mateval.Sub(a, mateval.Fill(1.0, 3, 4))), d); err != nil {
//		...
//	}
package mateval
