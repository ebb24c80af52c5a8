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

// Package matrix defines the capability hierarchy of matrix expressions and
// the dense column-major block type that backs it.
//
// Three capability levels exist:
//
//   - Expression: a lazily evaluated matrix-shaped value with known dimensions.
//   - View: an Expression whose elements can be read at (i, j).
//   - DenseBlock: a View stored column by column with a lead dimension, so
//     column j starts at Data()[j*LeadDim()].
//
// Shapes carry a static part ([Shape]) fixed when a value is constructed,
// with [Dynamic] marking a dimension only known at run time. Static
// mismatches are programmer errors; dynamic ones surface as
// [ErrShapeMismatch] from the copy and evaluation entry points.
//
// Element access through [Block.At] is bounds checked only when built with
// the lmatdebug tag. [Block.Get] is always checked and returns
// [ErrOutOfRange] instead.
package matrix
