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

package matrix

import "errors"

// Sentinel errors. Callers match them with errors.Is; entry points wrap
// them with the offending dimensions.
var (
	// ErrShapeMismatch is returned when source and destination shapes differ.
	// Nothing has been written when it is returned.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a block or view cannot be built: negative
	// dimensions, lead dimension smaller than the row count, backing slice
	// too short or an invalid range.
	ErrBadShape = errors.New("matrix: invalid shape")
)
