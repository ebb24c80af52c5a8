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

import (
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/workerpool"
)

// EvaluateParallel is Evaluate with the destination columns split across
// pool. Every batch of columns gets its own per-column evaluator, so no
// evaluation state is shared between workers. A nil pool evaluates on the
// caller.
func EvaluateParallel[T matrix.Element](pool *workerpool.Pool, src matrix.Expression[T], dst matrix.DenseBlock[T]) error {
	p, err := Explain(src, dst, DefaultOptions())
	if err != nil {
		return err
	}
	ncols := dst.NCols()
	if dst.NElems() == 0 {
		return nil
	}

	if p.Copy {
		s := src.(matrix.DenseBlock[T])
		pool.ParallelFor(ncols, func(start, end int) {
			for j := start; j < end; j++ {
				copy(dst.Col(j), s.Col(j))
			}
		})
		return nil
	}

	cfg := evalConfig{level: p.Level, block: p.Block}
	batch := max(1, ncols/(2*pool.NumWorkers()))
	pool.ParallelForBatched(ncols, batch, func(start, end int) {
		runColumns(newColumn(src, cfg, start), dst, start, end, cfg.block)
	})
	return nil
}
