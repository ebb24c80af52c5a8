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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOpRoundTrip(t *testing.T) {
	for op := OpInvalid + 1; op < numOps; op++ {
		got, ok := ParseOp(op.String())
		require.Truef(t, ok, "ParseOp(%q)", op.String())
		assert.Equal(t, op, got)
	}
	_, ok := ParseOp("nope")
	assert.False(t, ok)
}

func TestOpProperties(t *testing.T) {
	assert.Equal(t, 2, OpAdd.Arity())
	assert.Equal(t, 1, OpSqrt.Arity())
	assert.Equal(t, 2, OpAtan2.Arity())
	assert.Equal(t, 0, Op(-3).Arity())
	assert.Equal(t, "invalid", Op(999).String())

	assert.False(t, OpAbs.RealOnly())
	assert.True(t, OpExp.RealOnly())
	assert.True(t, OpErf.Extended())
	assert.False(t, OpFloor.Extended())

	assert.False(t, OpInvalid.Available())
	assert.True(t, OpAdd.Available())
	assert.Equal(t, HasExtendedMath, OpLgamma.Available())
}

func TestOpsListsAvailable(t *testing.T) {
	ops := Ops()
	require.NotEmpty(t, ops)
	for i, op := range ops {
		assert.True(t, op.Available(), op.String())
		if i > 0 {
			assert.Less(t, ops[i-1], op)
		}
	}
}
