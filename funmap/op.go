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

// Op identifies an element-wise operator.
type Op int

const (
	OpInvalid Op = iota

	// arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpAbs
	OpSqr
	OpCube
	OpMax
	OpMin

	// real math
	OpRcp
	OpSqrt
	OpRsqrt
	OpPow
	OpFloor
	OpCeil
	OpExp
	OpLog
	OpLog10
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpAtan2
	OpSinh
	OpCosh
	OpTanh

	// extended real math
	OpCbrt
	OpHypot
	OpRound
	OpTrunc
	OpExp2
	OpLog2
	OpExpm1
	OpLog1p
	OpAsinh
	OpAcosh
	OpAtanh
	OpErf
	OpErfc
	OpLgamma
	OpTgamma

	// type conversion
	OpCast

	numOps
)

type opInfo struct {
	name     string
	arity    int
	real     bool // only defined for floating-point elements
	extended bool
}

var opTable = [numOps]opInfo{
	OpInvalid: {"invalid", 0, false, false},

	OpAdd:  {"add", 2, false, false},
	OpSub:  {"sub", 2, false, false},
	OpMul:  {"mul", 2, false, false},
	OpDiv:  {"div", 2, false, false},
	OpNeg:  {"neg", 1, false, false},
	OpAbs:  {"abs", 1, false, false},
	OpSqr:  {"sqr", 1, false, false},
	OpCube: {"cube", 1, false, false},
	OpMax:  {"max", 2, false, false},
	OpMin:  {"min", 2, false, false},

	OpRcp:   {"rcp", 1, true, false},
	OpSqrt:  {"sqrt", 1, true, false},
	OpRsqrt: {"rsqrt", 1, true, false},
	OpPow:   {"pow", 2, true, false},
	OpFloor: {"floor", 1, true, false},
	OpCeil:  {"ceil", 1, true, false},
	OpExp:   {"exp", 1, true, false},
	OpLog:   {"log", 1, true, false},
	OpLog10: {"log10", 1, true, false},
	OpSin:   {"sin", 1, true, false},
	OpCos:   {"cos", 1, true, false},
	OpTan:   {"tan", 1, true, false},
	OpAsin:  {"asin", 1, true, false},
	OpAcos:  {"acos", 1, true, false},
	OpAtan:  {"atan", 1, true, false},
	OpAtan2: {"atan2", 2, true, false},
	OpSinh:  {"sinh", 1, true, false},
	OpCosh:  {"cosh", 1, true, false},
	OpTanh:  {"tanh", 1, true, false},

	OpCbrt:   {"cbrt", 1, true, true},
	OpHypot:  {"hypot", 2, true, true},
	OpRound:  {"round", 1, true, true},
	OpTrunc:  {"trunc", 1, true, true},
	OpExp2:   {"exp2", 1, true, true},
	OpLog2:   {"log2", 1, true, true},
	OpExpm1:  {"expm1", 1, true, true},
	OpLog1p:  {"log1p", 1, true, true},
	OpAsinh:  {"asinh", 1, true, true},
	OpAcosh:  {"acosh", 1, true, true},
	OpAtanh:  {"atanh", 1, true, true},
	OpErf:    {"erf", 1, true, true},
	OpErfc:   {"erfc", 1, true, true},
	OpLgamma: {"lgamma", 1, true, true},
	OpTgamma: {"tgamma", 1, true, true},

	OpCast: {"cast", 1, false, false},
}

func (op Op) info() opInfo {
	if op <= OpInvalid || op >= numOps {
		return opTable[OpInvalid]
	}
	return opTable[op]
}

// String returns the operator name, e.g. "sqrt".
func (op Op) String() string {
	return op.info().name
}

// Arity returns the number of operands, 1 or 2 (0 for invalid operators).
func (op Op) Arity() int {
	return op.info().arity
}

// RealOnly reports whether the operator is only defined for float32 and float64.
func (op Op) RealOnly() bool {
	return op.info().real
}

// Extended reports whether the operator belongs to the extended math set.
func (op Op) Extended() bool {
	return op.info().extended
}

// Available reports whether the operator's functor is compiled into this build.
func (op Op) Available() bool {
	if op <= OpInvalid || op >= numOps {
		return false
	}
	return !op.Extended() || HasExtendedMath
}

// Ops returns every operator available in this build, in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, numOps)
	for op := OpInvalid + 1; op < numOps; op++ {
		if op.Available() {
			ops = append(ops, op)
		}
	}
	return ops
}

// ParseOp is the inverse of Op.String.
func ParseOp(name string) (Op, bool) {
	for op := OpInvalid + 1; op < numOps; op++ {
		if opTable[op].name == name {
			return op, true
		}
	}
	return OpInvalid, false
}
