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

package main

// registerTemplate renders one register type and its boolean pack.
// Lane loops are written against the backing arrays so that every value
// stays on the stack.
const registerTemplate = `// Code generated by lmatgen. DO NOT EDIT.

package simd

import "math"

// {{.Name}} is a {{.Bits}}-bit register holding {{.N}} {{.Elem}} lanes.
type {{.Name}} struct {
	v [{{.N}}]{{.Elem}}
}

// Broadcast{{.Name}} returns a {{.Name}} with every lane set to x.
func Broadcast{{.Name}}(x {{.Elem}}) {{.Name}} {
	var r {{.Name}}
	for i := range r.v {
		r.v[i] = x
	}
	return r
}

// Load{{.Name}}Slice loads {{.N}} lanes from s. It panics if len(s) < {{.N}}.
func Load{{.Name}}Slice(s []{{.Elem}}) {{.Name}} {
	var r {{.Name}}
	copy(r.v[:], s[:{{.N}}])
	return r
}

// Load{{.Name}}SlicePart loads min(len(s), {{.N}}) lanes from s; the remaining lanes are zero.
func Load{{.Name}}SlicePart(s []{{.Elem}}) {{.Name}} {
	var r {{.Name}}
	copy(r.v[:], s)
	return r
}

// StoreSlice stores all {{.N}} lanes to s. It panics if len(s) < {{.N}}.
func (x {{.Name}}) StoreSlice(s []{{.Elem}}) {
	copy(s[:{{.N}}], x.v[:])
}

// StoreSlicePart stores min(len(s), {{.N}}) lanes to s.
func (x {{.Name}}) StoreSlicePart(s []{{.Elem}}) {
	copy(s, x.v[:])
}

// Len returns the number of lanes.
func (x {{.Name}}) Len() int {
	return {{.N}}
}

// GetElem returns lane i.
func (x {{.Name}}) GetElem(i int) {{.Elem}} {
	return x.v[i]
}

// SetElem returns a copy of x with lane i set to e.
func (x {{.Name}}) SetElem(i int, e {{.Elem}}) {{.Name}} {
	x.v[i] = e
	return x
}
{{if .Half}}
// GetLo returns the low {{.HalfN}} lanes.
func (x {{.Name}}) GetLo() {{.Half}} {
	var r {{.Half}}
	copy(r.v[:], x.v[:{{.HalfN}}])
	return r
}

// GetHi returns the high {{.HalfN}} lanes.
func (x {{.Name}}) GetHi() {{.Half}} {
	var r {{.Half}}
	copy(r.v[:], x.v[{{.HalfN}}:])
	return r
}

// {{.Name}}FromHalves joins lo and hi into one register.
func {{.Name}}FromHalves(lo, hi {{.Half}}) {{.Name}} {
	var r {{.Name}}
	copy(r.v[:{{.HalfN}}], lo.v[:])
	copy(r.v[{{.HalfN}}:], hi.v[:])
	return r
}
{{end}}
// Add returns x + y lane-wise.
func (x {{.Name}}) Add(y {{.Name}}) {{.Name}} {
	for i := range x.v {
		x.v[i] += y.v[i]
	}
	return x
}

// Sub returns x - y lane-wise.
func (x {{.Name}}) Sub(y {{.Name}}) {{.Name}} {
	for i := range x.v {
		x.v[i] -= y.v[i]
	}
	return x
}

// Mul returns x * y lane-wise.
func (x {{.Name}}) Mul(y {{.Name}}) {{.Name}} {
	for i := range x.v {
		x.v[i] *= y.v[i]
	}
	return x
}

// Div returns x / y lane-wise.
func (x {{.Name}}) Div(y {{.Name}}) {{.Name}} {
	for i := range x.v {
		x.v[i] /= y.v[i]
	}
	return x
}

// Min returns the lane-wise minimum; a lane of x is kept unless y is strictly smaller.
func (x {{.Name}}) Min(y {{.Name}}) {{.Name}} {
	for i := range x.v {
		x.v[i] = minLane(x.v[i], y.v[i])
	}
	return x
}

// Max returns the lane-wise maximum; a lane of x is kept unless y is strictly larger.
func (x {{.Name}}) Max(y {{.Name}}) {{.Name}} {
	for i := range x.v {
		x.v[i] = maxLane(x.v[i], y.v[i])
	}
	return x
}

// Neg returns -x lane-wise.
func (x {{.Name}}) Neg() {{.Name}} {
	for i := range x.v {
		x.v[i] = -x.v[i]
	}
	return x
}

// Abs clears the sign bit of every lane.
func (x {{.Name}}) Abs() {{.Name}} {
	for i := range x.v {
		x.v[i] = {{.FromBits}}({{.ToBits}}(x.v[i]) &^ (1 << {{.SignBit}}))
	}
	return x
}

// Sqrt returns the correctly rounded square root of every lane.
func (x {{.Name}}) Sqrt() {{.Name}} {
	for i := range x.v {
		x.v[i] = {{unary "math.Sqrt"}}
	}
	return x
}

// Reciprocal returns 1/x lane-wise.
func (x {{.Name}}) Reciprocal() {{.Name}} {
	for i := range x.v {
		x.v[i] = 1 / x.v[i]
	}
	return x
}

// Floor rounds every lane toward negative infinity.
func (x {{.Name}}) Floor() {{.Name}} {
	for i := range x.v {
		x.v[i] = {{unary "math.Floor"}}
	}
	return x
}

// Ceil rounds every lane toward positive infinity.
func (x {{.Name}}) Ceil() {{.Name}} {
	for i := range x.v {
		x.v[i] = {{unary "math.Ceil"}}
	}
	return x
}

// Round rounds every lane to the nearest integer, halves away from zero.
func (x {{.Name}}) Round() {{.Name}} {
	for i := range x.v {
		x.v[i] = {{unary "math.Round"}}
	}
	return x
}

// Trunc rounds every lane toward zero.
func (x {{.Name}}) Trunc() {{.Name}} {
	for i := range x.v {
		x.v[i] = {{unary "math.Trunc"}}
	}
	return x
}

// Equal returns a pack with lanes set where x == y.
func (x {{.Name}}) Equal(y {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range x.v {
		m.e[i] = {{.LaneBitsFunc}}(x.v[i] == y.v[i])
	}
	return m
}

// Less returns a pack with lanes set where x < y.
func (x {{.Name}}) Less(y {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range x.v {
		m.e[i] = {{.LaneBitsFunc}}(x.v[i] < y.v[i])
	}
	return m
}

// LessEqual returns a pack with lanes set where x <= y.
func (x {{.Name}}) LessEqual(y {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range x.v {
		m.e[i] = {{.LaneBitsFunc}}(x.v[i] <= y.v[i])
	}
	return m
}

// Greater returns a pack with lanes set where x > y.
func (x {{.Name}}) Greater(y {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range x.v {
		m.e[i] = {{.LaneBitsFunc}}(x.v[i] > y.v[i])
	}
	return m
}

// Blend takes lanes from y where m is set and from x elsewhere.
// The selection is a bitwise and/andnot on the lane bits.
func (x {{.Name}}) Blend(y {{.Name}}, m {{.Mask}}) {{.Name}} {
	for i := range x.v {
		xb := {{.ToBits}}(x.v[i])
		yb := {{.ToBits}}(y.v[i])
		x.v[i] = {{.FromBits}}(xb&^m.e[i] | yb&m.e[i])
	}
	return x
}

// {{.Mask}} is a boolean pack of {{.N}} {{.LaneBits}}-bit lanes.
// A true lane has all bits set, a false lane all bits clear.
type {{.Mask}} struct {
	e [{{.N}}]{{.Word}}
}

// New{{.Mask}} returns a pack with lane i set to bi.
func New{{.Mask}}({{.BoolParams}} bool) {{.Mask}} {
	return {{.Mask}}{e: [{{.N}}]{{.Word}}{
{{.BoolLanes}}	}}
}

// Broadcast{{.Mask}} returns a pack with every lane set to b.
func Broadcast{{.Mask}}(b bool) {{.Mask}} {
	var m {{.Mask}}
	bits := {{.LaneBitsFunc}}(b)
	for i := range m.e {
		m.e[i] = bits
	}
	return m
}

// Load{{.Mask}} loads {{.N}} booleans from p. It panics if len(p) < {{.N}}.
func Load{{.Mask}}(p []bool) {{.Mask}} {
	var m {{.Mask}}
	for i, b := range p[:{{.N}}] {
		m.e[i] = {{.LaneBitsFunc}}(b)
	}
	return m
}

// AllFalse{{.Mask}} returns the pack with every lane clear.
func AllFalse{{.Mask}}() {{.Mask}} {
	return {{.Mask}}{}
}

// AllTrue{{.Mask}} returns the pack with every lane set.
func AllTrue{{.Mask}}() {{.Mask}} {
	return Broadcast{{.Mask}}(true)
}

// {{.Mask}}FromBits reinterprets the lane bits of v as a pack.
// Every lane of v must be all-0 or all-1 bits.
func {{.Mask}}FromBits(v {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range m.e {
		m.e[i] = {{.ToBits}}(v.v[i])
	}
	return m
}

// As{{.Name}} reinterprets the pack as a register without converting lanes.
func (m {{.Mask}}) As{{.Name}}() {{.Name}} {
	var r {{.Name}}
	for i := range m.e {
		r.v[i] = {{.FromBits}}(m.e[i])
	}
	return r
}

// Store writes the {{.N}} lanes to p. It panics if len(p) < {{.N}}.
func (m {{.Mask}}) Store(p []bool) {
	p = p[:{{.N}}]
	for i := range p {
		p[i] = m.e[i] != 0
	}
}

// Width returns the number of lanes.
func (m {{.Mask}}) Width() int {
	return {{.N}}
}

// Extract returns lane i.
func (m {{.Mask}}) Extract(i int) bool {
	return m.e[i] != 0
}

// ToScalar returns lane 0.
func (m {{.Mask}}) ToScalar() bool {
	return m.e[0] != 0
}

// Lane returns the raw bits of lane i: 0 or all ones.
func (m {{.Mask}}) Lane(i int) {{.Word}} {
	return m.e[i]
}

// And returns m & o lane-wise.
func (m {{.Mask}}) And(o {{.Mask}}) {{.Mask}} {
	for i := range m.e {
		m.e[i] &= o.e[i]
	}
	return m
}

// Or returns m | o lane-wise.
func (m {{.Mask}}) Or(o {{.Mask}}) {{.Mask}} {
	for i := range m.e {
		m.e[i] |= o.e[i]
	}
	return m
}

// Xor returns m ^ o lane-wise.
func (m {{.Mask}}) Xor(o {{.Mask}}) {{.Mask}} {
	for i := range m.e {
		m.e[i] ^= o.e[i]
	}
	return m
}

// AndNot returns m &^ o lane-wise.
func (m {{.Mask}}) AndNot(o {{.Mask}}) {{.Mask}} {
	for i := range m.e {
		m.e[i] &^= o.e[i]
	}
	return m
}

// Not inverts every lane.
func (m {{.Mask}}) Not() {{.Mask}} {
	for i := range m.e {
		m.e[i] = ^m.e[i]
	}
	return m
}

// AllTrue reports whether every lane is set.
func (m {{.Mask}}) AllTrue() bool {
	for _, e := range m.e {
		if e == 0 {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is set.
func (m {{.Mask}}) AnyTrue() bool {
	for _, e := range m.e {
		if e != 0 {
			return true
		}
	}
	return false
}

// CountTrue returns the number of set lanes.
func (m {{.Mask}}) CountTrue() int {
	n := 0
	for _, e := range m.e {
		if e != 0 {
			n++
		}
	}
	return n
}
{{if .Half}}
// GetLo returns the low {{.HalfN}} lanes.
func (m {{.Mask}}) GetLo() {{.HalfMask}} {
	var r {{.HalfMask}}
	copy(r.e[:], m.e[:{{.HalfN}}])
	return r
}

// GetHi returns the high {{.HalfN}} lanes.
func (m {{.Mask}}) GetHi() {{.HalfMask}} {
	var r {{.HalfMask}}
	copy(r.e[:], m.e[{{.HalfN}}:])
	return r
}

// {{.Mask}}FromHalves joins lo and hi into one pack.
func {{.Mask}}FromHalves(lo, hi {{.HalfMask}}) {{.Mask}} {
	var m {{.Mask}}
	copy(m.e[:{{.HalfN}}], lo.e[:])
	copy(m.e[{{.HalfN}}:], hi.e[:])
	return m
}
{{end}}`
