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

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// RegisterSpec describes one register type and its boolean pack.
type RegisterSpec struct {
	Elem     string // lane type, "float32" or "float64"
	LaneBits int    // bits per lane
	N        int    // lanes

	Name     string // e.g. Float64x4
	Mask     string // e.g. Mask64x4
	Half     string // half-width register, empty for 128-bit registers
	HalfMask string
	HalfN    int
}

// Bits returns the register width in bits.
func (s RegisterSpec) Bits() int { return s.LaneBits * s.N }

// Word is the unsigned integer type of one pack lane.
func (s RegisterSpec) Word() string { return fmt.Sprintf("uint%d", s.LaneBits) }

// LaneBitsFunc returns the helper that converts a bool to a pack lane.
func (s RegisterSpec) LaneBitsFunc() string { return fmt.Sprintf("laneBits%d", s.LaneBits) }

// ToBits and FromBits name the math functions reinterpreting lane bits.
func (s RegisterSpec) ToBits() string   { return fmt.Sprintf("math.Float%dbits", s.LaneBits) }
func (s RegisterSpec) FromBits() string { return fmt.Sprintf("math.Float%dfrombits", s.LaneBits) }

// SignBit is the index of the sign bit of a lane.
func (s RegisterSpec) SignBit() int { return s.LaneBits - 1 }

// BoolParams is the parameter list of the N-boolean pack constructor.
func (s RegisterSpec) BoolParams() string {
	return strings.Join(lo.Times(s.N, func(i int) string { return fmt.Sprintf("b%d", i) }), ", ")
}

// BoolLanes is the body of the N-boolean pack constructor's array literal.
func (s RegisterSpec) BoolLanes() string {
	var b strings.Builder
	for i := range s.N {
		fmt.Fprintf(&b, "\t\t%s(b%d),\n", s.LaneBitsFunc(), i)
	}
	return b.String()
}

// registerWidths are the register widths in bits, one per instruction-set width.
var registerWidths = []int{128, 256, 512}

// allSpecs enumerates every register type for float32 and float64 lanes.
func allSpecs() []RegisterSpec {
	title := cases.Title(language.English)
	var specs []RegisterSpec
	for _, elem := range []string{"float32", "float64"} {
		laneBits := 32
		if elem == "float64" {
			laneBits = 64
		}
		specs = append(specs, lo.Map(registerWidths, func(width, _ int) RegisterSpec {
			n := width / laneBits
			s := RegisterSpec{
				Elem:     elem,
				LaneBits: laneBits,
				N:        n,
				Name:     fmt.Sprintf("%sx%d", title.String(elem), n),
				Mask:     fmt.Sprintf("Mask%dx%d", laneBits, n),
			}
			if width > registerWidths[0] {
				s.HalfN = n / 2
				s.Half = fmt.Sprintf("%sx%d", title.String(elem), s.HalfN)
				s.HalfMask = fmt.Sprintf("Mask%dx%d", laneBits, s.HalfN)
			}
			return s
		})...)
	}
	return specs
}

func availableTypes() []string {
	return lo.Map(allSpecs(), func(s RegisterSpec, _ int) string { return strings.ToLower(s.Name) })
}

// selectSpecs resolves the -types flag.
func selectSpecs(list string) ([]RegisterSpec, error) {
	all := allSpecs()
	if list == "" || list == "all" {
		return all, nil
	}
	byName := lo.KeyBy(all, func(s RegisterSpec) string { return strings.ToLower(s.Name) })
	var out []RegisterSpec
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown register type %q", name)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no register types selected")
	}
	return out, nil
}

// Generator renders register files.
type Generator struct {
	OutputDir string
	Specs     []RegisterSpec
}

// Run renders every spec concurrently and writes one file per spec.
func (g *Generator) Run() error {
	tmpl, err := parseTemplate()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var eg errgroup.Group
	for _, spec := range g.Specs {
		eg.Go(func() error {
			src, err := render(tmpl, spec)
			if err != nil {
				return fmt.Errorf("%s: %w", spec.Name, err)
			}
			filename := filepath.Join(g.OutputDir, strings.ToLower(spec.Name)+".gen.go")
			if err := os.WriteFile(filename, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", filename, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

func parseTemplate() (*template.Template, error) {
	// unary is rebound per spec in render.
	funcs := template.FuncMap{"unary": func(string) string { return "" }}
	return template.New("register").Funcs(funcs).Parse(registerTemplate)
}

// render executes the template for spec and formats the result.
func render(tmpl *template.Template, spec RegisterSpec) ([]byte, error) {
	t, err := tmpl.Clone()
	if err != nil {
		return nil, err
	}
	t.Funcs(template.FuncMap{
		"unary": func(fn string) string {
			if spec.Elem == "float64" {
				return fn + "(x.v[i])"
			}
			return fmt.Sprintf("%s(%s(float64(x.v[i])))", spec.Elem, fn)
		},
	})

	var buf bytes.Buffer
	if err := t.Execute(&buf, spec); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	formatted, err := imports.Process(strings.ToLower(spec.Name)+".gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return formatted, nil
}
