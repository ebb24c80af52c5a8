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

// Command lmatgen generates the fixed-width register and boolean pack types
// of package simd.
//
// Usage:
//
//	lmatgen -output ./simd
//	lmatgen -output ./simd -types float64x4,float64x2
//
// Or via go:generate from package simd:
//
//	//go:generate go run ../cmd/lmatgen -output .
//
// Each register type is written to its own <type>.gen.go file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

var (
	outputDir = flag.String("output", ".", "Output directory for generated files")
	typeList  = flag.String("types", "all", "Comma-separated register types ("+strings.Join(availableTypes(), ",")+") or 'all'")
)

func main() {
	log.SetPrefix("lmatgen: ")
	log.SetFlags(0)
	flag.Parse()

	specs, err := selectSpecs(*typeList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{OutputDir: *outputDir, Specs: specs}
	if err := gen.Run(); err != nil {
		log.Fatal(err)
	}

	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	log.Printf("generated %s", strings.Join(names, ", "))
}
