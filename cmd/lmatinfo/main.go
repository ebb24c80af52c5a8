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

// Command lmatinfo reports the dispatch level detected on this machine and
// which element-wise operators have native register kernels at each level.
//
// Usage:
//
//	lmatinfo
//	lmatinfo -ops sqrt,floor,exp -json
//	LMAT_NO_SIMD=1 lmatinfo
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/ajroetker/go-lightmat/funmap"
	"github.com/ajroetker/go-lightmat/simd"
)

var (
	levelName = flag.String("level", "", "Report as if running at this level ("+strings.Join(levelNames(), ",")+"); default is the detected level")
	opList    = flag.String("ops", "all", "Comma-separated operators to report, or 'all'")
	asJSON    = flag.Bool("json", false, "Write the report as JSON")
)

func levelNames() []string {
	return lo.Map(simd.Levels(), func(l simd.DispatchLevel, _ int) string { return l.String() })
}

// OpReport is the native support of one operator.
type OpReport struct {
	Name     string   `json:"name"`
	Arity    int      `json:"arity"`
	Extended bool     `json:"extended,omitempty"`
	Native   []string `json:"native"`
}

// Report is what lmatinfo prints.
type Report struct {
	Level           string     `json:"level"`
	WidthBytes      int        `json:"width_bytes"`
	Register        string     `json:"register"`
	Float32Lanes    int        `json:"float32_lanes"`
	Float64Lanes    int        `json:"float64_lanes"`
	NoSimdEnv       bool       `json:"no_simd_env"`
	ExtendedMath    bool       `json:"extended_math"`
	HardwareKernels bool       `json:"hardware_kernels"`
	Ops             []OpReport `json:"ops"`
	NativeAtLevel   int        `json:"native_at_level"`
	FallbackAtLevel int        `json:"fallback_at_level"`
}

func selectOps(list string) ([]funmap.Op, error) {
	if list == "" || list == "all" {
		return funmap.Ops(), nil
	}
	var ops []funmap.Op
	for _, name := range strings.Split(list, ",") {
		op, ok := funmap.ParseOp(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", name)
		}
		if !op.Available() {
			return nil, fmt.Errorf("operator %q is not compiled into this build", name)
		}
		ops = append(ops, op)
	}
	return lo.Uniq(ops), nil
}

func buildReport(level simd.DispatchLevel, ops []funmap.Op) Report {
	tag := simd.TagFor(level)
	r := Report{
		Level:        level.String(),
		WidthBytes:   tag.Width(),
		Register:     tag.Name(),
		Float32Lanes: simd.LanesFor[float32](tag),
		Float64Lanes: simd.LanesFor[float64](tag),
		NoSimdEnv:    simd.NoSimdEnv(),
		ExtendedMath: funmap.HasExtendedMath,

		HardwareKernels: funmap.HardwareKernels(level),
	}
	r.Ops = lo.Map(ops, func(op funmap.Op, _ int) OpReport {
		return OpReport{
			Name:     op.String(),
			Arity:    op.Arity(),
			Extended: op.Extended(),
			Native:   lo.Map(funmap.NativeLevels(op), func(l simd.DispatchLevel, _ int) string { return l.String() }),
		}
	})
	r.NativeAtLevel = lo.CountBy(ops, func(op funmap.Op) bool { return funmap.HasNative(op, level, 64) })
	r.FallbackAtLevel = len(ops) - r.NativeAtLevel
	return r
}

func printTable(r Report) error {
	fmt.Printf("level %s, %s registers (%d bytes), %d float32 / %d float64 lanes\n",
		r.Level, r.Register, r.WidthBytes, r.Float32Lanes, r.Float64Lanes)
	if r.NoSimdEnv {
		fmt.Println("LMAT_NO_SIMD is set")
	}
	if r.HardwareKernels {
		fmt.Println("native kernels use hardware vector instructions")
	}
	fmt.Printf("%d operators native at this level, %d scalar\n\n", r.NativeAtLevel, r.FallbackAtLevel)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OP\tARITY\tNATIVE LEVELS")
	for _, op := range r.Ops {
		native := "-"
		if len(op.Native) > 0 {
			native = strings.Join(op.Native, ",")
		}
		name := op.Name
		if op.Extended {
			name += "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", name, op.Arity, native)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if r.ExtendedMath {
		fmt.Println("\n* extended math set")
	}
	return nil
}

func main() {
	log.SetPrefix("lmatinfo: ")
	log.SetFlags(0)
	flag.Parse()

	level := simd.CurrentLevel()
	if *levelName != "" {
		l, ok := simd.ParseLevel(*levelName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n\n", *levelName)
			flag.Usage()
			os.Exit(1)
		}
		level = l
	}

	ops, err := selectOps(*opList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	r := buildReport(level, ops)
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := printTable(r); err != nil {
		log.Fatal(err)
	}
}
