// Copyright 2026 go-fpbit Authors
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

// Package main provides a diagnostic tool to verify the compiled-in
// sign-bit implementation against the canonical probe inputs.
package main

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-fpbit/fpbit"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("fpbit implementation: %s\n", fpbit.Impl())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	probes := []struct {
		name string
		x    float64
	}{
		{"3.14", 3.14},
		{"-3.14", -3.14},
		{"+0.0", 0},
		{"-0.0", math.Float64frombits(1 << 63)},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"NaN (sign clear)", math.Float64frombits(0x7FF8000000000001)},
		{"NaN (sign set)", math.Float64frombits(0xFFF8000000000001)},
	}
	fmt.Println("=== Signbit probes ===")
	for _, p := range probes {
		fmt.Printf("  Signbit(%-16s) = %v\n", p.name, fpbit.Signbit(p.x))
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 (floating point) ===")
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasJSCVT:    %v (JS conversion)\n", cpu.ARM64.HasJSCVT)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 (floating point) ===")
	fmt.Printf("  HasSSE2:    %v (amd64 baseline)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasF16C:    %v\n", cpu.X86.HasF16C)
}
