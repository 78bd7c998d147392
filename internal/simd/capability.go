package simd

import (
	"os"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go with no detected SIMD width.
	Generic ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD).
	NEON
	// AVX2 represents x86-64 AVX2 (256-bit SIMD).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Width returns the ISA's register width in bytes.
func (i ISA) Width() int {
	switch i {
	case NEON:
		return 16
	case AVX2:
		return 32
	case AVX512:
		return 64
	default:
		return 16
	}
}

// Package-level state, initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	activeISA ISA

	// CPU feature flags, set by platform-specific init.
	hasASIMD   bool // ARM64 NEON
	hasAVX2    bool // x86-64 AVX2 + FMA
	hasAVX512F bool // x86-64 AVX-512 Foundation
)

// initCapabilities is called from platform-specific init functions after CPU
// features are detected.
func initCapabilities() {
	if override := os.Getenv("FASTARR_SIMD"); override != "" {
		if isa, ok := ParseISA(override); ok && isAvailable(isa) {
			activeISA = isa
			return
		}
		// Invalid or unavailable override falls through to detection.
	}
	activeISA = selectBest()
}

func isAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F
	default:
		return false
	}
}

func selectBest() ISA {
	switch {
	case hasAVX512F:
		return AVX512
	case hasAVX2:
		return AVX2
	case hasASIMD:
		return NEON
	default:
		return Generic
	}
}

// Active returns the selected ISA.
func Active() ISA {
	return activeISA
}
