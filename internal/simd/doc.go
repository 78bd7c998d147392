// Package simd provides data-parallel elementwise kernels for fastarr
// containers.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON
//
// Runtime CPU feature detection selects the vector width; the kernel bodies
// are portable Go written so the compiler can vectorize the fixed-width
// chunk loops. Set FASTARR_SIMD to force a specific level (generic, neon,
// avx2, avx512).
//
// # Kernel shape
//
// Every kernel runs in three phases: a scalar prologue that walks forward
// until the working address sits on the vector-width boundary, a full-width
// chunk body, and a scalar tail for the remainder below one width.
package simd
