// Package mem provides the owning, aligned buffer primitive shared by all
// fastarr containers.
//
// # Aligned Allocation
//
// Blocks are aligned to a 32-byte boundary (AVX2 register / half cache line)
// whenever the element size can reach the boundary by whole-element offsets.
// Alignment is achieved by over-allocating and offsetting into the backing
// array, so the backing stays a real typed slice and the garbage collector
// keeps scanning pointerful element types correctly.
//
// # Ownership
//
// Exactly one container holds a Block at a time. Transferring ownership means
// handing over the *Block and nilling the source's reference. Release zeroes
// the live slots (severing element references for the collector) and drops
// the backing; a released or transferred Block must not be touched again.
package mem
