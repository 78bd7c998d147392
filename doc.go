// Package fastarr provides fixed-length, non-resizable containers with
// predictable memory layout: a flat array, a consuming double-ended
// iterator, and a row-major matrix.
//
// All three containers own a single 32-byte-aligned buffer and trade dynamic
// resizing for lower overhead and vectorizable hot loops. Conversions
// between them transfer buffer ownership instead of copying; a container
// whose buffer has been moved out is invalid and panics on use.
//
// # Checked and unchecked entry points
//
// Every operation with a precondition comes in two flavors. The default
// entry point panics on violation (zero length, out-of-bounds index,
// mismatched lengths, non-square matrix): these are programmer errors, not
// environmental failures, so they are fatal rather than returned. The
// *Unchecked twin skips the guard; violating its contract is undefined
// behavior and the caller's responsibility. File reading is the one surface
// that returns recoverable errors.
//
// # Concurrency
//
// Containers are safely transferable to another goroutine but carry no
// internal synchronization; a single logical owner must drive each
// instance. Iterator.SplitAt partitions a buffer into disjoint halves for
// parallel consumption.
package fastarr
