package simd

import "unsafe"

// Number constrains element types the arithmetic kernels accept. It is the
// capability gate the public containers re-export: any type outside it
// simply cannot reach a kernel.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// lanesFor picks the chunk width in elements for the active ISA. Only the
// widths with dedicated chunk bodies are returned.
func lanesFor(elemSize int) int {
	l := activeISA.Width() / elemSize
	switch {
	case l >= 16:
		return 16
	case l >= 8:
		return 8
	default:
		return 4
	}
}

// AddScalar adds k to every element of data in three phases: a scalar
// prologue up to the vector-width boundary, full-width chunks, and a scalar
// tail.
func AddScalar[T Number](data []T, k T) {
	n := len(data)
	if n == 0 {
		return
	}

	es := int(unsafe.Sizeof(data[0]))
	lanes := lanesFor(es)
	vw := uintptr(lanes * es)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(data)))

	i := 0
	for i < n && (base+uintptr(i*es))%vw != 0 {
		data[i] += k
		i++
	}

	switch lanes {
	case 16:
		for ; i+16 <= n; i += 16 {
			c := (*[16]T)(data[i:])
			for j := range c {
				c[j] += k
			}
		}
	case 8:
		for ; i+8 <= n; i += 8 {
			c := (*[8]T)(data[i:])
			for j := range c {
				c[j] += k
			}
		}
	default:
		for ; i+4 <= n; i += 4 {
			c := (*[4]T)(data[i:])
			for j := range c {
				c[j] += k
			}
		}
	}

	for ; i < n; i++ {
		data[i] += k
	}
}

// AddSlices adds src into dst elementwise.
//
// SAFETY: assumes len(src) >= len(dst); the caller establishes matching
// lengths (the public entry point panics on mismatch).
func AddSlices[T Number](dst, src []T) {
	n := len(dst)
	if n == 0 {
		return
	}

	es := int(unsafe.Sizeof(dst[0]))
	lanes := lanesFor(es)
	vw := uintptr(lanes * es)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(dst)))

	// Alignment follows the destination; the source side stays unaligned
	// loads, which every target ISA handles.
	i := 0
	for i < n && (base+uintptr(i*es))%vw != 0 {
		dst[i] += src[i]
		i++
	}

	switch lanes {
	case 16:
		for ; i+16 <= n; i += 16 {
			d := (*[16]T)(dst[i:])
			s := (*[16]T)(src[i:])
			for j := range d {
				d[j] += s[j]
			}
		}
	case 8:
		for ; i+8 <= n; i += 8 {
			d := (*[8]T)(dst[i:])
			s := (*[8]T)(src[i:])
			for j := range d {
				d[j] += s[j]
			}
		}
	default:
		for ; i+4 <= n; i += 4 {
			d := (*[4]T)(dst[i:])
			s := (*[4]T)(src[i:])
			for j := range d {
				d[j] += s[j]
			}
		}
	}

	for ; i < n; i++ {
		dst[i] += src[i]
	}
}
