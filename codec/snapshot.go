package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the algorithm applied to snapshot payloads.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, modest ratio).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD compression (slower, better ratio).
	CompressionZSTD Compression = 2
)

// Snapshot layout:
//
//	[4]byte  magic "FARR"
//	uint8    format version
//	uint8    compression
//	uint8    codec name length, followed by the name bytes
//	uint32   uncompressed payload size (little endian)
//	uint32   stored payload size, 0 when the payload is stored raw
//	payload
//
// The header names the codec so a reader never has to guess how the
// payload was produced.
var snapshotMagic = [4]byte{'F', 'A', 'R', 'R'}

const snapshotVersion = 1

// SnapshotOptions configures snapshot writing.
type SnapshotOptions struct {
	// Codec encodes the container payload. Defaults to Default.
	Codec Codec

	// Compression applied to the encoded payload.
	Compression Compression
}

// DefaultSnapshotOptions are the options Write starts from.
var DefaultSnapshotOptions = SnapshotOptions{
	Codec:       nil,
	Compression: CompressionNone,
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Write encodes v with the configured codec and writes a self-describing
// snapshot frame to w.
func Write(w io.Writer, v any, optFns ...func(o *SnapshotOptions)) error {
	opts := DefaultSnapshotOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	c := opts.Codec
	if c == nil {
		c = Default
	}

	payload, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("snapshot: marshal with codec %s: %w", c.Name(), err)
	}

	stored, storedSize, err := compressPayload(payload, opts.Compression)
	if err != nil {
		return fmt.Errorf("snapshot: compress: %w", err)
	}

	name := c.Name()
	if len(name) > 255 {
		return fmt.Errorf("snapshot: codec name %q too long", name)
	}

	header := make([]byte, 0, 4+3+len(name)+8)
	header = append(header, snapshotMagic[:]...)
	header = append(header, snapshotVersion, byte(opts.Compression), byte(len(name)))
	header = append(header, name...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(payload)))
	header = binary.LittleEndian.AppendUint32(header, storedSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("snapshot: write payload: %w", err)
	}
	return nil
}

// Read decodes a snapshot frame from r into v, selecting the codec named
// in the header.
func Read(r io.Reader, v any) error {
	var fixed [7]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return fmt.Errorf("snapshot: read header: %w", err)
	}
	if [4]byte(fixed[:4]) != snapshotMagic {
		return fmt.Errorf("snapshot: bad magic %q", fixed[:4])
	}
	if fixed[4] != snapshotVersion {
		return fmt.Errorf("snapshot: unsupported version %d", fixed[4])
	}
	compression := Compression(fixed[5])

	name := make([]byte, fixed[6])
	if _, err := io.ReadFull(r, name); err != nil {
		return fmt.Errorf("snapshot: read codec name: %w", err)
	}
	c, ok := ByName(string(name))
	if !ok {
		return fmt.Errorf("snapshot: unknown codec %q", name)
	}

	var sizes [8]byte
	if _, err := io.ReadFull(r, sizes[:]); err != nil {
		return fmt.Errorf("snapshot: read sizes: %w", err)
	}
	uncompressedSize := binary.LittleEndian.Uint32(sizes[0:])
	storedSize := binary.LittleEndian.Uint32(sizes[4:])

	n := storedSize
	if n == 0 {
		n = uncompressedSize
	}
	stored := make([]byte, n)
	if _, err := io.ReadFull(r, stored); err != nil {
		return fmt.Errorf("snapshot: read payload: %w", err)
	}

	payload, err := decompressPayload(stored, storedSize, uncompressedSize, compression)
	if err != nil {
		return fmt.Errorf("snapshot: decompress: %w", err)
	}

	if err := c.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("snapshot: unmarshal with codec %s: %w", c.Name(), err)
	}
	return nil
}

// compressPayload returns the bytes to store and the stored size field.
// A stored size of 0 means the payload is written raw, either because no
// compression was requested or because compression did not help.
func compressPayload(payload []byte, compression Compression) ([]byte, uint32, error) {
	if compression == CompressionNone || len(payload) == 0 {
		return payload, 0, nil
	}

	var compressed []byte
	switch compression {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(payload))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(payload, buf, nil)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 {
			// Incompressible
			return payload, 0, nil
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		compressed = enc.EncodeAll(payload, nil)
	default:
		return nil, 0, fmt.Errorf("unknown compression %d", compression)
	}

	// If compression doesn't help (ratio > 0.9), store raw.
	if float64(len(compressed)) > float64(len(payload))*0.9 {
		return payload, 0, nil
	}
	return compressed, uint32(len(compressed)), nil
}

func decompressPayload(stored []byte, storedSize, uncompressedSize uint32, compression Compression) ([]byte, error) {
	if storedSize == 0 {
		return stored, nil
	}

	result := make([]byte, uncompressedSize)
	switch compression {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(stored, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, fmt.Errorf("decompressed size mismatch: got %d, want %d", n, uncompressedSize)
		}
		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		decoded, err := dec.DecodeAll(stored, result[:0])
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, fmt.Errorf("decompressed size mismatch: got %d, want %d", len(decoded), uncompressedSize)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("unknown compression %d", compression)
	}
}
