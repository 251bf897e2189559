package cellset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression algorithm of the binary codec.
type Compression uint8

const (
	// CompressionNone stores the serialized set uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio, good for
	// cold data).
	CompressionZSTD Compression = 2
)

// Binary layout: [magic 4][version 1][compression 1][UncompressedSize
// uint32][CompressedSize uint32][Data...]. CompressedSize == 0 marks an
// uncompressed payload.
const (
	codecMagic   = "HGCS"
	codecVersion = 1

	headerSize      = 6
	blockHeaderSize = 8
)

var (
	// ErrCodecHeader is returned by Unmarshal for data that does not start
	// with a valid codec header.
	ErrCodecHeader = errors.New("cellset: invalid codec header")

	// ErrCodecVersion is returned by Unmarshal for an unsupported codec
	// version.
	ErrCodecVersion = errors.New("cellset: unsupported codec version")
)

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

// Marshal serializes the set with the given compression.
func Marshal(s *Set, compression Compression) ([]byte, error) {
	payload, err := s.rb.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("cellset: serialize bitmap: %w", err)
	}

	var compressed []byte
	switch compression {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressLZ4(payload)
		if err != nil {
			return nil, fmt.Errorf("cellset: lz4 compress: %w", err)
		}
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(payload, nil)
		putZstdEncoder(enc)
	default:
		return nil, fmt.Errorf("cellset: unknown compression %d", compression)
	}

	// store uncompressed when compression doesn't help (ratio > 0.9)
	if compressed == nil || float64(len(compressed)) > float64(len(payload))*0.9 {
		compressed = nil
	}

	body := payload
	if compressed != nil {
		body = compressed
	}

	out := make([]byte, headerSize+blockHeaderSize+len(body))
	copy(out, codecMagic)
	out[4] = codecVersion
	out[5] = byte(compression)
	binary.LittleEndian.PutUint32(out[headerSize:], uint32(len(payload)))
	if compressed != nil {
		binary.LittleEndian.PutUint32(out[headerSize+4:], uint32(len(compressed)))
	}
	copy(out[headerSize+blockHeaderSize:], body)

	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

// Unmarshal deserializes a set produced by Marshal. The compression is read
// from the header.
func Unmarshal(data []byte) (*Set, error) {
	if len(data) < headerSize+blockHeaderSize || string(data[:4]) != codecMagic {
		return nil, ErrCodecHeader
	}
	if data[4] != codecVersion {
		return nil, fmt.Errorf("%w: %d", ErrCodecVersion, data[4])
	}
	compression := Compression(data[5])

	uncompressedSize := binary.LittleEndian.Uint32(data[headerSize:])
	compressedSize := binary.LittleEndian.Uint32(data[headerSize+4:])
	body := data[headerSize+blockHeaderSize:]

	var payload []byte
	switch {
	case compressedSize == 0:
		if uint32(len(body)) < uncompressedSize {
			return nil, errors.New("cellset: block data too small")
		}
		payload = body[:uncompressedSize]

	case compression == CompressionLZ4:
		if uint32(len(body)) < compressedSize {
			return nil, errors.New("cellset: compressed block data too small")
		}
		payload = make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(body[:compressedSize], payload)
		if err != nil {
			return nil, fmt.Errorf("cellset: lz4 decompress: %w", err)
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("cellset: decompressed size mismatch")
		}

	case compression == CompressionZSTD:
		if uint32(len(body)) < compressedSize {
			return nil, errors.New("cellset: compressed block data too small")
		}
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(body[:compressedSize], make([]byte, 0, uncompressedSize))
		putZstdDecoder(dec)
		if err != nil {
			return nil, fmt.Errorf("cellset: zstd decompress: %w", err)
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("cellset: decompressed size mismatch")
		}
		payload = decoded

	default:
		return nil, fmt.Errorf("cellset: unknown compression %d", compression)
	}

	s := New()
	if err := s.rb.UnmarshalBinary(payload); err != nil {
		return nil, fmt.Errorf("cellset: deserialize bitmap: %w", err)
	}
	return s, nil
}
