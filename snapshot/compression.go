package snapshot

import (
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm used for the snapshot
// payload.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast, lighter ratio).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD compression (better ratio).
	CompressionZSTD CompressionType = 2
)

// String returns the stable name of the compression type.
func (ct CompressionType) String() string {
	switch ct {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
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

// compress returns the payload bytes to store and whether they are stored
// uncompressed. Incompressible payloads fall back to raw storage.
func compress(ct CompressionType, payload []byte) (data []byte, stored bool) {
	switch ct {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(payload))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(payload, buf, nil)
		if err != nil || n == 0 || n >= len(payload) {
			return payload, true
		}
		return buf[:n], false
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		buf := enc.EncodeAll(payload, nil)
		if len(buf) >= len(payload) {
			return payload, true
		}
		return buf, false
	default:
		return payload, true
	}
}

func decompress(ct CompressionType, data []byte, uncompressedSize int, stored bool) ([]byte, error) {
	if stored {
		return data, nil
	}

	switch ct {
	case CompressionLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, &CorruptPayloadError{Compression: ct, cause: err}
		}
		return out[:n], nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		out, err := dec.DecodeAll(data, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, &CorruptPayloadError{Compression: ct, cause: err}
		}
		return out, nil
	default:
		return nil, &UnknownCompressionError{Compression: ct}
	}
}
