package snapshot

import (
	"errors"
	"fmt"
)

// ErrBadMagic is returned when the stream does not start with the snapshot
// magic bytes.
var ErrBadMagic = errors.New("snapshot: bad magic")

// ErrPayloadTooLarge is returned by Save when the encoded payload exceeds
// the 4 GiB limit of the header's uint32 size fields.
var ErrPayloadTooLarge = errors.New("snapshot: payload exceeds 4 GiB limit")

// VersionError indicates a snapshot written by an unsupported format
// version.
type VersionError struct {
	Version uint8
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("snapshot: unsupported format version %d", e.Version)
}

// UnknownCodecError indicates a snapshot whose header names a codec this
// build does not know.
type UnknownCodecError struct {
	Name string
}

func (e *UnknownCodecError) Error() string {
	return fmt.Sprintf("snapshot: unknown codec %q", e.Name)
}

// UnknownCompressionError indicates a compression type this build does not
// know.
type UnknownCompressionError struct {
	Compression CompressionType
}

func (e *UnknownCompressionError) Error() string {
	return fmt.Sprintf("snapshot: unknown compression type %d", e.Compression)
}

// CorruptPayloadError indicates a payload that failed to decompress.
//
// The original underlying error can be accessed via errors.Unwrap.
type CorruptPayloadError struct {
	Compression CompressionType
	cause       error
}

func (e *CorruptPayloadError) Error() string {
	return fmt.Sprintf("snapshot: corrupt %s payload: %v", e.Compression, e.cause)
}

func (e *CorruptPayloadError) Unwrap() error { return e.cause }
