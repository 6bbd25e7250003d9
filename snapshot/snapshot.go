// Package snapshot persists a materialized track table to a stream.
//
// The format is self-describing: a fixed header records the codec name and
// the compression algorithm, so a snapshot written with any supported
// combination can be opened without out-of-band configuration. The payload
// is a canonical rendering of the table (records in ascending track-id
// order, observations in ascending view order), so writing the same table
// with the same options yields identical bytes under every codec.
//
// Layout:
//
//	[4]byte  magic "TGSN"
//	uint8    format version
//	uint8    compression type
//	uint8    codec name length, followed by the name bytes
//	uint32   uncompressed payload size
//	uint32   compressed payload size (0 = payload stored uncompressed)
//	[]byte   payload
//
// Integers are little-endian.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/sfmkit/trackgo/codec"
	"github.com/sfmkit/trackgo/model"
)

var magic = [4]byte{'T', 'G', 'S', 'N'}

// FormatVersion is the current snapshot format version.
const FormatVersion = 1

type options struct {
	codec       codec.Codec
	compression CompressionType
}

// Option configures Save behavior.
type Option func(*options)

// WithCodec sets the payload codec. If nil is passed, codec.Default is
// used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression sets the payload compression algorithm.
func WithCompression(ct CompressionType) Option {
	return func(o *options) {
		o.compression = ct
	}
}

// Save writes a snapshot of the track table to w.
func Save(w io.Writer, tracks model.TracksMap, opts ...Option) error {
	o := options{
		codec:       codec.Default,
		compression: CompressionZSTD,
	}
	for _, opt := range opts {
		opt(&o)
	}

	payload, err := o.codec.Marshal(toRecords(tracks))
	if err != nil {
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}
	if err := checkPayloadSize(uint64(len(payload))); err != nil {
		return err
	}

	compressed, stored := compress(o.compression, payload)
	if err := checkPayloadSize(uint64(len(compressed))); err != nil {
		return err
	}

	name := o.codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("snapshot: codec name too long: %q", name)
	}

	header := make([]byte, 0, 7+len(name)+8)
	header = append(header, magic[:]...)
	header = append(header, FormatVersion, byte(o.compression), byte(len(name)))
	header = append(header, name...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(payload)))
	if stored {
		header = binary.LittleEndian.AppendUint32(header, 0)
	} else {
		header = binary.LittleEndian.AppendUint32(header, uint32(len(compressed)))
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("snapshot: write payload: %w", err)
	}
	return nil
}

// Load reads a snapshot from r and returns the track table it holds.
func Load(r io.Reader) (model.TracksMap, error) {
	var head [7]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if [4]byte(head[:4]) != magic {
		return nil, ErrBadMagic
	}
	if head[4] != FormatVersion {
		return nil, &VersionError{Version: head[4]}
	}

	compression := CompressionType(head[5])
	nameBuf := make([]byte, head[6])
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("snapshot: read codec name: %w", err)
	}

	c, ok := codec.ByName(string(nameBuf))
	if !ok {
		return nil, &UnknownCodecError{Name: string(nameBuf)}
	}

	var sizes [8]byte
	if _, err := io.ReadFull(r, sizes[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read sizes: %w", err)
	}
	uncompressedSize := binary.LittleEndian.Uint32(sizes[:4])
	compressedSize := binary.LittleEndian.Uint32(sizes[4:])

	stored := compressedSize == 0
	readSize := compressedSize
	if stored {
		readSize = uncompressedSize
	}

	data := make([]byte, readSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("snapshot: read payload: %w", err)
	}

	payload, err := decompress(compression, data, int(uncompressedSize), stored)
	if err != nil {
		return nil, err
	}

	var recs []record
	if err := c.Unmarshal(payload, &recs); err != nil {
		return nil, fmt.Errorf("snapshot: decode payload: %w", err)
	}
	return fromRecords(recs), nil
}

// record is the canonical on-wire form of one track. Map-backed tables
// encode in an unspecified order, so Save flattens them into sorted
// records to keep the payload byte-stable.
type record struct {
	ID   model.TrackID
	Desc model.DescriberType
	Obs  []observation
}

type observation struct {
	View model.ViewID
	Feat model.FeatureIndex
}

func toRecords(tracks model.TracksMap) []record {
	recs := make([]record, 0, len(tracks))
	for _, id := range tracks.TrackIDs() {
		track := tracks[id]
		obs := make([]observation, 0, track.Len())
		for _, view := range track.Views() {
			obs = append(obs, observation{View: view, Feat: track.FeatPerView[view]})
		}
		recs = append(recs, record{ID: id, Desc: track.DescType, Obs: obs})
	}
	return recs
}

func fromRecords(recs []record) model.TracksMap {
	tracks := make(model.TracksMap, len(recs))
	for _, rec := range recs {
		feats := make(map[model.ViewID]model.FeatureIndex, len(rec.Obs))
		for _, o := range rec.Obs {
			feats[o.View] = o.Feat
		}
		tracks[rec.ID] = model.Track{DescType: rec.Desc, FeatPerView: feats}
	}
	return tracks
}

// checkPayloadSize rejects payloads whose length does not fit the uint32
// size fields of the header.
func checkPayloadSize(n uint64) error {
	if n > math.MaxUint32 {
		return ErrPayloadTooLarge
	}
	return nil
}
