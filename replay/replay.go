// Package replay records and reads back renderer sessions.
//
// A bundle is a directory holding manifest.json, a snappy-framed JSON Lines
// log of pointer events and a zstd stream of fixed-size uniform records, one
// per rendered frame.
package replay

import (
	"encoding/binary"
	"errors"
	"math"
	"regexp"

	"marcher/scene"
)

const (
	ManifestFile = "manifest.json"
	EventsFile   = "events.jsonl.sz"
	UniformsFile = "uniforms.bin.zst"

	// RecordSize is the encoded size of one uniforms record.
	RecordSize = 28

	formatVersion = 1
)

var ErrClosed = errors.New("replay: writer closed")

var nameCleaner = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Manifest describes a bundle so tools can locate its parts.
type Manifest struct {
	Version      int    `json:"version"`
	CreatedAt    string `json:"created_at"`
	Build        string `json:"build,omitempty"`
	EventsPath   string `json:"events_path"`
	UniformsPath string `json:"uniforms_path"`
	RecordSize   int    `json:"record_size"`
}

// Event is one pointer event as seen by the loop.
type Event struct {
	Frame uint32  `json:"frame"`
	ID    int     `json:"id"`
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Record is the uniforms used for one frame.
type Record struct {
	Frame    uint32
	Uniforms scene.Uniforms
}

func encodeRecord(dst []byte, r Record) {
	le := binary.LittleEndian
	u := r.Uniforms
	le.PutUint32(dst[0:], r.Frame)
	le.PutUint32(dst[4:], math.Float32bits(u.Time))
	le.PutUint32(dst[8:], math.Float32bits(u.Touch.X))
	le.PutUint32(dst[12:], math.Float32bits(u.Touch.Y))
	le.PutUint32(dst[16:], uint32(int32(u.PointerCount)))
	le.PutUint32(dst[20:], math.Float32bits(u.Resolution.X))
	le.PutUint32(dst[24:], math.Float32bits(u.Resolution.Y))
}

func decodeRecord(src []byte) Record {
	le := binary.LittleEndian
	f := func(off int) float32 { return math.Float32frombits(le.Uint32(src[off:])) }
	return Record{
		Frame: le.Uint32(src[0:]),
		Uniforms: scene.Uniforms{
			Time:         f(4),
			Touch:        scene.V2(f(8), f(12)),
			PointerCount: int(int32(le.Uint32(src[16:]))),
			Resolution:   scene.V2(f(20), f(24)),
		},
	}
}
