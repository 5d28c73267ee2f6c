package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Reader streams the uniform records of a bundle back in frame order.
type Reader struct {
	dir      string
	manifest Manifest
	file     *os.File
	dec      *zstd.Decoder
	buf      []byte
}

// Open reads the manifest in dir and opens the uniforms stream.
func Open(dir string) (*Reader, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("replay: parse manifest: %w", err)
	}
	if m.Version != formatVersion {
		return nil, fmt.Errorf("replay: unsupported version %d", m.Version)
	}
	if m.RecordSize != RecordSize {
		return nil, fmt.Errorf("replay: record size %d, want %d", m.RecordSize, RecordSize)
	}
	if m.UniformsPath == "" {
		m.UniformsPath = UniformsFile
	}
	if m.EventsPath == "" {
		m.EventsPath = EventsFile
	}

	f, err := os.Open(filepath.Join(dir, m.UniformsPath))
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Reader{
		dir:      dir,
		manifest: m,
		file:     f,
		dec:      dec,
		buf:      make([]byte, RecordSize),
	}, nil
}

func (r *Reader) Manifest() Manifest { return r.manifest }

// Next returns the next record, or io.EOF after the last one. A truncated
// trailing record is reported as io.ErrUnexpectedEOF.
func (r *Reader) Next() (Record, error) {
	if _, err := io.ReadFull(r.dec, r.buf); err != nil {
		return Record{}, err
	}
	return decodeRecord(r.buf), nil
}

// All reads every remaining record.
func (r *Reader) All() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// Events decodes the whole pointer event log.
func (r *Reader) Events() ([]Event, error) {
	f, err := os.Open(filepath.Join(r.dir, r.manifest.EventsPath))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Event
	sc := bufio.NewScanner(snappy.NewReader(f))
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			return out, fmt.Errorf("replay: event %d: %w", len(out), err)
		}
		out = append(out, ev)
	}
	return out, sc.Err()
}

func (r *Reader) Close() error {
	r.dec.Close()
	return r.file.Close()
}
