package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Writer streams a session to a bundle directory. It is safe for
// concurrent use.
type Writer struct {
	mu          sync.Mutex
	dir         string
	eventFile   *os.File
	eventStream *snappy.Writer
	uniFile     *os.File
	uniStream   *zstd.Encoder
	buf         [RecordSize]byte
	records     uint64
	closed      bool
}

// NewWriter creates <root>/<name>-<UTC stamp>/ and opens its streams.
// clock may be nil.
func NewWriter(root, name, build string, clock func() time.Time) (*Writer, Manifest, error) {
	if root == "" {
		return nil, Manifest{}, fmt.Errorf("replay root must be provided")
	}
	if clock == nil {
		clock = time.Now
	}

	cleaned := nameCleaner.ReplaceAllString(name, "")
	if cleaned == "" {
		cleaned = "session"
	}
	created := clock().UTC()
	dir := filepath.Join(root, fmt.Sprintf("%s-%s", cleaned, created.Format("20060102T150405Z")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, Manifest{}, err
	}

	manifest := Manifest{
		Version:      formatVersion,
		CreatedAt:    created.Format(time.RFC3339Nano),
		Build:        build,
		EventsPath:   EventsFile,
		UniformsPath: UniformsFile,
		RecordSize:   RecordSize,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, Manifest{}, err
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return nil, Manifest{}, err
	}

	eventFile, err := os.Create(filepath.Join(dir, EventsFile))
	if err != nil {
		return nil, Manifest{}, err
	}
	uniFile, err := os.Create(filepath.Join(dir, UniformsFile))
	if err != nil {
		eventFile.Close()
		return nil, Manifest{}, err
	}
	uniStream, err := zstd.NewWriter(uniFile)
	if err != nil {
		eventFile.Close()
		uniFile.Close()
		return nil, Manifest{}, err
	}

	return &Writer{
		dir:         dir,
		eventFile:   eventFile,
		eventStream: snappy.NewBufferedWriter(eventFile),
		uniFile:     uniFile,
		uniStream:   uniStream,
	}, manifest, nil
}

// Dir returns the bundle directory.
func (w *Writer) Dir() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// AppendEvent writes one JSON line to the event log.
func (w *Writer) AppendEvent(ev Event) error {
	line, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if _, err := w.eventStream.Write(line); err != nil {
		return fmt.Errorf("replay: write event: %w", err)
	}
	return nil
}

// AppendRecord writes the uniforms of one frame.
func (w *Writer) AppendRecord(r Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	encodeRecord(w.buf[:], r)
	if _, err := w.uniStream.Write(w.buf[:]); err != nil {
		return fmt.Errorf("replay: write record: %w", err)
	}
	w.records++
	return nil
}

// Records reports how many uniform records were written.
func (w *Writer) Records() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.records
}

// Close flushes both streams and closes the files. Later calls return ErrClosed.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	keep(w.eventStream.Close())
	keep(w.eventFile.Close())
	keep(w.uniStream.Close())
	keep(w.uniFile.Close())
	return first
}
