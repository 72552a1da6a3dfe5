package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/treelog/treelog/core"
)

// Encoding selects the on-disk character encoding of a file sink.
type Encoding int

const (
	// UTF8 writes plain UTF-8 with no byte-order mark (default).
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

// bom returns the byte-order mark written when a file starts out empty.
// Single-byte output carries no BOM.
func (e Encoding) bom() []byte {
	switch e {
	case UTF16LE:
		return []byte{0xFF, 0xFE}
	case UTF16BE:
		return []byte{0xFE, 0xFF}
	case UTF32LE:
		return []byte{0xFF, 0xFE, 0x00, 0x00}
	case UTF32BE:
		return []byte{0x00, 0x00, 0xFE, 0xFF}
	}
	return nil
}

// encoder returns the x/text encoder transforming UTF-8 output into the
// target encoding, or nil for UTF-8 itself.
func (e Encoding) encoder() *encoding.Encoder {
	switch e {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewEncoder()
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewEncoder()
	}
	return nil
}

// FileOptions extends Options with the on-disk encoding.
type FileOptions struct {
	Options
	Encoding Encoding
}

// File appends formatted records to a file. The file is opened in append
// mode with shared read permission; when it starts out empty and the
// encoding is multi-byte, a byte-order mark is written first. Every record,
// including its line terminator, is transcoded to the configured encoding.
type File struct {
	base
	path string
	file *os.File
	enc  *encoding.Encoder
}

// NewFile creates a file sink at path, creating parent directories as
// needed.
func NewFile(path string, opts FileOptions) (*File, error) {
	pat, err := compilePattern(opts.Options)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("sink: create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("sink: stat %s: %w", path, err)
	}

	f := &File{base: base{pat: pat}, path: path, file: file, enc: opts.Encoding.encoder()}

	if info.Size() == 0 {
		if bom := opts.Encoding.bom(); bom != nil {
			if _, err := file.Write(bom); err != nil {
				file.Close()
				return nil, fmt.Errorf("sink: write BOM to %s: %w", path, err)
			}
		}
	}
	return f, nil
}

// Message renders rec and appends it to the file
func (f *File) Message(rec *core.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	line := f.render(rec)
	if f.enc != nil {
		encoded, err := f.enc.Bytes(line)
		if err != nil {
			return fmt.Errorf("sink: encode for %s: %w", f.path, err)
		}
		line = encoded
	}
	if _, err := f.file.Write(line); err != nil {
		return fmt.Errorf("sink: write %s: %w", f.path, err)
	}
	return nil
}

// Flush syncs the file to disk
func (f *File) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.file.Sync(); err != nil {
		return fmt.Errorf("sink: sync %s: %w", f.path, err)
	}
	return nil
}

// Close flushes and closes the underlying file
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("sink: close %s: %w", f.path, err)
	}
	return nil
}
