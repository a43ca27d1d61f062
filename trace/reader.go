package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// DefaultPageShift is the number of page-offset bits removed from an address
// to get its page-frame number (4 KiB pages).
const DefaultPageShift = 12

// ErrMalformedEntry is wrapped by every error caused by a bad trace line.
var ErrMalformedEntry = errors.New("malformed trace entry")

// A ParseError reports the line that could not be decoded.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// A Reader decodes trace files. Each line holds a hexadecimal address and an
// access tag, separated by white space, e.g. "0x7ffd1a2b W".
type Reader struct {
	PageShift uint
}

// NewReader creates a reader that uses the default page size.
func NewReader() *Reader {
	return &Reader{PageShift: DefaultPageShift}
}

// Open reads a whole trace file. Files ending in .lz4 or .sz/.snappy are
// decompressed while reading.
func (r *Reader) Open(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	t, err := r.Read(decompressor(path, f))
	if err != nil {
		return nil, fmt.Errorf("read trace %s: %w", path, err)
	}

	return t, nil
}

func decompressor(path string, f io.Reader) io.Reader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lz4":
		return lz4.NewReader(f)
	case ".sz", ".snappy":
		return snappy.NewReader(f)
	default:
		return f
	}
}

// Read decodes all the lines provided by src.
func (r *Reader) Read(src io.Reader) (*Trace, error) {
	var entries []Entry

	scanner := bufio.NewScanner(src)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry, err := r.ParseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Trace{entries: entries}, nil
}

// ParseLine decodes a single trace line.
func (r *Reader) ParseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, fmt.Errorf("%w: missing access tag", ErrMalformedEntry)
	}

	addrStr := strings.TrimPrefix(strings.ToLower(fields[0]), "0x")

	addr, err := strconv.ParseUint(addrStr, 16, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad address: %v", ErrMalformedEntry, err)
	}

	kind := Read
	if fields[1][0] == 'W' || fields[1][0] == 'w' {
		kind = Write
	}

	return Entry{PFN: addr >> r.PageShift, Kind: kind}, nil
}
