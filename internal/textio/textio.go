package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single input line. Alignment inputs are line
// oriented; a line this long almost certainly means the wrong file.
const maxLineSize = 1 << 20

// ReadLines reads a whole document as a line slice, without trailing
// newlines. A non-empty encoding name selects the source encoding by its
// IANA label (as understood by the WHATWG encoding index); the empty name
// reads bytes as UTF-8.
func ReadLines(path, encodingName string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	lines, err := readLines(f, encodingName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func readLines(r io.Reader, encodingName string) ([]string, error) {
	decoded, err := decodingReader(r, encodingName)
	if err != nil {
		return nil, err
	}
	var lines []string
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func decodingReader(r io.Reader, encodingName string) (io.Reader, error) {
	name := strings.TrimSpace(encodingName)
	if name == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// ValidateEncoding reports whether the encoding index knows the name. The
// empty name is valid and means UTF-8.
func ValidateEncoding(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if _, err := htmlindex.Get(name); err != nil {
		return fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return nil
}
