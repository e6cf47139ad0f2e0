package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shpandrak/shpanzip/zip"
)

// linesProducer reads a file line by line.
type linesProducer struct {
	filePath              string
	file                  *os.File
	scanner               *bufio.Scanner
	fileMissingHenceEmpty bool
}

// Lines creates a lazy producer of the lines of a file, without their line endings.
// The file is opened by Open, a missing file produces nothing.
func Lines(filePath string) zip.Producer[[]byte] {
	return &linesProducer{filePath: filePath}
}

// Open opens the file for reading and initializes the scanner.
func (fp *linesProducer) Open(_ context.Context) error {
	file, err := os.Open(fp.filePath)
	if err != nil {

		// If no file, that's fine, it means the producer is empty
		if errors.Is(err, os.ErrNotExist) {
			fp.fileMissingHenceEmpty = true
			return nil
		}
		return fmt.Errorf("failed to open lines file %s: %w", fp.filePath, err)
	}

	fp.file = file
	fp.scanner = bufio.NewScanner(file)
	return nil
}

// Close closes the file and releases any resources.
func (fp *linesProducer) Close() {
	if fp.file != nil {
		err := fp.file.Close()
		if err != nil {
			slog.Warn(fmt.Sprintf("error closing lines file %s: %v", fp.filePath, err))
		}
		fp.file = nil
		fp.scanner = nil
	}
}

// Emit reads the next line from the file.
func (fp *linesProducer) Emit(ctx context.Context) ([]byte, error) {
	if fp.scanner == nil {
		// If we're empty, just return EOF to mark that nothing is here
		if fp.fileMissingHenceEmpty {
			return nil, io.EOF
		}

		// Otherwise, Emit is called before Open, or after Close
		return nil, os.ErrClosed
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if fp.scanner.Scan() {
		// Scanner reuses its buffer between calls
		return bytes.Clone(fp.scanner.Bytes()), nil
	}
	if err := fp.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (fp *linesProducer) SizeHint() zip.SizeHint {
	if fp.fileMissingHenceEmpty {
		return zip.Exact(0)
	}
	return zip.UnknownSize()
}
