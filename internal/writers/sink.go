package writers

import (
	"io"
	"os"
)

// OpenSink resolves the CSV destination. An empty path means the provided
// stdout writer; otherwise the file is created (truncating any previous dump).
// The returned close func is a no-op for stdout.
func OpenSink(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}
