package input

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// ReadAll materializes the whole cvarlist dump as one string, which is what
// the extractor wants. "-" reads stdin; gzipped dumps are transparently
// decompressed (detected by magic number or .gz suffix).
func ReadAll(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}

	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = fh.Close() }()

	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	var r io.Reader = fh
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			return "", err
		}
		defer func() { _ = gr.Close() }()
		r = gr
	}
	b, err := io.ReadAll(r)
	return string(b), err
}
