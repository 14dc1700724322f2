package input

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestReadAll_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	if err := os.WriteFile(path, []byte("sv_lan : 1 : sv :\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadAll(path)
	if err != nil || got != "sv_lan : 1 : sv :\n" {
		t.Fatalf("got %q err=%v", got, err)
	}
}

func TestReadAll_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt.gz")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("sv_lan : 1 : sv :\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadAll(path)
	if err != nil || got != "sv_lan : 1 : sv :\n" {
		t.Fatalf("got %q err=%v", got, err)
	}
}

func TestReadAll_Missing(t *testing.T) {
	if _, err := ReadAll(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error")
	}
}
