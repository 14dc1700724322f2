package cvar

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "name,default,attributes,description\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteCSV_LegacyColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	recs := []Record{
		{Name: "sv_cheats", Default: "0", Attributes: []string{"CHEAT"}, Description: "Allow cheats"},
		{Name: "fov_desired", Default: "90", Description: "Field of view"},
	}
	if err := WriteCSV(&buf, recs); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count: got %d", len(lines))
	}
	// Attributes land in column 2, the default in column 3.
	if lines[1] != "sv_cheats,CHEAT,0,Allow cheats" {
		t.Fatalf("row 1: got %q", lines[1])
	}
	if lines[2] != "fov_desired,,90,Field of view" {
		t.Fatalf("row 2: got %q", lines[2])
	}
}

func TestWriteCSV_QuotesDelimiters(t *testing.T) {
	var buf bytes.Buffer
	recs := []Record{{
		Name:        "say",
		Default:     "",
		Attributes:  []string{"A", "B"},
		Description: `prints "text", verbatim`,
	}}
	if err := WriteCSV(&buf, recs); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "name,default,attributes,description\n" +
		`say,"A,B",,"prints ""text"", verbatim"` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteCSV_PropagatesWriteError(t *testing.T) {
	boom := errors.New("sink gone")
	err := WriteCSV(failWriter{err: boom}, []Record{{Name: "a"}})
	if !errors.Is(err, boom) {
		t.Fatalf("err: got %v want %v", err, boom)
	}
}
