// core/cvar/csv.go
package cvar

import (
	"encoding/csv"
	"io"
	"strings"
)

// Header is the fixed CSV header row. The labels are part of the external
// contract; keep this as the single source of truth for all writers.
var Header = []string{"name", "default", "attributes", "description"}

// WriteCSV emits the header followed by one row per record, in order. It never
// closes w; write errors abort the remaining rows and are returned as-is.
//
// Row order is name, attributes, default, description — columns 2-3 are
// swapped relative to the header labels. The original tool shipped that way
// and spreadsheets built on it learned the real order, so it stays until a
// deliberate format bump.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Name, strings.Join(r.Attributes, ","), r.Default, r.Description}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
