// core/cvar/cvar.go
package cvar

// Record is one cvar table row after extraction. Name is never empty; every
// other field may be. Attributes keeps source order and duplicates.
type Record struct {
	Name        string
	Default     string
	Attributes  []string
	Description string
}

// ExtractionResult is the output of a single Extract call. ExpectedCount is
// only meaningful when HasCount is true; it is the total the server printed on
// its summary line, used by callers for an advisory cross-check.
type ExtractionResult struct {
	Records       []Record
	ExpectedCount int
	HasCount      bool
}
