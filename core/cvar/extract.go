// core/cvar/extract.go
package cvar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Delimiters of the cvarlist table format. Fixed for this format version; a
// future variant should only need to touch these.
const (
	// columnDelim separates name/default and default/attributes. The trailing
	// space matters: cvar descriptions routinely contain bare colons.
	columnDelim = ": "
	// descDelim sits before the optional description and has no trailing
	// space requirement (the engine omits the space when there is no text).
	descDelim = ":"
	// summarySuffix follows the count on the trailer line.
	summarySuffix = " total convars/concommands"
)

// ErrDuplicateCount is returned when the input contains the summary trailer
// more than once. That only happens when two dumps were concatenated, so the
// whole input is suspect and no partial result is returned.
var ErrDuplicateCount = errors.New("cvar: summary count line appears more than once")

var (
	// Segments 1-3 are non-greedy so colons embedded in free text are not
	// taken for column boundaries earlier than necessary; the description
	// capture is greedy and optional.
	recordRE = regexp.MustCompile(
		`^(.*?)\s*` + columnDelim + `(.*?)\s*` + columnDelim + `(.*?)\s*` + descDelim + `(?: (.*)|)$`)
	summaryRE = regexp.MustCompile(`^(\d+)` + summarySuffix + `$`)
	// One attribute inside the flag column, e.g. `, "CHEAT"`.
	attrRE = regexp.MustCompile(`, "(.*?)"`)
)

// Extract parses the raw output of the cvarlist console command into records,
// in input line order, plus the reported total if a summary line was present.
// Lines matching neither grammar (banners, headers, blanks) are dropped
// silently. Extract is pure: same text in, same result out.
func Extract(text string) (ExtractionResult, error) {
	var res ExtractionResult
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := recordRE.FindStringSubmatch(line); m != nil {
			res.Records = append(res.Records, Record{
				Name:        m[1],
				Default:     m[2],
				Attributes:  splitAttributes(m[3]),
				Description: m[4],
			})
			continue
		}
		if m := summaryRE.FindStringSubmatch(line); m != nil {
			if res.HasCount {
				return ExtractionResult{}, ErrDuplicateCount
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				// The capture is a non-empty digit run; Atoi cannot fail on it
				// short of overflow, which no real server output reaches.
				panic(fmt.Sprintf("cvar: summary count %q: %v", m[1], err))
			}
			res.ExpectedCount = n
			res.HasCount = true
		}
	}
	return res, nil
}

// splitAttributes pulls the quoted flag names out of the attribute column.
// Malformed quoting contributes no match and no error.
func splitAttributes(column string) []string {
	ms := attrRE.FindAllStringSubmatch(column, -1)
	if len(ms) == 0 {
		return nil
	}
	attrs := make([]string, len(ms))
	for i, m := range ms {
		attrs[i] = m[1]
	}
	return attrs
}
