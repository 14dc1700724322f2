package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints an advisory warning in the same shape the original tool used.
// Warnings never affect the exit code.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "[WARNING] "+format+"\n", a...)
}
