//go:build !(rp2040 || rp2350)

package fmtx

import (
	"fmt"
	"io"
	"os"
)

// DefaultOutput is where Print/Printf write. Host builds default to stdout;
// tests may swap in a buffer.
var DefaultOutput io.Writer = os.Stdout

func Sprintf(format string, a ...any) string { return fmt.Sprintf(format, a...) }

func Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(DefaultOutput, format, a...)
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return fmt.Fprintf(w, format, a...)
}

func Fprint(w io.Writer, a ...any) (int, error) { return fmt.Fprint(w, a...) }

func Print(a ...any) (int, error) { return fmt.Fprint(DefaultOutput, a...) }
