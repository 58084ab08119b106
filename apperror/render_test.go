package apperror

import (
	"bytes"
	"strings"
	"testing"

	"faultcode-go/x/fmtx"
	"faultcode-go/x/logx"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logx.Init(&buf)
	t.Cleanup(func() { logx.Init(nil) })
	return &buf
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := fmtx.DefaultOutput
	fmtx.DefaultOutput = &buf
	t.Cleanup(func() { fmtx.DefaultOutput = old })
	return &buf
}

func TestLogAssert(t *testing.T) {
	buf := captureLog(t)

	// Empty file reference: nothing is emitted.
	Log(Fault{ID: FaultIDSDKAssert, Assert: &AssertInfo{Line: 9}})
	if buf.Len() != 0 {
		t.Fatalf("assert with no file emitted %q", buf.String())
	}

	Log(Fault{ID: FaultIDSDKAssert, Assert: &AssertInfo{Line: 9, File: "boot.go"}})
	got := buf.String()
	for _, want := range []string{"assertion failed", "line=9", "file=boot.go"} {
		if !strings.Contains(got, want) {
			t.Fatalf("log %q missing %q", got, want)
		}
	}
}

func TestLogError(t *testing.T) {
	buf := captureLog(t)

	Log(Fault{ID: FaultIDSDKError, Error: &ErrorInfo{Line: 42, File: "sensor.go", Code: 0x0B}})
	got := buf.String()
	for _, want := range []string{"application error", "line=42", "file=sensor.go", "code=0xB"} {
		if !strings.Contains(got, want) {
			t.Fatalf("log %q missing %q", got, want)
		}
	}

	// Bare payload: code only, no location keys.
	buf.Reset()
	Log(Fault{ID: FaultIDSDKError, Error: &ErrorInfo{Code: 0x0B}})
	got = buf.String()
	if !strings.Contains(got, "code=0xB") || strings.Contains(got, "line=") {
		t.Fatalf("bare payload log = %q", got)
	}
}

func TestLogBestEffort(t *testing.T) {
	buf := captureLog(t)

	// Nil payloads and foreign IDs produce nothing and must not panic.
	Log(Fault{ID: FaultIDSDKError})
	Log(Fault{ID: FaultIDSDKAssert})
	Log(Fault{ID: 0x9999})
	if buf.Len() != 0 {
		t.Fatalf("best-effort cases emitted %q", buf.String())
	}
}

func TestPrintHeaderComesFirst(t *testing.T) {
	buf := captureOutput(t)

	Print(Fault{ID: FaultIDSDKError, PC: 0x20001234, Error: &ErrorInfo{Line: 42, File: "sensor.go", Code: 0x0B}})
	got := buf.String()

	for _, want := range []string{
		"Fault identifier:  0x4001",
		"Program counter:   0x20001234",
		"Fault information:",
		"Line Number: 42",
		"File Name:   sensor.go",
		"Error Code:  0xB",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("print output %q missing %q", got, want)
		}
	}
	if strings.Index(got, "Fault identifier") > strings.Index(got, "Line Number") {
		t.Fatal("header must precede payload fields")
	}
}

func TestPrintGuardsNilPayload(t *testing.T) {
	buf := captureOutput(t)

	// Recognized ID with a nil payload: header only, no crash.
	Print(Fault{ID: FaultIDSDKAssert})
	got := buf.String()
	if !strings.Contains(got, "Fault identifier:  0x4002") {
		t.Fatalf("header missing: %q", got)
	}
	if !strings.Contains(got, "Fault information: 0x0") {
		t.Fatalf("nil payload should print a zero address: %q", got)
	}
	if strings.Contains(got, "Line Number") {
		t.Fatalf("nil payload must not render fields: %q", got)
	}
}

func TestPrintAssert(t *testing.T) {
	buf := captureOutput(t)

	Print(Fault{ID: FaultIDSDKAssert, Assert: &AssertInfo{Line: 7, File: "boot.go"}})
	got := buf.String()
	if !strings.Contains(got, "Line Number: 7") || !strings.Contains(got, "File Name:   boot.go") {
		t.Fatalf("assert print = %q", got)
	}
	if strings.Contains(got, "Error Code") {
		t.Fatalf("assert print must not carry a code: %q", got)
	}
	if strings.Contains(got, "Fault information: 0x0\r\n") {
		t.Fatalf("non-nil payload should print its address: %q", got)
	}
}
