package apperror

import (
	"unsafe"

	"faultcode-go/x/fmtx"
	"faultcode-go/x/logx"
)

// Log renders a fault through the structured log sink. logx must have been
// initialized by the caller. Rendering is best-effort: a nil payload, an
// empty file on an assert, or an unrecognized ID emit nothing.
func Log(f Fault) {
	switch f.ID {
	case FaultIDSDKAssert:
		if f.Assert != nil && f.Assert.File != "" {
			logx.Error("assertion failed",
				"line", f.Assert.Line,
				"file", f.Assert.File)
		}
	case FaultIDSDKError:
		if f.Error == nil {
			return
		}
		if f.Error.File != "" {
			logx.Error("application error",
				"line", f.Error.Line,
				"file", f.Error.File,
				"code", fmtx.Sprintf("0x%X", uint32(f.Error.Code)))
		} else {
			logx.Error("application error",
				"code", fmtx.Sprintf("0x%X", uint32(f.Error.Code)))
		}
	}
}

// Print renders a fault as text on the formatted-output sink. The header
// (fault identifier, program counter, payload address) is written before
// the payload is inspected; payload fields follow only for a recognized ID
// with a non-nil payload, so a malformed fault can never crash the
// renderer that is reporting it.
func Print(f Fault) {
	fmtx.Printf("fault report:\r\n")
	fmtx.Printf("Fault identifier:  0x%X\r\n", uint32(f.ID))
	fmtx.Printf("Program counter:   0x%X\r\n", uint64(f.PC))
	fmtx.Printf("Fault information: 0x%X\r\n", uint64(f.payloadAddr()))

	switch f.ID {
	case FaultIDSDKAssert:
		if f.Assert != nil {
			fmtx.Printf("Line Number: %d\r\n", f.Assert.Line)
			fmtx.Printf("File Name:   %s\r\n", f.Assert.File)
		}
	case FaultIDSDKError:
		if f.Error != nil {
			fmtx.Printf("Line Number: %d\r\n", f.Error.Line)
			fmtx.Printf("File Name:   %s\r\n", f.Error.File)
			fmtx.Printf("Error Code:  0x%X\r\n", uint32(f.Error.Code))
		}
	}
}

// payloadAddr exposes the payload address for the text header. Diagnostic
// only; nothing dereferences the value.
func (f Fault) payloadAddr() uintptr {
	switch f.ID {
	case FaultIDSDKAssert:
		if f.Assert != nil {
			return uintptr(unsafe.Pointer(f.Assert))
		}
	case FaultIDSDKError:
		if f.Error != nil {
			return uintptr(unsafe.Pointer(f.Error))
		}
	}
	return 0
}
