//go:build !stripfault

package apperror

import (
	"runtime"

	"faultcode-go/errcode"
)

// DiagnosticsStripped reports whether this binary was built without
// call-site capture (the stripfault build tag).
const DiagnosticsStripped = false

// report routes a checked failure through the full-context entry point.
// Caller(2) is the user call site: 0 is this line, 1 is Check/CheckBool.
func report(code errcode.Code) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		HandleBare(code)
		return
	}
	Handle(code, uint32(line), file)
}

func reportAssert() {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		Fail(0, "")
		return
	}
	Fail(uint32(line), file)
}
