//go:build stripfault

package apperror

import "faultcode-go/errcode"

// DiagnosticsStripped reports whether this binary was built without
// call-site capture (the stripfault build tag).
const DiagnosticsStripped = true

// report routes through the bare entry point: no location capture, and no
// file-name strings kept in the binary.
func report(code errcode.Code) {
	HandleBare(code)
}

// Invariant checks are inert in stripped builds.
func reportAssert() {}
