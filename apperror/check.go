package apperror

import "faultcode-go/errcode"

// Check escalates through the configured report path when code is not
// Success. Go call semantics evaluate the argument exactly once, so
// expressions with side effects are safe at the call site.
func Check(code errcode.Code) {
	if code != errcode.Success {
		report(code)
	}
}

// CheckBool escalates with a zero code when ok is false. The failure
// carries no result code of its own; only the location identifies it.
func CheckBool(ok bool) {
	if !ok {
		report(0)
	}
}

// Assert escalates a failed invariant. Diagnostic builds capture the
// call-site location; stripped builds compile the escalation out, matching
// release firmware where invariant checks cost nothing.
func Assert(ok bool) {
	if !ok {
		reportAssert()
	}
}
