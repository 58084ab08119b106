// Package apperror is the fault reporting facade for the SDK. Every module
// reports failures through it, either as a checked result code or as a
// failed invariant; an installed terminal handler decides what "stop"
// means on the target. This package only captures and dispatches; it
// never recovers.
package apperror

import (
	"faultcode-go/errcode"
	"faultcode-go/x/mathx"
)

// FaultID classifies a reported fault. The SDK owns
// [FaultIDSDKRangeStart, FaultIDSDKRangeEnd); host applications define
// their own IDs outside that range so a dispatcher can switch on ID
// without guessing ownership.
type FaultID uint32

const (
	FaultIDSDKRangeStart FaultID = 0x4000
	FaultIDSDKRangeEnd   FaultID = 0x5000

	// FaultIDSDKError marks a propagated result code from Check or CheckBool.
	FaultIDSDKError FaultID = FaultIDSDKRangeStart + 1
	// FaultIDSDKAssert marks a failed invariant from Assert.
	FaultIDSDKAssert FaultID = FaultIDSDKRangeStart + 2
)

// InSDKRange reports whether id belongs to the SDK-reserved range.
func InSDKRange(id FaultID) bool {
	return mathx.Between(uint32(id), uint32(FaultIDSDKRangeStart), uint32(FaultIDSDKRangeEnd)-1)
}

// ErrorInfo is the payload for FaultIDSDKError faults. It is built on the
// faulting goroutine's stack and is valid only until the handler returns;
// a handler that continues running must copy it, never retain it.
type ErrorInfo struct {
	Line uint32       // call-site line, 0 when diagnostics are stripped
	File string       // call-site file, "" when diagnostics are stripped
	Code errcode.Code // the result code that failed the check
}

// AssertInfo is the payload for FaultIDSDKAssert faults. Same lifetime
// rules as ErrorInfo.
type AssertInfo struct {
	Line uint32
	File string
}

// Fault binds a fault identity to its payload at construction, so a
// dispatcher switches on ID and reads the matching pointer without
// reinterpreting anything. At most one payload pointer is non-nil for SDK
// faults; both are nil for IDs this package does not own.
type Fault struct {
	ID     FaultID
	PC     uintptr // triggering instruction address, 0 if unknown
	Error  *ErrorInfo
	Assert *AssertInfo
}
