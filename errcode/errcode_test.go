package errcode

import (
	"errors"
	"testing"
)

func TestCommonCodesDistinct(t *testing.T) {
	codes := []Code{
		Success, Internal, NoMem, NotFound, NotSupported, InvalidParam,
		InvalidState, InvalidLength, InvalidData, Timeout, Null, Forbidden, Busy,
	}
	seen := map[Code]bool{}
	for _, c := range codes {
		if seen[c] {
			t.Fatalf("duplicate code value %d", c)
		}
		seen[c] = true
	}
	// Common block stays below the subsystem bases.
	for _, c := range codes {
		if c >= SDKErrorBase {
			t.Fatalf("common code %d overlaps SDKErrorBase", c)
		}
	}
}

func TestErrorStrings(t *testing.T) {
	if got, want := InvalidParam.Error(), "invalid_param"; got != want {
		t.Fatalf("InvalidParam.Error() = %q, want %q", got, want)
	}
	// Unnamed codes render as hex.
	if got, want := (AppErrorBase + 1).Error(), "code 0x4001"; got != want {
		t.Fatalf("unnamed Error() = %q, want %q", got, want)
	}
	if got, want := Code(0xDEAD).Error(), "code 0xDEAD"; got != want {
		t.Fatalf("unnamed Error() = %q, want %q", got, want)
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != Success {
		t.Fatalf("Of(nil) = %v, want Success", got)
	}
	if got := Of(Timeout); got != Timeout {
		t.Fatalf("Of(Timeout) = %v, want Timeout", got)
	}
	e := &E{C: Busy, Op: "uart write", Err: errors.New("hw")}
	if got := Of(e); got != Busy {
		t.Fatalf("Of(E) = %v, want Busy", got)
	}
	if got := Of(errors.New("plain")); got != Internal {
		t.Fatalf("Of(plain) = %v, want Internal", got)
	}
}

func TestWrapper(t *testing.T) {
	cause := errors.New("bus stuck")
	e := &E{C: Busy, Op: "i2c tx", Err: cause}
	if got, want := e.Error(), "i2c tx: busy"; got != want {
		t.Fatalf("E.Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is should see the cause through Unwrap")
	}
}
