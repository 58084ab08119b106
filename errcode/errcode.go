package errcode

// Code is a stable numeric result code, as returned by SDK calls.
// It is a uint32 newtype, comparable, allocation-free, and implements error.
// Success (zero) is the only value meaning "no failure occurred".
type Code uint32

const Success Code = 0

// Common SDK errors. Values are contiguous from 1 and never reused.
const (
	Internal      Code = iota + 1 // non-classified internal error
	NoMem                         // allocation or pool exhausted
	NotFound                      // requested item does not exist
	NotSupported                  // operation not supported on this target
	InvalidParam                  // argument outside the accepted range
	InvalidState                  // call not legal in the current state
	InvalidLength                 // buffer or payload length is wrong
	InvalidData                   // payload failed validation
	Timeout                       // operation did not complete in time
	Null                          // required reference was nil
	Forbidden                     // operation refused by policy
	Busy                          // resource temporarily unavailable
)

// Subsystem bases. Downstream modules define their own codes at an offset
// so numeric identities never collide with the common block above.
const (
	SDKErrorBase Code = 0x0080 // SDK-internal subsystems
	AppErrorBase Code = 0x4000 // host application codes
)

func (c Code) Error() string {
	if n := Name(c); n != "" {
		return n
	}
	return "code 0x" + hex32(uint32(c))
}

// Name returns the symbolic name for a common code, or "" if unnamed.
func Name(c Code) string {
	switch c {
	case Success:
		return "success"
	case Internal:
		return "internal"
	case NoMem:
		return "no_mem"
	case NotFound:
		return "not_found"
	case NotSupported:
		return "not_supported"
	case InvalidParam:
		return "invalid_param"
	case InvalidState:
		return "invalid_state"
	case InvalidLength:
		return "invalid_length"
	case InvalidData:
		return "invalid_data"
	case Timeout:
		return "timeout"
	case Null:
		return "null"
	case Forbidden:
		return "forbidden"
	case Busy:
		return "busy"
	}
	return ""
}

// E is an optional wrapper when callers want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Err error
}

func (e *E) Error() string {
	if e.Op != "" {
		return e.Op + ": " + e.C.Error()
	}
	return e.C.Error()
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Internal.
func Of(err error) Code {
	if err == nil {
		return Success
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Internal
}

// hex32 avoids pulling fmt into a package that MCU code links everywhere.
func hex32(n uint32) string {
	const hexd = "0123456789ABCDEF"
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = hexd[n&0xF]
		n >>= 4
	}
	// trim leading zeros, keep at least one digit
	i := 0
	for i < 7 && b[i] == '0' {
		i++
	}
	return string(b[i:])
}
