package apperror

import (
	"io"
	"sync"

	"faultcode-go/errcode"
	"faultcode-go/platform"
	"faultcode-go/x/fmtx"
	"faultcode-go/x/logx"
)

// Handler receives every fault raised through this package. Production
// handlers are expected not to return: halt, reset, or escalate further.
// Go has no divergent return type, so the contract lives here and in
// SaveAndStop making the halt its final statement.
type Handler func(Fault)

var (
	mu       sync.Mutex
	handler  Handler
	lastSet  Fault
	haveLast bool
)

// SetHandler installs the terminal handler. Install once at startup,
// before any fault can fire; do not reassign mid-run. A nil handler
// falls back to SaveAndStop.
func SetHandler(h Handler) {
	mu.Lock()
	handler = h
	mu.Unlock()
}

// Config wires the fault plane's collaborators in one boot-time call.
type Config struct {
	Handler Handler   // terminal handler; nil keeps SaveAndStop
	Output  io.Writer // text sink for Print; nil leaves fmtx untouched
	Log     io.Writer // structured sink; nil leaves logx untouched
}

func Configure(cfg Config) {
	if cfg.Output != nil {
		fmtx.DefaultOutput = cfg.Output
	}
	if cfg.Log != nil {
		logx.Init(cfg.Log)
	}
	if cfg.Handler != nil {
		SetHandler(cfg.Handler)
	}
}

func dispatch(f Fault) {
	mu.Lock()
	h := handler
	mu.Unlock()
	if h == nil {
		h = SaveAndStop
	}
	h(f)
}

// Handle is the full-context entry point: the caller supplies the failing
// result code and the literal call-site location.
func Handle(code errcode.Code, line uint32, file string) {
	dispatch(Fault{
		ID:    FaultIDSDKError,
		Error: &ErrorInfo{Line: line, File: file, Code: code},
	})
}

// HandleBare is the stripped entry point: same escalation contract, no
// location. The payload still carries the code; line 0 and an empty file
// mark the missing context.
func HandleBare(code errcode.Code) {
	dispatch(Fault{
		ID:    FaultIDSDKError,
		Error: &ErrorInfo{Code: code},
	})
}

// Fail is the assertion entry point.
func Fail(line uint32, file string) {
	dispatch(Fault{
		ID:     FaultIDSDKAssert,
		Assert: &AssertInfo{Line: line, File: file},
	})
}

// SaveAndStop is the default terminal handler: it records the fault where
// LastFault can see it, renders it on both sinks, then halts. The fault is
// copied by value into the slot, so the stack payload is not retained.
func SaveAndStop(f Fault) {
	mu.Lock()
	lastSet = f
	haveLast = true
	mu.Unlock()
	Log(f)
	Print(f)
	platform.Halt()
}

// LastFault returns the most recent fault recorded by SaveAndStop.
func LastFault() (Fault, bool) {
	mu.Lock()
	defer mu.Unlock()
	return lastSet, haveLast
}

// ClearLastFault forgets the recorded fault.
func ClearLastFault() {
	mu.Lock()
	lastSet = Fault{}
	haveLast = false
	mu.Unlock()
}
