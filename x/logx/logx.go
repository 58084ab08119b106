// Package logx is the SDK's structured log sink. It must be pointed at a
// writer with Init before anything is emitted; until then every call is a
// silent no-op, so code paths that log during early boot or fault handling
// never crash on a missing backend.
package logx

import (
	"io"
	"sync"

	"faultcode-go/x/fmtx"
	"faultcode-go/x/timex"
)

type Level uint8

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "?"
}

var (
	mu  sync.Mutex
	out io.Writer
)

// Init installs the output writer. Call once from the platform bootstrap,
// before any module that logs is started.
func Init(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

// Enabled reports whether Init has been called with a non-nil writer.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

func Info(msg string, kv ...any)  { emit(LevelInfo, msg, kv...) }
func Warn(msg string, kv ...any)  { emit(LevelWarn, msg, kv...) }
func Error(msg string, kv ...any) { emit(LevelError, msg, kv...) }

// emit writes one "ts level msg key=value ..." line. Odd trailing keys are
// written without a value rather than dropped.
func emit(level Level, msg string, kv ...any) {
	mu.Lock()
	w := out
	mu.Unlock()
	if w == nil {
		return
	}

	buf := []byte(fmtx.Sprintf("%d %s %s", timex.NowMs(), level.String(), msg))
	for i := 0; i < len(kv); i += 2 {
		buf = append(buf, ' ')
		buf = append(buf, fmtx.Sprintf("%v", kv[i])...)
		if i+1 < len(kv) {
			buf = append(buf, '=')
			buf = append(buf, fmtx.Sprintf("%v", kv[i+1])...)
		}
	}
	buf = append(buf, '\r', '\n')
	_, _ = w.Write(buf)
}
