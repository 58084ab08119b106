//go:build rp2040 || rp2350

package fmtx

import (
	"io"

	"faultcode-go/x/conv"
)

// DefaultOutput is where Print/Printf write. MCU builds start with a
// discard sink; the platform bootstrap points this at a UART.
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// --- Public API (signatures match the host build) ---

func Sprintf(format string, a ...any) string {
	return string(appendFormat(nil, format, a...))
}

func Printf(format string, a ...any) (int, error) {
	return DefaultOutput.Write(appendFormat(nil, format, a...))
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return w.Write(appendFormat(nil, format, a...))
}

func Fprint(w io.Writer, a ...any) (int, error) {
	var buf []byte
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendAny(buf, v)
	}
	return w.Write(buf)
}

func Print(a ...any) (int, error) { return Fprint(DefaultOutput, a...) }

// --- Minimal formatter ---
// Verbs: %s %d %x %X %v %t %% plus zero-padded width for %x/%X (e.g. %08X).
// Anything richer belongs on the host side; keep the MCU cost low.

func appendFormat(buf []byte, format string, args ...any) []byte {
	ai := 0
	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' {
			buf = append(buf, c)
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			buf = append(buf, '%')
			i++
			continue
		}
		zero := false
		if i < len(format) && format[i] == '0' {
			zero = true
			i++
		}
		width := 0
		for i < len(format) && '0' <= format[i] && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}
		if i >= len(format) || ai >= len(args) {
			return buf
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		switch verb {
		case 's':
			if s, ok := arg.(string); ok {
				buf = append(buf, s...)
			} else if b, ok := arg.([]byte); ok {
				buf = append(buf, b...)
			} else {
				buf = appendAny(buf, arg)
			}
		case 'd':
			buf = conv.AppendInt(buf, toI64(arg))
		case 'x', 'X':
			n := uint64(toI64(arg))
			if zero && width > 0 {
				buf = conv.AppendHexPad(buf, n, width)
			} else {
				buf = conv.AppendHex(buf, n, verb == 'X')
			}
		case 't':
			v, _ := arg.(bool)
			buf = appendBool(buf, v)
		case 'v':
			buf = appendAny(buf, arg)
		default:
			// Unknown verb: keep it literal to aid debugging.
			buf = append(buf, '%', verb)
		}
	}
	return buf
}

func appendAny(buf []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(buf, x...)
	case []byte:
		return append(buf, x...)
	case bool:
		return appendBool(buf, x)
	case int:
		return conv.AppendInt(buf, int64(x))
	case int8:
		return conv.AppendInt(buf, int64(x))
	case int16:
		return conv.AppendInt(buf, int64(x))
	case int32:
		return conv.AppendInt(buf, int64(x))
	case int64:
		return conv.AppendInt(buf, x)
	case uint:
		return conv.AppendUint(buf, uint64(x))
	case uint8:
		return conv.AppendUint(buf, uint64(x))
	case uint16:
		return conv.AppendUint(buf, uint64(x))
	case uint32:
		return conv.AppendUint(buf, uint64(x))
	case uint64:
		return conv.AppendUint(buf, x)
	case uintptr:
		return conv.AppendHex(append(buf, '0', 'x'), uint64(x), false)
	case error:
		return append(buf, x.Error()...)
	default:
		return append(buf, "<unk>"...)
	}
}

func appendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, "true"...)
	}
	return append(buf, "false"...)
}

func toI64(v any) int64 {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	case uint:
		return int64(t)
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return int64(t)
	case uintptr:
		return int64(t)
	default:
		return 0
	}
}
