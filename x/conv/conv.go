// Package conv holds allocation-free numeric formatting for MCU builds.
// Everything appends into a caller-supplied slice; no fmt/strconv dependency.
package conv

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"
)

// AppendUint appends the base-10 representation of n.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendInt appends the base-10 representation of n, with sign.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendHex appends n in hex without leading zeros or 0x prefix.
// upper selects the digit case.
func AppendHex(dst []byte, n uint64, upper bool) []byte {
	digits := lowerHex
	if upper {
		digits = upperHex
	}
	var tmp [16]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = digits[n&0xF]
		n >>= 4
		if n == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendHexPad appends n as exactly width uppercase hex digits, zero-padded.
// width is capped at 16.
func AppendHexPad(dst []byte, n uint64, width int) []byte {
	if width > 16 {
		width = 16
	}
	var tmp [16]byte
	i := len(tmp)
	for j := 0; j < width || n != 0; j++ {
		i--
		if i < 0 {
			break
		}
		tmp[i] = upperHex[n&0xF]
		n >>= 4
	}
	return append(dst, tmp[i:]...)
}
