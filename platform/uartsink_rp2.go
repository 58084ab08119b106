//go:build rp2040

package platform

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"faultcode-go/errcode"
	"faultcode-go/x/fmtx"
	"faultcode-go/x/logx"
)

// InitUARTSink points the formatted-output and structured-log sinks at a
// hardware UART. Call once from the board bootstrap, before any fault can
// fire, so fault renderers have somewhere to write.
func InitUARTSink(id string, baud uint32, tx, rx machine.Pin) errcode.Code {
	var hw *uartx.UART
	switch id {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return errcode.NotFound
	}
	// Defaults inside uartx apply if baud is zero.
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       tx,
		RX:       rx,
	})
	fmtx.DefaultOutput = hw
	logx.Init(hw)
	return errcode.Success
}
