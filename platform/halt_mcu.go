//go:build rp2040 || rp2350

package platform

import "device/arm"

// Halt masks interrupts and parks the core. It never returns; a watchdog
// or external reset is the only way out.
func Halt() {
	arm.DisableInterrupts()
	for {
	}
}
