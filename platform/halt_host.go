//go:build !(rp2040 || rp2350)

package platform

// HaltPanic is the value recovered from Halt on host builds.
type HaltPanic struct{}

func (HaltPanic) String() string { return "platform: halted" }

// Halt stands in for the MCU's eternal stop loop on host builds. It panics
// so tests can observe that an escalation reached the terminal action.
func Halt() {
	panic(HaltPanic{})
}
