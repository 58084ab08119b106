//go:build rp2040

// Command boardtest exercises the fault plane on a Pico: UART sink,
// SaveAndStop terminal handler, sensormon against i2c0, and one forced
// checked fault at the end.
package main

import (
	"context"
	"machine"
	"time"

	"faultcode-go/apperror"
	"faultcode-go/bus"
	"faultcode-go/errcode"
	"faultcode-go/platform"
	"faultcode-go/services/faultmon"
	"faultcode-go/services/sensormon"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(1500 * time.Millisecond)
	println("[boardtest] boot …")

	if code := platform.InitUARTSink("uart0", 115200, machine.UART0_TX_PIN, machine.UART0_RX_PIN); code != errcode.Success {
		println("[boardtest] FAIL: uart sink:", code.Error())
		return
	}

	b := bus.NewBus(8)
	apperror.SetHandler(faultmon.PublishingHandler(b, apperror.SaveAndStop))

	ctx := context.Background()
	mon := faultmon.New(8)
	_ = mon.Start(ctx, b)

	i2c := machine.I2C0
	_ = i2c.Configure(machine.I2CConfig{})
	svc := sensormon.New(i2c, sensormon.Config{PollMs: 500})
	_ = svc.Start(ctx, b)

	sub := b.Subscribe(sensormon.TopicStatus)
	for i := 0; i < 10; i++ {
		select {
		case msg := <-sub.Channel():
			st := msg.Payload.(sensormon.Status)
			println("[boardtest] status raw=", st.Raw)
		case <-time.After(2 * time.Second):
			println("[boardtest] no status")
		}
	}

	// Force one checked fault so the terminal path runs end to end.
	apperror.Check(errcode.Timeout)
	println("[boardtest] unreachable")
}
