// Package sensormon polls an AHT20-style sensor's status register over
// I2C and publishes the decoded status. Transaction failures and
// calibration invariants go through the fault facade like every other
// SDK error path.
package sensormon

import (
	"context"
	"time"

	"tinygo.org/x/drivers"

	"faultcode-go/apperror"
	"faultcode-go/bus"
	"faultcode-go/errcode"
	"faultcode-go/x/mathx"
)

const TopicStatus bus.Topic = "sensor/status"

const (
	DefaultAddr = 0x38
	cmdStatus   = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08
)

type Config struct {
	Addr   uint16
	PollMs int // clamped to 50..60000
}

type Status struct {
	Busy       bool
	Calibrated bool
	Raw        byte
}

type Service struct {
	i2c    drivers.I2C
	addr   uint16
	period time.Duration
}

func New(i2c drivers.I2C, cfg Config) *Service {
	addr := cfg.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	return &Service{
		i2c:    i2c,
		addr:   addr,
		period: time.Duration(mathx.Clamp(cfg.PollMs, 50, 60_000)) * time.Millisecond,
	}
}

// Start runs the poll loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context, b *bus.Bus) error {
	if s.i2c == nil {
		return errcode.Null
	}
	go s.loop(ctx, b)
	return nil
}

func (s *Service) loop(ctx context.Context, b *bus.Bus) {
	tick := time.NewTicker(s.period)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			s.pollOnce(b)
		}
	}
}

// pollOnce reads the status register; any failure escalates as a fault.
func (s *Service) pollOnce(b *bus.Bus) {
	st, code := s.ReadStatus()
	apperror.Check(code)
	// The device calibrates at power-on; losing calibration mid-run means
	// its readings can no longer be trusted.
	apperror.CheckBool(st.Calibrated)
	b.Publish(&bus.Message{Topic: TopicStatus, Payload: st})
}

// ReadStatus performs the status-register transaction. The returned code
// is Success or Timeout (no ack / bus failure).
func (s *Service) ReadStatus() (Status, errcode.Code) {
	var buf [1]byte
	if err := s.i2c.Tx(s.addr, []byte{cmdStatus}, buf[:]); err != nil {
		return Status{}, errcode.Timeout
	}
	raw := buf[0]
	return Status{
		Busy:       raw&statusBusy != 0,
		Calibrated: raw&statusCalibrated != 0,
		Raw:        raw,
	}, errcode.Success
}
