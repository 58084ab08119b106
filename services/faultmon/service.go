// Package faultmon observes fault reports on the bus. It is not part of
// the terminal path: a publishing handler snapshots each fault by value
// before the terminal action runs, and this service renders and retains
// the snapshots on the other side.
package faultmon

import (
	"context"
	"sync"

	"faultcode-go/apperror"
	"faultcode-go/bus"
	"faultcode-go/errcode"
	"faultcode-go/x/mathx"
	"faultcode-go/x/timex"
)

const (
	TopicReport bus.Topic = "fault/report"
	TopicState  bus.Topic = "svc/faultmon/state"
)

// Snapshot is a by-value copy of a fault, safe to retain and to ship
// across the bus. The handler's payload reference must not outlive the
// handler; this copy may.
type Snapshot struct {
	ID      uint32
	PC      uint64
	HasInfo bool
	Line    uint32
	File    string
	Code    uint32
	TSms    int64
}

// Snap copies f into a Snapshot.
func Snap(f apperror.Fault) Snapshot {
	s := Snapshot{ID: uint32(f.ID), PC: uint64(f.PC), TSms: timex.NowMs()}
	switch f.ID {
	case apperror.FaultIDSDKAssert:
		if f.Assert != nil {
			s.HasInfo = true
			s.Line = f.Assert.Line
			s.File = f.Assert.File
		}
	case apperror.FaultIDSDKError:
		if f.Error != nil {
			s.HasInfo = true
			s.Line = f.Error.Line
			s.File = f.Error.File
			s.Code = uint32(f.Error.Code)
		}
	}
	return s
}

// Fault rebuilds a renderable fault from the snapshot.
func (s Snapshot) Fault() apperror.Fault {
	f := apperror.Fault{ID: apperror.FaultID(s.ID), PC: uintptr(s.PC)}
	if !s.HasInfo {
		return f
	}
	switch f.ID {
	case apperror.FaultIDSDKAssert:
		f.Assert = &apperror.AssertInfo{Line: s.Line, File: s.File}
	case apperror.FaultIDSDKError:
		f.Error = &apperror.ErrorInfo{Line: s.Line, File: s.File, Code: errcode.Code(s.Code)}
	}
	return f
}

// PublishingHandler wraps next so every fault is snapshotted onto the bus
// before the terminal action runs. next nil falls through to SaveAndStop.
func PublishingHandler(b *bus.Bus, next apperror.Handler) apperror.Handler {
	if next == nil {
		next = apperror.SaveAndStop
	}
	return func(f apperror.Fault) {
		b.Publish(&bus.Message{Topic: TopicReport, Payload: Snap(f)})
		next(f)
	}
}

// Service logs incoming snapshots and keeps a bounded recent history.
type Service struct {
	mu     sync.Mutex
	recent []Snapshot
	limit  int
}

func New(limit int) *Service {
	return &Service{limit: mathx.Clamp(limit, 1, 64)}
}

// Start runs the monitor loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context, b *bus.Bus) error {
	go s.loop(ctx, b)
	return nil
}

func (s *Service) loop(ctx context.Context, b *bus.Bus) {
	sub := b.Subscribe(TopicReport)
	defer sub.Unsubscribe()

	b.Publish(&bus.Message{Topic: TopicState, Payload: "up", Retained: true})

	for {
		select {
		case <-ctx.Done():
			b.Publish(&bus.Message{Topic: TopicState, Payload: "down", Retained: true})
			return
		case msg := <-sub.Channel():
			snap, ok := msg.Payload.(Snapshot)
			if !ok {
				continue
			}
			apperror.Log(snap.Fault())
			s.mu.Lock()
			s.recent = append(s.recent, snap)
			if len(s.recent) > s.limit {
				s.recent = s.recent[len(s.recent)-s.limit:]
			}
			s.mu.Unlock()
		}
	}
}

// Recent returns a copy of the retained snapshots, oldest first.
func (s *Service) Recent() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Snapshot, len(s.recent))
	copy(out, s.recent)
	return out
}
