// Package bus is the minimal pub/sub backbone used by the SDK's services:
// exact-match string topics, optional retained messages, bounded queues
// with drop-oldest delivery. No wildcards; the fault plane's topic set is
// small and known at compile time.
package bus

import (
	"sync"

	"faultcode-go/x/timex"
)

// Topic is a flat path like "fault/report" or "sensor/status".
type Topic string

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
	TSms     int64
}

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

type Bus struct {
	mu       sync.RWMutex
	subs     map[Topic][]*Subscription
	retained map[Topic]*Message
	qLen     int
}

// NewBus creates a bus with the given per-subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{
		subs:     map[Topic][]*Subscription{},
		retained: map[Topic]*Message{},
		qLen:     queueLen,
	}
}

// Publish delivers msg to every subscriber of its topic. Full queues drop
// their oldest entry; a publisher is never blocked by a slow consumer.
func (b *Bus) Publish(msg *Message) {
	if msg.TSms == 0 {
		msg.TSms = timex.NowMs()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs[msg.Topic] {
		select {
		case sub.ch <- msg:
		default:
			<-sub.ch
			sub.ch <- msg
		}
	}

	if msg.Retained {
		if msg.Payload == nil {
			delete(b.retained, msg.Topic)
		} else {
			b.retained[msg.Topic] = msg
		}
	}
}

// Subscribe registers for a topic. A retained message, if present, is
// delivered immediately.
func (b *Bus) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, b.qLen),
		bus:   b,
	}

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	if m := b.retained[topic]; m != nil {
		sub.ch <- m
	}
	b.mu.Unlock()

	return sub
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	list := b.subs[sub.topic]
	for i, s := range list {
		if s == sub {
			b.subs[sub.topic] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(b.subs[sub.topic]) == 0 {
		delete(b.subs, sub.topic)
	}
	b.mu.Unlock()
	close(sub.ch)
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	bus   *Bus
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.bus.unsubscribe(s) }
