package schedbridge

import (
	"sync"

	"github.com/dlsniper/debugger"
)

/*
Mailbox is an unbounded in-order inbox for bridge events. Deliver
never blocks, whatever the consumer is doing, so it is safe to hand a
Mailbox to Init as the recipient: the driver's callback goroutines are
never stalled by a slow host. Events come out of C in delivery order.
*/
type Mailbox struct {
	mu     sync.Mutex
	queue  []Event
	closed bool

	wake chan struct{}
	done chan struct{}
	out  chan Event
}

func NewMailbox() *Mailbox {
	m := &Mailbox{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		out:  make(chan Event),
	}
	go m.pump()
	return m
}

// Deliver enqueues ev and returns. Events delivered after Close are
// dropped.
func (m *Mailbox) Deliver(ev Event) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.queue = append(m.queue, ev)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// C returns the consumer side of the mailbox. The channel is closed
// once the mailbox is closed and the queue has stopped draining.
func (m *Mailbox) C() <-chan Event {
	return m.out
}

// Close stops the mailbox. Undelivered events are discarded; Close is
// idempotent.
func (m *Mailbox) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()
	close(m.done)
}

func (m *Mailbox) pump() {
	debugger.SetLabels(func() []string {
		return []string{
			"pkg", "schedbridge",
			"proc", "mailbox-pump",
		}
	})

	defer close(m.out)
	for {
		m.mu.Lock()
		for len(m.queue) == 0 {
			if m.closed {
				m.mu.Unlock()
				return
			}
			m.mu.Unlock()
			select {
			case <-m.wake:
			case <-m.done:
			}
			m.mu.Lock()
		}
		batch := m.queue
		m.queue = nil
		m.mu.Unlock()

		for _, ev := range batch {
			select {
			case m.out <- ev:
			case <-m.done:
				return
			}
		}
	}
}
