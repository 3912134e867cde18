package schedbridge

import (
	"sync/atomic"
)

/*
eventDispatcher is the Scheduler bound to a bridge handle. Each
callback is re-encoded into an Event and handed to the recipient
without blocking the driver's callback goroutine: encoding happens
inline, delivery is the recipient's non-blocking Deliver. Callbacks
arriving after the handle is destroyed are dropped.
*/
type eventDispatcher struct {
	recipient Recipient
	codec     Codec
	closed    atomic.Bool
}

func newEventDispatcher(recipient Recipient, c Codec) *eventDispatcher {
	return &eventDispatcher{recipient: recipient, codec: c}
}

func (disp *eventDispatcher) close() {
	disp.closed.Store(true)
}

// send encodes args in order into ev.Payloads and delivers the event.
// Any encoding failure drops the whole event; the callback goroutine
// is never stalled or crashed over it.
func (disp *eventDispatcher) send(ev Event, args ...interface{}) {
	if disp.closed.Load() {
		log.Debugf("Dropping %s event, the bridge handle is destroyed.", ev.Kind)
		return
	}
	if len(args) > 0 {
		payloads := make([][]byte, 0, len(args))
		for _, arg := range args {
			data, err := disp.codec.Marshal(arg)
			if err != nil {
				log.Errorf("Dropping %s event, payload encoding failed: %v", ev.Kind, err)
				return
			}
			payloads = append(payloads, data)
		}
		ev.Payloads = payloads
	}
	disp.recipient.Deliver(ev)
}

func (disp *eventDispatcher) Registered(_ Driver, frameworkID *FrameworkID, masterInfo *MasterInfo) {
	disp.send(Event{Kind: EventRegistered}, frameworkID, masterInfo)
}

func (disp *eventDispatcher) Reregistered(_ Driver, masterInfo *MasterInfo) {
	disp.send(Event{Kind: EventReregistered}, masterInfo)
}

func (disp *eventDispatcher) Disconnected(_ Driver) {
	disp.send(Event{Kind: EventDisconnected})
}

// ResourceOffers fans a batch out as one event per offer, in batch
// order, each offer encoded before the next is started.
func (disp *eventDispatcher) ResourceOffers(_ Driver, offers []*Offer) {
	for _, offer := range offers {
		disp.send(Event{Kind: EventResourceOffers}, offer)
	}
}

func (disp *eventDispatcher) OfferRescinded(_ Driver, offerID *OfferID) {
	disp.send(Event{Kind: EventOfferRescinded}, offerID)
}

func (disp *eventDispatcher) StatusUpdate(_ Driver, taskStatus *TaskStatus) {
	disp.send(Event{Kind: EventStatusUpdate}, taskStatus)
}

func (disp *eventDispatcher) FrameworkMessage(_ Driver, executorID *ExecutorID, slaveID *SlaveID, data string) {
	disp.send(Event{Kind: EventFrameworkMessage, Data: data}, executorID, slaveID)
}

func (disp *eventDispatcher) SlaveLost(_ Driver, slaveID *SlaveID) {
	disp.send(Event{Kind: EventSlaveLost}, slaveID)
}

func (disp *eventDispatcher) ExecutorLost(_ Driver, executorID *ExecutorID, slaveID *SlaveID, status int) {
	disp.send(Event{Kind: EventExecutorLost, Code: status}, executorID, slaveID)
}

func (disp *eventDispatcher) Error(_ Driver, message string) {
	disp.send(Event{Kind: EventError, Data: message})
}
