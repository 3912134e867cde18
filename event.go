package schedbridge

// EventKind tags an Event with the driver callback that produced it.
type EventKind int32

const (
	EventRegistered EventKind = iota
	EventReregistered
	EventDisconnected
	EventResourceOffers
	EventOfferRescinded
	EventStatusUpdate
	EventFrameworkMessage
	EventSlaveLost
	EventExecutorLost
	EventError
)

func (kind EventKind) String() string {
	switch kind {
	case EventRegistered:
		return "registered"
	case EventReregistered:
		return "reregistered"
	case EventDisconnected:
		return "disconnected"
	case EventResourceOffers:
		return "resourceOffers"
	case EventOfferRescinded:
		return "offerRescinded"
	case EventStatusUpdate:
		return "statusUpdate"
	case EventFrameworkMessage:
		return "frameworkMessage"
	case EventSlaveLost:
		return "slaveLost"
	case EventExecutorLost:
		return "executorLost"
	case EventError:
		return "error"
	}
	return "unknown"
}

// Event is one driver callback re-encoded for the recipient mailbox.
// Payloads holds the callback's structured arguments in declaration
// order, each freshly encoded with the bridge codec. Data carries the
// raw string of frameworkMessage and error events; Code carries the
// executor exit status of executorLost events.
type Event struct {
	Kind     EventKind
	Payloads [][]byte
	Data     string
	Code     int
}
