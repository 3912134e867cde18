package schedbridge

// Status is the driver status reported by every command operation.
// The positive values mirror the native driver's status enumeration.
type Status int32

const (
	StatusDriverNotStarted Status = 1
	StatusDriverRunning    Status = 2
	StatusDriverAborted    Status = 3
	StatusDriverStopped    Status = 4

	// StatusDecodeFailed is bridge-local: a command payload failed to
	// decode and the driver was never called. It is never produced by
	// a driver, so a caller can always tell it apart from
	// StatusDriverAborted.
	StatusDecodeFailed Status = -1
)

func (stat Status) String() string {
	switch stat {
	case StatusDriverNotStarted:
		return "DRIVER_NOT_STARTED"
	case StatusDriverRunning:
		return "DRIVER_RUNNING"
	case StatusDriverAborted:
		return "DRIVER_ABORTED"
	case StatusDriverStopped:
		return "DRIVER_STOPPED"
	case StatusDecodeFailed:
		return "DECODE_FAILED"
	}
	return "DRIVER_STATUS_UNKNOWN"
}
