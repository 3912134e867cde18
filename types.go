package schedbridge

// The types below model the subset of the resource-offer protocol the
// bridge's commands and events name. They are plain structs under the
// bridge codec; nested messages are pointers so an absent value stays
// distinguishable from a zero one.

type FrameworkID struct {
	Value string `codec:"value"`
}

type OfferID struct {
	Value string `codec:"value"`
}

type SlaveID struct {
	Value string `codec:"value"`
}

type ExecutorID struct {
	Value string `codec:"value"`
}

type TaskID struct {
	Value string `codec:"value"`
}

// FrameworkInfo describes a framework to the master. ID stays nil
// until the master assigns one through the registered event.
type FrameworkInfo struct {
	User            string       `codec:"user"`
	Name            string       `codec:"name"`
	ID              *FrameworkID `codec:"id,omitempty"`
	FailoverTimeout float64      `codec:"failover_timeout,omitempty"`
	Checkpoint      bool         `codec:"checkpoint,omitempty"`
	Role            string       `codec:"role,omitempty"`
	Hostname        string       `codec:"hostname,omitempty"`
	Principal       string       `codec:"principal,omitempty"`
}

type Credential struct {
	Principal string `codec:"principal"`
	Secret    string `codec:"secret,omitempty"`
}

type MasterInfo struct {
	ID       string `codec:"id"`
	IP       uint32 `codec:"ip"`
	Port     uint32 `codec:"port"`
	Hostname string `codec:"hostname,omitempty"`
}

// Resource is a named scalar amount offered by or requested from a
// slave, e.g. "cpus" or "mem".
type Resource struct {
	Name   string  `codec:"name"`
	Scalar float64 `codec:"scalar"`
	Role   string  `codec:"role,omitempty"`
}

type Offer struct {
	ID          *OfferID     `codec:"id"`
	FrameworkID *FrameworkID `codec:"framework_id"`
	SlaveID     *SlaveID     `codec:"slave_id"`
	Hostname    string       `codec:"hostname"`
	Resources   []*Resource  `codec:"resources,omitempty"`
}

// Filters qualifies an accept or decline of offers. RefuseSeconds
// asks the master to withhold the declined resources for that long.
type Filters struct {
	RefuseSeconds float64 `codec:"refuse_seconds,omitempty"`
}

type CommandInfo struct {
	Value     string   `codec:"value"`
	Arguments []string `codec:"arguments,omitempty"`
}

type TaskInfo struct {
	Name      string       `codec:"name"`
	TaskID    *TaskID      `codec:"task_id"`
	SlaveID   *SlaveID     `codec:"slave_id"`
	Resources []*Resource  `codec:"resources,omitempty"`
	Command   *CommandInfo `codec:"command,omitempty"`
	Data      []byte       `codec:"data,omitempty"`
}

// OperationType enumerates the operations an offer can be accepted
// with. The values mirror the native protocol.
type OperationType int32

const (
	OperationLaunch    OperationType = 1
	OperationReserve   OperationType = 2
	OperationUnreserve OperationType = 3
	OperationCreate    OperationType = 4
	OperationDestroy   OperationType = 5
)

func (op OperationType) String() string {
	switch op {
	case OperationLaunch:
		return "LAUNCH"
	case OperationReserve:
		return "RESERVE"
	case OperationUnreserve:
		return "UNRESERVE"
	case OperationCreate:
		return "CREATE"
	case OperationDestroy:
		return "DESTROY"
	}
	return "OPERATION_UNKNOWN"
}

// OfferOperation is one operation applied to accepted offers. Launch
// is set for OperationLaunch; the resource operations share Resources.
type OfferOperation struct {
	Type      OperationType    `codec:"type"`
	Launch    *LaunchOperation `codec:"launch,omitempty"`
	Resources []*Resource      `codec:"resources,omitempty"`
}

type LaunchOperation struct {
	Tasks []*TaskInfo `codec:"task_infos,omitempty"`
}

// Request asks the master for resources, optionally on a given slave.
type Request struct {
	SlaveID   *SlaveID    `codec:"slave_id,omitempty"`
	Resources []*Resource `codec:"resources,omitempty"`
}

type TaskState int32

const (
	TaskStarting TaskState = 0
	TaskRunning  TaskState = 1
	TaskFinished TaskState = 2
	TaskFailed   TaskState = 3
	TaskKilled   TaskState = 4
	TaskLost     TaskState = 5
	TaskStaging  TaskState = 6
)

func (state TaskState) String() string {
	switch state {
	case TaskStaging:
		return "TASK_STAGING"
	case TaskStarting:
		return "TASK_STARTING"
	case TaskRunning:
		return "TASK_RUNNING"
	case TaskFinished:
		return "TASK_FINISHED"
	case TaskFailed:
		return "TASK_FAILED"
	case TaskKilled:
		return "TASK_KILLED"
	case TaskLost:
		return "TASK_LOST"
	}
	return "TASK_STATE_UNKNOWN"
}

type TaskStatus struct {
	TaskID    *TaskID   `codec:"task_id"`
	State     TaskState `codec:"state"`
	Message   string    `codec:"message,omitempty"`
	Data      []byte    `codec:"data,omitempty"`
	SlaveID   *SlaveID  `codec:"slave_id,omitempty"`
	Timestamp float64   `codec:"timestamp,omitempty"`
}

type StatusUpdate struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
	Status      *TaskStatus  `codec:"status"`
	Timestamp   float64      `codec:"timestamp,omitempty"`
	UUID        []byte       `codec:"uuid,omitempty"`
}
