package schedbridge

// Wire messages exchanged with the master over the libprocess-style
// HTTP transport. The message name in the request path selects the
// type; bodies are encoded with the driver's codec.

type RegisterFrameworkMessage struct {
	Framework  *FrameworkInfo `codec:"framework"`
	Credential *Credential    `codec:"credential,omitempty"`
}

type UnregisterFrameworkMessage struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
}

type DeactivateFrameworkMessage struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
}

// LaunchTasksMessage carries a launch against a single offer. An
// empty Tasks slice declines the offer.
type LaunchTasksMessage struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
	OfferID     *OfferID     `codec:"offer_id"`
	Tasks       []*TaskInfo  `codec:"tasks,omitempty"`
	Filters     *Filters     `codec:"filters,omitempty"`
}

type AcceptOffersMessage struct {
	FrameworkID *FrameworkID      `codec:"framework_id"`
	OfferIDs    []*OfferID        `codec:"offer_ids,omitempty"`
	Operations  []*OfferOperation `codec:"operations,omitempty"`
	Filters     *Filters          `codec:"filters,omitempty"`
}

type ReviveOffersMessage struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
}

type KillTaskMessage struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
	TaskID      *TaskID      `codec:"task_id"`
}

type ResourceRequestMessage struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
	Requests    []*Request   `codec:"requests,omitempty"`
}

type ReconcileTasksMessage struct {
	FrameworkID *FrameworkID  `codec:"framework_id"`
	Statuses    []*TaskStatus `codec:"statuses,omitempty"`
}

type FrameworkToExecutorMessage struct {
	SlaveID     *SlaveID     `codec:"slave_id"`
	FrameworkID *FrameworkID `codec:"framework_id"`
	ExecutorID  *ExecutorID  `codec:"executor_id"`
	Data        string       `codec:"data,omitempty"`
}

type FrameworkRegisteredMessage struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
	MasterInfo  *MasterInfo  `codec:"master_info"`
}

type FrameworkReregisteredMessage struct {
	FrameworkID *FrameworkID `codec:"framework_id"`
	MasterInfo  *MasterInfo  `codec:"master_info"`
}

type ResourceOffersMessage struct {
	Offers []*Offer `codec:"offers,omitempty"`
}

type RescindResourceOfferMessage struct {
	OfferID *OfferID `codec:"offer_id"`
}

type StatusUpdateMessage struct {
	Update *StatusUpdate `codec:"update"`
}

type ExecutorToFrameworkMessage struct {
	SlaveID     *SlaveID     `codec:"slave_id"`
	FrameworkID *FrameworkID `codec:"framework_id"`
	ExecutorID  *ExecutorID  `codec:"executor_id"`
	Data        string       `codec:"data,omitempty"`
}

type LostSlaveMessage struct {
	SlaveID *SlaveID `codec:"slave_id"`
}

type ExitedExecutorMessage struct {
	SlaveID     *SlaveID     `codec:"slave_id"`
	FrameworkID *FrameworkID `codec:"framework_id"`
	ExecutorID  *ExecutorID  `codec:"executor_id"`
	Status      int          `codec:"status"`
}

type FrameworkErrorMessage struct {
	Message string `codec:"message"`
}
