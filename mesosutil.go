package schedbridge

func NewFrameworkID(id string) *FrameworkID {
	return &FrameworkID{Value: id}
}

func NewFrameworkInfo(user, name string, frameworkID *FrameworkID) *FrameworkInfo {
	return &FrameworkInfo{
		User: user,
		Name: name,
		ID:   frameworkID,
	}
}

func NewCredential(principal, secret string) *Credential {
	return &Credential{Principal: principal, Secret: secret}
}

func NewMasterInfo(id string, ip, port uint32) *MasterInfo {
	return &MasterInfo{
		ID:   id,
		IP:   ip,
		Port: port,
	}
}

func NewOfferID(id string) *OfferID {
	return &OfferID{Value: id}
}

func NewOffer(offerID *OfferID, frameworkID *FrameworkID, slaveID *SlaveID, hostname string) *Offer {
	return &Offer{
		ID:          offerID,
		FrameworkID: frameworkID,
		SlaveID:     slaveID,
		Hostname:    hostname,
	}
}

func NewSlaveID(id string) *SlaveID {
	return &SlaveID{Value: id}
}

func NewExecutorID(id string) *ExecutorID {
	return &ExecutorID{Value: id}
}

func NewTaskID(id string) *TaskID {
	return &TaskID{Value: id}
}

func NewScalarResource(name string, value float64) *Resource {
	return &Resource{Name: name, Scalar: value}
}

func NewTaskInfo(name string, taskID *TaskID, slaveID *SlaveID, resources []*Resource) *TaskInfo {
	return &TaskInfo{
		Name:      name,
		TaskID:    taskID,
		SlaveID:   slaveID,
		Resources: resources,
	}
}

func NewLaunchOperation(tasks []*TaskInfo) *OfferOperation {
	return &OfferOperation{
		Type:   OperationLaunch,
		Launch: &LaunchOperation{Tasks: tasks},
	}
}

func NewFilters(refuseSeconds float64) *Filters {
	return &Filters{RefuseSeconds: refuseSeconds}
}

func NewRequest(slaveID *SlaveID, resources []*Resource) *Request {
	return &Request{SlaveID: slaveID, Resources: resources}
}

func NewTaskStatus(taskID *TaskID, state TaskState) *TaskStatus {
	return &TaskStatus{
		TaskID: taskID,
		State:  state,
	}
}

func NewStatusUpdate(frameworkID *FrameworkID, taskStatus *TaskStatus, timestamp float64, uuid []byte) *StatusUpdate {
	return &StatusUpdate{
		FrameworkID: frameworkID,
		Status:      taskStatus,
		Timestamp:   timestamp,
		UUID:        uuid,
	}
}
