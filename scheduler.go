package schedbridge

/*
Scheduler receives the asynchronous callbacks of a Driver. The driver
invokes the methods one at a time from its own goroutine; an
implementation must not assume the caller's goroutine and must not
block it longer than it has to.
*/
type Scheduler interface {
	Registered(driver Driver, frameworkID *FrameworkID, masterInfo *MasterInfo)
	Reregistered(driver Driver, masterInfo *MasterInfo)
	Disconnected(driver Driver)
	ResourceOffers(driver Driver, offers []*Offer)
	OfferRescinded(driver Driver, offerID *OfferID)
	StatusUpdate(driver Driver, taskStatus *TaskStatus)
	FrameworkMessage(driver Driver, executorID *ExecutorID, slaveID *SlaveID, data string)
	SlaveLost(driver Driver, slaveID *SlaveID)
	ExecutorLost(driver Driver, executorID *ExecutorID, slaveID *SlaveID, status int)
	Error(driver Driver, message string)
}

/*
Driver is the synchronous command surface of a scheduler driver.
Start, Join, Abort and Stop manage the driver lifecycle; the rest
forward framework commands to the master. Every method reports the
driver status after the call. Join blocks until the driver reaches a
terminal status. Close releases the driver's resources and is called
exactly once, after the driver has terminated.
*/
type Driver interface {
	Start() Status
	Join() Status
	Abort() Status
	Stop(failover bool) Status

	AcceptOffers(offerIDs []*OfferID, operations []*OfferOperation, filters *Filters) Status
	DeclineOffer(offerID *OfferID, filters *Filters) Status
	LaunchTasks(offerID *OfferID, tasks []*TaskInfo, filters *Filters) Status
	KillTask(taskID *TaskID) Status
	ReviveOffers() Status
	RequestResources(requests []*Request) Status
	ReconcileTasks(statuses []*TaskStatus) Status
	SendFrameworkMessage(executorID *ExecutorID, slaveID *SlaveID, data string) Status

	Close() error
}

// DriverFactory builds the Driver a bridge handle will own. The
// default factory returns the HTTP driver of this package; tests
// substitute doubles.
type DriverFactory func(scheduler Scheduler, framework *FrameworkInfo, master string, credential *Credential, c Codec) (Driver, error)
