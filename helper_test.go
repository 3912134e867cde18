package schedbridge

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// badPayload decodes as a bare string under every codec handle, never
// as a structured value.
var badPayload = []byte("this is not a payload")

func makeMockServer(handler func(rsp http.ResponseWriter, req *http.Request)) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(handler))
	log.Println("Created server " + server.URL)
	return server
}

func makeMockFrameworkInfo() *FrameworkInfo {
	return &FrameworkInfo{
		User: "test-user",
		Name: "test-name",
		ID:   &FrameworkID{Value: "test-framework-1"},
	}
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := DefaultCodec.Marshal(v)
	if err != nil {
		t.Fatal("Unable to marshal test payload:", err)
	}
	return data
}

// recordingRecipient captures delivered events in order.
type recordingRecipient struct {
	mu     sync.Mutex
	events []Event
}

func (rec *recordingRecipient) Deliver(ev Event) {
	rec.mu.Lock()
	rec.events = append(rec.events, ev)
	rec.mu.Unlock()
}

func (rec *recordingRecipient) list() []Event {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]Event(nil), rec.events...)
}

// mockScheduler implements Scheduler with optional per-callback
// functions, so a test only wires the callbacks it cares about.
type mockScheduler struct {
	registered       func(Driver, *FrameworkID, *MasterInfo)
	reregistered     func(Driver, *MasterInfo)
	disconnected     func(Driver)
	resourceOffers   func(Driver, []*Offer)
	offerRescinded   func(Driver, *OfferID)
	statusUpdate     func(Driver, *TaskStatus)
	frameworkMessage func(Driver, *ExecutorID, *SlaveID, string)
	slaveLost        func(Driver, *SlaveID)
	executorLost     func(Driver, *ExecutorID, *SlaveID, int)
	errorCB          func(Driver, string)
}

func (sched *mockScheduler) Registered(driver Driver, frameworkID *FrameworkID, masterInfo *MasterInfo) {
	if sched.registered != nil {
		sched.registered(driver, frameworkID, masterInfo)
	}
}

func (sched *mockScheduler) Reregistered(driver Driver, masterInfo *MasterInfo) {
	if sched.reregistered != nil {
		sched.reregistered(driver, masterInfo)
	}
}

func (sched *mockScheduler) Disconnected(driver Driver) {
	if sched.disconnected != nil {
		sched.disconnected(driver)
	}
}

func (sched *mockScheduler) ResourceOffers(driver Driver, offers []*Offer) {
	if sched.resourceOffers != nil {
		sched.resourceOffers(driver, offers)
	}
}

func (sched *mockScheduler) OfferRescinded(driver Driver, offerID *OfferID) {
	if sched.offerRescinded != nil {
		sched.offerRescinded(driver, offerID)
	}
}

func (sched *mockScheduler) StatusUpdate(driver Driver, taskStatus *TaskStatus) {
	if sched.statusUpdate != nil {
		sched.statusUpdate(driver, taskStatus)
	}
}

func (sched *mockScheduler) FrameworkMessage(driver Driver, executorID *ExecutorID, slaveID *SlaveID, data string) {
	if sched.frameworkMessage != nil {
		sched.frameworkMessage(driver, executorID, slaveID, data)
	}
}

func (sched *mockScheduler) SlaveLost(driver Driver, slaveID *SlaveID) {
	if sched.slaveLost != nil {
		sched.slaveLost(driver, slaveID)
	}
}

func (sched *mockScheduler) ExecutorLost(driver Driver, executorID *ExecutorID, slaveID *SlaveID, status int) {
	if sched.executorLost != nil {
		sched.executorLost(driver, executorID, slaveID, status)
	}
}

func (sched *mockScheduler) Error(driver Driver, message string) {
	if sched.errorCB != nil {
		sched.errorCB(driver, message)
	}
}

// fakeDriver records every call it receives and reports a fixed
// status, standing in for the HTTP driver in bridge tests.
type fakeDriver struct {
	status Status

	startCalls int
	joinCalls  int
	abortCalls int
	stopCalls  int
	failover   bool
	closeCalls int

	acceptOfferIDs   []*OfferID
	acceptOperations []*OfferOperation
	acceptFilters    *Filters
	acceptCalls      int

	launchOfferID *OfferID
	launchTasks   []*TaskInfo
	launchFilters *Filters
	launchCalls   int

	declineOfferID *OfferID
	declineFilters *Filters
	declineCalls   int

	killedTaskID *TaskID
	killCalls    int

	reviveCalls int

	requests     []*Request
	requestCalls int

	reconciled     []*TaskStatus
	reconcileCalls int

	msgExecutorID *ExecutorID
	msgSlaveID    *SlaveID
	msgData       string
	msgCalls      int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{status: StatusDriverRunning}
}

func (fd *fakeDriver) Start() Status {
	fd.startCalls++
	return fd.status
}

func (fd *fakeDriver) Join() Status {
	fd.joinCalls++
	return fd.status
}

func (fd *fakeDriver) Abort() Status {
	fd.abortCalls++
	fd.status = StatusDriverAborted
	return fd.status
}

func (fd *fakeDriver) Stop(failover bool) Status {
	fd.stopCalls++
	fd.failover = failover
	fd.status = StatusDriverStopped
	return fd.status
}

func (fd *fakeDriver) AcceptOffers(offerIDs []*OfferID, operations []*OfferOperation, filters *Filters) Status {
	fd.acceptCalls++
	fd.acceptOfferIDs = offerIDs
	fd.acceptOperations = operations
	fd.acceptFilters = filters
	return fd.status
}

func (fd *fakeDriver) DeclineOffer(offerID *OfferID, filters *Filters) Status {
	fd.declineCalls++
	fd.declineOfferID = offerID
	fd.declineFilters = filters
	return fd.status
}

func (fd *fakeDriver) LaunchTasks(offerID *OfferID, tasks []*TaskInfo, filters *Filters) Status {
	fd.launchCalls++
	fd.launchOfferID = offerID
	fd.launchTasks = tasks
	fd.launchFilters = filters
	return fd.status
}

func (fd *fakeDriver) KillTask(taskID *TaskID) Status {
	fd.killCalls++
	fd.killedTaskID = taskID
	return fd.status
}

func (fd *fakeDriver) ReviveOffers() Status {
	fd.reviveCalls++
	return fd.status
}

func (fd *fakeDriver) RequestResources(requests []*Request) Status {
	fd.requestCalls++
	fd.requests = requests
	return fd.status
}

func (fd *fakeDriver) ReconcileTasks(statuses []*TaskStatus) Status {
	fd.reconcileCalls++
	fd.reconciled = statuses
	return fd.status
}

func (fd *fakeDriver) SendFrameworkMessage(executorID *ExecutorID, slaveID *SlaveID, data string) Status {
	fd.msgCalls++
	fd.msgExecutorID = executorID
	fd.msgSlaveID = slaveID
	fd.msgData = data
	return fd.status
}

func (fd *fakeDriver) Close() error {
	fd.closeCalls++
	return nil
}
