package schedbridge

import (
	"fmt"
	"os"
	"os/user"
	"sync"

	"github.com/dlsniper/debugger"
	"golang.org/x/sync/errgroup"
)

// stopPump ends the driver's event pump.
type stopPump struct{}

/*
SchedulerDriver is the HTTP Driver of this package. It registers the
framework with a master over the libprocess wire protocol, runs a
scheduler process to receive master events, and feeds those events
one at a time to the bound Scheduler. The driver status moves
NOT_STARTED to RUNNING to STOPPED or ABORTED and never back.
*/
type SchedulerDriver struct {
	Master        string
	Scheduler     Scheduler
	FrameworkInfo *FrameworkInfo

	codec        Codec
	credential   *Credential
	masterClient *masterClient
	schedProc    *schedulerProcess
	eventQ       chan interface{}
	controlQ     chan Status

	mu        sync.Mutex
	status    Status
	connected bool
	failover  bool
	errored   bool

	workers   errgroup.Group
	closeOnce sync.Once
	closeErr  error
}

func httpDriverFactory(scheduler Scheduler, framework *FrameworkInfo, master string, credential *Credential, c Codec) (Driver, error) {
	return newSchedDriver(scheduler, framework, master, credential, c)
}

// NewSchedDriver creates an HTTP driver using DefaultCodec. The
// framework's user and hostname default to the current process when
// unset.
func NewSchedDriver(scheduler Scheduler, framework *FrameworkInfo, master string) (*SchedulerDriver, error) {
	return newSchedDriver(scheduler, framework, master, nil, DefaultCodec)
}

func newSchedDriver(scheduler Scheduler, framework *FrameworkInfo, master string, credential *Credential, c Codec) (*SchedulerDriver, error) {
	if master == "" {
		return nil, fmt.Errorf("missing master address")
	}

	if framework == nil {
		return nil, fmt.Errorf("missing FrameworkInfo")
	}

	// set default userid
	if framework.User == "" {
		u, err := user.Current()
		if err != nil || u == nil {
			framework.User = "unknown"
		} else {
			framework.User = u.Username
		}
	}

	// set default hostname
	if framework.Hostname == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "unknown"
		}
		framework.Hostname = host
	}

	driver := &SchedulerDriver{
		Master:        master,
		Scheduler:     scheduler,
		FrameworkInfo: framework,
		codec:         c,
		credential:    credential,
		eventQ:        make(chan interface{}, 10),
		controlQ:      make(chan Status, 1),
		status:        StatusDriverNotStarted,
	}

	proc, err := newSchedulerProcess(driver.eventQ, c)
	if err != nil {
		return nil, err
	}
	driver.schedProc = proc

	driver.masterClient = newMasterClient(master, c)

	driver.workers.Go(driver.pumpEvents)

	return driver, nil
}

// Status reports the current driver status.
func (driver *SchedulerDriver) Status() Status {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.status
}

// Start brings up the scheduler process and registers the framework
// with the master. A failure to do either aborts the driver.
func (driver *SchedulerDriver) Start() Status {
	driver.mu.Lock()
	if driver.status != StatusDriverNotStarted {
		stat := driver.status
		driver.mu.Unlock()
		return stat
	}
	driver.mu.Unlock()

	if err := driver.schedProc.start(); err != nil {
		driver.setStatus(StatusDriverAborted)
		driver.eventQ <- err
		return StatusDriverAborted
	}
	driver.workers.Go(driver.schedProc.serve)

	err := driver.masterClient.RegisterFramework(driver.schedProc.processID, driver.FrameworkInfo, driver.credential)
	if err != nil {
		driver.setStatus(StatusDriverAborted)
		driver.eventQ <- fmt.Errorf("failed to register the framework: %w", err)
		return StatusDriverAborted
	}

	driver.setStatus(StatusDriverRunning)
	log.Infof("Started scheduler process [%s] for framework [%s].", driver.schedProc.processID.value, driver.FrameworkInfo.Name)
	return StatusDriverRunning
}

// Join blocks the calling goroutine until the driver leaves the
// RUNNING status and returns the terminal status. Only one goroutine
// may Join a driver.
func (driver *SchedulerDriver) Join() Status {
	driver.mu.Lock()
	if driver.status != StatusDriverRunning {
		stat := driver.status
		driver.mu.Unlock()
		return stat
	}
	driver.mu.Unlock()
	return <-driver.controlQ
}

// Stop unregisters the framework unless a failover is intended and
// leaves the driver STOPPED.
func (driver *SchedulerDriver) Stop(failover bool) Status {
	log.Infof("Stopping framework [%s].", driver.FrameworkInfo.Name)
	driver.mu.Lock()
	if driver.status != StatusDriverRunning {
		stat := driver.status
		driver.mu.Unlock()
		return stat
	}
	connected := driver.connected
	driver.mu.Unlock()

	if connected && !failover {
		err := driver.masterClient.UnregisterFramework(driver.schedProc.processID, driver.frameworkID())
		if err != nil {
			log.Errorf("Failed to unregister the framework: %v", err)
		}
	}

	driver.mu.Lock()
	driver.status = StatusDriverStopped
	driver.connected = false
	driver.failover = failover
	driver.mu.Unlock()

	driver.signal(StatusDriverStopped)
	return StatusDriverStopped
}

// Abort deactivates the framework at the master and leaves the
// driver ABORTED. The scheduler process keeps running until Close so
// a terminal status never races the HTTP server teardown.
func (driver *SchedulerDriver) Abort() Status {
	log.Infof("Aborting framework [%s].", driver.FrameworkInfo.Name)
	driver.mu.Lock()
	if driver.status != StatusDriverRunning {
		stat := driver.status
		driver.mu.Unlock()
		return stat
	}
	connected := driver.connected
	driver.mu.Unlock()

	if !connected {
		log.Info("Not sending deactivate message, master is disconnected.")
	} else {
		err := driver.masterClient.DeactivateFramework(driver.schedProc.processID, driver.frameworkID())
		if err != nil {
			log.Errorf("Failed to deactivate the framework: %v", err)
		}
	}

	driver.mu.Lock()
	driver.status = StatusDriverAborted
	driver.mu.Unlock()

	driver.signal(StatusDriverAborted)
	return StatusDriverAborted
}

func (driver *SchedulerDriver) AcceptOffers(offerIDs []*OfferID, operations []*OfferOperation, filters *Filters) Status {
	if stat, ok := driver.runningAndConnected("accept offers"); !ok {
		return stat
	}
	err := driver.masterClient.AcceptOffers(driver.schedProc.processID, driver.frameworkID(), offerIDs, operations, filters)
	if err != nil {
		driver.eventQ <- fmt.Errorf("failed to accept offers: %w", err)
	}
	return driver.Status()
}

func (driver *SchedulerDriver) DeclineOffer(offerID *OfferID, filters *Filters) Status {
	// a decline is a launch of zero tasks against the offer
	return driver.LaunchTasks(offerID, nil, filters)
}

func (driver *SchedulerDriver) LaunchTasks(offerID *OfferID, tasks []*TaskInfo, filters *Filters) Status {
	if stat, ok := driver.runningAndConnected("launch tasks"); !ok {
		return stat
	}
	err := driver.masterClient.LaunchTasks(driver.schedProc.processID, driver.frameworkID(), offerID, tasks, filters)
	if err != nil {
		driver.eventQ <- fmt.Errorf("failed to launch tasks: %w", err)
	}
	return driver.Status()
}

func (driver *SchedulerDriver) KillTask(taskID *TaskID) Status {
	if stat, ok := driver.runningAndConnected("kill task"); !ok {
		return stat
	}
	err := driver.masterClient.KillTask(driver.schedProc.processID, driver.frameworkID(), taskID)
	if err != nil {
		driver.eventQ <- fmt.Errorf("failed to kill task: %w", err)
	}
	return driver.Status()
}

func (driver *SchedulerDriver) ReviveOffers() Status {
	if stat, ok := driver.runningAndConnected("revive offers"); !ok {
		return stat
	}
	err := driver.masterClient.ReviveOffers(driver.schedProc.processID, driver.frameworkID())
	if err != nil {
		driver.eventQ <- fmt.Errorf("failed to revive offers: %w", err)
	}
	return driver.Status()
}

func (driver *SchedulerDriver) RequestResources(requests []*Request) Status {
	if stat, ok := driver.runningAndConnected("resource request"); !ok {
		return stat
	}
	err := driver.masterClient.RequestResources(driver.schedProc.processID, driver.frameworkID(), requests)
	if err != nil {
		driver.eventQ <- fmt.Errorf("failed to request resources: %w", err)
	}
	return driver.Status()
}

func (driver *SchedulerDriver) ReconcileTasks(statuses []*TaskStatus) Status {
	if stat, ok := driver.runningAndConnected("task reconciliation"); !ok {
		return stat
	}
	err := driver.masterClient.ReconcileTasks(driver.schedProc.processID, driver.frameworkID(), statuses)
	if err != nil {
		driver.eventQ <- fmt.Errorf("failed to reconcile tasks: %w", err)
	}
	return driver.Status()
}

func (driver *SchedulerDriver) SendFrameworkMessage(executorID *ExecutorID, slaveID *SlaveID, data string) Status {
	if stat, ok := driver.runningAndConnected("framework message"); !ok {
		return stat
	}
	err := driver.masterClient.SendFrameworkMessage(driver.schedProc.processID, driver.frameworkID(), executorID, slaveID, data)
	if err != nil {
		driver.eventQ <- fmt.Errorf("failed to send framework message: %w", err)
	}
	return driver.Status()
}

// Close shuts down the scheduler process and the event pump. Events
// already queued are still dispatched before the pump exits. Close is
// idempotent; calls after the first return the first result.
func (driver *SchedulerDriver) Close() error {
	driver.closeOnce.Do(func() {
		if err := driver.schedProc.stop(); err != nil {
			log.Errorf("Failed to stop the scheduler process: %v", err)
		}
		driver.eventQ <- stopPump{}
		driver.closeErr = driver.workers.Wait()
	})
	return driver.closeErr
}

func (driver *SchedulerDriver) setStatus(stat Status) {
	driver.mu.Lock()
	driver.status = stat
	driver.mu.Unlock()
}

func (driver *SchedulerDriver) frameworkID() *FrameworkID {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.FrameworkInfo.ID
}

// signal wakes a Join without ever blocking the signaling goroutine.
func (driver *SchedulerDriver) signal(stat Status) {
	select {
	case driver.controlQ <- stat:
	default:
	}
}

func (driver *SchedulerDriver) runningAndConnected(command string) (Status, bool) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.status != StatusDriverRunning {
		return driver.status, false
	}
	if !driver.connected {
		log.Infof("Ignoring %s message, master is disconnected.", command)
		return driver.status, false
	}
	return driver.status, true
}

// pumpEvents drains the event queue and invokes the scheduler
// callbacks one at a time, preserving the order events arrived in.
func (driver *SchedulerDriver) pumpEvents() error {
	debugger.SetLabels(func() []string {
		return []string{
			"pkg", "schedbridge",
			"proc", "driver-pump",
			"framework", driver.FrameworkInfo.Name,
		}
	})

	for {
		event := <-driver.eventQ
		if _, stop := event.(stopPump); stop {
			return nil
		}
		driver.handleEvent(event)
	}
}

func (driver *SchedulerDriver) handleEvent(event interface{}) {
	sched := driver.Scheduler
	if sched == nil {
		log.Warn("Scheduler not set, no callback will be invoked.")
	}

	switch msg := event.(type) {
	case *FrameworkRegisteredMessage:
		driver.handleRegistered(msg)

	case *FrameworkReregisteredMessage:
		driver.handleReregistered(msg)

	case *ResourceOffersMessage:
		driver.handleResourceOffers(msg)

	case *RescindResourceOfferMessage:
		if sched != nil {
			sched.OfferRescinded(driver, msg.OfferID)
		}

	case *StatusUpdateMessage:
		if msg.Update == nil || msg.Update.Status == nil {
			log.Warn("Ignoring status update event without a task status.")
			return
		}
		if sched != nil {
			sched.StatusUpdate(driver, msg.Update.Status)
		}

	case *ExecutorToFrameworkMessage:
		if sched != nil {
			sched.FrameworkMessage(driver, msg.ExecutorID, msg.SlaveID, msg.Data)
		}

	case *LostSlaveMessage:
		if sched != nil {
			sched.SlaveLost(driver, msg.SlaveID)
		}

	case *ExitedExecutorMessage:
		if sched != nil {
			sched.ExecutorLost(driver, msg.ExecutorID, msg.SlaveID, msg.Status)
		}

	case *FrameworkErrorMessage:
		driver.driverError(msg.Message)

	case error:
		driver.driverError(msg.Error())

	default:
		driver.driverError("driver received an unexpected event")
	}
}

func (driver *SchedulerDriver) handleRegistered(msg *FrameworkRegisteredMessage) {
	driver.mu.Lock()
	if driver.status == StatusDriverAborted {
		driver.mu.Unlock()
		log.Info("Ignoring registered event, the driver is aborted.")
		return
	}
	if driver.connected {
		driver.mu.Unlock()
		log.Info("Ignoring registered event, the driver is already connected.")
		return
	}

	//TODO detect if message was from leading-master (sched.cpp)

	driver.connected = true
	driver.failover = false
	driver.FrameworkInfo.ID = msg.FrameworkID
	driver.mu.Unlock()

	if msg.FrameworkID != nil {
		log.Infof("Framework registered with ID [%s].", msg.FrameworkID.Value)
	}
	if driver.Scheduler != nil {
		driver.Scheduler.Registered(driver, msg.FrameworkID, msg.MasterInfo)
	}
}

func (driver *SchedulerDriver) handleReregistered(msg *FrameworkReregisteredMessage) {
	driver.mu.Lock()
	if driver.status == StatusDriverAborted {
		driver.mu.Unlock()
		log.Info("Ignoring reregistered event, the driver is aborted.")
		return
	}
	if driver.connected {
		driver.mu.Unlock()
		log.Info("Ignoring reregistered event, the driver is already connected.")
		return
	}

	driver.connected = true
	driver.failover = false
	driver.mu.Unlock()

	if msg.FrameworkID != nil {
		log.Infof("Framework re-registered with ID [%s].", msg.FrameworkID.Value)
	}
	if driver.Scheduler != nil {
		driver.Scheduler.Reregistered(driver, msg.MasterInfo)
	}
}

func (driver *SchedulerDriver) handleResourceOffers(msg *ResourceOffersMessage) {
	driver.mu.Lock()
	if driver.status == StatusDriverAborted {
		driver.mu.Unlock()
		log.Info("Ignoring resource offers event, the driver is aborted.")
		return
	}
	if !driver.connected {
		driver.mu.Unlock()
		log.Info("Ignoring resource offers event, the driver is not connected.")
		return
	}
	driver.mu.Unlock()

	if driver.Scheduler != nil {
		driver.Scheduler.ResourceOffers(driver, msg.Offers)
	}
}

// driverError aborts the driver and dispatches the error callback.
// At most one error is ever dispatched per driver.
func (driver *SchedulerDriver) driverError(message string) {
	driver.mu.Lock()
	if driver.errored {
		driver.mu.Unlock()
		log.Debugf("Ignoring error, one was already dispatched: %s", message)
		return
	}
	driver.errored = true
	if driver.status == StatusDriverNotStarted || driver.status == StatusDriverRunning {
		driver.status = StatusDriverAborted
	}
	stat := driver.status
	driver.mu.Unlock()

	log.Errorf("Driver error: %s", message)
	driver.signal(stat)
	if driver.Scheduler != nil {
		driver.Scheduler.Error(driver, message)
	}
}
