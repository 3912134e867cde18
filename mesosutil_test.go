package schedbridge

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestNewFrameworkID(t *testing.T) {
	id := NewFrameworkID("test-id")
	if id == nil {
		t.Fatal("Not creating FrameworkID.")
	}
	if id.Value != "test-id" {
		t.Fatal("FrameworkID not returning expected value.")
	}
}

func TestNewFrameworkInfo(t *testing.T) {
	info := NewFrameworkInfo("test-user", "test-name", NewFrameworkID("test-id"))
	info.Hostname = "localhost"
	if info.User != "test-user" {
		t.Fatal("FrameworkInfo.User missing value.")
	}
	if info.Name != "test-name" {
		t.Fatal("FrameworkInfo.Name missing value.")
	}
	if info.ID == nil || info.ID.Value != "test-id" {
		t.Fatal("FrameworkInfo.ID missing value.")
	}
	if info.Hostname != "localhost" {
		t.Fatal("FrameworkInfo.Hostname missing value.")
	}
}

func TestNewCredential(t *testing.T) {
	cred := NewCredential("test-principal", "test-secret")
	if cred.Principal != "test-principal" || cred.Secret != "test-secret" {
		t.Fatal("Credential missing values.")
	}
}

func TestNewMasterInfo(t *testing.T) {
	master := NewMasterInfo("master-1", 1234, 5678)
	if master.ID != "master-1" {
		t.Fatal("MasterInfo.ID missing.")
	}
	if master.IP != 1234 {
		t.Fatal("MasterInfo.IP missing.")
	}
	if master.Port != 5678 {
		t.Fatal("MasterInfo.Port missing.")
	}
}

func TestNewOfferID(t *testing.T) {
	id := NewOfferID("offer-1")
	if id == nil {
		t.Fatal("Not creating OfferID.")
	}
	if id.Value != "offer-1" {
		t.Fatal("OfferID.Value missing.")
	}
}

func TestNewOffer(t *testing.T) {
	offer := NewOffer(NewOfferID("offer-1"), NewFrameworkID("framework-1"), NewSlaveID("slave-1"), "localhost")
	if offer.ID.Value != "offer-1" {
		t.Fatal("Offer.ID missing.")
	}
	if offer.FrameworkID.Value != "framework-1" {
		t.Fatal("Offer.FrameworkID missing.")
	}
	if offer.SlaveID.Value != "slave-1" {
		t.Fatal("Offer.SlaveID missing.")
	}
	if offer.Hostname != "localhost" {
		t.Fatal("Offer.Hostname missing.")
	}
}

func TestNewSlaveID(t *testing.T) {
	id := NewSlaveID("slave-1")
	if id == nil {
		t.Fatal("Not creating SlaveID.")
	}
	if id.Value != "slave-1" {
		t.Fatal("SlaveID.Value missing.")
	}
}

func TestNewTaskID(t *testing.T) {
	id := NewTaskID("task-1")
	if id == nil {
		t.Fatal("Not creating TaskID.")
	}
	if id.Value != "task-1" {
		t.Fatal("TaskID.Value missing.")
	}
}

func TestNewScalarResource(t *testing.T) {
	res := NewScalarResource("cpus", 2.5)
	if res.Name != "cpus" {
		t.Fatal("Resource.Name missing.")
	}
	if res.Scalar != 2.5 {
		t.Fatal("Resource.Scalar missing.")
	}
}

func TestNewTaskInfo(t *testing.T) {
	task := NewTaskInfo(
		"test-task",
		NewTaskID("task-1"),
		NewSlaveID("slave-1"),
		[]*Resource{NewScalarResource("cpus", 1), NewScalarResource("mem", 128)},
	)
	if task.Name != "test-task" {
		t.Fatal("TaskInfo.Name missing.")
	}
	if task.TaskID.Value != "task-1" {
		t.Fatal("TaskInfo.TaskID missing.")
	}
	if task.SlaveID.Value != "slave-1" {
		t.Fatal("TaskInfo.SlaveID missing.")
	}
	if len(task.Resources) != 2 {
		t.Fatal("TaskInfo.Resources missing.")
	}
}

func TestNewLaunchOperation(t *testing.T) {
	op := NewLaunchOperation([]*TaskInfo{
		NewTaskInfo("test-task", NewTaskID("task-1"), NewSlaveID("slave-1"), nil),
	})
	if op.Type != OperationLaunch {
		t.Fatal("OfferOperation.Type not set to LAUNCH.")
	}
	if op.Launch == nil || len(op.Launch.Tasks) != 1 {
		t.Fatal("OfferOperation.Launch missing tasks.")
	}
}

func TestNewFilters(t *testing.T) {
	filters := NewFilters(5.5)
	if filters.RefuseSeconds != 5.5 {
		t.Fatal("Filters.RefuseSeconds missing.")
	}
}

func TestNewRequest(t *testing.T) {
	req := NewRequest(NewSlaveID("slave-1"), []*Resource{NewScalarResource("cpus", 4)})
	if req.SlaveID.Value != "slave-1" {
		t.Fatal("Request.SlaveID missing.")
	}
	if len(req.Resources) != 1 {
		t.Fatal("Request.Resources missing.")
	}
}

func TestNewTaskStatus(t *testing.T) {
	status := NewTaskStatus(NewTaskID("task-1"), TaskRunning)
	if status.TaskID.Value != "task-1" {
		t.Fatal("TaskStatus.TaskID missing.")
	}
	if status.State != TaskRunning {
		t.Fatal("TaskStatus.State missing.")
	}
}

func TestNewStatusUpdate(t *testing.T) {
	u := uuid.New()
	update := NewStatusUpdate(
		NewFrameworkID("framework-1"),
		NewTaskStatus(NewTaskID("task-1"), TaskRunning),
		1234567.2,
		u[:],
	)
	if update.FrameworkID.Value != "framework-1" {
		t.Fatal("StatusUpdate.FrameworkID missing.")
	}
	if update.Status.TaskID.Value != "task-1" {
		t.Fatal("StatusUpdate.Status missing.")
	}
	if update.Timestamp != 1234567.2 {
		t.Fatal("StatusUpdate.Timestamp missing.")
	}
	if !bytes.Equal(update.UUID, u[:]) {
		t.Fatal("StatusUpdate.UUID missing.")
	}
}
