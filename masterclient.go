package schedbridge

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

type address string

func (addr address) AsFullHttpURL(path string) (*url.URL, error) {
	return url.Parse(HTTP_SCHEME + "://" + string(addr) + "/" + path)
}

func (addr address) AsHttpURL() (*url.URL, error) {
	return addr.AsFullHttpURL("")
}

// masterClient posts framework calls to the master's libprocess
// endpoint at /master/mesos.internal.<MessageName>. Bodies are
// encoded with the driver codec; the sending process identifies
// itself through the Libprocess-From header.
type masterClient struct {
	address    address
	codec      Codec
	httpClient http.Client
}

func newMasterClient(master string, c Codec) *masterClient {
	return &masterClient{
		address: address(master),
		codec:   c,
		httpClient: http.Client{
			Transport: &http.Transport{
				Dial: func(netw, addr string) (net.Conn, error) {
					c, err := net.DialTimeout(netw, addr, time.Second*17)
					if err != nil {
						return nil, err
					}
					return c, nil
				},
				DisableCompression: true,
			},
		},
	}
}

func (client *masterClient) RegisterFramework(from schedProcID, framework *FrameworkInfo, credential *Credential) error {
	msg := &RegisterFrameworkMessage{Framework: framework, Credential: credential}
	return client.send(from, buildReqPath(REGISTER_FRAMEWORK_CALL), msg)
}

func (client *masterClient) UnregisterFramework(from schedProcID, frameworkID *FrameworkID) error {
	msg := &UnregisterFrameworkMessage{FrameworkID: frameworkID}
	return client.send(from, buildReqPath(UNREGISTER_FRAMEWORK_CALL), msg)
}

func (client *masterClient) DeactivateFramework(from schedProcID, frameworkID *FrameworkID) error {
	msg := &DeactivateFrameworkMessage{FrameworkID: frameworkID}
	return client.send(from, buildReqPath(DEACTIVATE_FRAMEWORK_CALL), msg)
}

func (client *masterClient) LaunchTasks(from schedProcID, frameworkID *FrameworkID, offerID *OfferID, tasks []*TaskInfo, filters *Filters) error {
	msg := &LaunchTasksMessage{
		FrameworkID: frameworkID,
		OfferID:     offerID,
		Tasks:       tasks,
		Filters:     filters,
	}
	return client.send(from, buildReqPath(LAUNCH_TASKS_CALL), msg)
}

func (client *masterClient) AcceptOffers(from schedProcID, frameworkID *FrameworkID, offerIDs []*OfferID, operations []*OfferOperation, filters *Filters) error {
	msg := &AcceptOffersMessage{
		FrameworkID: frameworkID,
		OfferIDs:    offerIDs,
		Operations:  operations,
		Filters:     filters,
	}
	return client.send(from, buildReqPath(ACCEPT_OFFERS_CALL), msg)
}

func (client *masterClient) ReviveOffers(from schedProcID, frameworkID *FrameworkID) error {
	msg := &ReviveOffersMessage{FrameworkID: frameworkID}
	return client.send(from, buildReqPath(REVIVE_OFFERS_CALL), msg)
}

func (client *masterClient) KillTask(from schedProcID, frameworkID *FrameworkID, taskID *TaskID) error {
	msg := &KillTaskMessage{FrameworkID: frameworkID, TaskID: taskID}
	return client.send(from, buildReqPath(KILL_TASK_CALL), msg)
}

func (client *masterClient) RequestResources(from schedProcID, frameworkID *FrameworkID, requests []*Request) error {
	msg := &ResourceRequestMessage{FrameworkID: frameworkID, Requests: requests}
	return client.send(from, buildReqPath(RESOURCE_REQUEST_CALL), msg)
}

func (client *masterClient) ReconcileTasks(from schedProcID, frameworkID *FrameworkID, statuses []*TaskStatus) error {
	msg := &ReconcileTasksMessage{FrameworkID: frameworkID, Statuses: statuses}
	return client.send(from, buildReqPath(RECONCILE_TASKS_CALL), msg)
}

func (client *masterClient) SendFrameworkMessage(from schedProcID, frameworkID *FrameworkID, executorID *ExecutorID, slaveID *SlaveID, data string) error {
	msg := &FrameworkToExecutorMessage{
		SlaveID:     slaveID,
		FrameworkID: frameworkID,
		ExecutorID:  executorID,
		Data:        data,
	}
	return client.send(from, buildReqPath(FRAMEWORK_TO_EXECUTOR_CALL), msg)
}

func (client *masterClient) send(from schedProcID, reqPath string, msg interface{}) error {
	u, err := client.address.AsHttpURL()
	if err != nil {
		return err
	}
	u.Path = reqPath

	data, err := client.codec.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(HTTP_POST_METHOD, u.String(), bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", contentTypeOf(client.codec))
	req.Header.Add("Connection", "Keep-Alive")
	req.Header.Add("Libprocess-From", from.value)
	rsp, err := client.httpClient.Do(req)
	if err != nil {
		return err
	}
	rsp.Body.Close()
	if rsp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("master did not accept request %s, returned status %s", u.String(), rsp.Status)
	}
	return nil
}

func buildReqPath(message string) string {
	return "/" + HTTP_MASTER_PREFIX + "/" + MESOS_INTERNAL_PREFIX + message
}
