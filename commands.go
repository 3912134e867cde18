package schedbridge

// The command operations of a Handle decode their payloads first, in
// argument order, and only then touch the driver. One bad payload
// fails the whole command with (StatusDecodeFailed, *DecodeError) and
// zero driver calls; otherwise the driver is called exactly once and
// its status is passed through untouched.

func (handle *Handle) Start() (Status, error) {
	handle.assertLive("Start")
	return handle.driver.Start(), nil
}

// Join blocks until the driver terminates and reports the terminal
// status.
func (handle *Handle) Join() (Status, error) {
	handle.assertLive("Join")
	return handle.driver.Join(), nil
}

func (handle *Handle) Abort() (Status, error) {
	handle.assertLive("Abort")
	return handle.driver.Abort(), nil
}

func (handle *Handle) Stop(failover bool) (Status, error) {
	handle.assertLive("Stop")
	return handle.driver.Stop(failover), nil
}

func (handle *Handle) AcceptOffers(offerIDs [][]byte, operations [][]byte, filters []byte) (Status, error) {
	handle.assertLive("AcceptOffers")
	ids, err := decodePayloads[OfferID](handle.codec, offerIDs, "OfferID")
	if err != nil {
		return StatusDecodeFailed, err
	}
	ops, err := decodePayloads[OfferOperation](handle.codec, operations, "OfferOperation")
	if err != nil {
		return StatusDecodeFailed, err
	}
	f, err := decodePayload[Filters](handle.codec, filters, "Filters")
	if err != nil {
		return StatusDecodeFailed, err
	}
	return handle.driver.AcceptOffers(ids, ops, f), nil
}

func (handle *Handle) DeclineOffer(offerID []byte, filters []byte) (Status, error) {
	handle.assertLive("DeclineOffer")
	id, err := decodePayload[OfferID](handle.codec, offerID, "OfferID")
	if err != nil {
		return StatusDecodeFailed, err
	}
	f, err := decodePayload[Filters](handle.codec, filters, "Filters")
	if err != nil {
		return StatusDecodeFailed, err
	}
	return handle.driver.DeclineOffer(id, f), nil
}

func (handle *Handle) LaunchTasks(offerID []byte, tasks [][]byte, filters []byte) (Status, error) {
	handle.assertLive("LaunchTasks")
	id, err := decodePayload[OfferID](handle.codec, offerID, "OfferID")
	if err != nil {
		return StatusDecodeFailed, err
	}
	infos, err := decodePayloads[TaskInfo](handle.codec, tasks, "TaskInfo")
	if err != nil {
		return StatusDecodeFailed, err
	}
	f, err := decodePayload[Filters](handle.codec, filters, "Filters")
	if err != nil {
		return StatusDecodeFailed, err
	}
	return handle.driver.LaunchTasks(id, infos, f), nil
}

func (handle *Handle) KillTask(taskID []byte) (Status, error) {
	handle.assertLive("KillTask")
	id, err := decodePayload[TaskID](handle.codec, taskID, "TaskID")
	if err != nil {
		return StatusDecodeFailed, err
	}
	return handle.driver.KillTask(id), nil
}

func (handle *Handle) ReviveOffers() (Status, error) {
	handle.assertLive("ReviveOffers")
	return handle.driver.ReviveOffers(), nil
}

func (handle *Handle) RequestResources(requests [][]byte) (Status, error) {
	handle.assertLive("RequestResources")
	reqs, err := decodePayloads[Request](handle.codec, requests, "Request")
	if err != nil {
		return StatusDecodeFailed, err
	}
	return handle.driver.RequestResources(reqs), nil
}

func (handle *Handle) ReconcileTasks(statuses [][]byte) (Status, error) {
	handle.assertLive("ReconcileTasks")
	sts, err := decodePayloads[TaskStatus](handle.codec, statuses, "TaskStatus")
	if err != nil {
		return StatusDecodeFailed, err
	}
	return handle.driver.ReconcileTasks(sts), nil
}

func (handle *Handle) SendFrameworkMessage(executorID []byte, slaveID []byte, data string) (Status, error) {
	handle.assertLive("SendFrameworkMessage")
	execID, err := decodePayload[ExecutorID](handle.codec, executorID, "ExecutorID")
	if err != nil {
		return StatusDecodeFailed, err
	}
	slvID, err := decodePayload[SlaveID](handle.codec, slaveID, "SlaveID")
	if err != nil {
		return StatusDecodeFailed, err
	}
	return handle.driver.SendFrameworkMessage(execID, slvID, data), nil
}
