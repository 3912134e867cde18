package schedbridge

const (
	MESOS_INTERNAL_PREFIX  = "mesos.internal."
	SCHEDULER_PROC_PREFIX  = "scheduler"
	HTTP_SCHEME            = "http"
	HTTP_POST_METHOD       = "POST"
	HTTP_MASTER_PREFIX     = "master"
	HTTP_CONTENT_TYPE      = "application/octet-stream"
	HTTP_JSON_CONTENT_TYPE = "application/json"
)

// calls from sched to master
const (
	REGISTER_FRAMEWORK_CALL    = "RegisterFrameworkMessage"
	UNREGISTER_FRAMEWORK_CALL  = "UnregisterFrameworkMessage"
	DEACTIVATE_FRAMEWORK_CALL  = "DeactivateFrameworkMessage"
	LAUNCH_TASKS_CALL          = "LaunchTasksMessage"
	ACCEPT_OFFERS_CALL         = "AcceptOffersMessage"
	REVIVE_OFFERS_CALL         = "ReviveOffersMessage"
	KILL_TASK_CALL             = "KillTaskMessage"
	RESOURCE_REQUEST_CALL      = "ResourceRequestMessage"
	RECONCILE_TASKS_CALL       = "ReconcileTasksMessage"
	FRAMEWORK_TO_EXECUTOR_CALL = "FrameworkToExecutorMessage"
)

// events from the master
const (
	FRAMEWORK_REGISTERED_EVENT   = "FrameworkRegisteredMessage"
	FRAMEWORK_REREGISTERED_EVENT = "FrameworkReregisteredMessage"
	RESOURCE_OFFERS_EVENT        = "ResourceOffersMessage"
	RESCIND_OFFER_EVENT          = "RescindResourceOfferMessage"
	STATUS_UPDATE_EVENT          = "StatusUpdateMessage"
	FRAMEWORK_MESSAGE_EVENT      = "ExecutorToFrameworkMessage"
	LOST_SLAVE_EVENT             = "LostSlaveMessage"
	EXITED_EXECUTOR_EVENT        = "ExitedExecutorMessage"
	FRAMEWORK_ERROR_EVENT        = "FrameworkErrorMessage"
)
