package apierrors

const (
	MsgInvalidUserScope = "invalidUserScope"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidEventID      = "invalidEventID"
	MsgInvalidEventPayload = "invalidEventPayload"
	MsgEventNotFound       = "eventNotFound"
	MsgFailFetchSchedule   = "failFetchSchedule"
	MsgFailCreateEvent     = "failCreateEvent"
	MsgFailUpdateEvent     = "failUpdateEvent"
	MsgFailDeleteEvent     = "failDeleteEvent"
)
