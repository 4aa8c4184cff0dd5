package constants

const (
	PathTurnOn   = "/on"
	PathTurnOff  = "/off"
	PathStatus   = "/status"
	PathEvents   = "/events"
	PathSchedule = "/schedule"
	PathStream   = "/ws"
)
