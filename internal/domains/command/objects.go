package command

import (
	"github.com/relayworks/actuator-agent/internal/entities"
)

type commandResult struct {
	state entities.ActuatorState
	err   error
}

type commandData struct {
	command    entities.Command
	resultChan chan commandResult
}

func newCommandData(command entities.Command) commandData {
	return commandData{
		command:    command,
		resultChan: make(chan commandResult, 1),
	}
}
