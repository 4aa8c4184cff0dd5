package entities

import "strings"

type ActuatorState string

const (
	ActuatorStateOff ActuatorState = "off"
	ActuatorStateOn  ActuatorState = "on"
)

func (s ActuatorState) String() string {
	return string(s)
}

// Text renders the state the way the command channel reports it ("ON"/"OFF").
func (s ActuatorState) Text() string {
	return strings.ToUpper(string(s))
}
