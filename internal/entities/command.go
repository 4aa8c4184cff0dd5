package entities

type Command string

const (
	CommandTurnOn  Command = "turn_on"
	CommandTurnOff Command = "turn_off"
	CommandQuery   Command = "query"
)

func (c Command) String() string {
	return string(c)
}
