package command

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/relayworks/actuator-agent/internal/entities"
)

var (
	statusHeader = table.Row{"FIELD", "VALUE"}
)

// renderStatus formats the device status to a pretty table.
func renderStatus(linkState entities.LinkState, actuatorState entities.ActuatorState, uptime time.Duration) string {
	t := table.NewWriter()
	t.AppendHeader(statusHeader)
	t.AppendRows([]table.Row{
		{"link", linkState.String()},
		{"output", actuatorState.Text()},
		{"uptime", uptime.Round(time.Second).String()},
	})

	return t.Render()
}
