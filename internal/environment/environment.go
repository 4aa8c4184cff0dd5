package environment

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/relayworks/actuator-agent/internal/constants"
)

type Environment struct {
	Agent
}

type Agent struct {
	HTTPAddr    string
	LogfilePath string
	LogLevel    string

	WirelessSSID string `validate:"required"`
	WirelessPSK  string `validate:"required"`
	ProbeHost    string

	OutputPin int `validate:"gte=0"`

	WebhookURL  string `validate:"omitempty,url"`
	NATSURL     string
	JournalPath string
}

func New() (e Environment, err error) {
	v := viper.New()
	v.SetEnvPrefix("ACTUATOR")
	v.AutomaticEnv()

	// wireless settings, consumed as an opaque record; credential formats are
	// the wireless stack's business.
	e.Agent.WirelessSSID = v.GetString("WIFI_SSID")
	e.Agent.WirelessPSK = v.GetString("WIFI_PSK")
	e.Agent.ProbeHost = v.GetString("PROBE_HOST")
	if lo.IsEmpty(e.Agent.ProbeHost) {
		e.Agent.ProbeHost = constants.DefaultProbeHost
	}

	// agent settings
	e.Agent.HTTPAddr = v.GetString("HTTP_ADDR")
	if lo.IsEmpty(e.Agent.HTTPAddr) {
		e.Agent.HTTPAddr = constants.DefaultHTTPAddr
	}

	e.Agent.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.Agent.LogfilePath) {
		e.Agent.LogfilePath = constants.DefaultLogfilePath
	}

	e.Agent.LogLevel = v.GetString("LOG_LEVEL")
	if lo.IsEmpty(e.Agent.LogLevel) {
		e.Agent.LogLevel = "info"
	}

	if v.IsSet("OUTPUT_PIN") {
		e.Agent.OutputPin = v.GetInt("OUTPUT_PIN")
	} else {
		e.Agent.OutputPin = constants.DefaultOutputPin
	}

	// notification settings
	e.Agent.WebhookURL = v.GetString("ALERT_WEBHOOK_URL")
	e.Agent.NATSURL = v.GetString("NATS_URL")

	e.Agent.JournalPath = v.GetString("JOURNAL_PATH")
	if lo.IsEmpty(e.Agent.JournalPath) {
		e.Agent.JournalPath = constants.DefaultJournalPath
	}

	if err = validator.New().Struct(e.Agent); err != nil {
		return e, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug"
}
