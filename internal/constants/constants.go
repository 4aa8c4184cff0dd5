package constants

import "time"

const (
	DefaultHTTPAddr    = ":8080"
	DefaultLogfilePath = "/var/log/actuator-agent/agent.log"
	DefaultJournalPath = "/var/lib/actuator-agent/journal"
	DefaultOutputPin   = 5
	DefaultProbeHost   = "1.1.1.1"
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
)

const (
	LinkRetryBaseDelay  = time.Second
	LinkRetryMaxDelay   = time.Minute
	LinkProbeInterval   = time.Second * 20
	AlertDeliverTimeout = time.Second * 10
	AlertQueueSize      = 64
)

const (
	JournalRetentionLimit = 500
)
