package infrastructure

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/relayworks/actuator-agent/internal/domains/command"
	"github.com/relayworks/actuator-agent/internal/domains/journal"
	"github.com/relayworks/actuator-agent/internal/domains/schedule"
	"github.com/relayworks/actuator-agent/internal/domains/stream"
	"github.com/relayworks/actuator-agent/internal/environment"
)

type IInjector interface {
	InjectCommandHandler() *command.Handler
	InjectJournalHandler() *journal.Handler
	InjectScheduleHandler() *schedule.Handler
	InjectStreamService() *stream.Service
}

type Kernel struct {
	env environment.Environment

	DB *badger.DB
}

func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	options := badger.DefaultOptions(env.Agent.JournalPath).
		WithLogger(nil).
		WithMemTableSize(64 << 17) // ~8MB

	if k.DB, err = badger.Open(options); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	return k, nil
}

func (k *Kernel) InjectCommandHandler() *command.Handler {
	return command.NewHandler(
		k.InjectCommandService(),
		k.InjectLinkService(),
	)
}

func (k *Kernel) InjectJournalHandler() *journal.Handler {
	return journal.NewHandler(
		k.InjectJournalService(),
	)
}

func (k *Kernel) InjectScheduleHandler() *schedule.Handler {
	return schedule.NewHandler(
		k.InjectScheduleService(),
	)
}
