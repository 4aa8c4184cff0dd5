package main

import (
	"net/http"

	"github.com/relayworks/actuator-agent/infrastructure"
	"github.com/relayworks/actuator-agent/internal/constants"
)

func getHTTPRoutes(injector infrastructure.IInjector) http.Handler {
	commandHandler := injector.InjectCommandHandler()
	journalHandler := injector.InjectJournalHandler()
	scheduleHandler := injector.InjectScheduleHandler()
	streamService := injector.InjectStreamService()

	mux := http.NewServeMux()
	mux.HandleFunc(constants.PathTurnOn, commandHandler.TurnOn)
	mux.HandleFunc(constants.PathTurnOff, commandHandler.TurnOff)
	mux.HandleFunc(constants.PathStatus, commandHandler.Status)
	mux.HandleFunc(constants.PathEvents, journalHandler.RecentEvents)
	mux.HandleFunc("GET "+constants.PathSchedule, scheduleHandler.GetSchedule)
	mux.HandleFunc("POST "+constants.PathSchedule, scheduleHandler.SetSchedule)
	mux.HandleFunc(constants.PathStream, streamService.Subscribe)

	// everything else is an unsupported command
	mux.HandleFunc("/", commandHandler.NotFound)

	return mux
}
