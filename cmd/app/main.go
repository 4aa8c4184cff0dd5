package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/relayworks/actuator-agent/infrastructure"
	"github.com/relayworks/actuator-agent/internal/constants"
	"github.com/relayworks/actuator-agent/internal/domains/httpserver"
	"github.com/relayworks/actuator-agent/internal/environment"
	"github.com/relayworks/actuator-agent/internal/logger"
)

var (
	env            environment.Environment
	httpService    *httpserver.Service
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := setupRollingLogFile(env.Agent.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Logger = log.Output(logWriter)
	if err = logger.SetLogLevel(env.Agent.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().
		Str("agent version", serviceVersion).
		Str("http addr", env.Agent.HTTPAddr).
		Int("output pin", env.Agent.OutputPin).
		Str("log path", env.Agent.LogfilePath).
		Str("log level", env.Agent.LogLevel).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Kill, os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().Msg("main: start initializing app services...")
	if err = initServices(cancelCtx, kernel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel)
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(ctx context.Context, kernel *infrastructure.Kernel) (err error) {
	// the output pin goes to its fail-safe default before anything can command it
	if err = kernel.InjectPinDriver().Init(); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}

	if err = kernel.InjectActuatorService().Init(); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}

	// broker connect is best effort: a device without its broker still switches
	if lo.IsNotEmpty(env.Agent.NATSURL) {
		log.Info().Msg("initServices: connecting to MQ broker...")
		if err = kernel.InjectMQService().Connect(); err != nil {
			log.Error().Err(err).Msg("initServices: connection to message broker failed")
		} else {
			log.Info().Msg("initServices: connected to MQ broker")
		}
	}

	go kernel.InjectAlertService().Run(ctx)
	go kernel.InjectCommandService().Run(ctx)
	go kernel.InjectScheduleService().Run(ctx)

	log.Info().Msg("initServices: starting link manager...")
	go kernel.InjectLinkService().Run(ctx)
	kernel.InjectLinkService().Connect()

	httpService = httpserver.NewService(env.Agent.HTTPAddr, getHTTPRoutes(kernel))
	httpService.Start()
	log.Info().Msg("initServices: command server started")

	return nil
}

func shutdownServices(kernel *infrastructure.Kernel) {
	if err := httpService.Stop(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: http server shutdown error")
	}

	kernel.InjectStreamService().Stop()

	if err := kernel.InjectMQService().Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close MQ error")
	}

	if err := kernel.DB.Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close badger error")
	}
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", statErr)
		}

		// create new log file
		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15,   // megabytes per log file
		MaxAge:     30,   // store retained log files for 30 days
		MaxBackups: 10,   // store maximum 10 retained log files
		Compress:   true, // compress files via gzip
	}, nil
}
