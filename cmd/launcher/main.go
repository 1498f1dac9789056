package main

import (
	"context"
	"flag"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"stitcher.dev/launcher/internal/configloader"
	"stitcher.dev/launcher/internal/database"
	"stitcher.dev/launcher/internal/database/delegate/sqlite"
	"stitcher.dev/launcher/internal/engine"
	"stitcher.dev/launcher/internal/engine/launcher"
	"stitcher.dev/launcher/internal/interpreter"
	"stitcher.dev/launcher/internal/runner"
	"stitcher.dev/launcher/internal/terminal"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "stitcher"

// Logs once the supporting engines are ready
type readinessHandler struct {
	engines int
}

func (handler *readinessHandler) NotifyStarted() {
	logrus.Debugf("%d supporting engines ready", handler.engines)
}

func main() {
	os.Exit(run(os.Args[1:], terminal.Stdio()))
}

func run(arguments []string, console *terminal.Console) int {
	// Parsing the command line argument to change settings file location
	flags := flag.NewFlagSet(APPLICATION_NAME, flag.ContinueOnError)
	configurationFilePath := flags.String("config", "", "Configuration file path")
	historyLimit := flags.Int("history", 0, "Print the last N recorded launches and exit")
	if err := flags.Parse(arguments); err != nil {
		return 2
	}
	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}
	logrus.Infof("Setting log level to %s", level.String())

	if bi, ok := debug.ReadBuildInfo(); ok {
		logrus.Debug("Launching v.", bi.Main.Version)
	}

	engines := []engine.ApplicationEngine{}
	var history *database.Database
	if configuration.HistoryDatabase != "" {
		history = database.NewDatabase(configuration.HistoryDatabase, &sqlite.SQLiteDelegate{})
		engines = append(engines, history)
	}
	controller := engine.NewController(engines, &readinessHandler{engines: len(engines)})
	defer controller.Deinitialize()
	if err = controller.Initialize(); err != nil {
		if *historyLimit > 0 {
			logrus.Errorf("%+v", err)
			return 1
		}
		// History is optional, the entry point still runs without it
		logrus.Warnf("%+v", err)
		history = nil
	}

	if *historyLimit > 0 {
		return printHistory(console, history, *historyLimit)
	}

	launcherEngine := launcher.NewLauncherEngine(launcher.Settings{
		InterpreterConfig:  configuration.InterpreterConfig,
		InterpreterKey:     configuration.InterpreterKey,
		DefaultInterpreter: configuration.DefaultInterpreter,
		EntryPoint:         configuration.EntryPoint,
		PauseOnFailure:     configuration.PauseOnFailure,
	}, runner.NewExecRunner(), console)
	launcherEngine.ResolvedEventEmitter.Subscribe(func(resolution interpreter.Resolution) {
		logrus.Debugf("Interpreter %s resolved from %s", resolution.Interpreter, resolution.Source)
	})
	if history != nil {
		launcherEngine.ExitedEventEmitter.Subscribe(func(result launcher.Result) {
			history.Record(result.Launch())
		})
	}

	result := launcherEngine.Launch(context.Background())
	return result.ExitCode
}

func printHistory(console *terminal.Console, history *database.Database, limit int) int {
	if history == nil {
		logrus.Error("STITCHER_HISTORY_DATABASE is not configured")
		return 1
	}
	launches, err := history.Recent(limit)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	if err = terminal.WriteLaunches(console.Output, launches); err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	return 0
}
