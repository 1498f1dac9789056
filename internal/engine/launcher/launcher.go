package launcher

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"stitcher.dev/launcher/internal/entity"
	"stitcher.dev/launcher/internal/interpreter"
	"stitcher.dev/launcher/internal/runner"
	"stitcher.dev/launcher/internal/terminal"
	"stitcher.dev/launcher/pkg/eventemitter"
)

type Settings struct {
	InterpreterConfig  string
	InterpreterKey     string
	DefaultInterpreter string
	EntryPoint         string
	PauseOnFailure     bool
}

// Console is where the user reads what the launcher did.
type Console interface {
	terminal.Pauser
	Notice(format string, arguments ...interface{})
	Failure(format string, arguments ...interface{})
	Blank()
}

// Result describes one run of the entry point.
type Result struct {
	Resolution interpreter.Resolution
	EntryPoint string
	ExitCode   int
	StartedAt  time.Time
	FinishedAt time.Time
}

func (result Result) Launch() entity.Launch {
	return entity.Launch{
		Interpreter: result.Resolution.Interpreter,
		Source:      result.Resolution.Source.String(),
		EntryPoint:  result.EntryPoint,
		ExitCode:    result.ExitCode,
		StartedAt:   result.StartedAt,
		FinishedAt:  result.FinishedAt,
	}
}

type LauncherEngine struct {
	settings Settings
	runner   runner.Runner
	console  Console
	now      func() time.Time

	// Event emitters
	ResolvedEventEmitter *eventemitter.EventEmitter[interpreter.Resolution]
	ExitedEventEmitter   *eventemitter.EventEmitter[Result]
}

func NewLauncherEngine(settings Settings, processRunner runner.Runner, console Console) (instance *LauncherEngine) {
	instance = &LauncherEngine{
		settings:             settings,
		runner:               processRunner,
		console:              console,
		now:                  time.Now,
		ResolvedEventEmitter: &eventemitter.EventEmitter[interpreter.Resolution]{},
		ExitedEventEmitter:   &eventemitter.EventEmitter[Result]{},
	}
	return
}

// Launch resolves the interpreter, runs the entry point with it and waits for
// it to terminate. A failed run is reported on the console, which is then
// paused until a key is pressed.
func (launcherEngine *LauncherEngine) Launch(ctx context.Context) (result Result) {
	settings := launcherEngine.settings
	resolution := launcherEngine.resolve()
	launcherEngine.ResolvedEventEmitter.Emit(resolution)

	result.Resolution = resolution
	result.EntryPoint = settings.EntryPoint
	result.StartedAt = launcherEngine.now()
	exitCode, err := launcherEngine.runner.Run(ctx, resolution.Interpreter, settings.EntryPoint)
	result.FinishedAt = launcherEngine.now()
	result.ExitCode = exitCode
	if err != nil {
		logrus.Errorf("Cannot run %s with %s", settings.EntryPoint, resolution.Interpreter)
		logrus.Error(err)
	}
	logrus.Debugf("%s exited with code %d after %s", settings.EntryPoint, exitCode, result.FinishedAt.Sub(result.StartedAt))
	launcherEngine.ExitedEventEmitter.Emit(result)

	if exitCode == 0 {
		return
	}
	launcherEngine.console.Blank()
	launcherEngine.console.Failure("Program exited with error code: %d", exitCode)
	if settings.PauseOnFailure {
		if err = launcherEngine.console.Pause(terminal.DEFAULT_PROMPT); err != nil {
			logrus.Warn(err)
		}
	}
	return
}

func (launcherEngine *LauncherEngine) resolve() interpreter.Resolution {
	settings := launcherEngine.settings
	resolution, err := interpreter.Resolve(settings.InterpreterConfig, settings.InterpreterKey, settings.DefaultInterpreter)
	if err != nil {
		logrus.Warn(err)
	}

	console := launcherEngine.console
	switch resolution.Source {
	case interpreter.DEFAULT_NO_CONFIG:
		console.Notice("%s not found, using default interpreter: %s", settings.InterpreterConfig, resolution.Interpreter)
		return resolution
	case interpreter.DEFAULT_NO_KEY:
		console.Notice("%s not set in %s, using default interpreter: %s", settings.InterpreterKey, settings.InterpreterConfig, resolution.Interpreter)
	}
	console.Notice("Using interpreter: \"%s\"", resolution.Interpreter)
	return resolution
}
