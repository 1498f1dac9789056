package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Runner executes a program and reports its exit status.
type Runner interface {
	// Run blocks until the program terminates. The error is non-nil only when
	// the program could not be run at all.
	Run(ctx context.Context, name string, arguments ...string) (exitCode int, err error)
}

// ExecRunner runs programs as child processes sharing the launcher's working
// directory, environment and standard streams unless overridden.
type ExecRunner struct {
	Directory string
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (execRunner *ExecRunner) Run(ctx context.Context, name string, arguments ...string) (exitCode int, err error) {
	process := exec.CommandContext(ctx, name, arguments...)
	process.Dir = execRunner.Directory
	process.Stdin = execRunner.Stdin
	process.Stdout = execRunner.Stdout
	process.Stderr = execRunner.Stderr

	logrus.Debugf("Starting %s", process.String())
	if err = process.Start(); err != nil {
		return NOT_STARTED_EXIT_CODE, fmt.Errorf("%w: %v", ErrNotStarted, err)
	}

	if err = process.Wait(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			exitCode = exitError.ExitCode()
			if exitCode < 0 {
				// Terminated by a signal
				exitCode = 1
			}
			logrus.Debugf("Process %d exited with code %d", exitError.Pid(), exitCode)
			return exitCode, nil
		}
		logrus.Errorf("Waiting for %s failed", process.String())
		logrus.Error(err)
		return 1, fmt.Errorf("%w: %v", ErrWaitFailed, err)
	}
	logrus.Debugf("Process %d exited with code 0", process.ProcessState.Pid())
	return 0, nil
}
