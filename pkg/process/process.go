// Copyright © 2023 FORTH-ICS
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package process runs external programs with a structured argument list and
// captures their output.
package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

var (
	// ErrInvocation is returned when a program cannot be started, or when it
	// terminates with a non-zero exit status.
	ErrInvocation = errors.New("tool invocation failed")

	// ErrTimeout is returned when a program does not terminate within the
	// given budget. The program is killed and its output is discarded.
	ErrTimeout = errors.New("tool did not complete in time")
)

// waitDelay bounds how long Wait blocks on the output pipes after the
// process has been killed.
const waitDelay = 5 * time.Second

// ExecCommandFunc builds the command that will be run. It has the signature of
// exec.CommandContext, so tests can substitute a helper process.
type ExecCommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Error describes a failed invocation.
type Error struct {
	// Command is the command line, for diagnostics only.
	Command string

	// Stderr is whatever the program wrote to its standard error.
	Stderr string

	// Err is the underlying error from os/exec.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: '%s': %v", ErrInvocation, e.Command, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every *Error match ErrInvocation.
func (e *Error) Is(target error) bool { return target == ErrInvocation }

// Runner executes programs synchronously.
type Runner struct {
	execCommand ExecCommandFunc
	logger      logr.Logger
}

// NewRunner returns a Runner. A nil execCommand defaults to exec.CommandContext.
func NewRunner(execCommand ExecCommandFunc, logger logr.Logger) *Runner {
	if execCommand == nil {
		execCommand = exec.CommandContext
	}

	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	return &Runner{
		execCommand: execCommand,
		logger:      logger,
	}
}

// Execute runs name with args, waits for it to finish and returns its standard output.
func (r *Runner) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	return r.run(ctx, name, args...)
}

// ExecuteWithTimeout is Execute bounded by timeout. A positive timeout is rounded up
// to whole seconds; a zero or negative value disables it.
func (r *Runner) ExecuteWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error) {
	if timeout <= 0 {
		return r.run(ctx, name, args...)
	}

	timeout = wholeSeconds(timeout)

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := r.run(tctx, name, args...)
	if err != nil && ctx.Err() == nil && errors.Is(tctx.Err(), context.DeadlineExceeded) {
		return nil, errors.Wrapf(ErrTimeout, "'%s' exceeded %s", commandLine(name, args), timeout)
	}

	return out, err
}

func (r *Runner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "cannot run '%s'", commandLine(name, args))
	}

	var stdout, stderr bytes.Buffer

	cmd := r.execCommand(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if cmd.WaitDelay == 0 {
		cmd.WaitDelay = waitDelay
	}

	started := time.Now()
	err := cmd.Run()

	r.logger.V(1).Info("executed", "cmd", commandLine(name, args), "duration", time.Since(started), "err", err)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "'%s' interrupted", commandLine(name, args))
		}

		return stdout.Bytes(), &Error{
			Command: commandLine(name, args),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}

	return stdout.Bytes(), nil
}

// wholeSeconds rounds a positive duration up to the next whole second.
func wholeSeconds(d time.Duration) time.Duration {
	if rem := d % time.Second; rem != 0 {
		d += time.Second - rem
	}

	return d
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
