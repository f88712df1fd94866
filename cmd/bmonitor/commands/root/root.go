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

package root

import (
	"context"

	"github.com/carv-ics-forth/bmonitor/compute/lsf"
	"github.com/carv-ics-forth/bmonitor/pkg/logging"
	"github.com/carv-ics-forth/bmonitor/pkg/process"
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// env carries what the subcommands share. It is filled in before any of them runs.
type env struct {
	opts   *Opts
	logger logr.Logger
	client *lsf.Client
}

// NewCommand creates a new top-level command.
// Its subcommands query LSF through bjobs and bwait.
func NewCommand(ctx context.Context, name string, c Opts) *cobra.Command {
	return newCommand(ctx, name, c, nil)
}

func newCommand(ctx context.Context, name string, c Opts, execCommand process.ExecCommandFunc) *cobra.Command {
	e := &env{opts: &c}

	cmd := &cobra.Command{
		Use:   name,
		Short: name + " reports the status of LSF jobs",
		Long: name + ` reports the status of LSF jobs and job arrays, as seen by bjobs at the moment of the call.
It can also block until a job ends, using bwait.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			/*---------------------------------------------------
			 * Sanitize Input Params
			 *---------------------------------------------------*/
			if err := validate(c); err != nil {
				return err
			}

			/*---------------------------------------------------
			 * Prepare the LSF client
			 *---------------------------------------------------*/
			return e.setup(cmd, execCommand)
		},
	}

	installFlags(cmd.PersistentFlags(), &c)

	cmd.AddCommand(
		newLastCommand(ctx, e),
		newStatusCommand(ctx, e),
		newSummaryCommand(ctx, e),
		newIndexCommand(ctx, e),
		newIsCommand(ctx, e),
		newWaitCommand(ctx, e),
		newCheckCommand(e),
	)

	return cmd
}

func validate(c Opts) error {
	var merr *multierror.Error

	if c.QueryCmd == "" {
		merr = multierror.Append(merr, errors.Errorf("empty bjobs command. Use flags or set %s", EnvQueryCmd))
	}

	if c.WaitCmd == "" {
		merr = multierror.Append(merr, errors.Errorf("empty bwait command. Use flags or set %s", EnvWaitCmd))
	}

	/*-- The level drives both logrus and the zap sink, so both must accept it --*/
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, errors.Wrap(err, "could not parse log level"))
	} else if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, errors.Wrap(err, "could not parse log level"))
	}

	return merr.ErrorOrNil()
}

func (e *env) setup(cmd *cobra.Command, execCommand process.ExecCommandFunc) error {
	lvl, err := logrus.ParseLevel(e.opts.LogLevel)
	if err != nil {
		return errors.Wrap(err, "could not parse log level")
	}

	logrus.SetLevel(lvl)

	logger, err := logging.New(e.opts.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	e.logger = logger.WithName(cmd.Root().Name()).WithValues("session", ksuid.New().String())

	e.client = lsf.New(lsf.Options{
		Tools: lsf.Tools{
			QueryCmd: e.opts.QueryCmd,
			WaitCmd:  e.opts.WaitCmd,
		},
		Executor: process.NewRunner(execCommand, e.logger.WithName("process")),
		Logger:   e.logger,
	})

	return nil
}
