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
	"fmt"
	"strconv"
	"strings"

	"github.com/carv-ics-forth/bmonitor/compute/lsf"
	"github.com/carv-ics-forth/bmonitor/pkg/ui"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	outcomeDone   = "DONE"
	outcomeExit   = "EXIT"
	outcomeActive = "ACTIVE"
)

func outcome(done, exit bool) string {
	switch {
	case done:
		return outcomeDone
	case exit:
		return outcomeExit
	default:
		return outcomeActive
	}
}

func newLastCommand(ctx context.Context, e *env) *cobra.Command {
	var array bool

	cmd := &cobra.Command{
		Use:   "last [--array]",
		Short: "Print the identifier of the most recently submitted job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := e.client.LastSubmittedJobID(ctx, array)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)

			return nil
		},
	}

	cmd.Flags().BoolVar(&array, "array", false, "consider job arrays only")

	return cmd
}

func newStatusCommand(ctx context.Context, e *env) *cobra.Command {
	var array bool

	cmd := &cobra.Command{
		Use:   "status [--array] JOBID...",
		Short: "Show the status of jobs, or of job arrays",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				merr *multierror.Error
				rows [][]string
			)

			header := []string{"JOBID", "STAT", "OUTCOME"}
			if array {
				header = []string{"JOBID", "NJOBS", "DONE", "EXIT", "OUTCOME"}
			}

			/*-- A failing job does not hide the others --*/
			for _, arg := range args {
				id := lsf.JobID(arg)

				if array {
					summary, err := e.client.ArraySummary(ctx, id)
					if err != nil {
						merr = multierror.Append(merr, err)
						continue
					}

					rows = append(rows, []string{
						id.String(),
						strconv.Itoa(summary.Total),
						strconv.Itoa(summary.Done),
						strconv.Itoa(summary.Exit),
						outcome(summary.IsDone(), summary.IsExit()),
					})

					continue
				}

				status, err := e.client.JobStatus(ctx, id)
				if err != nil {
					merr = multierror.Append(merr, err)
					continue
				}

				rows = append(rows, []string{id.String(), status.String(), outcome(status.IsDone(), status.IsExit())})
			}

			if len(rows) > 0 {
				ui.Table(cmd.OutOrStdout(), header, rows)
			}

			return merr.ErrorOrNil()
		},
	}

	cmd.Flags().BoolVar(&array, "array", false, "treat the identifiers as job arrays")

	return cmd
}

func newSummaryCommand(ctx context.Context, e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "summary JOBID",
		Short: "Show the element counts of a job array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := lsf.JobID(args[0])

			summary, err := e.client.ArraySummary(ctx, id)
			if err != nil {
				return err
			}

			ui.Table(cmd.OutOrStdout(),
				[]string{"JOBID", "NJOBS", "PEND", "RUN", "DONE", "EXIT", "OUTCOME"},
				[][]string{{
					id.String(),
					strconv.Itoa(summary.Total),
					strconv.Itoa(summary.Pending),
					strconv.Itoa(summary.Running),
					strconv.Itoa(summary.Done),
					strconv.Itoa(summary.Exit),
					outcome(summary.IsDone(), summary.IsExit()),
				}},
			)

			return nil
		},
	}
}

func newIndexCommand(ctx context.Context, e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "index JOBID",
		Short: "Group the elements of a job array by status",
		Long: `Group the elements of a job array by status.
Every element is queried on its own, so this is slow for large arrays.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := e.client.ArrayStatusIndex(ctx, lsf.JobID(args[0]))
			if err != nil {
				return err
			}

			var rows [][]string

			for _, status := range index.Statuses() {
				indices := make([]string, 0, index.Count(status))
				for _, i := range index[status] {
					indices = append(indices, strconv.Itoa(i))
				}

				rows = append(rows, []string{status.String(), strconv.Itoa(index.Count(status)), strings.Join(indices, ",")})
			}

			ui.Table(cmd.OutOrStdout(), []string{"STAT", "COUNT", "INDICES"}, rows)

			return nil
		},
	}
}

func newIsCommand(ctx context.Context, e *env) *cobra.Command {
	var array bool

	cmd := &cobra.Command{
		Use:       "is [--array] {done|exit|ended} JOBID",
		Short:     "Print whether a job is done, has exited, or has ended",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"done", "exit", "ended"},
		RunE: func(cmd *cobra.Command, args []string) error {
			predicates := map[string]func(context.Context, lsf.JobID, bool) (bool, error){
				"done":  e.client.IsDone,
				"exit":  e.client.IsExit,
				"ended": e.client.IsEnded,
			}

			predicate, ok := predicates[args[0]]
			if !ok {
				return errors.Errorf("unknown condition '%s'. Use one of done, exit, ended", args[0])
			}

			holds, err := predicate(ctx, lsf.JobID(args[1]), array)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), holds)

			return nil
		},
	}

	cmd.Flags().BoolVar(&array, "array", false, "treat the identifier as a job array")

	return cmd
}
