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
	"time"

	"github.com/carv-ics-forth/bmonitor/compute/lsf"
	"github.com/spf13/cobra"
)

func newWaitCommand(ctx context.Context, e *env) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait [--timeout DURATION] JOBID",
		Short: "Block until a job ends",
		Long: `Block until a job ends, successfully or not.
The timeout is rounded up to whole seconds. Zero waits forever.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := lsf.JobID(args[0])

			if err := e.client.WaitForJobEnd(ctx, id, timeout); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s ended\n", id)

			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "how long to wait before giving up, e.g. 90s or 2h")

	return cmd
}
