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
	"github.com/carv-ics-forth/bmonitor/pkg/path"
	"github.com/carv-ics-forth/bmonitor/pkg/ui"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func newCheckCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the LSF executables can be found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				merr *multierror.Error
				rows [][]string
			)

			tools := e.client.Tools()

			for _, name := range []string{tools.QueryCmd, tools.WaitCmd} {
				found, err := path.Lookup(name)
				if err != nil {
					merr = multierror.Append(merr, err)
					continue
				}

				rows = append(rows, []string{name, found})
			}

			if len(rows) > 0 {
				ui.Table(cmd.OutOrStdout(), []string{"TOOL", "PATH"}, rows)
			}

			return merr.ErrorOrNil()
		},
	}
}
