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

package lsf

import (
	"context"
	"strings"

	"github.com/carv-ics-forth/bmonitor/pkg/process"
	"github.com/pkg/errors"
)

// Record runs bjobs for a single job (or array element), or bjobs -A for an array
// summary, and parses the output.
func (c *Client) Record(ctx context.Context, id JobID, array bool) (*Record, error) {
	args := []string{id.String()}
	if array {
		args = []string{"-A", id.String()}
	}

	out, err := c.executor.Execute(ctx, c.tools.QueryCmd, args...)

	/*-- The tool may report a bad identifier with or without a failing exit code --*/
	if msg, unknown := unknownJob(out, err); unknown {
		return nil, errors.Wrapf(ErrUnknownJob, "job '%s': %s", id, msg)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "cannot query job '%s'", id)
	}

	record, err := ParseRecord(string(out))
	if err != nil {
		return nil, errors.Wrapf(err, "job '%s'", id)
	}

	c.logger.V(1).Info("bjobs output", "job", id, "array", array, "header", record.Header, "values", record.Values)

	return record, nil
}

// unknownJob looks for the "no such job" messages.
func unknownJob(stdout []byte, err error) (string, bool) {
	return findMarker(stdout, err, unknownJobMarkers)
}

// findMarker returns the first line of stdout, or of the stderr captured by a
// failed invocation, that contains one of markers.
func findMarker(stdout []byte, err error, markers []string) (string, bool) {
	texts := []string{string(stdout)}

	var perr *process.Error
	if errors.As(err, &perr) {
		texts = append(texts, perr.Stderr)
	}

	for _, text := range texts {
		for _, line := range strings.Split(text, "\n") {
			for _, marker := range markers {
				if strings.Contains(line, marker) {
					return strings.TrimSpace(line), true
				}
			}
		}
	}

	return "", false
}
