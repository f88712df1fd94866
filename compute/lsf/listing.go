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

	"github.com/pkg/errors"
)

// LastSubmittedJobID returns the identifier on the last line of bjobs -a, or of
// bjobs -A when array is set.
func (c *Client) LastSubmittedJobID(ctx context.Context, array bool) (JobID, error) {
	flag := "-a"
	if array {
		flag = "-A"
	}

	out, err := c.executor.Execute(ctx, c.tools.QueryCmd, flag)

	/*-- bjobs may print its "no job" notice on stderr and exit non-zero --*/
	if msg, empty := findMarker(out, err, emptyListingMarkers); empty {
		return "", errors.Wrap(ErrEmptyListing, msg)
	}

	if err != nil {
		return "", errors.Wrap(err, "cannot list jobs")
	}

	id, err := lastJobID(string(out))
	if err != nil {
		return "", err
	}

	c.logger.V(1).Info("last submitted job", "job", id, "array", array)

	return id, nil
}

func lastJobID(listing string) (JobID, error) {
	var lines []string

	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, marker := range emptyListingMarkers {
			if strings.HasPrefix(line, marker) {
				return "", errors.Wrap(ErrEmptyListing, line)
			}
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "", ErrEmptyListing
	}

	fields := strings.Fields(lines[len(lines)-1])

	/*-- A lone header line means that there is nothing to list --*/
	if len(lines) == 1 && fields[0] == "JOBID" {
		return "", errors.Wrap(ErrEmptyListing, "header only")
	}

	return JobID(fields[0]), nil
}
