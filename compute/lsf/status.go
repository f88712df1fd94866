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
	"github.com/pkg/errors"
)

// Status is the state of a job as reported in the STAT column of bjobs.
type Status uint8

const (
	// Invalid is the zero value. ParseStatus never returns it without an error.
	Invalid Status = iota

	// Pending jobs are queued and waiting to be scheduled.
	Pending

	// PendingSuspended jobs were suspended by their owner or an administrator while pending.
	PendingSuspended

	// Running jobs are executing.
	Running

	// UserSuspended jobs were suspended by their owner or an administrator while running.
	UserSuspended

	// SystemSuspended jobs were suspended by LSF, e.g. due to load conditions.
	SystemSuspended

	// Done jobs terminated with exit status 0.
	Done

	// Exit jobs terminated with a non-zero exit status, or were killed.
	Exit

	// Unknown jobs belong to a host whose sbatchd is unreachable by mbatchd.
	Unknown

	// Waiting jobs are array elements held back by the array's slot limit.
	Waiting

	// Zombie jobs were killed but the host that ran them is unreachable.
	Zombie
)

var statusTokens = [...]string{"", "PEND", "PSUSP", "RUN", "USUSP", "SSUSP", "DONE", "EXIT", "UNKWN", "WAIT", "ZOMBI"}

func (s Status) String() string {
	if int(s) >= len(statusTokens) || s == Invalid {
		return "INVALID"
	}

	return statusTokens[s]
}

// ParseStatus maps a STAT token to its Status. Tokens outside of the LSF vocabulary
// are rejected with ErrUnknownStatus.
func ParseStatus(token string) (Status, error) {
	for i, t := range statusTokens {
		if i > 0 && t == token {
			return Status(i), nil
		}
	}

	return Invalid, errors.Wrapf(ErrUnknownStatus, "'%s'", token)
}

// IsDone reports whether the job finished successfully.
func (s Status) IsDone() bool { return s == Done }

// IsExit reports whether the job finished unsuccessfully.
func (s Status) IsExit() bool { return s == Exit }

// IsEnded reports whether the job reached a terminal state.
func (s Status) IsEnded() bool { return s.IsDone() || s.IsExit() }
