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
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// WaitForJobEnd blocks until bwait reports that the job has ended.
//
// A positive timeout is rounded up to whole seconds, and zero waits forever.
// On ErrTimeout nothing is known about the job; whether to wait again is up to
// the caller.
func (c *Client) WaitForJobEnd(ctx context.Context, id JobID, timeout time.Duration) error {
	condition := fmt.Sprintf("ended(%s)", id)

	logger := c.logger.WithValues("job", id)
	logger.V(1).Info("waiting for job to end", "timeout", timeout)

	out, err := c.executor.ExecuteWithTimeout(ctx, timeout, c.tools.WaitCmd, "-w", condition)
	if msg, unknown := unknownJob(out, err); unknown {
		return errors.Wrapf(ErrUnknownJob, "job '%s': %s", id, msg)
	}

	if err != nil {
		return errors.Wrapf(err, "cannot wait for job '%s'", id)
	}

	logger.Info("job ended")

	return nil
}
