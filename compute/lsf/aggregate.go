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

	"github.com/pkg/errors"
)

/************************************************************

			Single Jobs

************************************************************/

// JobStatus returns the status of a single job or of one array element.
func (c *Client) JobStatus(ctx context.Context, id JobID) (Status, error) {
	record, err := c.Record(ctx, id, false)
	if err != nil {
		return Invalid, err
	}

	status, err := record.Status()
	if err != nil {
		return Invalid, errors.Wrapf(err, "job '%s'", id)
	}

	return status, nil
}

/************************************************************

			Job Arrays

************************************************************/

// ArraySummary returns the element counts of a job array with a single query.
// Prefer it over ArrayStatusIndex when counts are enough.
func (c *Client) ArraySummary(ctx context.Context, id JobID) (Summary, error) {
	record, err := c.Record(ctx, id, true)
	if err != nil {
		return Summary{}, err
	}

	summary, err := summaryFromRecord(record)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "job array '%s'", id)
	}

	c.logger.V(1).Info("array summary", "job", id,
		"jobs", summary.Total,
		"pending", summary.Pending,
		"running", summary.Running,
		"done", summary.Done,
		"exit", summary.Exit,
	)

	return summary, nil
}

// ArrayLength returns the number of elements in a job array.
func (c *Client) ArrayLength(ctx context.Context, id JobID) (int, error) {
	summary, err := c.ArraySummary(ctx, id)
	if err != nil {
		return 0, err
	}

	return summary.Total, nil
}

// ArrayStatusIndex groups the elements of a job array by status.
//
// It costs one query for the array length plus one query per element, so it is
// slow for large arrays, and since elements are queried one after the other the
// result is not a consistent snapshot. The PEND, RUN, DONE and EXIT entries are
// always present. A status token outside of the LSF vocabulary fails the call.
func (c *Client) ArrayStatusIndex(ctx context.Context, id JobID) (StatusIndex, error) {
	length, err := c.ArrayLength(ctx, id)
	if err != nil {
		return nil, err
	}

	logger := c.logger.WithValues("job", id)
	logger.V(1).Info("querying array elements one by one", "queries", length)

	index := newStatusIndex()

	for i := 1; i <= length; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "interrupted after %d of %d elements", i-1, length)
		}

		status, err := c.JobStatus(ctx, id.Element(i))
		if err != nil {
			return nil, err
		}

		index[status] = append(index[status], i)
	}

	return index, nil
}

/************************************************************

			Predicates

************************************************************/

// IsDone reports whether a job finished successfully. For an array, every element
// must be DONE.
func (c *Client) IsDone(ctx context.Context, id JobID, array bool) (bool, error) {
	return c.predicate(ctx, id, array, Status.IsDone, Summary.IsDone)
}

// IsExit reports whether a job finished unsuccessfully. For an array, every element
// must have finished and at least one must be EXIT.
func (c *Client) IsExit(ctx context.Context, id JobID, array bool) (bool, error) {
	return c.predicate(ctx, id, array, Status.IsExit, Summary.IsExit)
}

// IsEnded reports whether a job finished, successfully or not. It issues one query.
func (c *Client) IsEnded(ctx context.Context, id JobID, array bool) (bool, error) {
	return c.predicate(ctx, id, array, Status.IsEnded, Summary.IsEnded)
}

func (c *Client) predicate(ctx context.Context, id JobID, array bool,
	single func(Status) bool, aggregate func(Summary) bool,
) (bool, error) {
	if array {
		summary, err := c.ArraySummary(ctx, id)
		if err != nil {
			return false, err
		}

		return aggregate(summary), nil
	}

	status, err := c.JobStatus(ctx, id)
	if err != nil {
		return false, err
	}

	return single(status), nil
}
