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
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Summary holds the per-state element counts of a job array, as printed by bjobs -A.
type Summary struct {
	Total   int
	Pending int
	Running int
	Done    int
	Exit    int
}

// IsDone reports whether every element finished successfully.
func (s Summary) IsDone() bool {
	return s.Done == s.Total
}

// IsExit reports whether every element finished and at least one of them failed.
// A fully terminated array with a single failure is EXIT, never DONE.
func (s Summary) IsExit() bool {
	return s.Done+s.Exit == s.Total && s.Exit > 0
}

// IsEnded reports whether no element is left pending or running.
func (s Summary) IsEnded() bool {
	return s.IsDone() || s.IsExit()
}

// Validate checks the counts for consistency. The four counts may add up to less
// than Total, because suspended elements are reported in columns of their own.
func (s Summary) Validate() error {
	var merr *multierror.Error

	counts := []struct {
		name  string
		value int
	}{
		{ColumnJobs, s.Total},
		{ColumnPending, s.Pending},
		{ColumnRunning, s.Running},
		{ColumnDone, s.Done},
		{ColumnExit, s.Exit},
	}

	for _, count := range counts {
		if count.value < 0 {
			merr = multierror.Append(merr, errors.Errorf("%s is negative (%d)", count.name, count.value))
		}
	}

	if sum := s.Pending + s.Running + s.Done + s.Exit; sum > s.Total {
		merr = multierror.Append(merr, errors.Errorf("%d elements accounted for, but %s is %d", sum, ColumnJobs, s.Total))
	}

	if err := merr.ErrorOrNil(); err != nil {
		return errors.Wrapf(ErrMalformedOutput, "inconsistent array summary: %v", err)
	}

	return nil
}

func summaryFromRecord(record *Record) (Summary, error) {
	var (
		s    Summary
		merr *multierror.Error
	)

	fields := []struct {
		column string
		dst    *int
	}{
		{ColumnJobs, &s.Total},
		{ColumnPending, &s.Pending},
		{ColumnRunning, &s.Running},
		{ColumnDone, &s.Done},
		{ColumnExit, &s.Exit},
	}

	for _, field := range fields {
		v, err := record.Int(field.column)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		*field.dst = v
	}

	if err := merr.ErrorOrNil(); err != nil {
		return Summary{}, errors.Wrap(err, "cannot read array summary")
	}

	return s, s.Validate()
}

// StatusIndex maps each status to the 1-based indices of the array elements in it.
type StatusIndex map[Status][]int

// Count returns how many elements hold the given status.
func (idx StatusIndex) Count(s Status) int {
	return len(idx[s])
}

// Statuses returns the statuses present in the index, in declaration order.
func (idx StatusIndex) Statuses() []Status {
	statuses := make([]Status, 0, len(idx))
	for s := range idx {
		statuses = append(statuses, s)
	}

	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })

	return statuses
}

func newStatusIndex() StatusIndex {
	return StatusIndex{
		Done:    []int{},
		Exit:    []int{},
		Pending: []int{},
		Running: []int{},
	}
}
