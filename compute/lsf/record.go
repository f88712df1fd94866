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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column names used by bjobs.
const (
	ColumnJobs    = "NJOBS"
	ColumnPending = "PEND"
	ColumnRunning = "RUN"
	ColumnDone    = "DONE"
	ColumnExit    = "EXIT"
	ColumnStatus  = "STAT"
)

// Record is one header row and one data row of bjobs output.
type Record struct {
	Header []string
	Values []string

	columns map[string]int
}

// NewRecord pairs header names with values by position.
//
// bjobs aligns its output in columns, so a blank cell (EXEC_HOST of a pending job)
// produces fewer values than names, and a cell with spaces (SUBMIT_TIME) produces
// more. Surplus values are joined into the last column. Missing values leave the
// trailing columns empty, and reading one of them fails.
func NewRecord(header []string, values []string) (*Record, error) {
	if len(header) == 0 {
		return nil, errors.Wrap(ErrMalformedOutput, "empty header")
	}

	columns := make(map[string]int, len(header))

	for i, name := range header {
		if _, exists := columns[name]; exists {
			return nil, errors.Wrapf(ErrMalformedOutput, "duplicate column '%s'", name)
		}

		columns[name] = i
	}

	if len(values) > len(header) {
		last := len(header) - 1
		values = append(values[:last:last], strings.Join(values[last:], " "))
	}

	return &Record{
		Header:  header,
		Values:  values,
		columns: columns,
	}, nil
}

// ParseRecord parses the output of a bjobs query: exactly one header line
// followed by exactly one data line.
func ParseRecord(text string) (*Record, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	if len(lines) != 2 {
		return nil, errors.Wrapf(ErrMalformedOutput, "expected a header and a data line, got %d line(s)", countLines(text))
	}

	return NewRecord(strings.Fields(lines[0]), strings.Fields(lines[1]))
}

// Column returns the value under the given header name.
func (r *Record) Column(name string) (string, error) {
	i, exists := r.columns[name]
	if !exists {
		return "", errors.Wrapf(ErrUnknownColumn, "'%s' not in %v", name, r.Header)
	}

	if i >= len(r.Values) {
		return "", errors.Wrapf(ErrMalformedOutput, "no value for column '%s'", name)
	}

	return r.Values[i], nil
}

// Int returns the value under the given header name as a non-negative count.
func (r *Record) Int(name string) (int, error) {
	raw, err := r.Column(name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.Wrapf(ErrMalformedOutput, "column '%s' holds '%s', not a count", name, raw)
	}

	return v, nil
}

// Status returns the value of the STAT column.
func (r *Record) Status() (Status, error) {
	raw, err := r.Column(ColumnStatus)
	if err != nil {
		return Invalid, err
	}

	return ParseStatus(raw)
}

func countLines(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	return strings.Count(trimmed, "\n") + 1
}
