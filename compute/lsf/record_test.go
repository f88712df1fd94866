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

package lsf_test

import (
	"testing"

	"github.com/carv-ics-forth/bmonitor/compute/lsf"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantHeader []string
		wantValues []string
		wantErr    error
	}{
		{
			name:       "array summary",
			text:       "NJOBS PEND RUN DONE EXIT\n5 0 0 5 0\n",
			wantHeader: []string{"NJOBS", "PEND", "RUN", "DONE", "EXIT"},
			wantValues: []string{"5", "0", "0", "5", "0"},
		},
		{
			name:       "column aligned with surrounding blank lines",
			text:       "\n\nNJOBS   PEND   RUN\n   12      4     8   \n\n",
			wantHeader: []string{"NJOBS", "PEND", "RUN"},
			wantValues: []string{"12", "4", "8"},
		},
		{
			name:       "submit time spans several tokens",
			text:       singleJob("1234", "DONE"),
			wantHeader: []string{"JOBID", "USER", "STAT", "QUEUE", "FROM_HOST", "EXEC_HOST", "JOB_NAME", "SUBMIT_TIME"},
			wantValues: []string{"1234", "alice", "DONE", "normal", "login01", "node17", "sim", "Oct 18 10:00"},
		},
		{
			name:    "empty",
			text:    "",
			wantErr: lsf.ErrMalformedOutput,
		},
		{
			name:    "header only",
			text:    "NJOBS PEND RUN DONE EXIT\n",
			wantErr: lsf.ErrMalformedOutput,
		},
		{
			name:    "two data lines",
			text:    "NJOBS PEND RUN DONE EXIT\n5 0 0 5 0\n5 0 0 5 0\n",
			wantErr: lsf.ErrMalformedOutput,
		},
		{
			name:    "blank line between header and data",
			text:    "NJOBS PEND\n\n5 0\n",
			wantErr: lsf.ErrMalformedOutput,
		},
		{
			name:    "duplicate column",
			text:    "RUN RUN\n1 2\n",
			wantErr: lsf.ErrMalformedOutput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lsf.ParseRecord(tt.text)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, got.Header)
			assert.Equal(t, tt.wantValues, got.Values)
		})
	}
}

func TestParseRecord_Idempotent(t *testing.T) {
	text := arraySummary("77", 5, 1, 1, 2, 1)

	first, err := lsf.ParseRecord(text)
	require.NoError(t, err)

	second, err := lsf.ParseRecord(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRecord_Lookup(t *testing.T) {
	// A pending job has an empty EXEC_HOST cell, so the row is one token short.
	record, err := lsf.ParseRecord("JOBID STAT NJOBS EXEC_HOST\n42 PEND x\n")
	require.NoError(t, err)

	t.Run("column", func(t *testing.T) {
		v, err := record.Column(lsf.ColumnStatus)
		require.NoError(t, err)
		assert.Equal(t, "PEND", v)
	})

	t.Run("status", func(t *testing.T) {
		s, err := record.Status()
		require.NoError(t, err)
		assert.Equal(t, lsf.Pending, s)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := record.Column("SLOTS")
		assert.True(t, errors.Is(err, lsf.ErrUnknownColumn))
	})

	t.Run("column without value", func(t *testing.T) {
		_, err := record.Column("EXEC_HOST")
		assert.True(t, errors.Is(err, lsf.ErrMalformedOutput))
	})

	t.Run("not a count", func(t *testing.T) {
		_, err := record.Int(lsf.ColumnJobs)
		assert.True(t, errors.Is(err, lsf.ErrMalformedOutput))
	})

	t.Run("negative count", func(t *testing.T) {
		neg, err := lsf.NewRecord([]string{"DONE"}, []string{"-1"})
		require.NoError(t, err)

		_, err = neg.Int(lsf.ColumnDone)
		assert.True(t, errors.Is(err, lsf.ErrMalformedOutput))
	})
}

func TestNewRecord_DoesNotAlterInput(t *testing.T) {
	values := []string{"1", "alice", "Oct", "18", "10:00"}

	record, err := lsf.NewRecord([]string{"JOBID", "USER", "SUBMIT_TIME"}, values)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "alice", "Oct 18 10:00"}, record.Values)
	assert.Equal(t, []string{"1", "alice", "Oct", "18", "10:00"}, values)
}

func TestJobID_Element(t *testing.T) {
	assert.Equal(t, lsf.JobID("1234[7]"), lsf.JobID("1234").Element(7))
}
