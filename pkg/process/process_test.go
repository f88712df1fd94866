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

package process

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// Mock execFunc for testing
func mockExecFunc(ctx context.Context, command string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", command}
	cs = append(cs, args...)
	cmd := exec.CommandContext(ctx, os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is not a real test. It is the program started by mockExecFunc.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 {
		if args[0] == "--" {
			args = args[1:]
			break
		}
		args = args[1:]
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no command")
		os.Exit(2)
	}

	switch args[0] {
	case "echo":
		fmt.Println(strings.Join(args[1:], " "))
	case "fail":
		fmt.Println("partial output")
		fmt.Fprintln(os.Stderr, "something went wrong")
		os.Exit(3)
	case "sleep":
		d, _ := time.ParseDuration(args[1])
		time.Sleep(d)
		fmt.Println("woke up")
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		os.Exit(2)
	}

	os.Exit(0)
}

func TestRunner_Execute(t *testing.T) {
	r := NewRunner(mockExecFunc, logr.Discard())

	tests := []struct {
		name       string
		cmd        []string
		wantOut    string
		wantErr    bool
		wantStderr string
	}{
		{
			name:    "arguments are passed verbatim",
			cmd:     []string{"echo", "ended(12[3])", "$HOME", "'quoted'"},
			wantOut: "ended(12[3]) $HOME 'quoted'\n",
		},
		{
			name:       "non-zero exit",
			cmd:        []string{"fail"},
			wantOut:    "partial output\n",
			wantErr:    true,
			wantStderr: "something went wrong",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Execute(context.Background(), tt.cmd[0], tt.cmd[1:]...)
			assert.Equal(t, tt.wantOut, string(out))

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvocation))

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Contains(t, perr.Stderr, tt.wantStderr)
			assert.Contains(t, perr.Command, tt.cmd[0])
		})
	}
}

func TestRunner_ExecuteMissingBinary(t *testing.T) {
	r := NewRunner(nil, logr.Discard())

	_, err := r.Execute(context.Background(), "bmonitor-no-such-binary")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvocation))
}

func TestRunner_ExecuteWithTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(mockExecFunc, logr.Discard())

	t.Run("completes within budget", func(t *testing.T) {
		out, err := r.ExecuteWithTimeout(context.Background(), 5*time.Second, "sleep", "10ms")
		require.NoError(t, err)
		assert.Equal(t, "woke up\n", string(out))
	})

	t.Run("exceeds budget", func(t *testing.T) {
		started := time.Now()
		out, err := r.ExecuteWithTimeout(context.Background(), time.Second, "sleep", "1m")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTimeout))
		assert.False(t, errors.Is(err, ErrInvocation))
		assert.Nil(t, out)
		assert.Less(t, time.Since(started), 30*time.Second)
	})

	t.Run("sub-second budget is rounded up to a second", func(t *testing.T) {
		started := time.Now()
		out, err := r.ExecuteWithTimeout(context.Background(), 500*time.Millisecond, "sleep", "1m")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTimeout))
		assert.Nil(t, out)
		assert.GreaterOrEqual(t, time.Since(started), time.Second)
		assert.Less(t, time.Since(started), 30*time.Second)
	})

	t.Run("zero budget means no timeout", func(t *testing.T) {
		out, err := r.ExecuteWithTimeout(context.Background(), 0, "sleep", "10ms")
		require.NoError(t, err)
		assert.Equal(t, "woke up\n", string(out))
	})

	t.Run("caller cancellation is not a timeout", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.ExecuteWithTimeout(ctx, time.Second, "sleep", "1m")
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, errors.Is(err, ErrTimeout))
	})
}

func TestWholeSeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{in: time.Nanosecond, want: time.Second},
		{in: 500 * time.Millisecond, want: time.Second},
		{in: time.Second, want: time.Second},
		{in: 1500 * time.Millisecond, want: 2 * time.Second},
		{in: 90 * time.Second, want: 90 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, wholeSeconds(tt.in))
		})
	}
}
