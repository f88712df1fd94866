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

// Package lsf queries IBM Spectrum LSF for the status of jobs and job arrays.
//
// Every operation runs one or more bjobs/bwait processes and interprets their
// output on the spot. Nothing is cached: two calls may observe different states.
// Failures are returned as-is and never retried.
package lsf

import (
	"context"
	"time"

	"github.com/carv-ics-forth/bmonitor/pkg/process"
	"github.com/go-logr/logr"
)

/************************************************************

			Initiate LSF Connector

************************************************************/

const (
	DefaultQueryCmd = "bjobs"
	DefaultWaitCmd  = "bwait"
)

// Tools names the LSF executables. Relative names are searched in $PATH.
type Tools struct {
	QueryCmd string
	WaitCmd  string
}

// Executor runs a tool and returns its standard output. *process.Runner satisfies it.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
	ExecuteWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error)
}

// Options represent options for the Client.
type Options struct {
	Tools    Tools
	Executor Executor // Defaults to a process.Runner.
	Logger   logr.Logger
}

// Client answers questions about LSF jobs. It holds no mutable state and can be
// shared between goroutines.
type Client struct {
	tools    Tools
	executor Executor
	logger   logr.Logger
}

func New(opts Options) *Client {
	logger := opts.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	tools := opts.Tools
	if tools.QueryCmd == "" {
		tools.QueryCmd = DefaultQueryCmd
	}

	if tools.WaitCmd == "" {
		tools.WaitCmd = DefaultWaitCmd
	}

	executor := opts.Executor
	if executor == nil {
		executor = process.NewRunner(nil, logger.WithName("process"))
	}

	return &Client{
		tools:    tools,
		executor: executor,
		logger:   logger,
	}
}

// Tools returns the executables the client invokes.
func (c *Client) Tools() Tools {
	return c.tools
}
