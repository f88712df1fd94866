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

package root

import (
	"os"

	"github.com/carv-ics-forth/bmonitor/compute/lsf"
	"github.com/spf13/pflag"
)

// Opts stores all the options shared by the bmonitor commands.
// It is used for setting flag values.
type Opts struct {
	// QueryCmd is the bjobs executable. Relative names are searched in $PATH.
	QueryCmd string

	// WaitCmd is the bwait executable.
	WaitCmd string

	LogLevel string
}

const (
	EnvQueryCmd = "BMONITOR_BJOBS"
	EnvWaitCmd  = "BMONITOR_BWAIT"
	EnvLogLevel = "BMONITOR_LOG_LEVEL"
)

func installFlags(flags *pflag.FlagSet, c *Opts) {
	flags.StringVar(&c.QueryCmd, "bjobs", getEnv(EnvQueryCmd, lsf.DefaultQueryCmd), "path to the bjobs executable")
	flags.StringVar(&c.WaitCmd, "bwait", getEnv(EnvWaitCmd, lsf.DefaultWaitCmd), "path to the bwait executable")

	flags.StringVar(&c.LogLevel, "log-level", getEnv(EnvLogLevel, "info"), `set the log level, e.g. "debug", "info", "warn", "error"`)
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultValue
}
