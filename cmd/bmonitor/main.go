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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/carv-ics-forth/bmonitor/cmd/bmonitor/commands"
	"github.com/carv-ics-forth/bmonitor/cmd/bmonitor/commands/root"
	"github.com/carv-ics-forth/bmonitor/pkg/ui"
	"github.com/matishsiao/goInfo"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates a new version subcommand command
func NewVersionCommand(version, buildTime string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of the program",
		Long:  `Show the version of the program and of the host it runs on`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Logo("bmonitor"))
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s, Built: %s\n", version, buildTime)

			kernel, operatingSystem, platform := hostInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "Host: %s %s (%s)\n", operatingSystem, kernel, platform)
		},
	}
}

func hostInfo() (kernel, operatingSystem, platform string) {
	// goinfo.GetInfo may crash sometimes. use this method to recover and continue.
	defer func() {
		if r := recover(); r != nil {
			kernel, operatingSystem, platform = "unknown", runtime.GOOS, runtime.GOARCH
		}
	}()

	info, err := goInfo.GetInfo()
	if err != nil {
		return "unknown", runtime.GOOS, runtime.GOARCH
	}

	return info.Kernel, info.OS, info.Platform
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	var opts root.Opts

	rootCmd := root.NewCommand(ctx, filepath.Base(os.Args[0]), opts)
	rootCmd.AddCommand(NewVersionCommand(commands.BuildVersion, commands.BuildTime))

	ui.ExitOnError(rootCmd.ExecuteContext(ctx))
}
