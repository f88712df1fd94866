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

// Package ui holds the terminal output helpers of the command line tools.
package ui

import (
	"bytes"
	"context"
	"io"

	"github.com/dimiro1/banner"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func Logo(title string) string {
	buf := bytes.NewBuffer(nil)

	banner.InitString(buf, true, true, `
{{ .AnsiColor.BrightGreen }}
{{ .Title "`+title+`" "" 4 }}
{{ .AnsiColor.Default }}
	`)

	return buf.String()
}

// Table renders rows under header as a borderless, left-aligned table.
func Table(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)

	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	table.AppendBulk(rows)
	table.Render()
}

// ExitOnError terminates the program if err is set. An interrupted run exits quietly.
func ExitOnError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		logrus.Exit(130)
	}

	logrus.Fatal(err)
}
