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
	"github.com/carv-ics-forth/bmonitor/pkg/process"
	"github.com/pkg/errors"
)

// Query Errors
var (
	ErrUnknownJob      = errors.New("unknown job id")
	ErrMalformedOutput = errors.New("malformed scheduler output")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrUnknownStatus   = errors.New("unknown job status")
	ErrEmptyListing    = errors.New("no jobs listed")
)

// Invocation Errors
var (
	ErrToolInvocation = process.ErrInvocation
	ErrTimeout        = process.ErrTimeout
)

// unknownJobMarkers are the messages bjobs prints, on stdout or stderr, for an
// identifier it does not know.
var unknownJobMarkers = []string{
	"Illegal job ID",
	"is not found",
}

// emptyListingMarkers are the notices bjobs prints instead of a listing.
var emptyListingMarkers = []string{
	"No job found",
	"No unfinished job found",
}
