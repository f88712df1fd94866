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
	"fmt"
)

/************************************************************

		Job Identifiers

************************************************************/

// JobID identifies a job or a job array. Its content is opaque.
type JobID string

func (id JobID) String() string {
	return string(id)
}

// Element returns the identifier of the sub-job at the given 1-based index, e.g. 1234[5].
func (id JobID) Element(index int) JobID {
	return JobID(fmt.Sprintf("%s[%d]", id, index))
}
