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

package logging_test

import (
	"bytes"
	"testing"

	"github.com/carv-ics-forth/bmonitor/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("info hides debug", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := logging.New("info", &buf)
		require.NoError(t, err)

		logger.V(1).Info("bjobs output")
		logger.Info("job ended", "job", "1234")

		assert.NotContains(t, buf.String(), "bjobs output")
		assert.Contains(t, buf.String(), "job ended")
		assert.Contains(t, buf.String(), "1234")
	})

	t.Run("debug shows V(1)", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := logging.New("debug", &buf)
		require.NoError(t, err)

		logger.V(1).Info("bjobs output")

		assert.Contains(t, buf.String(), "bjobs output")
	})

	t.Run("logrus-only levels", func(t *testing.T) {
		for _, level := range []string{"trace", "warning"} {
			_, err := logging.New(level, &bytes.Buffer{})
			assert.Error(t, err, level)
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := logging.New("chatty", &bytes.Buffer{})
		assert.Error(t, err)
	})
}
