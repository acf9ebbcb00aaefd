package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc         string
		opts         Options
		expectedInfo bool
	}{
		{
			desc:         "should write info events at debug level",
			opts:         Options{Level: "debug"},
			expectedInfo: true,
		},
		{
			desc:         "should drop info events at warn level",
			opts:         Options{Level: "warn"},
			expectedInfo: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			zeroLogger, err := build(&out, tc.opts)
			require.NoError(t, err)

			zeroLogger.Info().Str("name", "test").Msg("converted amount")
			assert.Equal(t, tc.expectedInfo, bytes.Contains(out.Bytes(), []byte(`"message":"converted amount"`)))
		})
	}
}

func TestBuild_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := build(&bytes.Buffer{}, Options{Level: "loud"})
	assert.ErrorContains(t, err, `parse log level "loud"`)
}

func TestBuild_File(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "bot.log")

	zeroLogger, err := build(&bytes.Buffer{}, Options{Level: "info", Filename: filename})
	require.NoError(t, err)

	zeroLogger.Warn().Msg("rates provider reported failure")

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "rates provider reported failure")
}
