package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/codyps/microtime/lib/config"
	"github.com/codyps/microtime/lib/microtime"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	config.CfgFile = ""
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		viper.Reset()
		config.CfgFile = ""
	})

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// =============================================================================
// Conversions
// =============================================================================

func TestSplit(t *testing.T) {
	out, err := run(t, "split", "10000001")
	require.NoError(t, err)
	assert.Equal(t, "seconds: 10\nnanos: 1000\n", out)
}

func TestJoin(t *testing.T) {
	out, err := run(t, "join", "10", "1999")
	require.NoError(t, err)
	assert.Equal(t, "micros: 10000001\n", out)

	_, err = run(t, "join", "10", "1000000000")
	assert.ErrorIs(t, err, microtime.ErrInvalidNanos)
}

func TestUnix(t *testing.T) {
	out, err := run(t, "unix", "10000001")
	require.NoError(t, err)
	assert.Equal(t, "unix_seconds: 10\nunix_nanos: 1000\n", out)
}

func TestFromUnix(t *testing.T) {
	out, err := run(t, "from-unix", "10", "1999")
	require.NoError(t, err)
	assert.Equal(t, "micros: 10000001\n", out)

	_, err = run(t, "from-unix", "--", "-1", "999999000")
	assert.ErrorIs(t, err, microtime.ErrPreEpoch)
}

func TestI2PDate(t *testing.T) {
	out, err := run(t, "i2pdate", "86400000999")
	require.NoError(t, err)
	assert.Contains(t, out, "micros: 86400000000\n")
	assert.Contains(t, out, "dropped_micros: 999\n")
}

// =============================================================================
// Arithmetic
// =============================================================================

func TestDiff(t *testing.T) {
	out, err := run(t, "diff", "2500000", "1000000")
	require.NoError(t, err)
	assert.Equal(t, "micros: 1500000\nmillis: 1500\nseconds: 1\n", out)

	out, err = run(t, "diff", "--clock", "real", "10", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "micros: 5\n")
}

func TestDiff_Underflow(t *testing.T) {
	_, err := run(t, "diff", "5", "10")
	assert.ErrorIs(t, err, microtime.ErrUnderflow)

	_, err = run(t, "diff", "--clock", "real", "5", "10")
	assert.ErrorIs(t, err, microtime.ErrUnderflow)
}

func TestDiff_UnknownClock(t *testing.T) {
	_, err := run(t, "diff", "--clock", "tai", "10", "5")
	assert.Error(t, err)
}

func TestSkew(t *testing.T) {
	now := "1609372800000000"

	out, err := run(t, "skew", "1609372740000000", now)
	require.NoError(t, err)
	assert.Contains(t, out, "valid: true\n")
	assert.Contains(t, out, "max_micros: 3600000000\n")

	out, err = run(t, "skew", "--max", "30s", "1609372740000000", now)
	assert.Error(t, err)
	assert.Contains(t, out, "valid: false\n")
}

// =============================================================================
// Output and argument handling
// =============================================================================

func TestYAMLOutput(t *testing.T) {
	out, err := run(t, "--output", "yaml", "split", "10000001")
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]int{"seconds": 10, "nanos": 1000}, got)
}

func TestBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"split", "ten"}},
		{"negative micros", []string{"unix", "--", "-5"}},
		{"missing argument", []string{"join", "10"}},
		{"unknown output", []string{"--output", "xml", "split", "1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.Error(t, err)
		})
	}
}
