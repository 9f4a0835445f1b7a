package command

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type format string

type testOptions struct {
	Output  string `flag:"output" short:"o" usage:"output file"`
	Format  format `flag:"format" default:"go" usage:"output format"`
	Verbose bool   `flag:"verbose" short:"v" usage:"verbose output"`
	Depth   int    `flag:"depth" default:"3" usage:"max depth"`
}

func TestBindCommandAndOptions(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	require.NoError(t, BindCommand(cmd, &testOptions{}))

	require.NoError(t, cmd.ParseFlags([]string{"-o", "out.go", "--verbose"}))

	var options testOptions
	require.NoError(t, BindOptions(cmd, &options))

	assert.Equal(t, "out.go", options.Output)
	assert.Equal(t, format("go"), options.Format)
	assert.True(t, options.Verbose)
	assert.Equal(t, 3, options.Depth)
}

func TestBindCommandInvalidDefault(t *testing.T) {
	type badOptions struct {
		Verbose bool `flag:"verbose" default:"maybe"`
	}

	err := BindCommand(&cobra.Command{}, badOptions{})
	assert.ErrorContains(t, err, "default of flag verbose")
}

func TestBindCommandUnsupportedType(t *testing.T) {
	type badOptions struct {
		Ratio float64 `flag:"ratio"`
	}

	err := BindCommand(&cobra.Command{}, &badOptions{})
	assert.ErrorContains(t, err, "unsupported command flag type")
}

func TestBindOptionsRequiresPointer(t *testing.T) {
	err := BindOptions(&cobra.Command{}, testOptions{})
	assert.Error(t, err)
}
