package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "lumictl", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.RunE, "bare lumictl opens the dashboard")
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "lumictl version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "lumictl version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, name := range []string{"dashboard", "mode", "light", "mcp", "version", "self-update"} {
		assert.True(t, found[name], "expected subcommand %s to be registered", name)
	}
}

func TestPersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	output := rootCmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "table", output.DefValue)
}

func TestDashboardFlags(t *testing.T) {
	c := newDashboardCmd()
	for _, name := range []string{"route", "debug", "no-tui"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	rootCmd.Version = "0.4.0"

	c := newVersionCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.Run(c, nil)

	assert.Equal(t, "lumictl version 0.4.0\n", buf.String())
}
