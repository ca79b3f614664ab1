package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/salience/cmd/salience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"analyze", "keywords", "sections"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesAnalyzeFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"--lang", "ru", "--html-mode", "readability", "--max-keywords", "3",
		"analyze", "--top", "2", "--json", "a.pdf", "b.docx",
	})
	require.NoError(t, err)

	assert.Equal(t, "ru", cli.Lang)
	assert.Equal(t, "readability", cli.HTMLMode)
	assert.Equal(t, 3, cli.MaxKeywords)
	assert.Equal(t, []string{"a.pdf", "b.docx"}, cli.Analyze.Sources)
	assert.Equal(t, 2, cli.Analyze.Top)
	assert.True(t, cli.Analyze.JSON)
	assert.Equal(t, 4, cli.Analyze.Concurrency)
}

func TestCLI_ParsesRateLimitFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"--rate", "2", "--burst", "3",
		"--host-rate", "cdn.acme.example=0", "--host-rate", "slow.example=0.5",
		"analyze", "https://acme.example",
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, cli.Rate, 1e-9)
	assert.Equal(t, 3, cli.Burst)
	assert.Equal(t, map[string]float64{"cdn.acme.example": 0, "slow.example": 0.5}, cli.HostRate)
}

func TestCLI_RejectsUnknownHTMLMode(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--html-mode", "browser", "analyze", "a.html"})

	require.Error(t, err)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.EnvFile = ""

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"analyze", "keywords", "sections"} {
		assert.Contains(t, helpOutput, cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestMain_Run_NoArguments(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.EnvFile = ""

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage:")
}
