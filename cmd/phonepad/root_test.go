package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDecodeArguments(t *testing.T) {
	out, _, err := execute(t, "", "33#", "227*#", "4433555 555666#", "8 88777444666*664#")
	require.NoError(t, err)
	assert.Equal(t, "E\nB\nHELLO\nTURING\n", out)
}

func TestDecodeStdin(t *testing.T) {
	out, _, err := execute(t, "33#\n\n2#\r\n")
	require.NoError(t, err)
	assert.Equal(t, "E\n\nA\n", out)
}

func TestDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.jsonl")
	require.NoError(t, os.WriteFile(first, []byte("33#\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte(`{"keys":"2#"}`+"\n"), 0o600))

	out, _, err := execute(t, "", "--file", first)
	require.NoError(t, err)
	assert.Equal(t, "E\n", out)

	out, _, err = execute(t, "", "--input-format", "jsonl", "--file", second, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"output":"A"`)
	assert.Contains(t, out, `"source":"`+second+`"`)
}

func TestDecodeMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, exitFailure, exitCode(err, &bytes.Buffer{}))
}

func TestPrettyOutput(t *testing.T) {
	out, _, err := execute(t, "", "--format", "pretty", "--color", "never", "33#", "20#", "0#")
	require.NoError(t, err)
	assert.Equal(t,
		"Raw Input: 33#\n> DECODED: E\n"+
			"Raw Input: 20#\n> DECODED: A \n"+
			"Raw Input: 0#\n> DECODED:  \n",
		out)
}

func TestEventsMode(t *testing.T) {
	out, _, err := execute(t, "", "--events", "<KP4><KP4><KP3><KP3>#", "<KP2><Backspace>#")
	require.NoError(t, err)
	assert.Equal(t, "HE\n\n", out)
}

func TestEventsModeReportsParseErrors(t *testing.T) {
	out, stderr, err := execute(t, "", "--events", "<KP4", "2#")
	require.ErrorIs(t, err, errItemsFailed)
	assert.Equal(t, "ERROR\nA\n", out)
	assert.Contains(t, stderr, "decode failed")
	assert.Equal(t, exitFailure, exitCode(err, &bytes.Buffer{}))
}

func TestInvalidFlagValue(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "2#")
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err, &bytes.Buffer{}))
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := execute(t, "", "--nope")
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err, &bytes.Buffer{}))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonepad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"json\"\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "9#")
	require.NoError(t, err)
	assert.Equal(t, `{"source":"args","line":1,"input":"9#","output":"W"}`+"\n", out)

	out, _, err = execute(t, "", "--config", path, "--format", "text", "9#")
	require.NoError(t, err)
	assert.Equal(t, "W\n", out)
}

func TestMetricsFlag(t *testing.T) {
	_, stderr, err := execute(t, "", "--metrics", "33#", "2#")
	require.NoError(t, err)
	assert.Contains(t, stderr, `phonepad_decode_total{status="ok"} 2`)
}

func TestTraceFlag(t *testing.T) {
	_, stderr, err := execute(t, "", "--trace", "22#")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stderr, "msg=step"))
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "phonepad "+versionString()+"\n", out)
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, exitOK, exitCode(nil, &stderr))
	assert.Empty(t, stderr.String())

	assert.Equal(t, exitFailure, exitCode(errors.New("boom"), &stderr))
	assert.Contains(t, stderr.String(), "Error: boom")

	assert.Equal(t, exitUsage, exitCode(usageError{err: errors.New("bad flag")}, &stderr))
}
