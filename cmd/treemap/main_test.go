package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	c := config{
		Script:   writeScript(t, "ops: [{op: insert, key: b}, {op: len}]"),
		LogLevel: "info",
		LogFile:  filepath.Join(dir, "treemap.log"),
	}
	require.NoError(t, run(c))

	b, err := os.ReadFile(c.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "ran 2 ops, 1 entries remain")
}

func TestRunStdin(t *testing.T) {
	stdin, stdout := os.Stdin, os.Stdout
	t.Cleanup(func() { os.Stdin, os.Stdout = stdin, stdout })

	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin, os.Stdout = inR, outW

	_, err = io.WriteString(inW, `order: numeric
ops:
  - {op: insert, key: "10", value: ten}
  - {op: insert, key: "9", value: nine}
  - {op: first}
`)
	require.NoError(t, err)
	require.NoError(t, inW.Close())

	err = run(config{Script: "-", LogFile: filepath.Join(t.TempDir(), "treemap.log")})
	require.NoError(t, outW.Close())
	require.NoError(t, err)

	out, err := io.ReadAll(outR)
	require.NoError(t, err)
	assert.Equal(t, "inserted 10\ninserted 9\n9=nine\n", string(out))
}

func TestRunErrors(t *testing.T) {
	ok := writeScript(t, `ops: [{op: insert, key: "1"}]`)
	for _, test := range []struct {
		name string
		c    config
		want string
	}{
		{"missing script", config{Script: filepath.Join(t.TempDir(), "nope.yaml")}, "opening script"},
		{"bad level", config{Script: ok, LogLevel: "loud"}, `unknown log level "loud"`},
		{"bad order", config{Script: ok, Order: "random"}, `unknown order "random"`},
		{"bad script", config{Script: writeScript(t, "ops: [{op: fly}]")}, `unknown operation "fly"`},
		{"numeric override", config{Script: writeScript(t, "ops: [{op: search, key: x}]"), Order: "numeric"}, `key "x"`},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := run(test.c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}
