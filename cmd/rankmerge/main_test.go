package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, noEnv)

	return code, stdout.String(), stderr.String()
}

func TestRun_Merge(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, "[1, 2, 3]", "[1, 3, 2,]")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "[1,[2,3]]\n", out)
}

func TestRun_EmptyUniverse(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "[]", "[]")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "[]\n", out)
}

func TestRun_YAMLOutputAndExplain(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, "-format", "yaml", "-explain", "[1, 2]", "[2, 1]")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "[[1, 2]]\n", out)
	assert.Contains(t, errOut, "contradictions: (1,2)")
	assert.Contains(t, errOut, "clusters: [1 2]")
	assert.Contains(t, errOut, "residual: false")
}

func TestRun_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("[3, [1, 2],]"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("- 3\n- [1, 2]\n"), 0o600))

	code, out, errOut := runCLI(t, "@"+a, "@"+b)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "[3,[1,2]]\n", out)

	code, _, errOut = runCLI(t, "@"+filepath.Join(dir, "missing.json"), "[1]")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "ranking A")
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "rankmerge.toml")
	require.NoError(t, os.WriteFile(p, []byte("[merge]\nmax_objects = 2\n"), 0o600))

	code, _, errOut := runCLI(t, "-config", p, "[1, 2, 3]", "[1]")
	assert.Equal(t, exitLimit, code)
	assert.Contains(t, errOut, "too many objects")

	// the flag wins over the file
	code, _, _ = runCLI(t, "-config", p, "-max-objects", "3", "[1, 2, 3]", "[1]")
	assert.Equal(t, exitOK, code)
}

func TestRun_EnvOverride(t *testing.T) {
	t.Parallel()

	env := func(k string) (string, bool) {
		if k == "RANKMERGE_FORMAT" {
			return "yaml", true
		}
		return "", false
	}
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"[1]", "[1]"}, &stdout, &stderr, env)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "[1]\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"missing argument", []string{"[1]"}, exitUsage, "usage"},
		{"unknown flag", []string{"-nope", "[1]", "[1]"}, exitUsage, "nope"},
		{"malformed", []string{"[1, [2, [3]]]", "[1]"}, exitUsage, "malformed"},
		{"duplicate", []string{"[1]", "[1, 1]"}, exitUsage, "ranking B"},
		{"bad format", []string{"-format", "xml", "[1]", "[1]"}, exitUsage, "invalid"},
		{"ceiling", []string{"-max-objects", "1", "[1, 2]", "[2, 1]"}, exitLimit, "too many objects"},
		{"bad config", []string{"-config", "missing.toml", "[1]", "[1]"}, exitUsage, "missing.toml"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, out)
			assert.True(t, strings.Contains(errOut, tc.msg), errOut)
		})
	}
}
