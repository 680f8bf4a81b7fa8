package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/attrindex/config"
)

func TestRunCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attributes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("attributes:\n  - name: wallet.nonce\n  - name: wallet.balance\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, runCheck(&out, zerolog.Nop(), path))
	assert.Equal(t, []string{"wallet.balance", "wallet.nonce"}, strings.Fields(out.String()))
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "attributes.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[attributes]]\nname = \"delegate.username\"\n"), 0o600))
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ATTRINDEX_LOG_LEVEL=disabled\n"), 0o600))
	t.Setenv(config.EnvSchemaFile, path)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check", "--env-file", envFile})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "delegate.username\n", out.String())
}

func TestCheckCommandInvalidSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attributes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("attributes:\n  - name: a\n  - name: a\n"), 0o600))
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(""), 0o600))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check", "--env-file", envFile, path})

	assert.Error(t, cmd.Execute())
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"version"`)

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "attrindex 0.1.0 ("))
}
