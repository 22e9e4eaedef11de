package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/saturnines/karambit/internal/enginetest"
	"github.com/saturnines/karambit/pkg/config"
	"github.com/saturnines/karambit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FromEnvironment(t *testing.T) {
	engine := enginetest.Start("abc123")
	defer engine.Close()
	for k, v := range engine.Env() {
		t.Setenv(k, v)
	}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &options{query: "default-platform"}, &out))
	assert.JSONEq(t, `{"defaultPlatform":"`+enginetest.Platform+`"}`, out.String())
}

func TestRun_FromConfigFile(t *testing.T) {
	engine := enginetest.Start("from-file")
	defer engine.Close()

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \""+engine.Port()+"\"\ntoken: from-file\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &options{configPath: path, query: "hello"}, &out))
	assert.JSONEq(t, `{"container":{"from":{"withExec":{"stdout":"hi\n"}}}}`, out.String())
}

func TestRun_MissingEnvironment(t *testing.T) {
	t.Setenv(config.EnvSessionPort, "")
	t.Setenv(config.EnvSessionToken, "abc123")

	var out bytes.Buffer
	err := run(context.Background(), &options{query: "version"}, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingConfiguration))
	assert.Empty(t, out.String())
}

func TestRun_UnknownQuery(t *testing.T) {
	err := run(context.Background(), &options{query: "nope"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown query")
}

func TestCommand_EnvFile(t *testing.T) {
	engine := enginetest.Start("dotenv")
	defer engine.Close()

	// cleared so the dotenv file is the only source
	t.Setenv(config.EnvSessionPort, "")
	t.Setenv(config.EnvSessionToken, "")
	require.NoError(t, os.Unsetenv(config.EnvSessionPort))
	require.NoError(t, os.Unsetenv(config.EnvSessionToken))

	path := filepath.Join(t.TempDir(), "session.env")
	require.NoError(t, os.WriteFile(path, []byte(
		config.EnvSessionPort+"="+engine.Port()+"\n"+config.EnvSessionToken+"=dotenv\n",
	), 0o600))

	var out bytes.Buffer
	cmd := newCommand(&out)
	cmd.SetArgs([]string{"--env-file", path, "--query", "version"})
	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"version":"`+enginetest.Version+`"}`, out.String())
}
