package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfig_Defaults(t *testing.T) {
	t.Setenv("CSVREPL_RUNTIME_PATH", "/tmp/csvrepl-test")

	c, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/csvrepl-test", c.GetRuntimePath())
	assert.Equal(t, "data/", c.GetDataDir())
	assert.Equal(t, "brief", c.GetOutputMode())
	assert.False(t, c.IsQuotedArgs())
	assert.True(t, c.IsLoginRequired())
	assert.True(t, c.IsWebSelected())
	assert.False(t, c.IsTelegramSelected())
	assert.Equal(t, 30*time.Minute, c.GetSessionIdle())
	assert.Equal(t, filepath.Join("/tmp/csvrepl-test", "csvrepl.log"), LogPath(c.GetRuntimePath()))
	assert.Equal(t, filepath.Join("/tmp/csvrepl-test", ".env"), EnvPath(c.GetRuntimePath()))
}

func TestParseAppConfig_Overrides(t *testing.T) {
	t.Setenv("CSVREPL_RUNTIME_PATH", "/tmp/csvrepl-test")
	t.Setenv("CSVREPL_DATA_DIR", "fixtures")
	t.Setenv("CSVREPL_OUTPUT_MODE", "verbose")
	t.Setenv("CSVREPL_QUOTED_ARGS", "true")
	t.Setenv("CSVREPL_REQUIRE_LOGIN", "false")

	c, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "fixtures", c.GetDataDir())
	assert.Equal(t, "verbose", c.GetOutputMode())
	assert.True(t, c.IsQuotedArgs())
	assert.False(t, c.IsLoginRequired())
}

func TestParseAppConfig_InvalidBool(t *testing.T) {
	t.Setenv("CSVREPL_QUOTED_ARGS", "maybe")

	_, err := ParseAppConfig()
	assert.Error(t, err)
}

func TestGetRuntimePath_RelativeUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CSVREPL_RUNTIME_PATH", "")

	assert.Equal(t, filepath.Join(home, ".csvrepl"), GetRuntimePath())
}

func TestWebConfig_RequiresSessionKey(t *testing.T) {
	t.Setenv("CSVREPL_SESSION_KEY", "")

	c := &WebConfig{}
	assert.Error(t, env.Parse(c))

	t.Setenv("CSVREPL_SESSION_KEY", "0123456789abcdef")
	t.Setenv("CSVREPL_HTTP_READ_TIMEOUT", "3s")
	c = &WebConfig{}
	require.NoError(t, env.Parse(c))
	assert.Equal(t, ":8080", c.GetAddr())
	assert.Equal(t, []byte("0123456789abcdef"), c.GetSessionKey())
	assert.Equal(t, 3*time.Second, c.ReadTimeout)
}

func TestIsDebug(t *testing.T) {
	t.Setenv("CSVREPL_DEBUG", "1")
	assert.True(t, IsDebug())

	t.Setenv("CSVREPL_DEBUG", "")
	assert.False(t, IsDebug())
}
