package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	c, _ := newTestContainer(t)
	localPath := domain.LocalConfigPath(c.Paths.Dir)
	require.NoError(t, os.WriteFile(localPath, []byte("[desktop]\nowner = \"Ada\"\n"), 0o600))

	out, err := execute(t, newConfigCommand(c), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]\n")
	assert.Contains(t, out, "(not found)\n")
	assert.Contains(t, out, "- "+localPath+"\n")
	assert.Contains(t, out, "[Effective Config]\n")
	assert.Regexp(t, `owner = .Ada.`, out)
	assert.Contains(t, out, "[[apps]]")
	assert.Contains(t, out, "[windows.portfolio]")
}

func TestFormatEffectiveConfig_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	cfg := domain.NewDefaultConfig()

	require.NoError(t, formatEffectiveConfig(&buf, cfg))

	var decoded domain.Config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, cfg.Desktop, decoded.Desktop)
	assert.Equal(t, cfg.Apps, decoded.Apps)
	assert.Equal(t, cfg.Windows, decoded.Windows)
}

func TestConfigTemplate(t *testing.T) {
	out, err := execute(t, newConfigCommand(nil), "template")

	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate(), out)
}

func TestConfigInit_Local(t *testing.T) {
	c, _ := newTestContainer(t)

	out, err := execute(t, newConfigCommand(c), "init")

	require.NoError(t, err)
	path := domain.LocalConfigPath(c.Paths.Dir)
	assert.Equal(t, "Created config: "+path+"\n", out)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate(), string(content))
}

func TestConfigInit_Global(t *testing.T) {
	c, _ := newTestContainer(t)

	out, err := execute(t, newConfigCommand(c), "init", "--global")

	require.NoError(t, err)
	path := c.ConfigManager.GlobalConfigInfo().Path
	assert.Equal(t, domain.ConfigFileName, filepath.Base(path))
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
}

func TestConfigInit_AlreadyExists(t *testing.T) {
	c, _ := newTestContainer(t)
	_, err := execute(t, newConfigCommand(c), "init")
	require.NoError(t, err)

	_, err = execute(t, newConfigCommand(c), "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfig_NilContainer(t *testing.T) {
	for _, sub := range []string{"show", "init"} {
		t.Run(sub, func(t *testing.T) {
			_, err := execute(t, newConfigCommand(nil), sub)
			assert.ErrorIs(t, err, errNoContainer)
		})
	}
}
