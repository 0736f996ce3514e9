package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/runoshun/deskfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Desktop.Owner = "Ada"
	manager := &testutil.MockConfigManager{
		Global: domain.ConfigInfo{Path: "/home/ada/.config/deskfolio/config.toml", Content: "[desktop]\nowner = \"Ada\"\n", Exists: true},
		Local:  domain.ConfigInfo{Path: "/work/.deskfolio.toml"},
	}
	uc := NewShowConfig(manager, &testutil.MockConfigLoader{Config: cfg})

	out, err := uc.Execute(context.Background(), ShowConfigInput{})
	require.NoError(t, err)

	assert.Equal(t, "Ada", out.Effective.Desktop.Owner)
	assert.True(t, out.Global.Exists)
	assert.False(t, out.Local.Exists)
	assert.Equal(t, "/work/.deskfolio.toml", out.Local.Path)
}

func TestShowConfig_LoadError(t *testing.T) {
	loadErr := errors.New("broken toml")
	uc := NewShowConfig(&testutil.MockConfigManager{}, &testutil.MockConfigLoader{LoadErr: loadErr})

	_, err := uc.Execute(context.Background(), ShowConfigInput{})
	assert.ErrorIs(t, err, loadErr)
}
