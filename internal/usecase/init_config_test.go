package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/runoshun/deskfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	tests := []struct {
		name     string
		global   bool
		wantPath string
	}{
		{"local", false, "/work/.deskfolio.toml"},
		{"global", true, "/home/ada/.config/deskfolio/config.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := &testutil.MockConfigManager{
				Global: domain.ConfigInfo{Path: "/home/ada/.config/deskfolio/config.toml"},
				Local:  domain.ConfigInfo{Path: "/work/.deskfolio.toml"},
			}
			uc := NewInitConfig(manager)

			out, err := uc.Execute(context.Background(), InitConfigInput{Global: tt.global})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, out.Path)
			assert.Equal(t, tt.global, manager.InitGlobal)
			assert.Equal(t, !tt.global, manager.InitLocal)
		})
	}
}

func TestInitConfig_AlreadyExists(t *testing.T) {
	uc := NewInitConfig(&testutil.MockConfigManager{InitErr: domain.ErrConfigExists})

	_, err := uc.Execute(context.Background(), InitConfigInput{})
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
