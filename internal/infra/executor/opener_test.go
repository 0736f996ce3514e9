package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCommand(t *testing.T) {
	const url = "https://github.com"
	tests := []struct {
		name    string
		goos    string
		browser string
		want    Command
	}{
		{"linux", "linux", "", Command{Program: "xdg-open", Args: []string{url}}},
		{"freebsd", "freebsd", "", Command{Program: "xdg-open", Args: []string{url}}},
		{"darwin", "darwin", "", Command{Program: "open", Args: []string{url}}},
		{"windows", "windows", "", Command{Program: "rundll32", Args: []string{"url.dll,FileProtocolHandler", url}}},
		{"browser override", "linux", "firefox", Command{Program: "firefox", Args: []string{url}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OpenCommand(tt.goos, tt.browser, url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenCommand_EmptyURL(t *testing.T) {
	_, err := OpenCommand("linux", "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyURL)
}

func TestOpener_Open(t *testing.T) {
	var got []Command
	opener := NewOpenerWithRunner("darwin", "", func(_ context.Context, cmd Command) ([]byte, error) {
		got = append(got, cmd)
		return nil, nil
	})

	require.NoError(t, opener.Open(context.Background(), "https://x.com"))
	assert.Equal(t, []Command{{Program: "open", Args: []string{"https://x.com"}}}, got)
}

func TestOpener_OpenError(t *testing.T) {
	runErr := errors.New("exit status 3")
	opener := NewOpenerWithRunner("linux", "", func(context.Context, Command) ([]byte, error) {
		return []byte("no method available\n"), runErr
	})

	err := opener.Open(context.Background(), "https://x.com")
	require.ErrorIs(t, err, runErr)
	assert.EqualError(t, err, "xdg-open: exit status 3: no method available")
}

func TestOpener_OpenEmptyURL(t *testing.T) {
	called := false
	opener := NewOpenerWithRunner("linux", "", func(context.Context, Command) ([]byte, error) {
		called = true
		return nil, nil
	})

	assert.ErrorIs(t, opener.Open(context.Background(), ""), domain.ErrEmptyURL)
	assert.False(t, called)
}
