// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/runoshun/deskfolio/internal/infra/config"
	"github.com/runoshun/deskfolio/internal/infra/executor"
	"github.com/runoshun/deskfolio/internal/infra/logging"
	"github.com/runoshun/deskfolio/internal/store"
	"github.com/runoshun/deskfolio/internal/usecase"
)

// Paths holds the directories the application reads and writes.
type Paths struct {
	Dir      string // Working directory (holds the local .deskfolio.toml)
	StateDir string // Path to the state directory (logs); empty disables logging
}

// newPaths resolves the application paths for a working directory.
func newPaths(dir string) Paths {
	return Paths{
		Dir:      dir,
		StateDir: defaultStateDir(),
	}
}

// defaultStateDir returns $XDG_STATE_HOME/deskfolio or ~/.local/state/deskfolio.
func defaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskStore
	Clock         domain.Clock
	Opener        domain.URLOpener
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Tasks     *usecase.TaskAPI
	AppConfig *domain.Config
	logFile   *logging.Logger

	// Configuration
	Paths Paths
}

// New creates a new Container for the given working directory.
// The effective configuration is loaded eagerly; a broken config file is an error.
func New(dir string) (*Container, error) {
	paths := newPaths(dir)

	configLoader := config.NewLoader(paths.Dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(paths.StateDir, logging.ParseLevel(appConfig.Log.Level))
	taskStore := store.New(logger)

	return &Container{
		Store:         taskStore,
		Tasks:         usecase.NewTaskAPI(taskStore),
		Clock:         domain.RealClock{},
		Opener:        executor.NewOpener(),
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(paths.Dir),
		AppConfig:     appConfig,
		logFile:       logger,
		Paths:         paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// A nil logger disables logging.
func NewWithDeps(paths Paths, appConfig *domain.Config, clock domain.Clock, opener domain.URLOpener, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	taskStore := store.New(logger)
	return &Container{
		Store:     taskStore,
		Tasks:     usecase.NewTaskAPI(taskStore),
		Clock:     clock,
		Opener:    opener,
		Logger:    logger,
		AppConfig: appConfig,
		Paths:     paths,
	}
}

// StartSession writes the session marker to the log.
func (c *Container) StartSession(version string) {
	if c.logFile != nil {
		c.logFile.Start(version)
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// UseCase factory methods

// LaunchAppUseCase returns a new LaunchApp use case.
func (c *Container) LaunchAppUseCase() *usecase.LaunchApp {
	return usecase.NewLaunchApp(c.Tasks, c.AppConfig, c.Opener, c.Logger)
}

// ClickTaskbarUseCase returns a new ClickTaskbar use case.
func (c *Container) ClickTaskbarUseCase() *usecase.ClickTaskbar {
	return usecase.NewClickTaskbar(c.Tasks)
}

// OpenEntryUseCase returns a new OpenEntry use case.
func (c *Container) OpenEntryUseCase() *usecase.OpenEntry {
	return usecase.NewOpenEntry(c.Opener, c.Logger)
}

// CycleWindowUseCase returns a new CycleWindow use case.
func (c *Container) CycleWindowUseCase() *usecase.CycleWindow {
	return usecase.NewCycleWindow(c.Tasks)
}

// ReplayUseCase returns a new Replay use case.
func (c *Container) ReplayUseCase() *usecase.Replay {
	return usecase.NewReplay(c.Tasks, c.LaunchAppUseCase(), c.ClickTaskbarUseCase(), c.AppConfig, c.Logger)
}

// ListAppsUseCase returns a new ListApps use case.
func (c *Container) ListAppsUseCase() *usecase.ListApps {
	return usecase.NewListApps(c.AppConfig)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
