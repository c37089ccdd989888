package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/picview/internal/config"
	"github.com/vvka-141/picview/internal/files/filesystem"
	"github.com/vvka-141/picview/internal/files/lister"
	"github.com/vvka-141/picview/internal/files/loader"
	"github.com/vvka-141/picview/internal/history"
	"github.com/vvka-141/picview/internal/ipc"
	"github.com/vvka-141/picview/internal/logging"
	"github.com/vvka-141/picview/pkg/picview"
)

// appContext carries the resolved settings and wired services for one command run.
type appContext struct {
	DataDir string
	Config  *config.AppConfig
	Logger  picview.Logger
	FS      filesystem.FileSystemProvider
	Lister  *lister.Lister
	Loader  *loader.Loader
	History *history.Store
}

// loadAppContext loads .env, resolves the data directory, reads picview.yaml
// and wires the services. A missing picview.yaml means defaults.
// Priority (highest to lowest): flags > environment > picview.yaml > defaults
func loadAppContext(cmd *cobra.Command) (*appContext, error) {
	_ = godotenv.Load()

	dataDir, err := config.ResolveDataDir(getDataDirFlag(cmd))
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dataDir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		cfg = config.Default()
	}

	verbose := getVerboseFlag(cmd) || cfg.Verbose
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)
	logger.Verbose("Data directory: %s", dataDir)

	fsProvider := filesystem.NewOSFileSystem()
	return &appContext{
		DataDir: dataDir,
		Config:  cfg,
		Logger:  logger,
		FS:      fsProvider,
		Lister:  lister.NewListerWithFS(fsProvider, logger),
		Loader:  loader.NewLoaderWithFS(fsProvider, logger),
		History: history.NewStoreWithFS(fsProvider, dataDir),
	}, nil
}

// Dispatcher wires the IPC command table over the context's services.
func (a *appContext) Dispatcher() *ipc.Dispatcher {
	return ipc.NewDispatcher(a.Lister, a.Loader, a.History, a.Logger)
}

// resolveAddr picks the listen address: flag, then $PICVIEW_ADDR, then config.
func resolveAddr(cmd *cobra.Command, flagAddr string, cfg *config.AppConfig) string {
	if cmd.Flags().Changed("addr") && flagAddr != "" {
		return flagAddr
	}
	if addr := os.Getenv(picview.EnvAddr); addr != "" {
		return addr
	}
	if cfg != nil && cfg.Server.Addr != "" {
		return cfg.Server.Addr
	}
	return config.DefaultAddr
}
