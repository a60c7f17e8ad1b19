package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"linkmind/internal/backend"
	"linkmind/internal/config"
	"linkmind/internal/jobs"
	"linkmind/internal/orchestrator"
	"linkmind/internal/registry"
	"linkmind/internal/tools"
)

// App wires the engine together: configuration loader, backend client,
// tool registry and orchestrator. Wiring-time settings (backend address,
// redis address) come from the snapshot taken at startup; tool gating
// always reads a fresh snapshot per orchestrated run.
type App struct {
	ConfigLoader *config.Loader
	Config       *config.Snapshot
	Backend      backend.Client
	Registry     *registry.Registry
	Executor     *orchestrator.Executor
	JobClient    jobs.JobClient
}

func NewApp(configPath string) (*App, error) {
	a := &App{}

	if err := a.initConfig(configPath); err != nil {
		return nil, err
	}
	if err := a.initBackend(); err != nil {
		return nil, err
	}
	if err := a.initRegistry(); err != nil {
		return nil, err
	}
	if err := a.initJobClient(); err != nil {
		a.Close()
		return nil, err
	}

	log.Debug("application initialization complete")
	return a, nil
}

// Close releases held connections. Safe to call on a partially
// initialized App.
func (a *App) Close() {
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.WithError(err).Warn("closing job client")
		}
	}
}

func (a *App) initConfig(configPath string) error {
	a.ConfigLoader = config.NewLoader(configPath)
	snap, err := a.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	a.Config = snap
	return nil
}

func (a *App) initBackend() error {
	a.Backend = backend.NewHTTPClient(a.Config.API.BaseURL, a.Config.API.Timeout)
	return nil
}

func (a *App) initRegistry() error {
	a.Registry = registry.New()
	a.Registry.RegisterAll(tools.All(a.Backend, nil))
	a.Executor = orchestrator.New(a.ConfigLoader, a.Registry)
	return nil
}

func (a *App) initJobClient() error {
	if a.Config.Redis.Address == "" {
		log.Debug("no redis address configured, background runs disabled")
		return nil
	}
	a.JobClient = jobs.NewAsynqJobClient(a.Config.Redis.Address, a.Config.Redis.Password, a.Config.Redis.DB)
	return nil
}
