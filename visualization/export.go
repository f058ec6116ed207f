package visualization

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// exportConfig gates diagram saving on the environment, so diagrams
// are only written when a development harness opts in.
type exportConfig struct {
	Enabled bool   `env:"STATE_MACHINE_DOT_EXPORT"`
	Dir     string `env:"STATE_MACHINE_DOT_DIR" envDefault:"."`
}

var loadDotEnv sync.Once

func loadExportConfig() (exportConfig, error) {
	loadDotEnv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg exportConfig
	if err := env.Parse(&cfg); err != nil {
		return exportConfig{}, err
	}
	return cfg, nil
}

// SaveDOTDescription writes the digraph to path as UTF-8 text. An I/O
// failure is returned to the caller and never affects the schema or
// any machine built from it.
func (g *GraphableSchema[S, E, T]) SaveDOTDescription(path string) error {
	return os.WriteFile(path, []byte(g.dotDigraph), 0644)
}

// SaveDOTDescriptionIfEnabled writes the digraph to filename inside
// the directory named by STATE_MACHINE_DOT_DIR, but only when
// STATE_MACHINE_DOT_EXPORT is set to a true value. Disabled export is
// not an error; deciding when to enable it is the host application's
// concern.
func (g *GraphableSchema[S, E, T]) SaveDOTDescriptionIfEnabled(filename string) error {
	cfg, err := loadExportConfig()
	if err != nil {
		return err
	}
	if !cfg.Enabled {
		return nil
	}
	return g.SaveDOTDescription(filepath.Join(cfg.Dir, filename))
}
