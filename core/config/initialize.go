package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration to dir if one doesn't already
// exist and loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	return initializeFs(afero.NewOsFs(), dir, logger)
}

func initializeFs(base afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	if err := base.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch _, err := base.Stat(configPath); {
	case err == nil:
		logger.Printf("Config already exists at %s, skipping\n", configPath)
	case os.IsNotExist(err):
		logger.Printf("Writing default config to %s\n", configPath)
		if err := afero.WriteFile(base, configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return LoadFs(base, dir)
}
