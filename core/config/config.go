package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
)

// ErrNoConfigDir is returned for file operations on a configuration that
// wasn't loaded from a directory.
var ErrNoConfigDir = errors.New("no configuration directory")

type Configuration struct {
	configDir string
	configFs  afero.Fs

	Prompt      string `json:"prompt" validate:"required"`
	HistoryFile string `json:"history_file"`
	AppLog      string `json:"app_log"`
	LogLevel    string `json:"log_level" validate:"oneof=debug info warn error"`
	Color       string `json:"color" validate:"oneof=always auto never"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() (afero.Fs, error) {
	if c.configFs == nil {
		return nil, ErrNoConfigDir
	}
	return c.configFs, nil
}

// Dir returns the directory the configuration was loaded from, it's empty
// for the built-in default.
func (c *Configuration) Dir() string {
	return c.configDir
}

// HistoryPath returns the path of the readline history file, or an empty
// string if history shouldn't be persisted.
func (c *Configuration) HistoryPath() string {
	if c.configDir == "" || c.HistoryFile == "" {
		return ""
	}
	return filepath.Join(c.configDir, c.HistoryFile)
}

// AppLogEnabled returns true if session events should be recorded.
func (c *Configuration) AppLogEnabled() bool {
	return c.configFs != nil && c.AppLog != ""
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	fs, err := c.fs()
	if err != nil {
		return nil, err
	}
	return fs.OpenFile(c.AppLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the application log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	fs, err := c.fs()
	if err != nil {
		return nil, err
	}
	return fs.OpenFile(c.AppLog, os.O_RDONLY, 0600)
}

// Default returns the built-in configuration, it isn't backed by a
// directory so nothing is persisted.
func Default() *Configuration {
	return defaultConfig()
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
