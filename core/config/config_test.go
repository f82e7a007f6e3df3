package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "> ", cfg.Prompt)

	// The built-in config isn't backed by a directory.
	assert.Empty(t, cfg.Dir())
	assert.Empty(t, cfg.HistoryPath())
	assert.False(t, cfg.AppLogEnabled())
	_, err := cfg.OpenAppLog()
	assert.ErrorIs(t, err, ErrNoConfigDir)
}

func TestLoadFs(t *testing.T) {
	cases := map[string]struct {
		contents string
		path     string
		wantErr  bool
		check    func(t *testing.T, cfg *Configuration)
	}{
		"overrides-defaults": {
			contents: "prompt: \"$ \"\ncolor: never\n",
			path:     "/etc/minish",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "$ ", cfg.Prompt)
				assert.Equal(t, "never", cfg.Color)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "/etc/minish/history", cfg.HistoryPath())
			},
		},
		"path-to-file": {
			contents: "log_level: debug\n",
			path:     "/etc/minish/config.yaml",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "/etc/minish", cfg.Dir())
			},
		},
		"unknown-field":   {contents: "promt: \"> \"\n", path: "/etc/minish", wantErr: true},
		"bad-log-level":   {contents: "log_level: loud\n", path: "/etc/minish", wantErr: true},
		"bad-color":       {contents: "color: sometimes\n", path: "/etc/minish", wantErr: true},
		"empty-prompt":    {contents: "prompt: \"\"\n", path: "/etc/minish", wantErr: true},
		"disabled-extras": {
			contents: "history_file: \"\"\napp_log: \"\"\n",
			path:     "/etc/minish",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Empty(t, cfg.HistoryPath())
				assert.False(t, cfg.AppLogEnabled())
			},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			memFs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(memFs, "/etc/minish/config.yaml", []byte(tc.contents), 0600))

			cfg, err := LoadFs(memFs, tc.path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestLoadFs_missing(t *testing.T) {
	_, err := LoadFs(afero.NewMemMapFs(), "/etc/minish")
	assert.Error(t, err)
}

func TestAppLog(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/cfg/config.yaml", []byte("app_log: events.log\n"), 0600))

	cfg, err := LoadFs(memFs, "/cfg")
	require.NoError(t, err)
	require.True(t, cfg.AppLogEnabled())

	fd, err := cfg.OpenAppLog()
	require.NoError(t, err)
	_, err = fd.WriteString("line\n")
	assert.NoError(t, err)
	assert.NoError(t, fd.Close())

	contents, err := afero.ReadFile(memFs, "/cfg/events.log")
	assert.NoError(t, err)
	assert.Equal(t, "line\n", string(contents))

	rd, err := cfg.ReadAppLog()
	require.NoError(t, err)
	assert.NoError(t, rd.Close())
}
