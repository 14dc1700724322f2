package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// File holds defaults a user keeps next to the tool instead of retyping them:
// typically the server address and RCON password. Explicit flags always win.
type File struct {
	Server   string `mapstructure:"server"`
	Password string `mapstructure:"password"`
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log_level"`
}

// Env vars override file values: CVARDUMP_SERVER, CVARDUMP_PASSWORD, ...
const envPrefix = "CVARDUMP"

var keys = []string{"server", "password", "output", "log_level"}

// Load reads the YAML config at path. An empty path skips the file and still
// honors the environment, so CVARDUMP_PASSWORD works without any config file.
func Load(path string) (File, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, k := range keys {
		v.SetDefault(k, "")
		if err := v.BindEnv(k); err != nil {
			return File{}, fmt.Errorf("binding env for %q: %w", k, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return File{}, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}

	var cfg File
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return File{}, fmt.Errorf("parsing config failed: %w", err)
	}
	return cfg, nil
}

// Exists reports whether a config path points at a readable file. Used for
// the default path, which is allowed to be absent.
func Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
