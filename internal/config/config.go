package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/strrl/wherewasi/internal/sessions"
)

const (
	appName    = "wherewasi"
	configName = "config"
	configType = "toml"
	envPrefix  = "WHEREWASI"

	KeyProjectsDir     = "projects_dir"
	KeyMode            = "mode"
	KeyFormat          = "format"
	KeyLimit           = "limit"
	KeyDescriptionFile = "description_file"
	KeyLogLevel        = "log_level"
)

// Output formats
const (
	FormatTable       = "table"
	FormatMarkdown    = "markdown"
	FormatText        = "text"
	FormatInteractive = "interactive"
)

// Config is the effective configuration after defaults, file, env and flags
type Config struct {
	ProjectsDir     string        `toml:"projects_dir"`
	Mode            sessions.Mode `toml:"mode"`
	Format          string        `toml:"format"`
	Limit           int           `toml:"limit"`
	DescriptionFile string        `toml:"description_file"`
	LogLevel        string        `toml:"log_level"`
}

// Load reads the configuration into v and returns the resolved settings.
// A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetDefault(KeyProjectsDir, filepath.Join(homeDir, ".claude", "projects"))
	v.SetDefault(KeyMode, string(sessions.ModeAuto))
	v.SetDefault(KeyFormat, FormatTable)
	v.SetDefault(KeyLimit, 0)
	v.SetDefault(KeyDescriptionFile, sessions.DefaultDescriptionFile)
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(Dir(homeDir))

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	mode, err := sessions.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return Config{}, err
	}

	format := strings.ToLower(v.GetString(KeyFormat))
	switch format {
	case FormatTable, FormatMarkdown, FormatText, FormatInteractive:
	default:
		return Config{}, fmt.Errorf("unknown format %q (want table, markdown, text or interactive)", format)
	}

	limit := v.GetInt(KeyLimit)
	if limit < 0 {
		return Config{}, fmt.Errorf("limit must not be negative, got %d", limit)
	}

	return Config{
		ProjectsDir:     expandHome(v.GetString(KeyProjectsDir), homeDir),
		Mode:            mode,
		Format:          format,
		Limit:           limit,
		DescriptionFile: v.GetString(KeyDescriptionFile),
		LogLevel:        v.GetString(KeyLogLevel),
	}, nil
}

// Dir returns the directory searched for config.toml
func Dir(homeDir string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	return filepath.Join(homeDir, ".config", appName)
}

// Encode renders the configuration as TOML
func (c Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
