package mixto

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config configures the client. Zero fields are resolved from the
// environment and then from the config file, in that order.
type Config struct {
	Host          string `json:"host" envconfig:"MIXTO_HOST"`
	APIKey        string `json:"api_key" envconfig:"MIXTO_API_KEY"`
	WorkspaceID   string `json:"workspace_id" envconfig:"MIXTO_WORKSPACE_ID"`
	WorkspaceName string `json:"workspace_name" envconfig:"MIXTO_WORKSPACE_NAME"`
	Instance      string `json:"instance" envconfig:"MIXTO_INSTANCE"`
}

// DefaultConfigPath returns the standard config file location,
// ~/.mixto.json. The MIXTO_CONFIG environment variable overrides it.
func DefaultConfigPath() string {
	if p := os.Getenv("MIXTO_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mixto.json"
	}
	return filepath.Join(home, ".mixto.json")
}

// loadConfigFile reads a Config from a JSON file. A missing file is not an
// error; it yields an empty Config so resolution can continue.
func loadConfigFile(path string) (Config, error) {
	var conf Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return conf, err
	}
	if err := json.Unmarshal(data, &conf); err != nil {
		return conf, err
	}
	return conf, nil
}

// merge fills empty fields of dst from src.
func merge(dst, src Config) Config {
	if dst.Host == "" {
		dst.Host = src.Host
	}
	if dst.APIKey == "" {
		dst.APIKey = src.APIKey
	}
	if dst.WorkspaceID == "" {
		dst.WorkspaceID = src.WorkspaceID
	}
	if dst.WorkspaceName == "" {
		dst.WorkspaceName = src.WorkspaceName
	}
	if dst.Instance == "" {
		dst.Instance = src.Instance
	}
	return dst
}

// resolve layers explicit values over the environment over the config
// file. Host and API key must be present once all sources are applied.
func resolve(conf Config, configFile string) (Config, error) {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		return conf, &ConfigurationError{Cause: err}
	}
	conf = merge(conf, env)

	if conf.Host == "" || conf.APIKey == "" {
		fileConf, err := loadConfigFile(configFile)
		if err != nil {
			return conf, &ConfigurationError{Cause: err}
		}
		conf = merge(conf, fileConf)
	}

	var missing []string
	if conf.Host == "" {
		missing = append(missing, "host")
	}
	if conf.APIKey == "" {
		missing = append(missing, "api key")
	}
	if len(missing) > 0 {
		return conf, &ConfigurationError{Missing: missing}
	}
	return conf, nil
}
