package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix is the prefix of environment variables overriding configuration keys.
	EnvPrefix = "FOUNDIT_"
	// EnvPort is the environment variable selecting the listening port.
	EnvPort = "PORT"
)

// A Config holds the server configuration.
type Config struct {
	Port        string
	Address     string
	ServiceName string
	Storage     Storage
	LogLevel    string
	LogFile     string
}

// A Storage holds the Item Store configuration.
type Storage struct {
	Driver       string
	Path         string
	Codec        string
	StrictWrites bool
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"port":                  "4000",
		"address":               "",
		"service_name":          "ufv-foundit-backend",
		"storage.driver":        "json",
		"storage.path":          "data/lost-items.json",
		"storage.codec":         "msgpack",
		"storage.strict_writes": false,
		"log.level":             "info",
		"log.file":              "",
	}
}

// Load reads the configuration from defaults, the optional YAML file,
// the .env file and the environment, in that order of precedence.
func Load(filename string) (Config, error) {
	konf := koanf.New(".")
	if err := konf.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, errors.Wrap(err, "could not load defaults")
	}

	if filename != "" {
		if err := konf.Load(file.Provider(filename), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "could not load %s", filename)
		}
	}

	// Variables already defined in the environment win over the .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "could not load .env")
	}

	keys := envKeys()
	err := konf.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return keys[strings.TrimPrefix(s, EnvPrefix)] // Unknown variables are skipped.
	}), nil)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not load environment")
	}

	if port, ok := os.LookupEnv(EnvPort); ok && port != "" {
		if err := konf.Load(confmap.Provider(map[string]any{"port": port}, "."), nil); err != nil {
			return Config{}, errors.Wrap(err, "could not load port")
		}
	}

	cfg := Config{
		Port:        konf.String("port"),
		Address:     konf.String("address"),
		ServiceName: konf.String("service_name"),
		Storage: Storage{
			Driver:       konf.String("storage.driver"),
			Path:         konf.String("storage.path"),
			Codec:        konf.String("storage.codec"),
			StrictWrites: konf.Bool("storage.strict_writes"),
		},
		LogLevel: konf.String("log.level"),
		LogFile:  konf.String("log.file"),
	}

	return cfg, nil
}

// envKeys maps environment variable names (without prefix) to configuration keys.
// e.g. STORAGE_STRICT_WRITES => storage.strict_writes
func envKeys() map[string]string {
	keys := map[string]string{}
	for k := range Defaults() {
		keys[strings.ToUpper(strings.ReplaceAll(k, ".", "_"))] = k
	}
	return keys
}

// ListenAddress returns the address the server listens on.
func (c Config) ListenAddress() string {
	if c.Address != "" {
		return c.Address
	}
	return ":" + c.Port
}
