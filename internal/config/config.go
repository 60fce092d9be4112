package config

import (
	"encoding/json"
	"io"
	"os"

	"github.com/navstack-dev/navstack/internal/errors"
	"github.com/navstack-dev/navstack/pkg/route"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "navstack.json"

	// DefaultPort is the default navigation service port.
	DefaultPort = 8750

	// DefaultHost is the default navigation service host.
	DefaultHost = "localhost"
)

// Config represents the complete navstack.json configuration.
type Config struct {
	// Name is the application name.
	Name string `json:"name,omitempty"`

	// Routes is the raw route definition list, in declaration order.
	// Declaration order is the tie-breaker for equally specific
	// templates, so it is preserved as written.
	Routes []RouteConfig `json:"routes"`

	// Server contains navigation service configuration.
	Server ServerConfig `json:"server,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RouteConfig is one route entry in the configuration file.
type RouteConfig struct {
	// Name uniquely identifies the route.
	Name string `json:"name"`

	// Path is the optional path template. Defaults to the name.
	Path string `json:"path,omitempty"`

	// View is the view identifier associated with the route.
	View string `json:"view,omitempty"`
}

// ServerConfig contains navigation service configuration.
type ServerConfig struct {
	// Host is the listen host.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`
}

// Default returns a config with default values applied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// Load reads configuration from the given path. An empty path loads
// ConfigFileName from the current directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFileName
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FromError(err, errors.CodeConfigNotFound).
				WithSuggestionf("create %s or pass an explicit config path", ConfigFileName)
		}
		return nil, errors.FromError(err, errors.CodeConfigNotFound)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes configuration from a reader and applies defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.FromError(err, errors.CodeConfigInvalid).
			WithSuggestion("check the JSON syntax of the configuration")
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values after decoding.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

// Path returns the path the config was loaded from, if any.
func (c *Config) Path() string {
	return c.configPath
}

// Definitions converts the configured routes into route definitions,
// interning every view identifier in the given registry.
func (c *Config) Definitions(views *route.ViewRegistry) []route.Definition {
	if len(c.Routes) == 0 {
		return nil
	}
	defs := make([]route.Definition, len(c.Routes))
	for i, rc := range c.Routes {
		defs[i] = route.Definition{
			Name: rc.Name,
			Path: rc.Path,
			View: views.Intern(rc.View),
		}
	}
	return defs
}

// Table normalizes the configured routes into a matchable table,
// interning views in the given registry.
func (c *Config) Table(views *route.ViewRegistry) (*route.Table, error) {
	return route.Normalize(c.Definitions(views))
}
