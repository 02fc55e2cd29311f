// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and
// an optional YAML config file.
package config

import (
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Default collaborator endpoints. Development talks to a local backend,
// every other environment talks to the hosted one.
const (
	devAPIBaseURL  = "http://localhost:8000"
	prodAPIBaseURL = "https://app-resumen-backend.vercel.app"
)

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `yaml:"address"`

	// Environment names the deployment environment ("development",
	// "production", ...). It drives collaborator base-URL selection.
	Environment string `yaml:"environment"`

	// APIBase overrides the collaborator base URL when non-empty.
	APIBase string `yaml:"api_base"`

	// LogLevel is the zap log level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// Config is the path to the config file.
	Config string `yaml:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Address, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.Environment, "env", "development", "deployment environment")
	flag.StringVar(&options.APIBase, "api", "", "collaborator base URL (overrides environment selection)")
	flag.StringVar(&options.LogLevel, "log-level", "info", "log level")
	flag.StringVar(&options.Config, "config", "", "path to config file")
	flag.StringVar(&options.Config, "c", "", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional YAML config file and
// environment variables to set configuration values. Precedence is
// flags < file < environment. It returns a pointer to the Options struct
// containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := yaml.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		options.Address = addr
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		options.Environment = env
	}
	if base := os.Getenv("API_BASE_URL"); base != "" {
		options.APIBase = base
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		options.LogLevel = lvl
	}

	return options
}

// APIBaseURL returns the collaborator base URL. An explicit override wins,
// otherwise the environment picks between the local and hosted backends.
func (o *Options) APIBaseURL() string {
	if o.APIBase != "" {
		return o.APIBase
	}
	if o.Environment == "development" {
		return devAPIBaseURL
	}
	return prodAPIBaseURL
}
