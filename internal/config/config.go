// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the stub employee API's listening address (ip:port).
	Port string

	// APIBaseURL is the base URL of the employee data source the client
	// fetches from.
	APIBaseURL string

	// DataDir is the directory holding the client's durable storage
	// (session identity, bookmarks, theme preference).
	DataDir string

	// UsersFile is the path to the JSON credential table used for login.
	UsersFile string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run stub employee API on ip:port")
	flag.StringVar(&options.APIBaseURL, "url", "http://localhost:8080", "employee API base URL")
	flag.StringVar(&options.DataDir, "data", ".staffdeck", "directory for local durable storage")
	flag.StringVar(&options.UsersFile, "users", "users.json", "path to credential table")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if baseURL := os.Getenv("API_BASE_URL"); baseURL != "" {
		options.APIBaseURL = baseURL
	}
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		options.DataDir = dataDir
	}

	return options
}
