package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the dataloader backend connection details.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	DATALOADER_HOST=localhost
//	DATALOADER_PORT=8002
//	LOG_LEVEL=info
//	LOG_PRETTY=false
type Config struct {
	Server     ServerConfig     // HTTP server configuration
	Dataloader DataloaderConfig // gRPC backend connection settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// DataloaderConfig defines connection details for the dataloader gRPC
// backend.
//
// Fields:
//   - Host: hostname of the backend.
//   - Port: port number of the backend (default 8002).
type DataloaderConfig struct {
	Host string
	Port int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("DATALOADER_HOST", "localhost")
	viper.SetDefault("DATALOADER_PORT", 8002)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Dataloader: DataloaderConfig{
			Host: viper.GetString("DATALOADER_HOST"),
			Port: viper.GetInt("DATALOADER_PORT"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Dataloader.Host == "" {
		missing = append(missing, "DATALOADER_HOST")
	}
	if AppConfig.Dataloader.Port == 0 {
		missing = append(missing, "DATALOADER_PORT")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
