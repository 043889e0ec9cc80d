package config

import (
	"os"
	"path/filepath"

	"transitdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Paths    PathConfig
	Database DatabaseConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// PathConfig holds the dataset file locations. Each dataset has its own
// override so deployments can point at files outside the data directory.
type PathConfig struct {
	DataDir       string
	VehicleFile   string
	TransportFile string
	BikeFile      string
	JourneyFile   string // optional; empty disables the journey-to-work view
}

// DatabaseConfig holds the optional ingest-audit database settings
type DatabaseConfig struct {
	URL string // empty disables load-report persistence
}

// Default source filenames, matching the open-data portal exports.
const (
	defaultVehicleFile   = "Whole_Fleet_Vehicle_Registration_Snapshot_by_Postcode_Q2_2024.csv"
	defaultTransportFile = "Annual_Metropolitan_Train_Station_Entries_2023-24.csv"
	defaultBikeFile      = "Principal_Bicycle_Network_(PBN).csv"
	defaultJourneyFile   = "JourneyToWork_VISTA_1220_LGA_V1.csv"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    envOrDefault("PORT", "8050"),
			GinMode: envOrDefault("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
	}

	dataDir := envOrDefault("DATA_DIR", "data")
	config.Paths = PathConfig{
		DataDir:       dataDir,
		VehicleFile:   envOrDefault("VEHICLE_FILE", filepath.Join(dataDir, defaultVehicleFile)),
		TransportFile: envOrDefault("TRANSPORT_FILE", filepath.Join(dataDir, defaultTransportFile)),
		BikeFile:      envOrDefault("BIKE_FILE", filepath.Join(dataDir, defaultBikeFile)),
		JourneyFile:   envOrDefault("JOURNEY_FILE", filepath.Join(dataDir, defaultJourneyFile)),
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validate(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Paths.VehicleFile == "" || config.Paths.TransportFile == "" || config.Paths.BikeFile == "" {
		return errors.ConfigInvalid("vehicle, transport, and bike dataset paths are required")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
