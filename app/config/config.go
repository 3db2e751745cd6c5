package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// AppConfig holds all application configuration.
type AppConfig struct {
	// DataDir is the root directory for application data.
	DataDir string
	// DBPath is the SQLite file holding state snapshots.
	DBPath string
	// LogDir is where daily log files are written.
	LogDir string
}

// Load reads configuration from a .env file (if present) and the
// environment. Priority: PANADERIA_* variables > defaults under the user's
// home directory > the current directory.
func Load() *AppConfig {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	dataDir := os.Getenv("PANADERIA_DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			dataDir = "data"
		} else {
			dataDir = filepath.Join(homeDir, ".panaderia")
		}
	}

	dbPath := os.Getenv("PANADERIA_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "panaderia.db")
	}

	logDir := os.Getenv("PANADERIA_LOG_DIR")
	if logDir == "" {
		logDir = filepath.Join(dataDir, "logs")
	}

	return &AppConfig{
		DataDir: dataDir,
		DBPath:  dbPath,
		LogDir:  logDir,
	}
}
