// Package config exposes the process configuration: environment variables
// with sane defaults, optionally overridden by a TOML file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// fileConfig mirrors the keys accepted in dragondex.toml. Every field is
// optional; a zero value falls back to the env/default chain.
type fileConfig struct {
	Listen        string `toml:"listen"`
	Port          int    `toml:"port"`
	DBFolder      string `toml:"db_folder"`
	LogFolder     string `toml:"log_folder"`
	CatalogAPIURL string `toml:"catalog_api_url"`
	SessionSecret string `toml:"session_secret"`
	SyncCron      string `toml:"sync_cron"`
}

var file fileConfig

// LoadFile reads a TOML config file. A missing file is not an error, the
// env/default chain stays in effect.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return toml.Unmarshal(data, &file)
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("DRAGONDEX_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("DRAGONDEX_DEBUG") == "true"
}

func GetListen() string {
	return stringValue(file.Listen, "DRAGONDEX_LISTEN", "")
}

func GetPort() int {
	if file.Port != 0 {
		return file.Port
	}
	port, err := strconv.Atoi(os.Getenv("DRAGONDEX_PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

func GetDBFolderPath() string {
	return stringValue(file.DBFolder, "DRAGONDEX_DB_FOLDER", "db")
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	return stringValue(file.LogFolder, "DRAGONDEX_LOG_FOLDER", "log")
}

// GetCatalogAPIURL returns the base URL of the external character catalog.
func GetCatalogAPIURL() string {
	return stringValue(file.CatalogAPIURL, "DRAGONDEX_CATALOG_API", "https://dragonball-api.com/api/characters")
}

// GetSessionSecret returns the cookie session secret, empty when none is
// configured. The server generates a per-boot secret in that case.
func GetSessionSecret() string {
	return stringValue(file.SessionSecret, "DRAGONDEX_SESSION_SECRET", "")
}

// GetSyncCron returns the cron spec for the periodic catalog re-sync,
// empty when the job is disabled.
func GetSyncCron() string {
	return stringValue(file.SyncCron, "DRAGONDEX_SYNC_CRON", "")
}

func stringValue(fromFile, envKey, def string) string {
	if fromFile != "" {
		return fromFile
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}
