package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BotName      string
	UserID       string
	SessionsFile string
	ResponsePack string
	// Optional turn archive
	ArchiveDriver string
	ArchiveDSN    string
	Debug         bool
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		BotName:       getEnvDefault("HUSTLEBOT_NAME", "HustleBot"),
		UserID:        getEnvDefault("HUSTLEBOT_USER", "local"),
		SessionsFile:  os.Getenv("HUSTLEBOT_SESSIONS_FILE"),
		ResponsePack:  os.Getenv("HUSTLEBOT_RESPONSES"),
		ArchiveDriver: os.Getenv("HUSTLEBOT_ARCHIVE_DRIVER"),
		ArchiveDSN:    os.Getenv("HUSTLEBOT_ARCHIVE_DSN"),
		Debug:         getEnvBoolDefault("HUSTLEBOT_DEBUG", false),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBoolDefault(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}
