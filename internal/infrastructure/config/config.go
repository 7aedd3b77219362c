package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

type Config struct {
	Port           string
	DatabasePath   string
	AllowedOrigins []string
	APITokenHash   string

	// Logging
	LogFile       string
	LogLevel      string
	LogMaxSizeMB  int
	LogMaxAgeDays int

	// Text generation
	GeminiAPIKey  string
	GeminiBaseURL string
	TipTimeout    int // seconds

	// Device platform
	DataPath        string
	ProcPath        string
	PowerSupplyPath string
	UserAppsPath    string
	SystemAppsPath  string
	AppDataPath     string
	IgnoredPackages []string
	IntentCommand   string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8005"),
		DatabasePath:    getEnv("DATABASE_PATH", "./data/ecoclean.db"),
		AllowedOrigins:  getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		APITokenHash:    getEnv("API_TOKEN_HASH", ""),
		LogFile:         getEnv("LOG_FILE", "./logs/ecoclean.log"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogMaxSizeMB:    int(getEnvAsInt64("LOG_MAX_SIZE_MB", 10)),
		LogMaxAgeDays:   int(getEnvAsInt64("LOG_MAX_AGE_DAYS", 28)),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:   getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		TipTimeout:      int(getEnvAsInt64("TIP_TIMEOUT_SECONDS", 20)),
		DataPath:        getEnv("DATA_PATH", "/data"),
		ProcPath:        getEnv("PROC_PATH", "/proc"),
		PowerSupplyPath: getEnv("POWER_SUPPLY_PATH", "/sys/class/power_supply"),
		UserAppsPath:    getEnv("USER_APPS_PATH", "/data/app"),
		SystemAppsPath:  getEnv("SYSTEM_APPS_PATH", "/system/app"),
		AppDataPath:     getEnv("APP_DATA_PATH", "/data/data"),
		IgnoredPackages: getEnvAsList("IGNORED_PACKAGES", nil),
		IntentCommand:   getEnv("INTENT_COMMAND", "am"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsList reads a comma separated list, dropping empty items
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
