package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Port          string
	RandomUserAPI string
	UserCount     int
	GroupCount    int
	MessageCount  int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		RandomUserAPI: getEnv("RANDOM_USER_API", "https://randomuser.me/api/"),
		UserCount:     getEnvInt("USER_COUNT", 30),
		GroupCount:    getEnvInt("GROUP_COUNT", 20),
		MessageCount:  getEnvInt("MESSAGE_COUNT", 20),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
