package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	SeedPosts     bool
	RandomPostIDs bool
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		SeedPosts:     getBoolEnv("SEED_POSTS", true),
		RandomPostIDs: getBoolEnv("RANDOM_POST_IDS", false),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return value
}
