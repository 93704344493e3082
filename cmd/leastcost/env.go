package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// environment holds settings read from the process environment and an
// optional .env file in the working directory.
type environment struct {
	ConfigPath  string
	PostgresDSN string
	Port        int
}

func loadEnv() *environment {
	// A missing .env file is normal; system variables still apply.
	_ = godotenv.Load()

	return &environment{
		ConfigPath:  getEnv("LEASTCOST_CONFIG", ""),
		PostgresDSN: getEnv("LEASTCOST_PG_DSN", ""),
		Port:        getEnvInt("LEASTCOST_PORT", 3000),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
