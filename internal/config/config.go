package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DataPath    string
	CSVPath     string
	ImagePath   string
	WorkerCount int
	MinMass     int
	MaxMass     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	return &Config{
		DataPath:    getEnv("DATA_PATH", "data/atomic_mass_data.txt"),
		CSVPath:     getEnv("CSV_PATH", "data/atomic_mass_data.csv"),
		ImagePath:   getEnv("IMAGE_PATH", "images/binding_energy_per_nucleon.png"),
		WorkerCount: getEnvInt("WORKER_COUNT", 8),
		MinMass:     getEnvInt("MIN_MASS_NUMBER", 1),
		MaxMass:     getEnvInt("MAX_MASS_NUMBER", 256),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
