package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Upload UploadConfig
	Prompt PromptConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
}

type PromptConfig struct {
	ScoreSmoothing bool
}

const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultTemperature = 0.2
	DefaultMaxFileSize = 5 * 1024 * 1024
	MaxMaxFileSize     = 1024 * 1024 * 1024
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			// API_KEY is the name the browser client used
			APIKey:      getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
			Model:       getEnv("GEMINI_MODEL", DefaultModel),
			BaseURL:     getEnv("GEMINI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("GEMINI_TEMPERATURE", DefaultTemperature),
			Timeout:     getEnvAsDuration("GEMINI_TIMEOUT", "60s"),
		},
		Upload: UploadConfig{
			MaxFileSize: maxFileSize(getEnvAsInt64("MAX_FILE_SIZE", DefaultMaxFileSize)),
		},
		Prompt: PromptConfig{
			ScoreSmoothing: getEnvAsBool("SCORE_SMOOTHING", true),
		},
	}
}

func maxFileSize(size int64) int64 {
	if size > MaxMaxFileSize {
		log.Printf("⚠️  MAX_FILE_SIZE %d exceeds %d bytes, using the limit", size, int64(MaxMaxFileSize))
		return MaxMaxFileSize
	}
	return size
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
