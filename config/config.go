package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HttpPort string
	AppEnv   string

	// shared secret for the sensitive endpoints (x-api-key)
	APIKey string

	// S3/MinIO
	BucketEndpoint  string
	BucketAccessID  string
	BucketAccessKey string
	BucketName      string
	BucketRegion    string
	UseSSL          bool   // MinIO: false, S3: true
	StorageType     string //"minio" or "s3"

	// Redis
	RedisURL      string
	RedisPassword string
	QueueTopic    string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// OCR
	TesseractPath string
	TesseractLang string

	// limits
	URLExpiration  time.Duration
	MaxFileSize    int64
	MaxPromptChars int
}

func LoadConfig() *Config {
	return &Config{
		HttpPort:        os.Getenv("PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		APIKey:          os.Getenv("API_KEY"),
		BucketEndpoint:  os.Getenv("BUCKET_ENDPOINT"),
		BucketAccessID:  os.Getenv("BUCKET_ACCESS_ID"),
		BucketAccessKey: os.Getenv("BUCKET_ACCESS_KEY"),
		BucketName:      os.Getenv("BUCKET_NAME"),
		BucketRegion:    os.Getenv("BUCKET_REGION"),
		UseSSL:          os.Getenv("BUCKET_USE_SSL") == "true",
		StorageType:     os.Getenv("STORAGE_TYPE"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		QueueTopic:      getenvDefault("QUEUE_TOPIC", "form_generation_tasks"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getenvDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		TesseractPath:   getenvDefault("TESSERACT_PATH", "tesseract"),
		TesseractLang:   getenvDefault("TESSERACT_LANG", "eng"),
		URLExpiration:   time.Duration(getenvMinutes("URL_EXPIRATION_TIME", 15)) * time.Minute,
		MaxFileSize:     10 * 1024 * 1024,
		MaxPromptChars:  15000,
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvMinutes(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
