package config

import (
	"os"
	"strconv"
	"strings"
)

// Storage backend identifiers accepted in STORAGE_BACKEND.
const (
	BackendS3     = "s3"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// AdminToken gates the read and export endpoints. Empty disables
	// the check, as in development.
	AdminToken string

	StorageBackend string
	DataFile       string
	S3Bucket       string

	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		StorageBackend: strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", BackendFile))),
		DataFile:       getEnv("STORAGE_DATA_FILE", "data/patients.json"),
		S3Bucket:       getEnv("STORAGE_S3_BUCKET", ""),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", true),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated environment variable, dropping
// empty entries.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
