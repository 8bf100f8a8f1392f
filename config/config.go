package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// RemoteFailurePolicy selects what the blob store does when the remote
// backend rejects an upload.
type RemoteFailurePolicy string

const (
	RemoteFailureFail          RemoteFailurePolicy = "fail"
	RemoteFailureFallbackLocal RemoteFailurePolicy = "fallback_local"
)

// Config holds all environment-sourced settings. It is built once in main
// and passed down; nothing reads the environment after Load returns.
type Config struct {
	ServerPort string
	Debug      bool

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	SQLitePath string

	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioUseSSL     bool
	MinioBucket     string
	OnRemoteFailure RemoteFailurePolicy

	UploadDir     string
	MaxFileSize   int64
	DefaultUserID string

	LogLevel  string
	LogFormat string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	maxFileSize, err := strconv.ParseInt(getEnv("MAX_FILE_SIZE", "10485760"), 10, 64)
	if err != nil || maxFileSize <= 0 {
		maxFileSize = 10 << 20
	}
	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "true"))
	debug, _ := strconv.ParseBool(getEnv("DEBUG", "false"))

	return Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Debug:      debug,

		DbHost:     getEnv("DB_HOST", ""),
		DbPort:     getEnv("DB_PORT", "5432"),
		DbUser:     getEnv("DB_USER", "postgres"),
		DbPassword: getEnv("DB_PASSWORD", ""),
		DbName:     getEnv("DB_NAME", "support_portal"),
		SQLitePath: getEnv("SQLITE_DB_PATH", "support_portal.db"),

		MinioEndpoint:   getEnv("MINIO_ENDPOINT", "s3.us-east-1.amazonaws.com"),
		MinioAccessKey:  getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:  getEnv("MINIO_SECRET_KEY", ""),
		MinioUseSSL:     useSSL,
		MinioBucket:     getEnv("MINIO_BUCKET", ""),
		OnRemoteFailure: parsePolicy(getEnv("ON_REMOTE_FAILURE", "fail")),

		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize:   maxFileSize,
		DefaultUserID: getEnv("DEFAULT_USER_ID", "demo-user"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// UseSQLite reports whether the embedded database backend is selected.
// A remote SQL server is used only when DB_HOST is configured.
func (c Config) UseSQLite() bool {
	return c.DbHost == ""
}

// UseRemoteStorage reports whether attachments go to object storage.
// Absence of a bucket name selects the local directory backend.
func (c Config) UseRemoteStorage() bool {
	return c.MinioBucket != ""
}

func parsePolicy(s string) RemoteFailurePolicy {
	if s == string(RemoteFailureFallbackLocal) {
		return RemoteFailureFallbackLocal
	}
	return RemoteFailureFail
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
