package config

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	Endpoint        string
}

type Config struct {
	DB_URL        string
	Port          string
	Environment   string
	UploadDir     string
	StorageDriver string // "local" or "s3"
	CorsConfig    cors.Options
	S3            S3Config
}

var Envs = initConfig()

func initConfig() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	env := getEnv("ENV", "development")

	return Config{
		DB_URL:        getEnv("DB_URL", "host=localhost user=postgres password=postgres dbname=partmanager sslmode=disable"),
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/attachments"),
		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		CorsConfig:    CorsConfig(env),
		S3: S3Config{
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("S3_BUCKET_NAME", ""),
			Region:          getEnv("S3_REGION", "auto"),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// CorsConfig builds the origin policy for the given environment. Development
// is wide open so the SPA dev server and phones on the LAN can reach the API;
// production only admits the configured allow-list.
func CorsConfig(env string) cors.Options {
	if env == "development" {
		return cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"*"},
		}
	}

	origins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}
}
