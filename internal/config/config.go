package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration values. It is built once at startup
// and passed by value into the components that need it.
type Config struct {
	Port         string
	DatabaseURL  string
	GeneratedDir string
	HuggingFace  HuggingFaceConfig
	Prodia       ProdiaConfig
	Gemini       GeminiConfig
	Vertex       VertexConfig
	Media        MediaConfig
}

// HuggingFaceConfig describes the synchronous text-to-image provider.
type HuggingFaceConfig struct {
	APIToken string
	Model    string
}

// ProdiaConfig describes the asynchronous image-to-image provider.
type ProdiaConfig struct {
	APIKey string
}

// GeminiConfig covers both room analysis and Imagen generation via API key.
type GeminiConfig struct {
	APIKey      string
	VisionModel string
	ImageModel  string
}

// VertexConfig selects the Vertex AI backend for Imagen when set.
type VertexConfig struct {
	ProjectID          string
	Location           string
	Model              string
	ServiceAccountJSON string
}

// MediaConfig describes S3 settings for generated image storage.
type MediaConfig struct {
	Bucket         string
	Region         string
	Endpoint       string
	PublicURL      string
	KeyPrefix      string
	ForcePathStyle bool
}

// FromEnv loads configuration from a .env file (if present) and the
// environment, applying defaults.
func FromEnv() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env: %v", err)
	}

	cfg := Config{
		Port:         getenv("APP_PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeneratedDir: getenv("GENERATED_DIR", "static/images/generated"),
		HuggingFace: HuggingFaceConfig{
			APIToken: os.Getenv("HF_API_TOKEN"),
			Model:    getenv("HF_MODEL", "stabilityai/stable-diffusion-xl-base-1.0"),
		},
		Prodia: ProdiaConfig{
			APIKey: os.Getenv("PRODIA_API_KEY"),
		},
		Gemini: GeminiConfig{
			APIKey:      os.Getenv("GEMINI_API_KEY"),
			VisionModel: getenv("GEMINI_VISION_MODEL", "gemini-2.0-flash"),
			ImageModel:  getenv("GEMINI_IMAGE_MODEL", "imagen-3.0-generate-002"),
		},
		Vertex: VertexConfig{
			ProjectID:          os.Getenv("VERTEX_PROJECT_ID"),
			Location:           getenv("VERTEX_LOCATION", "us-central1"),
			Model:              getenv("VERTEX_IMAGE_MODEL", "imagen-3.0-generate-002"),
			ServiceAccountJSON: os.Getenv("VERTEX_SERVICE_ACCOUNT_JSON"),
		},
		Media: MediaConfig{
			Bucket:         os.Getenv("S3_BUCKET"),
			Region:         os.Getenv("S3_REGION"),
			Endpoint:       os.Getenv("S3_ENDPOINT"),
			PublicURL:      os.Getenv("S3_PUBLIC_URL"),
			KeyPrefix:      strings.Trim(os.Getenv("S3_KEY_PREFIX"), "/"),
			ForcePathStyle: getenvBool("S3_FORCE_PATH_STYLE", false),
		},
	}

	if cfg.Port == "" {
		log.Fatal("APP_PORT cannot be empty")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getenvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}

	return parsed
}
