package infra

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"examplegen/internal/domain"
)

// EnvFiles are loaded in order; variables already set are never overridden.
var EnvFiles = []string{".env.production", ".env.development", ".env"}

// Config represents pipeline configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	LogLevel    string
	Port        string
	DatabaseURL string

	KieAPIKey  string
	KieBaseURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	R2Endpoint      string
	R2Bucket        string
	R2AccessKeyID   string
	R2SecretKey     string
	R2PublicBaseURL string
	R2KeyPrefix     string
	R2Region        string
	R2UseSSL        bool

	// LocalStorageDir backs uploads with the filesystem store when set.
	LocalStorageDir string

	HTTPTimeout           time.Duration
	DownloadTimeout       time.Duration
	HTTPReadTimeout       time.Duration
	HTTPWriteTimeout      time.Duration
	HTTPIdleTimeout       time.Duration
	ProviderRatePerSecond float64

	CORSAllowedOrigins []string
	APIRatePerSecond   float64
	APIRateBurst       int
}

// LoadEnvFiles loads dotenv files that exist. Missing files are ignored.
func LoadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = EnvFiles
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		KieAPIKey:  firstNonEmpty(os.Getenv("KIE_AI_API_KEY"), os.Getenv("API_KEY")),
		KieBaseURL: os.Getenv("KIE_API_BASE"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "anivid-temp/z-image-examples"),

		R2Endpoint:      os.Getenv("STORAGE_ENDPOINT"),
		R2Bucket:        os.Getenv("STORAGE_BUCKET"),
		R2AccessKeyID:   os.Getenv("STORAGE_ACCESS_KEY"),
		R2SecretKey:     os.Getenv("STORAGE_SECRET_KEY"),
		R2PublicBaseURL: os.Getenv("STORAGE_DOMAIN"),
		R2KeyPrefix:     getEnv("STORAGE_KEY_PREFIX", "gallery/anime/z-image"),
		R2Region:        getEnv("STORAGE_REGION", "auto"),
		R2UseSSL:        getEnvBool("STORAGE_USE_SSL", true),
		LocalStorageDir: os.Getenv("STORAGE_LOCAL_DIR"),

		HTTPTimeout:           time.Second * time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 120)),
		DownloadTimeout:       time.Second * time.Duration(getEnvInt("DOWNLOAD_TIMEOUT_SECONDS", 180)),
		HTTPReadTimeout:       time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:      time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:       time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		ProviderRatePerSecond: getEnvFloat("PROVIDER_RATE_PER_SECOND", 0),

		CORSAllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		APIRatePerSecond:   getEnvFloat("API_RATE_PER_SECOND", 5),
		APIRateBurst:       getEnvInt("API_RATE_BURST", 20),
	}

	if cfg.ProviderRatePerSecond < 0 {
		return nil, fmt.Errorf("%w: PROVIDER_RATE_PER_SECOND must not be negative", domain.ErrInvalidConfig)
	}

	return cfg, nil
}

// RequireKie fails when the KIE key is missing.
func (c *Config) RequireKie() error {
	if strings.TrimSpace(c.KieAPIKey) == "" {
		return fmt.Errorf("%w: set KIE_AI_API_KEY or API_KEY", domain.ErrMissingCredentials)
	}
	return nil
}

// RequireCloudinary fails when any Cloudinary credential is missing.
func (c *Config) RequireCloudinary() error {
	if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
		return fmt.Errorf("%w: cloudinary env is missing", domain.ErrMissingCredentials)
	}
	return nil
}

// RequireObjectStorage fails when the object storage settings are incomplete.
func (c *Config) RequireObjectStorage() error {
	var missing []string
	for name, v := range map[string]string{
		"STORAGE_ENDPOINT":   c.R2Endpoint,
		"STORAGE_BUCKET":     c.R2Bucket,
		"STORAGE_ACCESS_KEY": c.R2AccessKeyID,
		"STORAGE_SECRET_KEY": c.R2SecretKey,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", domain.ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
