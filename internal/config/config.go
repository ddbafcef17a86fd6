package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const devSecret = "dev-secret-change-in-production"

// Store backends.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

var (
	ErrProductionSecret = errors.New("ACCESS_TOKEN_SECRET must be set in production environment")
	ErrUnknownStore     = errors.New("STORE must be mongo or memory")
)

type Config struct {
	Port        string
	Env         string
	TokenSecret string
	TokenTTL    time.Duration
	Store       string
	MongoURI    string
	DBName      string
	CORSOrigins []string
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("ACCESS_TOKEN_SECRET", devSecret)
	v.SetDefault("TOKEN_TTL", time.Hour)
	v.SetDefault("STORE", StoreMongo)
	v.SetDefault("DB_HOST", "cluster0.4hda1bm.mongodb.net")
	v.SetDefault("DB_NAME", "JobBoardDB")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5174,http://localhost:5173,https://hirefusion.netlify.app")

	cfg := Config{
		Port:        v.GetString("PORT"),
		Env:         v.GetString("ENV"),
		TokenSecret: v.GetString("ACCESS_TOKEN_SECRET"),
		TokenTTL:    v.GetDuration("TOKEN_TTL"),
		Store:       strings.ToLower(v.GetString("STORE")),
		MongoURI:    v.GetString("MONGODB_URI"),
		DBName:      v.GetString("DB_NAME"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = atlasURI(v.GetString("DB_USER"), v.GetString("DB_PASS"), v.GetString("DB_HOST"))
	}

	if cfg.Env == "production" && cfg.TokenSecret == devSecret {
		return Config{}, ErrProductionSecret
	}
	if cfg.Store != StoreMongo && cfg.Store != StoreMemory {
		return Config{}, fmt.Errorf("%w: got %q", ErrUnknownStore, cfg.Store)
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}

	return cfg, nil
}

// atlasURI builds an SRV connection string, or "" when credentials are missing.
func atlasURI(user, pass, host string) string {
	if user == "" || pass == "" || host == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
