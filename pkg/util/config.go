package util

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

func InitConfig() {
	var loggingWebhook *string
	if w := os.Getenv("LOGGING_WEBHOOK"); w != "" {
		loggingWebhook = &w
	}

	mailCfg := func() *mail {
		host := os.Getenv("EMAIL_SMTP_HOST")
		if host == "" {
			return nil
		}
		port, _ := strconv.Atoi(os.Getenv("EMAIL_SMTP_PORT"))
		return &mail{
			PlatformName:      envOr("EMAIL_PLATFORM_NAME", "Geosignup"),
			PlatformFrontend:  os.Getenv("EMAIL_PLATFORM_FRONTEND"),
			FromName:          os.Getenv("EMAIL_FROM_NAME"),
			FromAddress:       os.Getenv("EMAIL_FROM_ADDRESS"),
			EmailSMTPHost:     host,
			EmailSMTPPort:     port,
			EmailSMTPUsername: os.Getenv("EMAIL_SMTP_USERNAME"),
			EmailSMTPPassword: os.Getenv("EMAIL_SMTP_PASSWORD"),
		}
	}()

	docStore := envOr("DOCSTORE", "sqlite")
	if docStore != "sqlite" && docStore != "minio" {
		slog.Warn("Unknown DOCSTORE, falling back to sqlite", "docstore", docStore)
		docStore = "sqlite"
	}

	origins := strings.FieldsFunc(envOr("ALLOWED_ORIGINS", "*"), func(c rune) bool { return c == ',' })

	Config = config{
		StartTime:          time.Now().Unix(),
		Version:            os.Getenv("VERSION"),
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "geosignup.db"),
		DocStore:           docStore,
		Collection:         envOr("COLLECTION", "users"),
		LocationKey:        envOr("LOCATION_KEY", "userLocation"),
		SurfaceErrorDetail: envOr("SURFACE_ERROR_DETAIL", "true") != "false",
		AllowedOrigins:     origins,
		LoggingWebhook:     loggingWebhook,
		Minio: &minioCfg{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Secure:    os.Getenv("MINIO_SECURE") == "1",
			Bucket:    envOr("MINIO_BUCKET", "documents"),
		},
		Geo: &geo{
			Provider:  envOr("GEO_PROVIDER", "static"),
			Endpoint:  envOr("GEO_ENDPOINT", "http://ip-api.com/json/"),
			StaticLat: envFloat("GEO_STATIC_LAT"),
			StaticLon: envFloat("GEO_STATIC_LON"),
		},
		Mail: mailCfg,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string) float64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("Invalid float in env", "key", key, "value", v)
		return 0
	}
	return f
}

var Config config

type config struct {
	StartTime          int64
	Version            string
	Addr               string
	DBPath             string
	DocStore           string
	Collection         string
	LocationKey        string
	SurfaceErrorDetail bool
	AllowedOrigins     []string
	LoggingWebhook     *string
	Minio              *minioCfg
	Geo                *geo
	Mail               *mail
}

type minioCfg struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
	Bucket    string
}

type geo struct {
	Provider  string
	Endpoint  string
	StaticLat float64
	StaticLon float64
}

type mail struct {
	PlatformName      string
	PlatformFrontend  string
	FromName          string
	FromAddress       string
	EmailSMTPHost     string
	EmailSMTPPort     int
	EmailSMTPUsername string
	EmailSMTPPassword string
}
