package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		AccessSecret     string `yaml:"access_secret"`
		RefreshSecret    string `yaml:"refresh_secret"`
		AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
		RefreshTTLDays   int    `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`

	Storage struct {
		Type       string `yaml:"type"`       // local, s3
		BasePath   string `yaml:"base_path"`  // For local storage
		BaseURL    string `yaml:"base_url"`   // Public URL base
		Bucket     string `yaml:"bucket"`     // For S3
		Region     string `yaml:"region"`     // For S3
		AccessKey  string `yaml:"access_key"` // For S3
		SecretKey  string `yaml:"secret_key"` // For S3
		Endpoint   string `yaml:"endpoint"`   // For S3-compatible storage
		UseSSL     bool   `yaml:"use_ssl"`    // For S3
		PublicRead bool   `yaml:"public_read"`
	} `yaml:"storage"`

	Upload struct {
		MaxResumeSize int64 `yaml:"max_resume_size"` // bytes
		MaxLogoSize   int64 `yaml:"max_logo_size"`   // bytes
	} `yaml:"upload"`

	Redis struct {
		Addr     string `yaml:"addr"` // пусто = rate limiting выключен
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	RateLimit struct {
		APIRequests    int `yaml:"api_requests"`     // запросов на окно
		APIWindowMin   int `yaml:"api_window_min"`   // минут
		AuthRequests   int `yaml:"auth_requests"`    // более строгий лимит для /auth
		AuthWindowMin  int `yaml:"auth_window_min"`  // минут
	} `yaml:"rate_limit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию: при наличии DATABASE_URL - из окружения
// (режим тестов/контейнера), иначе - из yaml-файла.
func LoadConfig() {
	var cfg Config

	// .env подхватываем до чтения переменных; отсутствие файла - не ошибка
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyEnvOverrides(&cfg)
		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Конфигурация целиком из переменных окружения
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.AccessSecret = os.Getenv("JWT_ACCESS_SECRET")
	cfg.JWT.RefreshSecret = os.Getenv("JWT_REFRESH_SECRET")
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/files"

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyEnvOverrides применяет переменные окружения поверх yaml
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FIRST_ADMIN_EMAIL"); v != "" {
		cfg.FirstAdminEmail = v
	}
	if v := os.Getenv("FIRST_ADMIN_PASSWORD"); v != "" {
		cfg.FirstAdminPassword = v
	}
	if v := os.Getenv("JWT_ACCESS_SECRET"); v != "" {
		cfg.JWT.AccessSecret = v
	}
	if v := os.Getenv("JWT_REFRESH_SECRET"); v != "" {
		cfg.JWT.RefreshSecret = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.AccessTTLMinutes == 0 {
		cfg.JWT.AccessTTLMinutes = 15
	}
	if cfg.JWT.RefreshTTLDays == 0 {
		cfg.JWT.RefreshTTLDays = 7
	}
	if cfg.Upload.MaxResumeSize == 0 {
		cfg.Upload.MaxResumeSize = 5 * 1024 * 1024 // 5MB
	}
	if cfg.Upload.MaxLogoSize == 0 {
		cfg.Upload.MaxLogoSize = 2 * 1024 * 1024 // 2MB
	}
	if cfg.RateLimit.APIRequests == 0 {
		cfg.RateLimit.APIRequests = 100
	}
	if cfg.RateLimit.APIWindowMin == 0 {
		cfg.RateLimit.APIWindowMin = 15
	}
	if cfg.RateLimit.AuthRequests == 0 {
		cfg.RateLimit.AuthRequests = 5
	}
	if cfg.RateLimit.AuthWindowMin == 0 {
		cfg.RateLimit.AuthWindowMin = 60
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// IsProduction сообщает, работаем ли мы в production-режиме
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
