package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config ค่าตั้งค่าของระบบทั้งหมด
type Config struct {
	Server struct {
		Port           string `yaml:"port"`
		AllowedOrigins string `yaml:"allowed_origins"`
	} `yaml:"server"`

	Mongo struct {
		URI            string        `yaml:"uri"`
		Database       string        `yaml:"database"`
		ConnectTimeout time.Duration `yaml:"connect_timeout"`
	} `yaml:"mongo"`

	Redis struct {
		URI string `yaml:"uri"`
	} `yaml:"redis"`

	JWT struct {
		Secret     string        `yaml:"secret"`
		Expiration time.Duration `yaml:"expiration"`
	} `yaml:"jwt"`

	Log struct {
		Mode string `yaml:"mode"`
	} `yaml:"log"`

	Admin struct {
		Password string `yaml:"password"`
	} `yaml:"admin"`

	Seed struct {
		StudentsPerClass int `yaml:"students_per_class"`
	} `yaml:"seed"`
}

// Load อ่านค่า default -> config.yaml (ถ้ามี) -> .env -> environment
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// .env เป็น optional
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ค่า default สำหรับ dev เท่านั้น production ต้องตั้งเอง
const (
	defaultJWTSecret     = "your_secret_key"
	defaultAdminPassword = "admin"
)

func setDefaults(cfg *Config) {
	cfg.Server.Port = "3000"
	cfg.Server.AllowedOrigins = "http://localhost:4200"

	cfg.Mongo.URI = "mongodb://localhost:27017"
	cfg.Mongo.Database = "nmit-full"
	cfg.Mongo.ConnectTimeout = 10 * time.Second

	cfg.JWT.Secret = defaultJWTSecret
	cfg.JWT.Expiration = 24 * time.Hour

	cfg.Log.Mode = "development"
	cfg.Admin.Password = defaultAdminPassword
	cfg.Seed.StudentsPerClass = 60
}

func applyEnv(cfg *Config) error {
	str := map[string]*string{
		"APP_URI":         &cfg.Server.Port,
		"ALLOWED_ORIGINS": &cfg.Server.AllowedOrigins,
		"MONGO_URI":       &cfg.Mongo.URI,
		"MONGO_DB":        &cfg.Mongo.Database,
		"REDIS_URI":       &cfg.Redis.URI,
		"JWT_SECRET":      &cfg.JWT.Secret,
		"LOG_MODE":        &cfg.Log.Mode,
		"ADMIN_PASSWORD":  &cfg.Admin.Password,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	durations := map[string]*time.Duration{
		"MONGO_CONNECT_TIMEOUT": &cfg.Mongo.ConnectTimeout,
		"JWT_EXPIRATION":        &cfg.JWT.Expiration,
	}
	for key, dst := range durations {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: invalid duration format: %w", key, err)
		}
		*dst = d
	}

	if v, ok := os.LookupEnv("SEED_STUDENTS_PER_CLASS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SEED_STUDENTS_PER_CLASS: invalid integer format: %w", err)
		}
		cfg.Seed.StudentsPerClass = n
	}
	return nil
}

// Validate ตรวจค่าที่จำเป็น
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Seed.StudentsPerClass < 0 {
		return fmt.Errorf("students per class must not be negative")
	}
	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Admin.Password == defaultAdminPassword {
			return fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
	}
	return nil
}

// IsProduction บอกว่า logger ควรใช้ production config หรือไม่
func (c *Config) IsProduction() bool {
	mode := strings.ToLower(c.Log.Mode)
	return mode == "prod" || mode == "production"
}
