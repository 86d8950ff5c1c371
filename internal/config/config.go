package config

import (
	"log"
	"os"
	"strconv"

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
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	App struct {
		FrontendURL string `yaml:"frontend_url"`
	} `yaml:"app"`
}

var AppConfig *Config

// LoadConfig fills AppConfig either from config.yaml or, when
// DATABASE_URL is set, from environment variables (test mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

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

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment variables (test mode)")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTLHours = 24 * 7

	cfg.Email.SMTPHost = "smtp.test.local"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@fitstream.test"
	cfg.Email.FromName = "FitStream"
	cfg.App.FrontendURL = "http://localhost:3000"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 24 * 7 // 7 days
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
