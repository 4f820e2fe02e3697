package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Email     EmailConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type RateLimitConfig struct {
	Window time.Duration
	Limit  int
}

type RedisConfig struct {
	URL     string
	Enabled bool
}

type NATSConfig struct {
	URL     string
	Enabled bool
}

type EmailConfig struct {
	RecipientEmail string
	RecipientName  string
	SenderEmail    string
	SenderName     string
	BCC            string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	SMTPUseTLS bool

	MailerSendKey string
	DevMode       bool // print emails to logs instead of sending
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"https://area710.de", "https://www.area710.de"}),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "area710_session"),
			TTL:        getDuration("SESSION_TTL", 2*time.Hour),
			Secure:     getBool("SESSION_COOKIE_SECURE", true),
		},
		RateLimit: RateLimitConfig{
			Window: getDuration("RATE_LIMIT_WINDOW", 60*time.Second),
			Limit:  getInt("RATE_LIMIT_MAX", 3),
		},
		Redis: RedisConfig{
			URL:     getEnv("REDIS_URL", "redis://localhost:6379"),
			Enabled: getBool("REDIS_ENABLED", false),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
			Enabled: getBool("NATS_ENABLED", false),
		},
		Email: EmailConfig{
			RecipientEmail: getEnv("BOOKING_RECIPIENT_EMAIL", "info@area710.de"),
			RecipientName:  getEnv("BOOKING_RECIPIENT_NAME", "area710 Eventbüro"),
			SenderEmail:    getEnv("BOOKING_SENDER_EMAIL", "noreply@area710.de"),
			SenderName:     getEnv("BOOKING_SENDER_NAME", "area710 Buchungssystem"),
			BCC:            getEnv("BOOKING_BCC_EMAIL", ""),
			SMTPHost:       getEnv("SMTP_HOST", "localhost"),
			SMTPPort:       getInt("SMTP_PORT", 1025),
			SMTPUser:       getEnv("SMTP_USER", ""),
			SMTPPass:       getEnv("SMTP_PASS", ""),
			SMTPUseTLS:     getBool("SMTP_USE_TLS", false),
			MailerSendKey:  getEnv("MAILERSEND_API_KEY", ""),
			DevMode:        getBool("EMAIL_DEV_MODE", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
