package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env        string
	ServerAddr string

	MongoURI string
	MongoDB  string

	FrontendOrigin string

	RateLimitAppointments int
	RateLimitContact      int
	RateLimitOrders       int
	RateLimitWindowSec    int

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	AdminAPIKey       string
	AdminUser         string
	AdminPassword     string
	AdminSetupKey     string
	JWTSecret         string
	AccessTTLMinutes  int
	RefreshTTLMinutes int
	CookieSecure      bool

	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string
	BrevoSandbox     bool

	Timezone *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	loadDotEnv(".env")
	loc, err := time.LoadLocation(getEnv("TZ", "Africa/Nairobi"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		// Empty MONGO_URI keeps the seeded in-memory store; set it to use Mongo.
		MongoURI: getEnv("MONGO_URI", ""),
		MongoDB:  getEnv("MONGO_DB", "lenoxhill"),

		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "*"),

		RateLimitAppointments: getEnvInt("RATE_LIMIT_APPOINTMENTS", 10),
		RateLimitContact:      getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitOrders:       getEnvInt("RATE_LIMIT_ORDERS", 10),
		RateLimitWindowSec:    getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 60),

		AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminSetupKey:     getEnv("ADMIN_SETUP_KEY", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:  getEnvInt("ACCESS_TTL_MINUTES", 15),
		RefreshTTLMinutes: getEnvInt("REFRESH_TTL_MINUTES", 43200),
		CookieSecure:      getEnv("COOKIE_SECURE", "false") == "true",

		BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:  getEnv("BREVO_SENDER_NAME", "Lenox Hill Healthcare"),
		BrevoSandbox:     getEnv("BREVO_SANDBOX", "false") == "true",

		Timezone: loc,
	}

	return cfg, nil
}

func loadDotEnv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
}
