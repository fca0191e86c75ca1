package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI string
	Port     string
	DBName   string

	EmotesCollection  string
	UsersCollection   string
	RolesCollection   string
	BansCollection    string
	ReportsCollection string
	AuditCollection   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret    string
	JWTIssuer    string
	JWTAccessTTL time.Duration

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// LegacyDefaultPermissions keeps the historical empty default
	// permission set instead of the intended union. See model package.
	LegacyDefaultPermissions bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		MongoURI:                 getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Port:                     getEnv("PORT", "8080"),
		DBName:                   getEnv("DB_NAME", "emotehub"),
		EmotesCollection:         getEnv("COLLECTION_EMOTES", "emotes"),
		UsersCollection:          getEnv("COLLECTION_USERS", "users"),
		RolesCollection:          getEnv("COLLECTION_ROLES", "roles"),
		BansCollection:           getEnv("COLLECTION_BANS", "bans"),
		ReportsCollection:        getEnv("COLLECTION_REPORTS", "reports"),
		AuditCollection:          getEnv("COLLECTION_AUDIT", "audit"),
		RedisAddr:                getEnv("REDIS_ADDR", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RedisDB:                  getEnvInt("REDIS_DB", 0),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		JWTIssuer:                getEnv("JWT_ISSUER", "emotehub"),
		JWTAccessTTL:             getEnvDuration("JWT_ACCESS_TTL", 24*time.Hour),
		ReadTimeout:              getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:             getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		LegacyDefaultPermissions: getEnvBool("LEGACY_DEFAULT_PERMISSIONS", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvBool(key string, fallback bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Accept duration strings like "10s" as well
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
