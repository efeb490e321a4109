package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/geo"
	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/validator"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"

	GeofenceEnforcementSoft = "soft"
	GeofenceEnforcementHard = "hard"
)

type Config struct {
	App       AppConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	WorkHours WorkHoursConfig
	Geofence  GeofenceConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// StorageConfig selects the attendance store implementation.
type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// WorkHoursConfig holds the policy thresholds the reports are computed
// against. An arrival later than StartTime plus the grace period counts as
// late; a departure before EndTime counts as early.
type WorkHoursConfig struct {
	StartTime        string
	EndTime          string
	LateGraceMinutes int
}

// GeofenceConfig holds the office fences and the enforcement policy. Soft
// enforcement annotates out-of-fence clock-ins instead of rejecting them, so
// GPS error never locks an employee out.
type GeofenceConfig struct {
	Enforcement string
	Fences      []geo.Fence
}

// defaultFencesJSON mirrors the demo office locations.
const defaultFencesJSON = `[
	{"name": "Main Office", "latitude": 37.7749, "longitude": -122.4194, "radius_meters": 100},
	{"name": "Satellite Office", "latitude": 37.3382, "longitude": -121.8863, "radius_meters": 100}
]`

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Driver: getEnv("STORAGE_DRIVER", StorageDriverMemory),
	}

	// Database configuration, used when STORAGE_DRIVER=postgres
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timetrack"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Work-hour settings
	graceMinutes, err := strconv.Atoi(getEnv("LATE_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_GRACE_MINUTES: %w", err)
	}

	config.WorkHours = WorkHoursConfig{
		StartTime:        getEnv("WORK_START_TIME", "09:00"),
		EndTime:          getEnv("WORK_END_TIME", "17:00"),
		LateGraceMinutes: graceMinutes,
	}

	// Geofence settings
	fencesJSON := getEnv("GEOFENCES", defaultFencesJSON)
	var fences []geo.Fence
	if err := json.Unmarshal([]byte(fencesJSON), &fences); err != nil {
		return nil, fmt.Errorf("invalid GEOFENCES: %w", err)
	}

	config.Geofence = GeofenceConfig{
		Enforcement: getEnv("GEOFENCE_ENFORCEMENT", GeofenceEnforcementSoft),
		Fences:      fences,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Storage.Driver != StorageDriverMemory && c.Storage.Driver != StorageDriverPostgres {
		return fmt.Errorf("unsupported STORAGE_DRIVER: %s", c.Storage.Driver)
	}
	if c.Storage.Driver == StorageDriverPostgres && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when STORAGE_DRIVER=postgres")
	}
	if !validator.IsValidClockTime(c.WorkHours.StartTime) {
		return fmt.Errorf("invalid WORK_START_TIME: %s", c.WorkHours.StartTime)
	}
	if !validator.IsValidClockTime(c.WorkHours.EndTime) {
		return fmt.Errorf("invalid WORK_END_TIME: %s", c.WorkHours.EndTime)
	}
	if c.WorkHours.LateGraceMinutes < 0 {
		return fmt.Errorf("LATE_GRACE_MINUTES must not be negative")
	}
	if c.Geofence.Enforcement != GeofenceEnforcementSoft && c.Geofence.Enforcement != GeofenceEnforcementHard {
		return fmt.Errorf("unsupported GEOFENCE_ENFORCEMENT: %s", c.Geofence.Enforcement)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
