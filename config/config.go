package config

import (
	"fmt"
	"log"
	"os"

	"foodietrail/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the process-wide database handle. It stays nil when no database is
// configured.
var DB *gorm.DB

type Config struct {
	Port string

	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBSSLMode   string

	PlacesAPIKey string
	PlacesAPIURL string

	AWSRegion     string
	S3Region      string
	S3Bucket      string
	CloudFrontURL string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := Config{
		Port:          getenv("PORT", "3000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		PlacesAPIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		PlacesAPIURL:  os.Getenv("PLACES_API_URL"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		S3Region:      os.Getenv("S3_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
	}
	if cfg.S3Region == "" {
		cfg.S3Region = cfg.AWSRegion // fallback
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DSN returns the postgres connection string, or "" when no database is
// configured. DATABASE_URL wins over the DB_* parts.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBHost == "" {
		return ""
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

type ConnectStatus int

const (
	ConnectSkipped ConnectStatus = iota
	ConnectConnected
)

func (s ConnectStatus) String() string {
	if s == ConnectConnected {
		return "connected"
	}
	return "skipped"
}

// InitDB opens and migrates the database. Without configuration it logs a
// warning and returns ConnectSkipped so the UI can still be served; a
// configured database that cannot be reached is an error the caller must
// treat as fatal.
func InitDB(cfg Config) (ConnectStatus, error) {
	dsn := cfg.DSN()
	if dsn == "" {
		log.Println("WARNING: DATABASE_URL / DB_HOST not set, running without a database")
		return ConnectSkipped, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return ConnectSkipped, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Place{}); err != nil {
		return ConnectSkipped, fmt.Errorf("AutoMigrate failed: %w", err)
	}

	DB = db
	log.Println("Connected to database")
	return ConnectConnected, nil
}
