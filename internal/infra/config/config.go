// internal/infra/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment settings for both services.
type Config struct {
	Port                     string
	AllowedOrigin            string
	GCPCreds                 string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Product image bucket. Empty disables the console image endpoints.
	ProductImageBucket string

	// Order status mail. The API key may come from the env var directly or
	// from Secret Manager via SENDGRID_API_KEY_SECRET; both empty disables mail.
	SendGridAPIKey       string
	SendGridAPIKeySecret string
	MailFromAddress      string
}

// Load reads the environment into a Config. A local .env is applied first
// when present; deployed environments rely on real env vars.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env")
	}

	defaultProject := getenvDefault("GCP_PROJECT_ID", "digital-store-dev")

	return &Config{
		Port:                     getenvDefault("PORT", "8080"),
		AllowedOrigin:            os.Getenv("ALLOWED_ORIGIN"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		ProductImageBucket: os.Getenv("PRODUCT_IMAGE_BUCKET"),

		SendGridAPIKey:       os.Getenv("SENDGRID_API_KEY"),
		SendGridAPIKeySecret: os.Getenv("SENDGRID_API_KEY_SECRET"),
		MailFromAddress:      getenvDefault("MAIL_FROM_ADDRESS", "no-reply@digital-store.example.com"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
