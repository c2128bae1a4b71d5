package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string

	RazorpayKeyID     string
	RazorpayKeySecret string

	GeminiAPIKey string

	FirebaseDBURL    string
	FirebaseCredFile string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:              getEnv("PORT", "8000"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:5500"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		FirebaseDBURL:     os.Getenv("FIREBASE_DB_URL"),
		FirebaseCredFile:  getEnv("FIREBASE_CREDENTIALS", "serviceAccountKey.json"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
