package root

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	CORSOrigin   string
}

// LoadConfig reads configuration from a .env file or the OS environment.
// DATABASE_URL may be empty: the server then runs catalog-only and plan
// endpoints report the store as unavailable.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with OS environment variables")
	}
	return Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "idealab"),
		CORSOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
