package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DatabaseDSN string
	BaseURL     string

	AccessSecret string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	KafkaBroker      string
	KafkaTopic       string
	KafkaIngestTopic string
	KafkaGroupID     string
	KafkaUsername    string
	KafkaPassword    string

	LogRetryAttempts int
	LogRetryDelay    time.Duration
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: .env not loaded:", err)
		}
	}

	return Config{
		ServerPort:  os.Getenv("SERVER_PORT"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		BaseURL:     os.Getenv("BASE_URL"),

		AccessSecret: os.Getenv("ACCESS_SECRET"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),

		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		KafkaTopic:       os.Getenv("KAFKA_TOPIC"),
		KafkaIngestTopic: os.Getenv("KAFKA_INGEST_TOPIC"),
		KafkaGroupID:     os.Getenv("KAFKA_GROUP_ID"),
		KafkaUsername:    os.Getenv("KAFKA_USERNAME"),
		KafkaPassword:    os.Getenv("KAFKA_PASSWORD"),

		LogRetryAttempts: envInt("LOG_RETRY_ATTEMPTS", 3),
		LogRetryDelay:    time.Duration(envInt("LOG_RETRY_DELAY_MS", 5000)) * time.Millisecond,
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}
