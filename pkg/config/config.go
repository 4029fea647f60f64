package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

func New() Config {
	return Config{
		BasePath:       requireEnv("BASE_PATH"),
		Port:           requireEnvAsInt("PORT"),
		CheckInBaseURL: requireEnv("CHECKIN_BASE_URL"),
		RosterSeedFile: os.Getenv("ROSTER_SEED_FILE"),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		Redis: Redis{
			Host: requireEnv("REDIS_HOST"),
			Port: requireEnvAsInt("REDIS_PORT"),
		},
		RabbitMq: RabbitMq{
			Host:     requireEnv("RABBITMQ_HOST"),
			Port:     requireEnvAsInt("RABBITMQ_PORT"),
			Username: requireEnv("RABBITMQ_USERNAME"),
			Password: requireEnv("RABBITMQ_PASSWORD"),
		},
		S3: S3{
			Endpoint:  requireEnv("S3_ENDPOINT"),
			AccessKey: requireEnv("S3_ACCESS_KEY"),
			SecretKey: requireEnv("S3_SECRET_KEY"),
			Bucket:    requireEnv("S3_BUCKET"),
			UseSSL:    os.Getenv("S3_USE_SSL") == "true",
		},
		Smtp: Smtp{
			Host:     requireEnv("SMTP_HOST"),
			Port:     requireEnvAsInt("SMTP_PORT"),
			Username: requireEnv("SMTP_USERNAME"),
			Password: requireEnv("SMTP_PASSWORD"),
		},
	}
}

type Config struct {
	BasePath       string
	Port           int
	CheckInBaseURL string
	RosterSeedFile string
	Postgresql     Postgresql
	Redis          Redis
	RabbitMq       RabbitMq
	S3             S3
	Smtp           Smtp
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host string
	Port int
}

type RabbitMq struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (r RabbitMq) GetUrl() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", r.Username, r.Password, r.Host, r.Port)
}

type S3 struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Smtp struct {
	Host     string
	Port     int
	Username string
	Password string
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}
