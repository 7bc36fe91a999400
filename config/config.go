package config

import (
	"fmt"

	"github.com/jiyuan880304-cmd/fitfocus/models"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds every runtime setting, mapped from the environment.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"fitfocus"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"fitfocus"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	AWSRegion     string `envconfig:"AWS_REGION" default:"ap-southeast-1"`
	S3Bucket      string `envconfig:"S3_BUCKET"`
	CloudFrontURL string `envconfig:"CLOUDFRONT_URL"`
	SESEmail      string `envconfig:"SES_EMAIL"`
	SNSFCMArn     string `envconfig:"SNS_FCM_ARN"`

	LLMBaseURL string `envconfig:"LLM_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta/openai"`
	LLMAPIKey  string `envconfig:"LLM_API_KEY"`
	LLMModel   string `envconfig:"LLM_MODEL" default:"gemini-2.0-flash"`

	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`
}

var C Config

var DB *gorm.DB

// Load reads .env (if present) and the environment into C, and
// configures the global logger. Must run before InitDB.
func Load() {
	_ = godotenv.Load()

	if err := envconfig.Process("", &C); err != nil {
		log.Fatalf("config: %v", err)
	}

	lvl, err := log.ParseLevel(C.LogLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	if C.AppEnv == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		C.DBHost, C.DBUser, C.DBPassword, C.DBName, C.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.CloudRecord{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
