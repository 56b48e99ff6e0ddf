package config

import (
	"log"

	"camisetas-api/models"

	"github.com/glebarez/sqlite"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App holds all runtime configuration, read once from the environment
type App struct {
	Port       string `envconfig:"PORT" default:"8080"`
	GinMode    string `envconfig:"GIN_MODE"`
	DBPath     string `envconfig:"DB_PATH" default:"camisetas.db"`
	JWTSecret  string `envconfig:"JWT_SECRET" default:"camisetas_super_secret_2024"`
	AdminEmail string `envconfig:"ADMIN_EMAIL" default:"isaacdelfamedina@gmail.com"`
	BaseURL    string `envconfig:"BASE_URL" default:"http://localhost:8080"`
	UploadDir  string `envconfig:"UPLOAD_DIR" default:"uploads"`
	ResendKey  string `envconfig:"RESEND_API_KEY"`
	MailFrom   string `envconfig:"MAIL_FROM" default:"Camisetas <reservas@camisetas.local>"`
}

var C App

var DB *gorm.DB

// Load reads configuration from the environment into C
func Load() {
	if err := envconfig.Process("", &C); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
}

// JWTSecretBytes returns the signing key for tokens
func JWTSecretBytes() []byte {
	return []byte(C.JWTSecret)
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(C.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.ReservationStatusHistory{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
