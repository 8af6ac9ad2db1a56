package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/3d-debian/portfolio-backend/api"
	appconfig "github.com/3d-debian/portfolio-backend/config"
	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/models"
	"github.com/3d-debian/portfolio-backend/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	cfg := appconfig.New()

	// Pretty console output for local development, raw JSON in production.
	if appconfig.GetBool(cfg, "LOG_PRETTY", true) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Msg("Initializing app...")

	db, err := openDatabase(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing storage")
		os.Exit(1)
	}

	seedAdminUser(cfg, db)

	objectStore, err := services.NewObjectStore(context.Background(), cfg)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing object storage")
		os.Exit(1)
	}
	if objectStore == nil {
		log.Warn().Msg("S3_BUCKET not configured, resume uploads disabled")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(api.Deps{
		DB:          db,
		ObjectStore: objectStore,
		Mailer:      services.NewMailer(cfg),
	})
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase picks the storage backend: PostgreSQL when DATABASE_URL is
// set, otherwise the seeded in-memory store. Memory contents do not survive
// a restart; that is the documented contract, not a bug.
func openDatabase(cfg map[string]string) (database.Database, error) {
	dsn := appconfig.GetString(cfg, "DATABASE_URL", "")
	if dsn == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory storage (contents are lost on restart)")
		return database.NewMemory(), nil
	}

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return database.Database{}, fmt.Errorf("error connecting to database: %w", err)
	}

	// Test database connection
	var result int
	if err := gormDB.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return database.Database{}, fmt.Errorf("error testing database connection: %w", err)
	}

	log.Info().Msg("Connected to PostgreSQL")
	return database.NewPostgres(gormDB)
}

// seedAdminUser creates the admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD. Without both set the admin surface stays open.
func seedAdminUser(cfg map[string]string, db database.Database) {
	username := appconfig.GetString(cfg, "ADMIN_USERNAME", "")
	password := appconfig.GetString(cfg, "ADMIN_PASSWORD", "")
	if username == "" || password == "" {
		return
	}

	existing, err := db.UserRepo().FindByUsername(username)
	if err != nil {
		log.Error().Err(err).Msg("Failed to look up admin user")
		return
	}
	if existing != nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash admin password")
		return
	}

	if _, err := db.UserRepo().Add(models.InsertUser{
		Username: username,
		Password: string(hash),
	}); err != nil {
		log.Error().Err(err).Msg("Failed to seed admin user")
		return
	}
	log.Info().Str("username", username).Msg("Seeded admin user")
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
