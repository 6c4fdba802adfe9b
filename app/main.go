package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sushihentaime/postly/internal/blogservice"
	"github.com/sushihentaime/postly/internal/common"
	"github.com/sushihentaime/postly/internal/mailservice"
	"github.com/sushihentaime/postly/internal/suggestservice"
	"github.com/sushihentaime/postly/internal/userservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	userService    *userservice.UserService
	blogService    *blogservice.BlogService
	suggestService *suggestservice.SuggestService
	mailService    *mailservice.MailService
	broker         *common.MessageBroker
	limiter        *rateLimiter
}

func main() {
	cfg, err := loadConfig(".env")
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, logCloser := common.NewLogger(cfg.Environment, cfg.LogFile)

	if err := run(cfg, logger); err != nil {
		logger.Error("stopped with error", slog.String("error", err.Error()))
		logCloser.Close()
		os.Exit(1)
	}

	logCloser.Close()
}

func run(cfg *Config, logger *slog.Logger) error {
	dsn := common.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	if cfg.AutoMigrate {
		if err := common.MigrateUp(cfg.MigrationsPath, dsn); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	db, err := common.NewDB(dsn, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBMaxIdleTime)
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}
	defer common.CloseDB(db)

	tokens, err := userservice.NewTokenMaker(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return fmt.Errorf("invalid JWT configuration: %w", err)
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		blogService: blogservice.NewBlogService(db),
		limiter:     newRateLimiter(cfg.LimiterRPS, cfg.LimiterBurst),
	}

	// user.created events only flow when a broker is configured
	var producer common.MessageProducer
	if cfg.brokerEnabled() {
		uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
		broker, err := common.NewMessageBroker(uri)
		if err != nil {
			return fmt.Errorf("failed to connect to the message broker: %w", err)
		}
		defer broker.Close()

		if err := common.SetupUserExchange(broker); err != nil {
			return fmt.Errorf("failed to setup the user exchange: %w", err)
		}

		app.broker = broker
		producer = broker

		app.mailService = mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.MailPort, logger)
		if err := app.mailService.SendWelcomeEmails(); err != nil {
			return fmt.Errorf("failed to start the welcome email consumer: %w", err)
		}
		defer app.mailService.Close()
	} else {
		logger.Warn("RABBITMQ_HOST is not set, welcome emails are disabled")
	}

	app.userService = userservice.NewUserService(db, producer, tokens, logger)

	var gen suggestservice.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := suggestservice.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create the gemini client: %w", err)
		}
		defer gemini.Close()
		gen = gemini
	} else {
		logger.Warn("GEMINI_API_KEY is not set, writing suggestions are disabled")
	}
	app.suggestService = suggestservice.NewSuggestService(gen)

	return app.serve()
}
