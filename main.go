package main

import (
	"context"
	"log"

	"screenix/cmd"
	"screenix/internal/data/repository"
	"screenix/internal/usecase"
	"screenix/internal/wire"
	"screenix/pkg/assets"
	"screenix/pkg/database"
	"screenix/pkg/lock"
	"screenix/pkg/mailer"
	"screenix/pkg/tagsuggest"
	"screenix/pkg/ticketpdf"
	"screenix/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.InitSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to init database schema", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	logger.Info("Redis connected successfully")

	repos := repository.NewRepository(db, logger)

	clients := &usecase.Clients{
		Tags:     tagsuggest.NewGeminiClient(config.Gemini, logger),
		Assets:   assets.NewCloudinaryClient(config.Cloudinary, logger),
		Renderer: ticketpdf.NewRenderer(),
		Mailer:   mailer.NewSMTPMailer(config.Email, logger),
		Locks:    lock.NewRedisManager(redisClient),
	}

	app := wire.Wiring(repos, clients, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
