package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"newsandniche/config"
	"newsandniche/controllers"
	"newsandniche/database"
	"newsandniche/routes"
	"newsandniche/services"
	"newsandniche/utils"
)

func main() {
	// Scheduled publishing and logs run on Dhaka time.
	dhaka, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		dhaka = time.FixedZone("BST", 6*60*60)
	}
	time.Local = dhaka

	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	utils.SetDB(db)
	utils.Logger.Info().Msg("connected to PostgreSQL")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	utils.Logger.Info().Msg("migration complete")

	if err := database.SeedCategories(db); err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	utils.SetRedis(rdb)
	utils.Logger.Info().Msg("connected to Redis")

	controllers.InitGoogleOAuth()

	go func() {
		services.StartPublishCron(db)
		utils.Logger.Info().Msg("publish cron started")

		services.StartNewsletterCron(db)
		utils.Logger.Info().Msg("newsletter cron started")
	}()

	r := routes.SetupRouter(cfg)
	utils.Logger.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
