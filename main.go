package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/config"
	"github.com/yeremiapane/restaurant-engine/database"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/router"
	"github.com/yeremiapane/restaurant-engine/utils"
)

func main() {
	// Load .env di awal sebelum apapun
	config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	if cfg.SeedDemoData {
		if err := database.SeedDemoData(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Event sinks: websocket hub selalu aktif, kafka jika broker diset
	hub := kds.NewHub()
	publishers := kds.Fanout{hub}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kds.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		publishers = append(publishers, kafkaPublisher)
		utils.InfoLogger.Printf("Publishing events to kafka topic %s", cfg.KafkaTopic)
	}

	r := router.SetupRouter(db, router.Options{
		ConflictWindow: cfg.ConflictWindow,
		RequestTimeout: cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		RestaurantName: cfg.RestaurantName,
		Hub:            hub,
		Publisher:      publishers,
	})

	utils.InfoLogger.Printf("Listening on port %s (conflict window %s)", cfg.Port, cfg.ConflictWindow)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
