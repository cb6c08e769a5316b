package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"planifevent/config"
	"planifevent/db"
	"planifevent/middlewares"
	"planifevent/models"
	"planifevent/routes"
	"planifevent/utils"
)

func main() {
	// .env is optional; the config falls back to defaults.
	_ = godotenv.Load()
	cfg := config.Load()
	utils.SetSecret(cfg.JWTSecret)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Postgres
	sqldb, err := db.Open(cfg.PGDSN)
	if err != nil {
		log.Fatal("database error: ", err)
	}
	defer sqldb.Close()
	if err := db.CreateTables(sqldb); err != nil {
		log.Fatal("schema error: ", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	inv := utils.NewCacheInvalidator(rdb)

	// Gin + middlewares
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middlewares.RequestLogger(logger))
	server.Use(middlewares.ResponseCache(rdb, cfg.CacheTTL))

	routes.RegisterRoutes(server,
		models.NewSQLUserRepository(sqldb),
		models.NewSQLEventRepository(sqldb),
		models.NewSQLParticipationRepository(sqldb),
		rdb, inv)

	if err := server.Run(cfg.Addr); err != nil {
		log.Fatal("server error: ", err)
	}
}
