package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_tracker/api"
	"sales_tracker/internal/config"
	"sales_tracker/internal/sales"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		panic(fmt.Errorf("error loading configuration: %v", err))
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	storage, err := sales.NewGormStorage(cfg.DBPath)
	if err != nil {
		logger.Fatal("error opening sales database", zap.String("db_path", cfg.DBPath), zap.Error(err))
	}

	r := gin.Default()
	api.InitRoutes(r, cfg, storage, logger)

	logger.Info("starting sales tracker", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
