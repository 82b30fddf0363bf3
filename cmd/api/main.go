package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberia-cr/barberia-api/internal/cache"
	"github.com/barberia-cr/barberia-api/internal/config"
	dbpkg "github.com/barberia-cr/barberia-api/internal/db"
	"github.com/barberia-cr/barberia-api/internal/logger"
	"github.com/barberia-cr/barberia-api/internal/middleware"
	"github.com/barberia-cr/barberia-api/internal/routes"
	"github.com/barberia-cr/barberia-api/internal/storage"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg, zlog)

	c, err := cache.New(cfg)
	if err != nil {
		zlog.Fatal("failed to connect redis", zap.Error(err))
	}

	uploader := storage.New(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(zlog))
	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, zlog, c, uploader)

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
