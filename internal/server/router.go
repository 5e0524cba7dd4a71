package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pictgram/internal/config"
	"pictgram/internal/metrics"
	"pictgram/internal/middleware"
	"pictgram/internal/modules/auth"
	"pictgram/internal/modules/favorite"
	"pictgram/internal/modules/realtime"
	"pictgram/internal/modules/topic"
	jwtsvc "pictgram/internal/pkg/jwt"
	"pictgram/internal/repository"
	"pictgram/internal/storage"
)

// App is the wired HTTP surface plus the resources main must release.
type App struct {
	Router *gin.Engine
	Hub    *realtime.Hub
}

// New wires repositories, services and routes on top of db.
func New(cfg *config.Config, db *gorm.DB) *App {
	userRepo := repository.NewUserRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := realtime.NewHub()

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))

	images := storage.NewLocalImageStore(cfg.Image.UploadDir)
	topicService := topic.NewService(
		topicRepo,
		topic.NewFeedAssembler(topic.NewImageMaterializer(cfg.Image.Local, nil), cfg.Image.BestEffort),
		topic.NewTopicIngester(images, cfg.Image.Local),
		hub,
	)
	topicHandler := topic.NewHandler(topicService)

	favoriteHandler := favorite.NewHandler(favorite.NewService(favoriteRepo, topicRepo))
	origins := middleware.NewOriginPolicy(cfg.CORSAllowedOrigins)
	wsHandler := realtime.NewWSHandler(hub, j, origins.CheckOrigin)

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.ErrorLogger(), middleware.CORS(origins))

	r.GET("/health", healthHandler(db))
	r.GET("/metrics", metrics.Handler())
	wsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			topicHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
		}
	}

	return &App{Router: r, Hub: hub}
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
