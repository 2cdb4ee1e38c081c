package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/langfu/langfu-backend/internal/handlers"
  "github.com/langfu/langfu-backend/internal/middleware"
)

type RouterConfig struct {
  ServiceName         string
  AuthHandler         *handlers.AuthHandler
  AuthMiddleware      *middleware.AuthMiddleware
  UserHandler         *handlers.UserHandler
  WordHandler         *handlers.WordHandler
  ProgressHandler     *handlers.ProgressHandler
  StoryHandler        *handlers.StoryHandler
  GenerationHandler   *handlers.GenerationHandler
  VocabularyHandler   *handlers.VocabularyHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.Use(otelgin.Middleware(cfg.ServiceName))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/api/auth/register", cfg.AuthHandler.Register)
  router.POST("/api/auth/login", cfg.AuthHandler.Login)
  router.POST("/api/auth/logout", cfg.AuthHandler.Logout)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/api")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.GET("/auth/me", cfg.AuthHandler.Me)
  // User
  protected.PUT("/user/settings", cfg.UserHandler.UpdateSettings)
  protected.GET("/user/avatar", cfg.UserHandler.Avatar)
  // Words
  protected.GET("/words", cfg.WordHandler.List)
  protected.POST("/words", cfg.WordHandler.Create)
  protected.POST("/words/track", cfg.WordHandler.Track)
  protected.POST("/words/track-batch", cfg.WordHandler.TrackBatch)
  protected.GET("/words/due", cfg.WordHandler.Due)
  // Progress
  protected.GET("/progress", cfg.ProgressHandler.List)
  protected.POST("/progress/update", cfg.ProgressHandler.Update)
  // Stories
  protected.GET("/stories", cfg.StoryHandler.List)
  protected.POST("/stories", cfg.StoryHandler.Create)
  protected.GET("/stories/:id", cfg.StoryHandler.Get)
  protected.PUT("/stories/:id", cfg.StoryHandler.Update)
  protected.DELETE("/stories/:id", cfg.StoryHandler.Delete)
  protected.POST("/stories/:id/duplicate", cfg.StoryHandler.Duplicate)
  protected.GET("/stories/:id/highlighted", cfg.StoryHandler.Highlighted)
  // Generation
  protected.POST("/generate/story", cfg.GenerationHandler.Story)
  protected.POST("/generate/examples", cfg.GenerationHandler.Examples)
  // Vocabulary sets
  protected.GET("/vocabulary-sets", cfg.VocabularyHandler.List)
  protected.POST("/vocabulary-sets", cfg.VocabularyHandler.Create)
  protected.GET("/vocabulary-sets/:id", cfg.VocabularyHandler.Get)
  protected.POST("/vocabulary-sets/:id/import", cfg.VocabularyHandler.Import)

  return router
}
