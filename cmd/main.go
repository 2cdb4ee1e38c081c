package main

import (
  "context"
  "fmt"
  "os"
  "time"
  "github.com/langfu/langfu-backend/internal/clients/rediscache"
  "github.com/langfu/langfu-backend/internal/db"
  "github.com/langfu/langfu-backend/internal/handlers"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/middleware"
  "github.com/langfu/langfu-backend/internal/observability"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/seed"
  "github.com/langfu/langfu-backend/internal/server"
  "github.com/langfu/langfu-backend/internal/services"
  "github.com/langfu/langfu-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  serviceName := utils.GetEnv("SERVICE_NAME", "langfu-backend", log)
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsSeconds("ACCESS_TOKEN_TTL", 86400, log)
  authCookieName := utils.GetEnv("AUTH_COOKIE_NAME", "langfu-auth", log)

  // Tracing
  otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: serviceName,
    Environment: utils.GetEnv("DEPLOY_ENV", "development", nil),
    Version:     utils.GetEnv("SERVICE_VERSION", "dev", nil),
  })
  defer func() {
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = otelShutdown(shutdownCtx)
  }()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Redis cache (optional)
  cache := rediscache.NewFromEnv(log)

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  wordRepo := repos.NewWordRepo(thePG, log)
  exampleRepo := repos.NewExampleRepo(thePG, log)
  wordHistoryRepo := repos.NewWordHistoryRepo(thePG, log)
  progressRepo := repos.NewProgressRepo(thePG, log)
  storyRepo := repos.NewStoryRepo(thePG, log)
  vocabularySetRepo := repos.NewVocabularySetRepo(thePG, log)

  // Seed vocabulary (optional)
  if seedPath := utils.GetEnv("VOCAB_SEED_FILE", "", nil); seedPath != "" {
    if _, sErr := seed.Load(context.Background(), seedPath, log, wordRepo, exampleRepo); sErr != nil {
      log.Warn("Vocabulary seeding failed", "path", seedPath, "error", sErr)
    }
  }

  // Services
  log.Info("Setting up Services from main...")
  progressService := services.NewProgressService(thePG, log, progressRepo, cache)
  authService := services.NewAuthService(thePG, log, userRepo, progressService, jwtSecretKey, accessTokenTTL)
  userService := services.NewUserService(thePG, log, userRepo, progressService)
  avatarService := services.NewAvatarService(log)
  wordService := services.NewWordService(thePG, log, wordRepo, exampleRepo)
  trackerService := services.NewTrackerService(thePG, log, wordHistoryRepo)
  storyService := services.NewStoryService(thePG, log, storyRepo)
  vocabularyService := services.NewVocabularyService(thePG, log, vocabularySetRepo, wordRepo, exampleRepo)
  textGenClient, tgErr := services.NewTextGenClient(log)
  if tgErr != nil {
    log.Warn("Text generation client unavailable, using template fallbacks", "error", tgErr)
    textGenClient = nil
  }
  generationService := services.NewGenerationService(thePG, log, textGenClient, storyService, wordRepo, exampleRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService, userService, authCookieName)
  userHandler := handlers.NewUserHandler(userService, avatarService)
  wordHandler := handlers.NewWordHandler(wordService, trackerService)
  progressHandler := handlers.NewProgressHandler(progressService, userService)
  storyHandler := handlers.NewStoryHandler(storyService)
  generationHandler := handlers.NewGenerationHandler(generationService)
  vocabularyHandler := handlers.NewVocabularyHandler(vocabularyService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService, authCookieName)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    ServiceName:        serviceName,
    AuthHandler:        authHandler,
    AuthMiddleware:     authMiddleware,
    UserHandler:        userHandler,
    WordHandler:        wordHandler,
    ProgressHandler:    progressHandler,
    StoryHandler:       storyHandler,
    GenerationHandler:  generationHandler,
    VocabularyHandler:  vocabularyHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
