package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/langfu/langfu-backend/internal/types"
  "github.com/langfu/langfu-backend/internal/utils"
  "github.com/langfu/langfu-backend/internal/logger"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "langfu", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
    log.Error("Failed to enable uuid-ossp extension", "error", err)
    return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
  }
  log.Info("uuid-ossp extension enabled")

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.Word{},
    &types.Example{},
    &types.WordHistory{},
    &types.Progress{},
    &types.Story{},
    &types.VocabularySet{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  constraints := []struct {
    name  string
    stmt  string
  }{
    {"fk_example_word_id", `ALTER TABLE "example" ADD CONSTRAINT "fk_example_word_id" FOREIGN KEY ("word_id") REFERENCES "word"("id") ON DELETE CASCADE`},
    {"fk_word_history_user_id", `ALTER TABLE "word_history" ADD CONSTRAINT "fk_word_history_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
    {"fk_word_history_word_id", `ALTER TABLE "word_history" ADD CONSTRAINT "fk_word_history_word_id" FOREIGN KEY ("word_id") REFERENCES "word"("id") ON DELETE CASCADE`},
    {"fk_progress_user_id", `ALTER TABLE "progress" ADD CONSTRAINT "fk_progress_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
    {"fk_story_user_id", `ALTER TABLE "story" ADD CONSTRAINT "fk_story_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
    {"fk_vocabulary_set_user_id", `ALTER TABLE "vocabulary_set" ADD CONSTRAINT "fk_vocabulary_set_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
  }
  for _, c := range constraints {
    check := fmt.Sprintf(`SELECT 1 FROM pg_constraint WHERE conname = '%s'`, c.name)
    var exists int
    if err := s.db.Raw(check).Scan(&exists).Error; err == nil && exists == 1 {
      continue
    }
    if err := s.db.Exec(c.stmt).Error; err != nil {
      return fmt.Errorf("Failed to add %s: %w", c.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
