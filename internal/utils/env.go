package utils

import (
  "os"
  "strconv"
  "time"
  "github.com/langfu/langfu-backend/internal/logger"
)

func GetEnv(key, defaultVal string, log *logger.Logger) string {
  if log != nil {
    log = log.With("env_var", key)
  }
  val, ok := os.LookupEnv(key)
  if !ok {
    if log != nil {
      log.Debug("Environment variable not found, using default", "default", defaultVal)
    }
    return defaultVal
  }
  if log != nil {
    log.Debug("Environment variable found, using environment", "environment", val)
  }
  return val
}

// GetEnvAsInt reads a positive integer. Every integer knob here is a count
// or a TTL, so zero and negative values fall back to the default alongside
// unparseable ones.
func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
  if log != nil {
    log = log.With("env_var", key)
  }
  valStr, ok := os.LookupEnv(key)
  if !ok {
    if log != nil {
      log.Debug("Environment variable not found, using default", "default", defaultVal)
    }
    return defaultVal
  }
  i, err := strconv.Atoi(valStr)
  if err != nil || i <= 0 {
    if log != nil {
      log.Debug("Environment variable not a positive int, using default", "providedVal", valStr, "defaultVal", defaultVal)
    }
    return defaultVal
  }
  if log != nil {
    log.Debug("Environment variable found, using it", "value", i)
  }
  return i
}

// GetEnvAsSeconds reads a positive integer number of seconds as a Duration.
// Used for the token and cache TTLs and the upstream client timeout.
func GetEnvAsSeconds(key string, defaultSeconds int, log *logger.Logger) time.Duration {
  return time.Duration(GetEnvAsInt(key, defaultSeconds, log)) * time.Second
}
