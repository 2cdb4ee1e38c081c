package middleware

import (
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/services"
)

type AuthMiddleware struct {
  log           *logger.Logger
  authService   services.AuthService
  cookieName    string
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService, cookieName string) *AuthMiddleware {
  middlewareLogger := log.With("middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLogger, authService: authService, cookieName: cookieName}
}

// RequireAuth gates protected routes on a valid JWT. API routes answer 401
// JSON; page routes are sent to the login screen instead.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := am.extractToken(c)
    if tokenString == "" {
      am.reject(c, "missing or invalid token")
      return
    }
    ctx, err := am.authService.SetContextFromToken(c.Request.Context(), tokenString)
    if err != nil {
      am.reject(c, "invalid or expired token")
      return
    }
    c.Request = c.Request.WithContext(ctx)
    rd := requestdata.GetRequestData(ctx)
    if rd == nil || rd.UserID == uuid.Nil {
      am.reject(c, "missing or invalid token")
      return
    }
    c.Next()
  }
}

func (am *AuthMiddleware) reject(c *gin.Context, msg string) {
  if strings.HasPrefix(c.Request.URL.Path, "/api/") {
    c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
    return
  }
  c.Redirect(http.StatusFound, "/login")
  c.Abort()
}

// extractToken prefers the auth cookie; a bearer header works as a fallback
// for non-browser clients.
func (am *AuthMiddleware) extractToken(c *gin.Context) string {
  if cookie, err := c.Cookie(am.cookieName); err == nil && cookie != "" {
    return cookie
  }
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return ""
}
