package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/services"
  "github.com/langfu/langfu-backend/internal/types"
)

type AuthHandler struct {
  authService   services.AuthService
  userService   services.UserService
  cookieName    string
}

func NewAuthHandler(authService services.AuthService, userService services.UserService, cookieName string) *AuthHandler {
  return &AuthHandler{authService: authService, userService: userService, cookieName: cookieName}
}

func (ah *AuthHandler) setAuthCookie(c *gin.Context, token string) {
  maxAge := int(ah.authService.GetAccessTTL().Seconds())
  c.SetSameSite(http.SameSiteLaxMode)
  c.SetCookie(ah.cookieName, token, maxAge, "/", "", false, true)
}

func (ah *AuthHandler) Register(c *gin.Context) {
  var req struct {
    Email       string      `json:"email"`
    Password    string      `json:"password"`
    Name        string      `json:"name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  user := types.User{
    Email:      req.Email,
    Password:   req.Password,
    Name:       req.Name,
  }
  token, err := ah.authService.RegisterUser(c.Request.Context(), &user)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  ah.setAuthCookie(c, token)
  RespondOK(c, gin.H{"user": user})
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Email         string      `json:"email"`
    Password      string      `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  user, token, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  ah.setAuthCookie(c, token)
  RespondOK(c, gin.H{"user": user})
}

func (ah *AuthHandler) Logout(c *gin.Context) {
  c.SetCookie(ah.cookieName, "", -1, "/", "", false, true)
  RespondOK(c, gin.H{"message": "logged out successfully"})
}

func (ah *AuthHandler) Me(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
    return
  }
  user, err := ah.userService.GetByID(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}
