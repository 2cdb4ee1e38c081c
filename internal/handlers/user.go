package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/services"
)

type UserHandler struct {
  userService     services.UserService
  avatarService   services.AvatarService
}

func NewUserHandler(userService services.UserService, avatarService services.AvatarService) *UserHandler {
  return &UserHandler{userService: userService, avatarService: avatarService}
}

func (uh *UserHandler) UpdateSettings(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req services.UserSettingsUpdate
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  user, err := uh.userService.UpdateSettings(c.Request.Context(), rd.UserID, req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) Avatar(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  user, err := uh.userService.GetByID(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  png, err := uh.avatarService.RenderUserAvatar(user)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Data(http.StatusOK, "image/png", png)
}
