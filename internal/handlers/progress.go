package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/services"
)

var errMissingFields = errors.New("missing required fields")

type ProgressHandler struct {
  progressService   services.ProgressService
  userService       services.UserService
}

func NewProgressHandler(progressService services.ProgressService, userService services.UserService) *ProgressHandler {
  return &ProgressHandler{progressService: progressService, userService: userService}
}

// Update applies one finished session to the rollup of the user's current
// target language.
func (ph *ProgressHandler) Update(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req struct {
    WordsLearned    *int    `json:"wordsLearned"`
    Score           *int    `json:"score"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  if req.WordsLearned == nil || req.Score == nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errMissingFields)
    return
  }
  user, err := ph.userService.GetByID(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  progress, err := ph.progressService.ApplySessionResult(c.Request.Context(), rd.UserID, user.CurrentLanguage, *req.WordsLearned, *req.Score)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"progress": progress})
}

func (ph *ProgressHandler) List(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  rows, err := ph.progressService.GetForUser(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"progress": rows})
}
