package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/services"
)

type GenerationHandler struct {
  generationService   services.GenerationService
}

func NewGenerationHandler(generationService services.GenerationService) *GenerationHandler {
  return &GenerationHandler{generationService: generationService}
}

func (gh *GenerationHandler) Story(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req struct {
    Topic       string      `json:"topic"`
    Language    string      `json:"language"`
    Level       string      `json:"level"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  story, err := gh.generationService.GenerateStory(c.Request.Context(), rd.UserID, req.Topic, req.Language, req.Level)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"story": story})
}

func (gh *GenerationHandler) Examples(c *gin.Context) {
  var req struct {
    WordIDs     []string    `json:"wordIds"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  if len(req.WordIDs) == 0 {
    RespondError(c, http.StatusBadRequest, "invalid_body", errMissingFields)
    return
  }
  wordIDs := make([]uuid.UUID, 0, len(req.WordIDs))
  for _, raw := range req.WordIDs {
    id, err := uuid.Parse(raw)
    if err != nil {
      continue
    }
    wordIDs = append(wordIDs, id)
  }
  examples, err := gh.generationService.GenerateExamples(c.Request.Context(), wordIDs)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"examples": examples})
}
