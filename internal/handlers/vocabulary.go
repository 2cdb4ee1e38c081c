package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/services"
)

type VocabularyHandler struct {
  vocabularyService   services.VocabularyService
}

func NewVocabularyHandler(vocabularyService services.VocabularyService) *VocabularyHandler {
  return &VocabularyHandler{vocabularyService: vocabularyService}
}

func setIDParam(c *gin.Context) (uuid.UUID, bool) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return uuid.Nil, false
  }
  return id, true
}

func (vh *VocabularyHandler) List(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  rows, err := vh.vocabularyService.ListVisible(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"sets": rows})
}

func (vh *VocabularyHandler) Create(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req services.VocabularySetInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  set, err := vh.vocabularyService.Create(c.Request.Context(), rd.UserID, req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"set": set})
}

func (vh *VocabularyHandler) Get(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  setID, ok := setIDParam(c)
  if !ok {
    return
  }
  set, err := vh.vocabularyService.GetVisible(c.Request.Context(), rd.UserID, setID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"set": set})
}

func (vh *VocabularyHandler) Import(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  setID, ok := setIDParam(c)
  if !ok {
    return
  }
  imported, err := vh.vocabularyService.Import(c.Request.Context(), rd.UserID, setID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"imported": imported})
}
