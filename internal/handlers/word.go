package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/services"
)

type WordHandler struct {
  wordService      services.WordService
  trackerService   services.TrackerService
}

func NewWordHandler(wordService services.WordService, trackerService services.TrackerService) *WordHandler {
  return &WordHandler{wordService: wordService, trackerService: trackerService}
}

func (wh *WordHandler) List(c *gin.Context) {
  filter := repos.WordFilter{
    Language: c.Query("language"),
    Level:    c.Query("level"),
    Topic:    c.Query("topic"),
  }
  words, err := wh.wordService.List(c.Request.Context(), filter)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"words": words})
}

func (wh *WordHandler) Create(c *gin.Context) {
  var req services.NewWordInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  word, err := wh.wordService.Create(c.Request.Context(), req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"word": word})
}

func (wh *WordHandler) Track(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req struct {
    WordID      string      `json:"wordId"`
    Correct     *bool       `json:"correct"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  if req.WordID == "" || req.Correct == nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errMissingFields)
    return
  }
  wordID, err := uuid.Parse(req.WordID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  history, err := wh.trackerService.RecordReview(c.Request.Context(), rd.UserID, wordID, *req.Correct)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"wordHistory": history})
}

func (wh *WordHandler) TrackBatch(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req struct {
    Words       []services.BatchReviewItem    `json:"words"`
    Correct     *bool                         `json:"correct"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  if len(req.Words) == 0 || req.Correct == nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errMissingFields)
    return
  }
  tracked, err := wh.trackerService.RecordReviewBatch(c.Request.Context(), rd.UserID, req.Words, *req.Correct)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"tracked": tracked})
}

func (wh *WordHandler) Due(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  rows, err := wh.trackerService.DueWords(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"due": rows})
}
