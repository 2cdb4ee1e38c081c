package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/services"
)

type StoryHandler struct {
  storyService    services.StoryService
}

func NewStoryHandler(storyService services.StoryService) *StoryHandler {
  return &StoryHandler{storyService: storyService}
}

func storyIDParam(c *gin.Context) (uuid.UUID, bool) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return uuid.Nil, false
  }
  return id, true
}

func (sh *StoryHandler) List(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  rows, err := sh.storyService.ListForUser(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"stories": rows})
}

func (sh *StoryHandler) Create(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req services.StoryInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  story, err := sh.storyService.Create(c.Request.Context(), rd.UserID, req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"story": story})
}

func (sh *StoryHandler) Get(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  storyID, ok := storyIDParam(c)
  if !ok {
    return
  }
  story, err := sh.storyService.GetOwned(c.Request.Context(), rd.UserID, storyID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"story": story})
}

func (sh *StoryHandler) Update(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  storyID, ok := storyIDParam(c)
  if !ok {
    return
  }
  var req services.StoryInput
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  story, err := sh.storyService.Update(c.Request.Context(), rd.UserID, storyID, req)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"story": story})
}

func (sh *StoryHandler) Delete(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  storyID, ok := storyIDParam(c)
  if !ok {
    return
  }
  if err := sh.storyService.Delete(c.Request.Context(), rd.UserID, storyID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"deleted": true})
}

func (sh *StoryHandler) Duplicate(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  storyID, ok := storyIDParam(c)
  if !ok {
    return
  }
  story, err := sh.storyService.Duplicate(c.Request.Context(), rd.UserID, storyID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"story": story})
}

func (sh *StoryHandler) Highlighted(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  storyID, ok := storyIDParam(c)
  if !ok {
    return
  }
  content, err := sh.storyService.Highlighted(c.Request.Context(), rd.UserID, storyID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"content": content})
}
