package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
)

type APIError struct {
  Message     string	`json:"message"`
  Code	      string	`json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error	      APIError	`json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the shared sentinels onto their HTTP codes.
// Not-found deliberately covers ownership mismatches too, and everything
// unexpected collapses to a generic 500.
func RespondServiceError(c *gin.Context, err error) {
  switch {
  case errors.Is(err, pkgerrors.ErrInvalidArgument):
    RespondError(c, http.StatusBadRequest, "invalid_argument", err)
  case errors.Is(err, pkgerrors.ErrUnauthorized):
    RespondError(c, http.StatusUnauthorized, "unauthorized", err)
  case errors.Is(err, pkgerrors.ErrNotFound):
    RespondError(c, http.StatusNotFound, "not_found", pkgerrors.ErrNotFound)
  default:
    RespondError(c, http.StatusInternalServerError, "internal", errors.New("internal server error"))
  }
}
