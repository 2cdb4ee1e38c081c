package services

import (
  "bytes"
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "math/rand"
  "net"
  "net/http"
  "os"
  "strconv"
  "strings"
  "time"

  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/utils"
)

// TextGenClient is the opaque upstream text generator. Callers always have a
// deterministic fallback; a failing client is never surfaced to API callers.
type TextGenClient interface {
  GenerateJSON(ctx context.Context, system string, user string) (map[string]any, error)
}

type textGenClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  model      string
  httpClient *http.Client

  maxRetries int
}

func NewTextGenClient(log *logger.Logger) (TextGenClient, error) {
  apiKey := os.Getenv("OPENAI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing OPENAI_API_KEY")
  }

  baseURL := os.Getenv("OPENAI_BASE_URL")
  if baseURL == "" {
    baseURL = "https://api.openai.com"
  }

  model := os.Getenv("OPENAI_MODEL")
  if model == "" {
    model = "gpt-4o-mini"
  }

  timeout := utils.GetEnvAsSeconds("OPENAI_TIMEOUT_SECONDS", 120, nil)

  maxRetries := 3
  if v := os.Getenv("OPENAI_MAX_RETRIES"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 {
      maxRetries = parsed
    }
  }

  return &textGenClient{
    log:        log.With("service", "TextGenClient"),
    baseURL:    baseURL,
    apiKey:     apiKey,
    model:      model,
    httpClient: &http.Client{Timeout: timeout},
    maxRetries: maxRetries,
  }, nil
}

type textGenHTTPError struct {
  StatusCode int
  Body       string
}

func (e *textGenHTTPError) Error() string {
  return fmt.Sprintf("textgen http %d: %s", e.StatusCode, e.Body)
}

func isRetryableHTTP(code int) bool {
  if code == 408 || code == 429 {
    return true
  }
  if code >= 500 && code <= 599 {
    return true
  }
  return false
}

func isRetryableErr(err error) bool {
  if err == nil {
    return false
  }
  if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
    return true
  }
  var netErr net.Error
  if errors.As(err, &netErr) {
    if netErr.Timeout() {
      return true
    }
  }
  var httpErr *textGenHTTPError
  if errors.As(err, &httpErr) {
    return isRetryableHTTP(httpErr.StatusCode)
  }
  return false
}

func jitterSleep(base time.Duration) time.Duration {
  // +/- 20%
  if base <= 0 {
    return 0
  }
  j := 0.2
  delta := base.Seconds() * j
  low := base.Seconds() - delta
  high := base.Seconds() + delta
  if low < 0 {
    low = 0
  }
  v := low + rand.Float64()*(high-low)
  return time.Duration(v * float64(time.Second))
}

func (c *textGenClient) doOnce(ctx context.Context, method, path string, body any) ([]byte, error) {
  var buf bytes.Buffer
  if body != nil {
    if err := json.NewEncoder(&buf).Encode(body); err != nil {
      return nil, err
    }
  }

  req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
  if err != nil {
    return nil, err
  }
  req.Header.Set("Authorization", "Bearer "+c.apiKey)
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, err
  }

  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return nil, readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return raw, &textGenHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
  }
  return raw, nil
}

func (c *textGenClient) do(ctx context.Context, method, path string, body any, out any) error {
  // exponential backoff: 1s, 2s, 4s (cap ~10s)
  backoff := 1 * time.Second

  var lastErr error
  for attempt := 0; attempt <= c.maxRetries; attempt++ {
    if ctx.Err() != nil {
      return ctx.Err()
    }
    raw, err := c.doOnce(ctx, method, path, body)
    if err == nil {
      if out != nil {
        if uErr := json.Unmarshal(raw, out); uErr != nil {
          return fmt.Errorf("Failed to decode textgen response: %w", uErr)
        }
      }
      return nil
    }
    lastErr = err
    if !isRetryableErr(err) || attempt == c.maxRetries {
      break
    }
    c.log.Debug("Retrying textgen call", "attempt", attempt+1, "error", err)
    select {
    case <-ctx.Done():
      return ctx.Err()
    case <-time.After(jitterSleep(backoff)):
    }
    backoff *= 2
    if backoff > 10*time.Second {
      backoff = 10 * time.Second
    }
  }
  return lastErr
}

type chatCompletionRequest struct {
  Model           string               `json:"model"`
  Messages        []chatMessage        `json:"messages"`
  ResponseFormat  *chatResponseFormat  `json:"response_format,omitempty"`
}

type chatMessage struct {
  Role      string    `json:"role"`
  Content   string    `json:"content"`
}

type chatResponseFormat struct {
  Type      string    `json:"type"`
}

type chatCompletionResponse struct {
  Choices []struct {
    Message struct {
      Content string `json:"content"`
    } `json:"message"`
  } `json:"choices"`
}

// GenerateJSON sends one chat-completion request in JSON mode and decodes
// the model's reply as an object.
func (c *textGenClient) GenerateJSON(ctx context.Context, system string, user string) (map[string]any, error) {
  req := chatCompletionRequest{
    Model: c.model,
    Messages: []chatMessage{
      {Role: "system", Content: system},
      {Role: "user", Content: user},
    },
    ResponseFormat: &chatResponseFormat{Type: "json_object"},
  }
  var resp chatCompletionResponse
  if err := c.do(ctx, http.MethodPost, "/v1/chat/completions", req, &resp); err != nil {
    return nil, err
  }
  if len(resp.Choices) == 0 {
    return nil, fmt.Errorf("textgen returned no choices")
  }
  var parsed map[string]any
  if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
    return nil, fmt.Errorf("Failed to parse textgen JSON content: %w", err)
  }
  return parsed, nil
}
