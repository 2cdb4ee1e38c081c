package services

import (
  "bytes"
  "fmt"
  "hash/fnv"
  "strings"
  "github.com/fogleman/gg"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/types"
  "github.com/langfu/langfu-backend/internal/utils"
)

const avatarSize = 256

// avatarPalette holds the background colors initial avatars are drawn on,
// picked by a stable hash of the user id.
var avatarPalette = [][3]float64{
  {0.26, 0.45, 0.87},
  {0.87, 0.36, 0.32},
  {0.22, 0.66, 0.43},
  {0.91, 0.60, 0.17},
  {0.55, 0.36, 0.76},
  {0.18, 0.63, 0.70},
}

type AvatarService interface {
  RenderUserAvatar(user *types.User) ([]byte, error)
}

type avatarService struct {
  log       *logger.Logger
  fontPath  string
}

func NewAvatarService(log *logger.Logger) AvatarService {
  serviceLog := log.With("service", "AvatarService")
  fontPath := utils.GetEnv("AVATAR_FONT_PATH", "", nil)
  return &avatarService{log: serviceLog, fontPath: fontPath}
}

// RenderUserAvatar draws an initials avatar PNG for the user. With no font
// configured it falls back to gg's built-in face, which is small but keeps
// the endpoint dependency-free.
func (as *avatarService) RenderUserAvatar(user *types.User) ([]byte, error) {
  if user == nil {
    return nil, fmt.Errorf("A user is required to render an avatar")
  }

  dc := gg.NewContext(avatarSize, avatarSize)
  color := avatarPalette[avatarColorIndex(user)]
  dc.SetRGB(color[0], color[1], color[2])
  dc.Clear()

  if as.fontPath != "" {
    if err := dc.LoadFontFace(as.fontPath, avatarSize*0.4); err != nil {
      as.log.Debug("Failed to load avatar font, using built-in face", "path", as.fontPath, "error", err)
    }
  }

  dc.SetRGB(1, 1, 1)
  dc.DrawStringAnchored(userInitials(user), avatarSize/2, avatarSize/2, 0.5, 0.5)

  var buf bytes.Buffer
  if err := dc.EncodePNG(&buf); err != nil {
    return nil, fmt.Errorf("Failed to encode avatar png: %w", err)
  }
  return buf.Bytes(), nil
}

func avatarColorIndex(user *types.User) int {
  h := fnv.New32a()
  _, _ = h.Write([]byte(user.ID.String()))
  return int(h.Sum32() % uint32(len(avatarPalette)))
}

func userInitials(user *types.User) string {
  parts := strings.Fields(user.Name)
  if len(parts) == 0 {
    if user.Email != "" {
      return strings.ToUpper(user.Email[:1])
    }
    return "?"
  }
  initials := strings.ToUpper(parts[0][:1])
  if len(parts) > 1 {
    initials += strings.ToUpper(parts[len(parts)-1][:1])
  }
  return initials
}
