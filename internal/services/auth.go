package services

import (
  "context"
  "fmt"
  "time"
  "gorm.io/gorm"
  "golang.org/x/crypto/bcrypt"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/langfu/langfu-backend/internal/normalization"
  "github.com/langfu/langfu-backend/internal/logger"
  pkgerrors "github.com/langfu/langfu-backend/internal/pkg/errors"
  "github.com/langfu/langfu-backend/internal/types"
  "github.com/langfu/langfu-backend/internal/repos"
  "github.com/langfu/langfu-backend/internal/requestdata"
  "github.com/langfu/langfu-backend/internal/utils"
)

type JWTClaims struct {
  jwt.RegisteredClaims
}

type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User) (string, error)
  LoginUser(ctx context.Context, email, password string) (*types.User, string, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db                *gorm.DB
  log               *logger.Logger
  userRepo          repos.UserRepo
  progressService   ProgressService
  jwtSecretKey      string
  accessTTL         time.Duration
}

func NewAuthService(
  db *gorm.DB,
  log *logger.Logger,
  userRepo repos.UserRepo,
  progressService ProgressService,
  jwtSecretKey string,
  accessTTL time.Duration,
) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:              db,
    log:             serviceLog,
    userRepo:        userRepo,
    progressService: progressService,
    jwtSecretKey:    jwtSecretKey,
    accessTTL:       accessTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (string, error) {
  utils.NormalizeUserFields(ctx, user)
  if vErr := utils.InputValidation(ctx, "registration", as.userRepo, as.log, user, "", ""); vErr != nil {
    return "", vErr
  }
  if hErr := utils.HashPassword(ctx, as.log, user); hErr != nil {
    return "", hErr
  }
  if user.CurrentLanguage == "" {
    user.CurrentLanguage = "de"
  }
  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    user.ID = uuid.New()
    if _, ucErr := as.userRepo.Create(ctx, tx, []*types.User{user}); ucErr != nil {
      return fmt.Errorf("Failed to create user: %w", ucErr)
    }
    return nil
  })
  if err != nil {
    return "", err
  }
  if pErr := as.progressService.EnsureProgress(ctx, user.ID, user.CurrentLanguage); pErr != nil {
    as.log.Warn("Failed to ensure progress on registration", "user_id", user.ID, "error", pErr)
  }
  return as.generateAccessToken(user)
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (*types.User, string, error) {
  email = normalization.ParseInputString(email)

  if vErr := utils.InputValidation(ctx, "login", as.userRepo, as.log, nil, email, password); vErr != nil {
    return nil, "", vErr
  }

  users, usErr := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if usErr != nil {
    return nil, "", fmt.Errorf("Error retrieving user by email: %w", usErr)
  }
  if len(users) == 0 {
    return nil, "", pkgerrors.ErrUnauthorized
  }

  user := users[0]
  if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
    return nil, "", pkgerrors.ErrUnauthorized
  }

  if pErr := as.progressService.EnsureProgress(ctx, user.ID, user.CurrentLanguage); pErr != nil {
    as.log.Warn("Failed to ensure progress on login", "user_id", user.ID, "error", pErr)
  }

  token, genErr := as.generateAccessToken(user)
  if genErr != nil {
    return nil, "", fmt.Errorf("Generate access token error: %w", genErr)
  }
  return user, token, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  claims := JWTClaims{
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   user.ID.String(),
      ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
      IssuedAt:  jwt.NewNumericDate(time.Now()),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString == "" {
    return ctx, pkgerrors.ErrUnauthorized
  }
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return ctx, fmt.Errorf("Failed to parse token: %w", err)
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, fmt.Errorf("Invalid or expired JWT token")
  }
  userID, err := uuid.Parse(claims.Subject)
  if err != nil {
    return ctx, fmt.Errorf("Invalid user id in token: %w", err)
  }
  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      userID,
  }
  ctx = requestdata.WithRequestData(ctx, rd)
  return ctx, nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}
