package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/inventory-workflow/cmd/config"
	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/muhammadheryan/inventory-workflow/model"
	redisrepo "github.com/muhammadheryan/inventory-workflow/repository/redis"
	userrepo "github.com/muhammadheryan/inventory-workflow/repository/user"
	"github.com/muhammadheryan/inventory-workflow/utils/errors"
	"github.com/muhammadheryan/inventory-workflow/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	GetActor(ctx context.Context, userID uint64) (*model.Actor, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	// Find user by email or phone
	filter := &model.UserFilter{}
	if isEmail(req.Identifier) {
		filter.Email = req.Identifier
	} else {
		filter.Phone = req.Identifier
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	slugs, err := s.permissions(ctx, user)
	if err != nil {
		logger.Error("[Login] err permissions", zap.Uint64("user_id", user.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:        user.Name,
		Email:       user.Email,
		BranchID:    user.BranchID,
		Permissions: slugs,
		Token:       token,
	}, nil
}

// Logout drops the session behind the token and the user's cached permissions, so a
// role change takes effect on the next login.
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.DeletePermissions(ctx, userID); err != nil {
		logger.Warn("[Logout] err DeletePermissions", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
	}

	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return 0, err
	}

	// Extract userID from Subject
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

// GetActor resolves the user behind a validated session into the actor handed to the
// workflow engines.
func (s *UserAppImpl) GetActor(ctx context.Context, userID uint64) (*model.Actor, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetActor] err userRepo.Get", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	slugs, err := s.permissions(ctx, user)
	if err != nil {
		logger.Error("[GetActor] err permissions", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.Actor{
		UserID:      user.ID,
		BranchID:    user.BranchID,
		Permissions: model.NewPermissionSet(slugs...),
	}, nil
}

// permissions reads the role's slugs through the redis cache. A cache failure falls back
// to the database.
func (s *UserAppImpl) permissions(ctx context.Context, user *model.UserEntity) ([]string, error) {
	slugs, ok, err := s.redisRepo.GetPermissions(ctx, user.ID)
	if err != nil {
		logger.Warn("[permissions] err GetPermissions", zap.Uint64("user_id", user.ID), zap.String("error", err.Error()))
	}
	if err == nil && ok {
		return slugs, nil
	}

	slugs, err = s.userRepo.GetPermissionSlugs(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}

	if err := s.redisRepo.SetPermissions(ctx, user.ID, slugs, s.config.Auth.PermissionCacheTTL); err != nil {
		logger.Warn("[permissions] err SetPermissions", zap.Uint64("user_id", user.ID), zap.String("error", err.Error()))
	}

	return slugs, nil
}

func (s *UserAppImpl) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	for _, r := range identifier {
		if r == '@' {
			return true
		}
	}
	return false
}
