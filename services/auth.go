package services

import (
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/focusflow-app/focusflow_api/dto"
	"github.com/focusflow-app/focusflow_api/model"
	"github.com/focusflow-app/focusflow_api/shared"
)

type AuthService struct {
	context.DefaultService

	postgres *PostgresService
	jwt      *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Start() error {
	svc.postgres = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwt = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

func (svc *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if _, err := svc.postgres.GetUserByEmailOrUsername(req.Email); err == nil {
		return nil, shared.NewConflictError(nil, "Email already registered")
	}
	if _, err := svc.postgres.GetUserByEmailOrUsername(req.Username); err == nil {
		return nil, shared.NewConflictError(nil, "Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate user id")
	}

	user := &model.User{
		ID:       id.String(),
		Email:    req.Email,
		Username: req.Username,
		Password: string(hash),
		IsActive: true,
	}

	if err := svc.postgres.CreateUser(user); err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to create user")
	}

	log.WithFields(log.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")

	return &dto.RegisterResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (svc *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := svc.postgres.GetUserByEmailOrUsername(req.EmailOrUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
		}
		return nil, shared.NewInternalError(err, "Failed to look up user")
	}

	if !user.IsActive {
		return nil, shared.NewForbiddenError(nil, "Account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
	}

	token, err := svc.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue token")
	}

	previousLogin := user.LastLoginAt
	now := time.Now().UTC()
	if err := svc.postgres.UpdateLastLogin(user.ID, now); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to record login time")
	}

	log.WithField("user_id", user.ID).Info("User logged in")

	return &dto.LoginResponse{
		UserID:      user.ID,
		Username:    user.Username,
		AccessToken: token,
		ExpiresIn:   int64(svc.jwt.TokenTTL().Seconds()),
		LastLoginAt: previousLogin,
	}, nil
}

// RequiredAuth verifies the bearer token and stashes the caller's user
// id in the request locals.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwt.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.ResponseUnauthorized(c)
		}

		claims, err := svc.jwt.VerifyToken(token)
		if err != nil {
			return shared.ResponseUnauthorized(c)
		}

		c.Locals(shared.UserID, claims.UserID)
		return c.Next()
	}
}
