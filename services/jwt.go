package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/golang-jwt/jwt/v5"
)

type JWTService struct {
	context.DefaultService

	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

const JWT_SVC = "jwt_svc"

type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	secret := os.Getenv("JWT_OAUTH_SECRET")
	if secret == "" {
		return errors.New("JWT_OAUTH_SECRET is not set")
	}
	svc.secret = []byte(secret)
	svc.issuer = "FocusFlow"
	svc.tokenTTL = 24 * time.Hour

	if ttl := os.Getenv("JWT_TTL_HOURS"); ttl != "" {
		if d, err := time.ParseDuration(ttl + "h"); err == nil {
			svc.tokenTTL = d
		}
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	return nil
}

func (svc *JWTService) TokenTTL() time.Duration {
	return svc.tokenTTL
}

func (svc *JWTService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    svc.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(svc.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(svc.secret)
}

func (svc *JWTService) VerifyToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return svc.secret, nil
	}, jwt.WithIssuer(svc.issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.UserID == "" {
		return nil, errors.New("token missing user id")
	}

	return claims, nil
}

// ExtractTokenFromHeader pulls the bearer token out of an Authorization
// header value.
func (svc *JWTService) ExtractTokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("authorization header must be a bearer token")
	}

	return strings.TrimSpace(parts[1]), nil
}
