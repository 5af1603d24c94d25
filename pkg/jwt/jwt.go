package jwt

import (
	"errors"
	"time"

	"patients-care-api/config"
	"patients-care-api/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
)

type Claims struct {
	UserID    uuid.UUID   `json:"userId"`
	Name      string      `json:"name"`
	Surname   string      `json:"surname"`
	Role      entity.Role `json:"role"`
	TokenType TokenType   `json:"tokenType"`
	TokenID   string      `json:"tokenId"`
	jwt.RegisteredClaims
}

// Identity returns the principal carried by the claims
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{UserID: c.UserID, Name: c.Name, Surname: c.Surname, Role: c.Role}
}

type JWTService struct {
	config config.JWTConfig
	now    func() time.Time
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg, now: time.Now}
}

// GenerateAccessToken signs a short-lived token with the access secret and returns it with its id
func (s *JWTService) GenerateAccessToken(identity entity.Identity) (string, string, error) {
	return s.generate(identity, AccessToken, s.config.AccessSecret, s.config.AccessExpiry)
}

// GenerateRefreshToken signs a long-lived token with the refresh secret and returns it with its id
func (s *JWTService) GenerateRefreshToken(identity entity.Identity) (string, string, error) {
	return s.generate(identity, RefreshToken, s.config.RefreshSecret, s.config.RefreshExpiry)
}

func (s *JWTService) generate(identity entity.Identity, tokenType TokenType, secret string, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	now := s.now()
	claims := Claims{
		UserID:    identity.UserID,
		Name:      identity.Name,
		Surname:   identity.Surname,
		Role:      identity.Role,
		TokenType: tokenType,
		TokenID:   tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

// ValidateAccessToken verifies signature, expiry and type of an access token
func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, AccessToken, s.config.AccessSecret)
}

// ValidateRefreshToken verifies signature, expiry and type of a refresh token
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, RefreshToken, s.config.RefreshSecret)
}

func (s *JWTService) validate(tokenString string, tokenType TokenType, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, ErrInvalidTokenType
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}
