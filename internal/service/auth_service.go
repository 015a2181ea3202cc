package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bizbalance/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles agent and VIP authentication
type AuthService struct {
	agentUsername string
	agentPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("AGENT_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("AGENT_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		agentUsername: username,
		agentPassword: password,
		jwtSecret:     []byte(secret),
	}
}

// Login validates credentials and returns an agent token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.agentUsername || password != s.agentPassword {
		return nil, ErrInvalidCredentials
	}

	agentID := "agent_" + uuid.New().String()[:8]

	claims := &model.AgentClaims{
		AgentID: agentID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		AgentID: agentID,
	}, nil
}

// ValidateAgentToken validates an agent JWT and returns claims
func (s *AuthService) ValidateAgentToken(tokenString string) (*model.AgentClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AgentClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AgentClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateVIPToken creates a VIP-scoped token minted by an agent
func (s *AuthService) GenerateVIPToken(vipID, agentID string) (string, error) {
	claims := &model.VIPClaims{
		VIPID:   vipID,
		AgentID: agentID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateVIPToken validates a VIP JWT and returns claims
func (s *AuthService) ValidateVIPToken(tokenString string) (*model.VIPClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.VIPClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.VIPClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
