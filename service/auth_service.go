package service

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"accounts-api/config"
	"accounts-api/logger"
	"accounts-api/model"
	"accounts-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles customer registration, login and refresh token
// rotation. It is the identity boundary: the rest of the system only ever
// sees an authenticated customer id.
type AuthService struct {
	customerRepo repository.ICustomerRepository
	tokenRepo    repository.ITokenRepository
}

func NewAuthService(customerRepo repository.ICustomerRepository, tokenRepo repository.ITokenRepository) *AuthService {
	return &AuthService{
		customerRepo: customerRepo,
		tokenRepo:    tokenRepo,
	}
}

func getJwtKey() []byte {
	return []byte(config.AppConfig.JWT.SecretKey)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register creates a new customer with a hashed password.
func (s *AuthService) Register(req model.RegisterRequest) (*model.Customer, error) {
	if _, err := s.customerRepo.GetCustomerByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	hashedPassword, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	customer := &model.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.customerRepo.CreateCustomer(customer); err != nil {
		return nil, err
	}

	logger.Log.WithField("customer_id", customer.ID).Info("Customer registered successfully")
	return customer, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
func (s *AuthService) Login(req model.LoginRequest) (accessToken, refreshToken string, err error) {
	customer, err := s.customerRepo.GetCustomerByEmail(req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if !s.CheckPasswordHash(req.Password, customer.Password) {
		return "", "", ErrInvalidCredentials
	}

	return s.issueTokenPair(customer.ID)
}

// Refresh rotates a refresh token: the presented token is invalidated and a
// new pair is issued.
func (s *AuthService) Refresh(refreshToken string) (newAccess, newRefresh string, err error) {
	stored, err := s.tokenRepo.GetByTokenHash(hashToken(refreshToken))
	if err != nil {
		if err == sql.ErrNoRows {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", err
	}

	if time.Now().After(stored.ExpiresAt) {
		return "", "", ErrInvalidRefreshToken
	}

	if err := s.tokenRepo.DeleteByCustomerID(stored.CustomerID); err != nil {
		return "", "", err
	}

	return s.issueTokenPair(stored.CustomerID)
}

func (s *AuthService) issueTokenPair(customerID int) (accessToken, refreshToken string, err error) {
	accessToken, err = s.generateJWT(customerID)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = generateOpaqueToken()
	if err != nil {
		return "", "", err
	}

	ttl := time.Duration(config.AppConfig.JWT.RefreshTTLHours) * time.Hour
	record := &model.RefreshToken{
		CustomerID: customerID,
		TokenHash:  hashToken(refreshToken),
		ExpiresAt:  time.Now().Add(ttl),
	}
	if err := s.tokenRepo.Create(record); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *AuthService) generateJWT(customerID int) (string, error) {
	ttl := time.Duration(config.AppConfig.JWT.AccessTTLMinutes) * time.Minute
	claims := &model.AppClaims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(getJwtKey())
	if err != nil {
		logger.Log.WithError(err).WithField("customer_id", customerID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// generateOpaqueToken returns a random 256-bit token, hex encoded.
func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// hashToken digests a refresh token for at-rest storage. The token itself
// is high entropy, so a plain sha256 digest is sufficient.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
