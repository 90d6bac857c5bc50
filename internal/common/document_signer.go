package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SignedDocument represents a validated document download token
type SignedDocument struct {
	Bucket    string
	File      string
	TokenID   string
	ExpiresAt time.Time
}

// DocumentSignerService issues and validates signed, time-limited download
// links for stored binary objects (appraisal reports and similar).
type DocumentSignerService struct {
	secretKey []byte
}

func NewDocumentSignerService(secretKey []byte) *DocumentSignerService {
	return &DocumentSignerService{secretKey: secretKey}
}

// SignDownload generates a signed download token for a file in a bucket
func (s *DocumentSignerService) SignDownload(bucket, file string, ttl time.Duration) (string, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"bucket": bucket,
		"file":   file,
		"jti":    tokenID,
		"exp":    expiresAt.Unix(),
		"iat":    time.Now().Unix(),
	}

	// Sign with HMAC
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a download token and returns the document it grants
func (s *DocumentSignerService) ValidateToken(tokenString string) (*SignedDocument, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	bucket, ok := (*claims)["bucket"].(string)
	if !ok {
		return nil, errors.New("missing or invalid bucket claim")
	}

	file, ok := (*claims)["file"].(string)
	if !ok {
		return nil, errors.New("missing or invalid file claim")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	return &SignedDocument{
		Bucket:    bucket,
		File:      file,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}
