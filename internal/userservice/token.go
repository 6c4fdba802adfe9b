package userservice

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired access token")

// TokenMaker signs and verifies HS256 access tokens carrying the user id.
type TokenMaker struct {
	secret []byte
	ttl    time.Duration
}

type accessClaims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

func NewTokenMaker(secret string, ttl time.Duration) (*TokenMaker, error) {
	if len(secret) < 16 {
		return nil, errors.New("jwt secret must be at least 16 characters long")
	}

	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	return &TokenMaker{secret: []byte(secret), ttl: ttl}, nil
}

func (tm *TokenMaker) Create(userID int) (string, error) {
	return tm.createAt(userID, time.Now())
}

func (tm *TokenMaker) createAt(userID int, now time.Time) (string, error) {
	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

// Parse verifies the signature and expiry of token and returns the caller id.
func (tm *TokenMaker) Parse(token string) (int, error) {
	var claims accessClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.UserID < 1 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
