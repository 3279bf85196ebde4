package helpers

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	Email string
	Name  string
	Uid   string
	Role  string
	jwt.StandardClaims
}

// TokenService signs and validates HS256 tokens. One instance is created
// at boot with the configured secret and injected where needed.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// GenerateAllTokens returns a 24h access token carrying the user claims
// and a bare refresh token with the same lifetime.
func (t *TokenService) GenerateAllTokens(email, name, uid, role string) (string, string, error) {
	claims := SignedDetails{
		Email: email,
		Name:  name,
		Uid:   uid,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	refreshClaims := SignedDetails{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(t.secret)
	if err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}

func (t *TokenService) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, errors.New("token is expired")
	}
	return claims, nil
}
