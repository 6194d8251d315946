package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/utils"
)

var (
	ErrInvalidToken   = errors.New("token is invalid or expired")
	ErrWrongTokenType = errors.New("token has wrong type")
)

// UserSession represents the user data stored in a JWT
type UserSession struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

// Claims represents JWT claims
type Claims struct {
	User      UserSession         `json:"user"`
	TokenType constants.TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is returned by a successful login
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenIssuer signs and verifies access/refresh tokens with HS256
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenIssuer creates a TokenIssuer. Zero TTLs fall back to the defaults.
func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	if accessTTL <= 0 {
		accessTTL = constants.DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = constants.DefaultRefreshTTL
	}
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair creates a new access and refresh token for a user session
func (i *TokenIssuer) IssuePair(session UserSession) (*TokenPair, error) {
	access, err := i.sign(session, constants.TokenTypeAccess, i.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(session, constants.TokenTypeRefresh, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh validates a refresh token and returns a fresh access token for the
// same session.
func (i *TokenIssuer) Refresh(refreshToken string) (string, *Claims, error) {
	claims, err := i.parse(refreshToken, constants.TokenTypeRefresh)
	if err != nil {
		return "", nil, err
	}
	access, err := i.sign(claims.User, constants.TokenTypeAccess, i.accessTTL)
	if err != nil {
		return "", nil, err
	}
	return access, claims, nil
}

// ParseAccess validates an access token and returns its claims
func (i *TokenIssuer) ParseAccess(tokenString string) (*Claims, error) {
	return i.parse(tokenString, constants.TokenTypeAccess)
}

func (i *TokenIssuer) sign(session UserSession, typ constants.TokenType, ttl time.Duration) (string, error) {
	now := i.now()
	claims := &Claims{
		User:      session,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(session.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        utils.GenerateID(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) parse(tokenString string, want constants.TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != want {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
