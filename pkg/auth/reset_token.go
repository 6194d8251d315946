package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ldanie38/geniuscrm/pkg/constants"
)

const resetPurpose = "password_reset"

// ResetSubject is the account state a reset token is bound to. Changing the
// password hash or the last login time invalidates outstanding tokens.
type ResetSubject struct {
	UserID       int64
	PasswordHash string
	LastLogin    *time.Time
}

type resetClaims struct {
	Purpose     string `json:"purpose"`
	Fingerprint string `json:"fp"`
	jwt.RegisteredClaims
}

// ResetTokens issues and checks signed, time-limited password reset tokens
type ResetTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewResetTokens creates a ResetTokens with the given signing secret and TTL
func NewResetTokens(secret string, ttl time.Duration) *ResetTokens {
	if ttl <= 0 {
		ttl = constants.DefaultPasswordResetTTL
	}
	return &ResetTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Make returns a reset token for the subject
func (r *ResetTokens) Make(s ResetSubject) (string, error) {
	now := r.now()
	claims := &resetClaims{
		Purpose:     resetPurpose,
		Fingerprint: r.fingerprint(s),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(s.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(r.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
}

// Check reports whether token is a valid, unexpired reset token for the
// subject in its current state.
func (r *ResetTokens) Check(s ResetSubject, tokenString string) bool {
	if tokenString == "" {
		return false
	}
	token, err := jwt.ParseWithClaims(tokenString, &resetClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return r.secret, nil
	}, jwt.WithTimeFunc(r.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(*resetClaims)
	if !ok || claims.Purpose != resetPurpose {
		return false
	}
	if claims.Subject != strconv.FormatInt(s.UserID, 10) {
		return false
	}
	return hmac.Equal([]byte(claims.Fingerprint), []byte(r.fingerprint(s)))
}

func (r *ResetTokens) fingerprint(s ResetSubject) string {
	mac := hmac.New(sha256.New, r.secret)
	mac.Write([]byte(strconv.FormatInt(s.UserID, 10)))
	mac.Write([]byte{0})
	mac.Write([]byte(s.PasswordHash))
	mac.Write([]byte{0})
	if s.LastLogin != nil {
		mac.Write([]byte(strconv.FormatInt(s.LastLogin.UTC().Unix(), 10)))
	}
	return hex.EncodeToString(mac.Sum(nil)[:16])
}
