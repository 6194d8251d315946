package utils

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// GenerateID generates a new UUID v4 string
func GenerateID() string {
	return uuid.NewString()
}

// IsValidUUID checks if the string is a valid UUID
func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}

// EncodeUID encodes a numeric row ID as unpadded URL-safe base64, for use in
// links that must not expose the raw ID.
func EncodeUID(id int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeUID reverses EncodeUID. Padded input is accepted.
func DecodeUID(uid string) (int64, error) {
	for len(uid)%4 != 0 {
		uid += "="
	}
	raw, err := base64.URLEncoding.DecodeString(uid)
	if err != nil {
		return 0, fmt.Errorf("invalid uid: %w", err)
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid uid %q", uid)
	}
	return id, nil
}

// ParseID parses a positive int64 path parameter
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
