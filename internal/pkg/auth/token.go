package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid session token")

// TokenStrategy issues and verifies operator session tokens. The
// backoffice has a single operator account, so tokens carry only an
// expiry, not an identity.
type TokenStrategy interface {
	Issue() (string, error)
	Verify(token string) error
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}

// HMACStrategy signs session tokens with an HMAC-SHA256 secret.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed session token.
func (s *HMACStrategy) Issue() (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := strconv.FormatInt(expires, 10)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// Verify checks the token signature and expiry.
func (s *HMACStrategy) Verify(token string) error {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return ErrInvalidToken
	}

	payload, sig, ok := strings.Cut(string(raw), ":")
	if !ok {
		return ErrInvalidToken
	}

	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return ErrInvalidToken
	}

	expires, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(time.Now()) {
		return ErrInvalidToken
	}

	return nil
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
