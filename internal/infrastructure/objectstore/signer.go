package objectstore

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Signer produces and checks HMAC-SHA256 signatures for presigned links.
type Signer struct {
	secret []byte
	now    func() time.Time
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret), now: time.Now}
}

func (s *Signer) Sign(method, path string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(method + "\n" + path + "\n" + strconv.FormatInt(expires, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is valid for the request and not expired.
func (s *Signer) Verify(method, path string, expires int64, signature string) bool {
	if s.now().Unix() > expires {
		return false
	}
	expected := s.Sign(method, path, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}
