// Package signature authenticates provider webhooks signed with a shared
// secret: "Authorization: SIG-HMAC-SHA256 <hex digest of the body>".
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
)

const (
	Header = "Authorization"
	Scheme = "SIG-HMAC-SHA256"
)

var (
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

type Verifier struct {
	secrets [][]byte
}

// NewVerifier accepts several secrets so that one can be rotated while the
// other is still in use by the provider.
func NewVerifier(secrets []string) *Verifier {
	v := &Verifier{}
	for _, secret := range secrets {
		if secret = strings.TrimSpace(secret); secret != "" {
			v.secrets = append(v.secrets, []byte(secret))
		}
	}
	return v
}

func Sign(secret string, body []byte) string {
	return Scheme + " " + digest([]byte(secret), body)
}

func digest(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (v *Verifier) Verify(header string, body []byte) error {
	scheme, provided, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || scheme != Scheme || provided == "" {
		return ErrMissingSignature
	}
	provided = strings.ToLower(strings.TrimSpace(provided))
	for _, secret := range v.secrets {
		if hmac.Equal([]byte(digest(secret, body)), []byte(provided)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

func (v *Verifier) VerifyRequest(r *http.Request, body []byte) error {
	return v.Verify(r.Header.Get(Header), body)
}
