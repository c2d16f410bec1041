package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifyWebhookSignature checks the hex HMAC-SHA256 signature the billing
// provider sends with every webhook delivery. The header may carry a
// "sha256=" prefix. Comparison is constant-time.
func VerifyWebhookSignature(body []byte, signatureHeader string, secret string) error {
	if signatureHeader == "" || secret == "" {
		return ErrInvalidWebhookSignature
	}

	provided := strings.TrimPrefix(signatureHeader, "sha256=")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(provided)) {
		return ErrInvalidWebhookSignature
	}
	return nil
}

// SignWebhookPayload produces the signature header value for a payload.
// Exists so tests and local tooling can build valid deliveries.
func SignWebhookPayload(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
