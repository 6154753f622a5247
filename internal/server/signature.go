package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// SignatureHeader carries the HMAC of a signed command request.
const SignatureHeader = "X-Signature-256"

var (
	// ErrInvalidSignature means the signature header does not match the body.
	ErrInvalidSignature = errors.New("invalid request signature")
	// ErrMissingSignature means the request carries no signature.
	ErrMissingSignature = errors.New("missing request signature")
)

// ValidateSignature verifies the HMAC SHA-256 signature of a request body.
// The signature should be in the format "sha256=<hex-digest>".
func ValidateSignature(payload []byte, signature, secret string) error {
	if signature == "" {
		return ErrMissingSignature
	}

	if !strings.HasPrefix(signature, "sha256=") {
		return ErrInvalidSignature
	}

	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "sha256="))
	if err != nil {
		return ErrInvalidSignature
	}

	if !hmac.Equal(sigBytes, Sign(payload, secret)) {
		return ErrInvalidSignature
	}

	return nil
}

// Sign computes the raw HMAC SHA-256 of payload.
func Sign(payload []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}
