// Package signature validates that a webhook body genuinely originated
// from the scheduling provider. The provider signs the exact request bytes
// as HMAC-SHA256 over "{t}.{body}" and sends the result in a
// "t=<unix-seconds>,v1=<hex>" header.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTolerance is the replay window applied when none is configured.
const DefaultTolerance = 5 * time.Minute

const (
	timestampKey = "t"
	signatureKey = "v1"
)

var (
	// ErrSecretNotConfigured means no signing secret was supplied; every
	// request is rejected rather than verification being silently skipped.
	ErrSecretNotConfigured = constError("webhook signing secret is not configured")
	// ErrMissingSignature means the signature header was absent.
	ErrMissingSignature = constError("signature header is required")
	// ErrMalformedSignature means the header could not be parsed into a
	// timestamp and a hex signature.
	ErrMalformedSignature = constError("signature header is malformed")
	// ErrSignatureMismatch means the signature does not match the body.
	ErrSignatureMismatch = constError("signature does not match payload")
	// ErrStaleTimestamp means the signed timestamp is outside the replay window.
	ErrStaleTimestamp = constError("signature timestamp outside allowed window")
)

type constError string

func (e constError) Error() string { return string(e) }

// Verifier checks webhook signatures against a shared secret. It is pure
// over its inputs plus the caller-supplied clock reading.
type Verifier struct {
	secret    []byte
	tolerance time.Duration
}

// NewVerifier creates a Verifier. A zero or negative tolerance falls back
// to DefaultTolerance. An empty secret is allowed at construction so the
// endpoint can run, but every Verify call will fail with
// ErrSecretNotConfigured.
func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Verifier{secret: []byte(secret), tolerance: tolerance}
}

// Verify checks that header carries a valid signature for rawBody issued
// within the replay window around now.
func (v *Verifier) Verify(rawBody []byte, header string, now time.Time) error {
	if len(v.secret) == 0 {
		return ErrSecretNotConfigured
	}
	if header == "" {
		return ErrMissingSignature
	}

	timestamp, providedMAC, err := parseHeader(header)
	if err != nil {
		return err
	}

	issued, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: timestamp %q is not a unix timestamp", ErrMalformedSignature, timestamp)
	}
	// Future-dated timestamps are rejected with the same window: a forged
	// timestamp far ahead of the clock would otherwise never expire.
	if drift := now.Sub(time.Unix(issued, 0)); drift > v.tolerance || drift < -v.tolerance {
		return ErrStaleTimestamp
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(rawBody)
	if !hmac.Equal(mac.Sum(nil), providedMAC) {
		return ErrSignatureMismatch
	}
	return nil
}

// parseHeader splits "t=...,v1=..." into the raw timestamp string and the
// decoded signature bytes. The timestamp is kept as the original string
// because the MAC is computed over the exact characters the provider sent.
func parseHeader(header string) (string, []byte, error) {
	var timestamp, signatureHex string
	for _, pair := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return "", nil, fmt.Errorf("%w: expected key=value pairs", ErrMalformedSignature)
		}
		switch key {
		case timestampKey:
			timestamp = value
		case signatureKey:
			signatureHex = value
		}
	}
	if timestamp == "" || signatureHex == "" {
		return "", nil, fmt.Errorf("%w: missing %q or %q", ErrMalformedSignature, timestampKey, signatureKey)
	}
	providedMAC, err := hex.DecodeString(signatureHex)
	if err != nil {
		return "", nil, fmt.Errorf("%w: signature is not valid hex", ErrMalformedSignature)
	}
	return timestamp, providedMAC, nil
}
