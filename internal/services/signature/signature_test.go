package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_c2lnbmluZy1zZWNyZXQ"

func signHeader(t *testing.T, secret string, issued time.Time, body []byte) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", issued.Unix(), body)
	return fmt.Sprintf("t=%d,v1=%s", issued.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	body := []byte(`{"event":"BookingCreated","payload":{"email":"a@b.com"}}`)
	verifier := NewVerifier(testSecret, 5*time.Minute)

	t.Run("accepts a fresh correct signature", func(t *testing.T) {
		header := signHeader(t, testSecret, now, body)
		require.NoError(t, verifier.Verify(body, header, now))
	})

	t.Run("accepts a signature inside the tolerance", func(t *testing.T) {
		header := signHeader(t, testSecret, now.Add(-4*time.Minute), body)
		require.NoError(t, verifier.Verify(body, header, now))
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		header := signHeader(t, testSecret, now, body)
		flipped := append([]byte(nil), body...)
		flipped[0] ^= 0x01
		err := verifier.Verify(flipped, header, now)
		require.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		header := signHeader(t, testSecret, now, body)
		// Flip the last hex digit of v1.
		last := header[len(header)-1]
		if last == '0' {
			header = header[:len(header)-1] + "1"
		} else {
			header = header[:len(header)-1] + "0"
		}
		err := verifier.Verify(body, header, now)
		require.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("rejects a signature made with another secret", func(t *testing.T) {
		header := signHeader(t, "whsec_other", now, body)
		err := verifier.Verify(body, header, now)
		require.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("rejects a stale timestamp", func(t *testing.T) {
		header := signHeader(t, testSecret, now.Add(-6*time.Minute), body)
		err := verifier.Verify(body, header, now)
		require.ErrorIs(t, err, ErrStaleTimestamp)
	})

	t.Run("rejects a far-future timestamp", func(t *testing.T) {
		header := signHeader(t, testSecret, now.Add(10*time.Minute), body)
		err := verifier.Verify(body, header, now)
		require.ErrorIs(t, err, ErrStaleTimestamp)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		err := verifier.Verify(body, "", now)
		require.ErrorIs(t, err, ErrMissingSignature)
	})

	t.Run("rejects malformed headers", func(t *testing.T) {
		for name, header := range map[string]string{
			"no pairs":          "garbage",
			"missing timestamp": "v1=abcdef",
			"missing signature": fmt.Sprintf("t=%d", now.Unix()),
			"non-numeric t":     "t=yesterday,v1=abcdef",
			"non-hex v1":        fmt.Sprintf("t=%d,v1=zzzz", now.Unix()),
		} {
			err := verifier.Verify(body, header, now)
			assert.ErrorIs(t, err, ErrMalformedSignature, name)
		}
	})

	t.Run("rejects everything when no secret is configured", func(t *testing.T) {
		unconfigured := NewVerifier("", 5*time.Minute)
		header := signHeader(t, testSecret, now, body)
		err := unconfigured.Verify(body, header, now)
		require.ErrorIs(t, err, ErrSecretNotConfigured)
	})
}

func TestNewVerifier_DefaultTolerance(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	body := []byte(`{}`)
	verifier := NewVerifier(testSecret, 0)

	header := signHeader(t, testSecret, now.Add(-4*time.Minute), body)
	require.NoError(t, verifier.Verify(body, header, now))

	header = signHeader(t, testSecret, now.Add(-6*time.Minute), body)
	require.ErrorIs(t, verifier.Verify(body, header, now), ErrStaleTimestamp)
}
