package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/pkg/apperror"
)

// DefaultTolerance is the accepted clock skew between Karla and the connector.
const DefaultTolerance = 300 * time.Second

// HMACSignatureService implements ports.SignatureService for the
// Karla-Signature scheme: t=<unix>,v1=<hex hmac-sha256 of "<t>.<body>">.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256(secret, "<timestamp>.<payload>").
// Returns lowercase hex-encoded signature.
func (s *HMACSignatureService) Sign(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte{'.'})
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// BuildHeader returns a complete Karla-Signature header value.
func (s *HMACSignatureService) BuildHeader(secret string, timestamp int64, payload []byte) string {
	return fmt.Sprintf("t=%d,v1=%s", timestamp, s.Sign(secret, timestamp, payload))
}

// Verify checks header against payload. The tolerance check runs before the
// HMAC comparison and is inclusive: |now - t| == tolerance is accepted.
func (s *HMACSignatureService) Verify(header string, payload []byte, secret string, now time.Time, tolerance time.Duration) (*domain.ParsedSignature, error) {
	if strings.TrimSpace(header) == "" {
		return nil, apperror.ErrMissingSignature()
	}

	sig, err := ParseSignatureHeader(header)
	if err != nil {
		return nil, err
	}

	// now - t overflows for extreme t, so compare against the window bounds.
	nowUnix, tol := now.Unix(), int64(tolerance/time.Second)
	if sig.Timestamp < nowUnix-tol || sig.Timestamp > nowUnix+tol {
		return sig, apperror.ErrTimestampExpired()
	}

	expected := s.Sign(secret, sig.Timestamp, payload)
	if !hmac.Equal([]byte(expected), []byte(sig.SignatureHex)) {
		return sig, apperror.ErrInvalidSignature()
	}
	return sig, nil
}

// ParseSignatureHeader splits comma-separated key=value pairs on the first
// '='. Pairs without '=' are skipped. Both t and v1 are required and t must
// be an integer.
func ParseSignatureHeader(header string) (*domain.ParsedSignature, error) {
	fields := make(map[string]string, 2)
	for _, pair := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	ts, hasT := fields["t"]
	v1, hasV1 := fields["v1"]
	if !hasT || !hasV1 {
		return nil, apperror.ErrInvalidSignature()
	}

	timestamp, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, apperror.ErrMalformedSignature(fmt.Errorf("timestamp %q: %w", ts, err))
	}

	return &domain.ParsedSignature{Timestamp: timestamp, SignatureHex: v1}, nil
}
