package service

import (
	"math"
	"testing"
	"time"

	"karla-connector/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

func TestHMACSignatureService_SignFormat(t *testing.T) {
	svc := NewHMACSignatureService()

	sig := svc.Sign(testSecret, 1708092000, []byte(`{"event_group":"claim_created"}`))
	assert.Regexp(t, `^[0-9a-f]{64}$`, sig)
	assert.Equal(t, sig, svc.Sign(testSecret, 1708092000, []byte(`{"event_group":"claim_created"}`)))

	header := svc.BuildHeader(testSecret, 1708092000, []byte("x"))
	assert.Regexp(t, `^t=1708092000,v1=[0-9a-f]{64}$`, header)
}

func TestHMACSignatureService_RoundTrip(t *testing.T) {
	svc := NewHMACSignatureService()
	payloads := [][]byte{
		[]byte(`{"event_group":"shipment_in_transit"}`),
		[]byte(""),
		[]byte("not json at all, still signed"),
	}

	for _, p := range payloads {
		ts := time.Now().Unix()
		header := svc.BuildHeader(testSecret, ts, p)

		sig, err := svc.Verify(header, p, testSecret, time.Unix(ts, 0), DefaultTolerance)
		require.NoError(t, err)
		assert.Equal(t, ts, sig.Timestamp)
	}
}

func TestHMACSignatureService_TamperDetection(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte(`{"event_group":"claim_created","ref":"abc"}`)
	ts := int64(1708092000)
	now := time.Unix(ts, 0)
	sig := svc.Sign(testSecret, ts, payload)

	for i := range payload {
		tampered := append([]byte(nil), payload...)
		tampered[i] ^= 0x01
		_, err := svc.Verify("t=1708092000,v1="+sig, tampered, testSecret, now, DefaultTolerance)
		assert.Equal(t, "SEC_002", apperror.CodeOf(err), "byte %d", i)
	}

	for i := range sig {
		b := []byte(sig)
		if b[i] == '0' {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
		_, err := svc.Verify("t=1708092000,v1="+string(b), payload, testSecret, now, DefaultTolerance)
		assert.Equal(t, "SEC_002", apperror.CodeOf(err), "hex char %d", i)
	}

	_, err := svc.Verify("t=1708092000,v1="+sig, payload, "other-secret", now, DefaultTolerance)
	assert.Equal(t, "SEC_002", apperror.CodeOf(err))
}

func TestHMACSignatureService_ToleranceBoundary(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte(`{}`)
	ts := int64(1708092000)
	header := svc.BuildHeader(testSecret, ts, payload)

	tests := []struct {
		name string
		now  int64
		code string
	}{
		{"same second", ts, ""},
		{"at tolerance", ts + 300, ""},
		{"past tolerance", ts + 301, "SEC_003"},
		{"future at tolerance", ts - 300, ""},
		{"future past tolerance", ts - 301, "SEC_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(header, payload, testSecret, time.Unix(tt.now, 0), DefaultTolerance)
			assert.Equal(t, tt.code, apperror.CodeOf(err))
		})
	}
}

func TestHMACSignatureService_ExtremeTimestamps(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte(`{}`)
	now := int64(1708092000)

	tests := []struct {
		name string
		ts   int64
	}{
		{"min int64", math.MinInt64},
		{"min int64 plus now", math.MinInt64 + now},
		{"max int64", math.MaxInt64},
		{"max int64 minus now", math.MaxInt64 - now},
		{"zero", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := svc.BuildHeader(testSecret, tt.ts, payload)
			_, err := svc.Verify(header, payload, testSecret, time.Unix(now, 0), DefaultTolerance)
			assert.Equal(t, "SEC_003", apperror.CodeOf(err))
		})
	}
}

func TestHMACSignatureService_ExpiredBeforeHMAC(t *testing.T) {
	svc := NewHMACSignatureService()

	// Bad signature and stale timestamp: the timestamp failure wins.
	_, err := svc.Verify("t=1000,v1=deadbeef", []byte("{}"), testSecret, time.Unix(5000, 0), DefaultTolerance)
	assert.Equal(t, "SEC_003", apperror.CodeOf(err))
}

func TestHMACSignatureService_MalformedHeaders(t *testing.T) {
	svc := NewHMACSignatureService()
	now := time.Unix(1708092000, 0)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"empty", "", "SEC_001"},
		{"blank", "   ", "SEC_001"},
		{"garbage", "garbage", "SEC_002"},
		{"t only", "t=123", "SEC_002"},
		{"v1 only", "v1=abc", "SEC_002"},
		{"non numeric t", "t=abc,v1=abc", "SEC_004"},
		{"commas only", ",,,", "SEC_002"},
		{"value with equals", "t=1708092000,v1=a=b", "SEC_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := svc.Verify(tt.header, []byte("{}"), testSecret, now, DefaultTolerance)
				require.Error(t, err)
				assert.Equal(t, tt.code, apperror.CodeOf(err))
			})
		})
	}
}

func TestParseSignatureHeader(t *testing.T) {
	sig, err := ParseSignatureHeader(" t = 42 , junk, v1=abcdef ,v0=old")
	require.NoError(t, err)
	assert.Equal(t, int64(42), sig.Timestamp)
	assert.Equal(t, "abcdef", sig.SignatureHex)
}
