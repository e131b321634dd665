package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret, nil)
	tok, err := codec.Issue("user-123", "runner@example.com", time.Hour)
	require.NoError(t, err)
	require.Len(t, strings.Split(tok, "."), 3)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "runner@example.com", claims.Email)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	codec := NewCodec(testSecret, clock)

	ttl := 30 * time.Minute
	tok, err := codec.Issue("u1", "a@x.com", ttl)
	require.NoError(t, err)

	clock.now = issuedAt.Add(ttl - time.Second)
	_, err = codec.Verify(tok)
	require.NoError(t, err)

	clock.now = issuedAt.Add(ttl + time.Second)
	_, err = codec.Verify(tok)
	require.ErrorIs(t, err, ErrExpired)

	// The boundary itself rejects: exp is "valid until", not "valid
	// through".
	clock.now = issuedAt.Add(ttl)
	_, err = codec.Verify(tok)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret, nil)
	tok, err := codec.Issue("u1", "a@x.com", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[len(sig)-1] == 'A' {
		sig[len(sig)-1] = 'B'
	} else {
		sig[len(sig)-1] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := codec.Verify(tampered)
	require.ErrorIs(t, err, ErrBadSignature)
	require.Nil(t, claims)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec(testSecret, nil).Issue("u1", "a@x.com", time.Hour)
	require.NoError(t, err)

	other := NewCodec([]byte("ffffffffffffffffffffffffffffffff"), nil)
	_, err = other.Verify(tok)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testSecret, nil)
	for _, tok := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := codec.Verify(tok)
		require.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestIssue_DistinctWithinSameSecond(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := NewCodec(testSecret, clock)

	first, err := codec.Issue("u1", "a@x.com", time.Hour)
	require.NoError(t, err)
	second, err := codec.Issue("u1", "a@x.com", time.Hour)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
