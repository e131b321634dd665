package password

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, h.Verify("correct horse battery staple", hash))
	require.False(t, h.Verify("wrong password", hash))
	require.False(t, h.Verify("", hash))
}

func TestHash_Salted(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasherWithCost(bcrypt.MinCost)

	a, err := h.Hash("same password")
	require.NoError(t, err)
	b, err := h.Hash("same password")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerify_GarbageHash(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	require.False(t, h.Verify("anything", "not a bcrypt hash"))
}
