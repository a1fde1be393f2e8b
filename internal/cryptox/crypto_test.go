package cryptox

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_DeterministicPerSalt(t *testing.T) {
	pw := []byte("correct horse battery staple")

	a := DeriveKey(pw, []byte("salt-1"))
	b := DeriveKey(pw, []byte("salt-1"))
	c := DeriveKey(pw, []byte("salt-2"))

	require.Len(t, a, keyLength)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMakeVerifier(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	want := sha256.Sum256(key)

	assert.Equal(t, want[:], MakeVerifier(key))
}

func TestVerifierFor_MatchesManualSteps(t *testing.T) {
	pw, salt := []byte("pw"), []byte("salt")
	assert.Equal(t, MakeVerifier(DeriveKey(pw, salt)), VerifierFor(pw, salt))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal([]byte{1, 2, 3}, []byte{1, 2, 3}))
	assert.False(t, Equal([]byte{1, 2, 3}, []byte{1, 2, 4}))
	assert.False(t, Equal([]byte{1, 2, 3}, []byte{1, 2}))
	assert.False(t, Equal(nil, []byte{1}))
}
