package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	token, err := GenerateToken("alice", secret, time.Hour)
	require.NoError(t, err)

	subject, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	token, err := GenerateToken("bob", secret, -1*time.Second)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("carol", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("wrong-secret"))
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"))
	require.ErrorIs(t, err, ErrTokenInvalid)
}
