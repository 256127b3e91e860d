package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedButVerifiable(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("hunter2")
	require.NoError(t, err)

	second, err := HashPassword("hunter2")
	require.NoError(t, err)

	// Salted hashes differ between calls but both verify.
	require.NotEqual(t, first, second)
	require.True(t, CheckPassword("hunter2", first))
	require.True(t, CheckPassword("hunter2", second))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	require.False(t, CheckPassword("wrong-password", hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	require.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	require.False(t, CheckPassword("anything", ""))
}
