package srp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fzdarsky/srp6go/pkg/srp"
)

func TestGenerateUserSecrets(t *testing.T) {
	params := srp.RFC5054Group2048

	details, err := srp.GenerateUserSecrets(params, "alice", "password123")
	require.NoError(t, err)

	assert.Equal(t, "alice", details.Username)
	assert.Len(t, details.Salt, params.SaltLength)
	assert.Len(t, details.Verifier, params.KeyLength)
	assert.NotEqual(t, make([]byte, params.SaltLength), details.Salt)
}

func TestGenerateUserSecrets_FreshSaltPerCall(t *testing.T) {
	params := srp.RFC5054Group1024

	first, err := srp.GenerateUserSecrets(params, "alice", "password123")
	require.NoError(t, err)
	second, err := srp.GenerateUserSecrets(params, "alice", "password123")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Verifier, second.Verifier)
}

func TestGenerateUserSecrets_ExhaustedRandomSource(t *testing.T) {
	params := srp.RFC5054Group1024

	_, err := srp.GenerateUserSecrets(params, "alice", "password123",
		srp.WithRandom(bytes.NewReader([]byte{0x01})))
	assert.Error(t, err)
}

func TestComputeVerifier_MatchesGeneratedSecrets(t *testing.T) {
	params := srp.RFC5054Group1024

	details, err := srp.GenerateUserSecrets(params, "alice", "password123")
	require.NoError(t, err)

	verifier := srp.ComputeVerifier(params, "alice", "password123", details.Salt)
	assert.Equal(t, details.Verifier, verifier)

	wrong := srp.ComputeVerifier(params, "alice", "hunter2", details.Salt)
	assert.NotEqual(t, details.Verifier, wrong)
}

func TestGenerateUserSecrets_HardenedDiffersFromPlain(t *testing.T) {
	params := srp.RFC5054Group1024
	salt := bytes.Repeat([]byte{0xAB}, params.SaltLength)

	plain, err := srp.GenerateUserSecrets(params, "alice", "password123",
		srp.WithRandom(bytes.NewReader(salt)))
	require.NoError(t, err)
	hardened, err := srp.GenerateUserSecrets(params, "alice", "password123",
		srp.WithRandom(bytes.NewReader(salt)), srp.WithHardenedPasswords())
	require.NoError(t, err)

	assert.Equal(t, plain.Salt, hardened.Salt)
	assert.NotEqual(t, plain.Verifier, hardened.Verifier)
}
