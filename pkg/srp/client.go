package srp

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/fzdarsky/srp6go/pkg/protocol"
)

// Client is the user-side handshake state machine. Like Server, one
// instance owns exactly one authentication attempt. The password is
// taken as an argument where needed and never stored on the instance.
type Client struct {
	params   *Params
	random   io.Reader
	hardened bool
	phase    Phase

	username string
	a        *Number // client ephemeral secret
	bigA     *Number // client public key
	bigB     *Number // server public key
	u        *Number // scrambling value, recomputed independently
	s        *Number // session secret
	salt     []byte

	key   []byte // strong session key K
	proof []byte // M sent to the server
}

// NewClient creates a client state machine for one authentication
// attempt.
func NewClient(params *Params, opts ...Option) *Client {
	o := applyOptions(opts)
	return &Client{
		params:   params,
		random:   o.random,
		hardened: o.hardened,
		phase:    PhaseIdle,
	}
}

// Phase returns the current handshake phase.
func (c *Client) Phase() Phase {
	return c.phase
}

// StartHandshake generates the ephemeral pair (a, A) and returns the
// opening message for the server.
func (c *Client) StartHandshake(username string) (*protocol.UserHandshake, error) {
	if c.phase != PhaseIdle {
		return nil, fmt.Errorf("%w: start_handshake in phase %s", ErrInvalidHandshakeState, c.phase)
	}

	a, err := RandomNumber(c.random, c.params.EphemeralLength)
	if err != nil {
		return nil, err
	}
	bigA := computeClientPublicKey(c.params, a)

	c.username = username
	c.a = a
	c.bigA = bigA
	c.phase = PhaseAwaitingServer

	return &protocol.UserHandshake{
		Username:        username,
		ClientPublicKey: bigA.PadBE(c.params.KeyLength),
	}, nil
}

// UpdateHandshake consumes the server's handshake, derives the session
// secret and key, and returns the proof M for the server. The password
// is used transiently; only the derived material stays on the instance.
func (c *Client) UpdateHandshake(handshake *protocol.ServerHandshake, username, password string) (*protocol.ClientProof, error) {
	if c.phase != PhaseAwaitingServer {
		return nil, fmt.Errorf("%w: update_handshake in phase %s", ErrInvalidHandshakeState, c.phase)
	}
	if len(handshake.ServerPublicKey) > c.params.KeyLength {
		return nil, &KeyLengthMismatchError{Given: len(handshake.ServerPublicKey), Expected: c.params.KeyLength}
	}
	if len(handshake.Salt) != c.params.SaltLength {
		return nil, &KeyLengthMismatchError{Given: len(handshake.Salt), Expected: c.params.SaltLength}
	}

	bigB := NewNumberFromBytesBE(handshake.ServerPublicKey)
	salt := handshake.Salt

	if c.hardened {
		password = stretchPassword(password, salt)
	}
	x := derivePrivateKey(username, password, salt)
	secret, err := computeClientSessionSecret(c.params, c.bigA, bigB, c.a, x)
	x.clear()
	if err != nil {
		c.reject()
		return nil, err
	}

	c.bigB = bigB
	c.salt = salt
	c.u = computeScrambler(c.params, c.bigA, bigB)
	c.s = secret
	c.key = interleaveSessionKey(c.params, secret)
	c.proof = computeProof(c.params, username, salt, c.bigA, bigB, c.key)
	c.phase = PhaseAwaitingProof

	return &protocol.ClientProof{Proof: c.proof}, nil
}

// VerifyProof checks the server's counter-proof M2 against the locally
// expected value. On a match it returns the raw session secret S; only
// past this point is the session mutually authenticated. On a mismatch
// it returns ErrInvalidStrongProof and discards all derived material.
func (c *Client) VerifyProof(serverProof *protocol.ServerProof) ([]byte, error) {
	if c.phase != PhaseAwaitingProof {
		return nil, fmt.Errorf("%w: verify_proof in phase %s", ErrInvalidHandshakeState, c.phase)
	}

	expected := computeStrongProof(c.params, c.bigA, c.proof, c.key)
	if subtle.ConstantTimeCompare(serverProof.StrongProof, expected) != 1 {
		c.reject()
		return nil, ErrInvalidStrongProof
	}

	c.phase = PhaseVerified
	return c.s.BytesBE(), nil
}

// StrongKey returns the derived session key K after successful
// verification.
func (c *Client) StrongKey() ([]byte, error) {
	if c.phase != PhaseVerified {
		return nil, fmt.Errorf("%w: strong key requested in phase %s", ErrInvalidHandshakeState, c.phase)
	}
	return c.key, nil
}

// ClearSecrets zeroizes the session's secret material. The instance is
// unusable afterwards; every new attempt needs a new Client.
func (c *Client) ClearSecrets() {
	c.a.clear()
	c.s.clear()
	c.a, c.s = nil, nil
	wipeBytes(c.key)
	wipeBytes(c.proof)
	wipeBytes(c.salt)
	c.key, c.proof, c.salt = nil, nil, nil
	c.phase = PhaseRejected
}

func (c *Client) reject() {
	c.ClearSecrets()
}
